/*
Package ui implements the widgets of xpui.

A widget is anything implementing interface Widget. Concrete widget kinds
embed a Control, which carries the state common to all widgets: the
property map, the position in the widget tree, the backing visual element
(while attached) and the event channels.

	type Slider struct {
	    ui.Control
	}

	func NewSlider() *Slider {
	    s := &Slider{}
	    s.Init(s)
	    return s
	}

	func (s *Slider) Template() *dom.Element { ... }

	func (s *Slider) Defaults() []ui.DefaultsFunc {
	    return append(s.Control.Defaults(), sliderDefaults)
	}

Kinds override Template and/or Defaults only. Defaults are composed as a
list of functions, most general first, so that specific kinds override
what they inherit.

Attachment

A widget is attached iff it has a backing element. Attach creates the
element from the widget's template, applies all properties to it and
appends it into a parent element; afterwards children are attached into
the element's container. Detach releases the element and removes all
subscriptions from the widget's channels.

Events

Pointer event channels ("click", "mousedown", ...) are created when a
control is initialized, so subscribing never fails. CreateEventArgs
translates a raw pointer event into widget-relative coordinates; Route
delivers a raw event to the widget owning the event's target element and
to all of its ancestors.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ui

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'xpui.ui'.
func tracer() tracing.Trace {
	return tracing.Select("xpui.ui")
}
