package ui

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"weak"

	"github.com/npillmayer/xpui/dom"
)

// PointerEvent is a raw pointer event as delivered by the platform.
type PointerEvent struct {
	Type         string       // name of the event, e.g. "click"
	PageX, PageY float64      // position in page coordinates
	Target       *dom.Element // element the event originated from
	Button       int          // pressed mouse button, 0 = primary
}

func (pe PointerEvent) String() string {
	return fmt.Sprintf("%s@(%g,%g)", pe.Type, pe.PageX, pe.PageY)
}

// EventArgs is the argument of pointer event channels. It is created per
// dispatch and carries positions relative to the target widget's element.
type EventArgs struct {
	target       weak.Pointer[controlRef]
	Raw          PointerEvent
	PageX, PageY float64 // position in page coordinates
	// ElementX and ElementY are the position relative to the page origin
	// of the target's backing element.
	ElementX, ElementY float64
}

// Target returns the widget the event args have been created for. It
// returns nil if the widget no longer exists.
func (args *EventArgs) Target() Widget {
	ref := args.target.Value()
	if ref == nil {
		return nil
	}
	return ref.c.self
}

// Position returns the element-relative position as a point.
func (args *EventArgs) Position() dom.Point {
	return dom.Point{X: args.ElementX, Y: args.ElementY}
}

func (args *EventArgs) String() string {
	return fmt.Sprintf("EventArgs{%s page=(%g,%g) element=(%g,%g)}",
		args.Raw.Type, args.PageX, args.PageY, args.ElementX, args.ElementY)
}

// DetachedWidgetError is returned when coordinates are requested for a
// widget without a backing element.
type DetachedWidgetError struct {
	Widget Widget
	Op     string
}

func (e *DetachedWidgetError) Error() string {
	return fmt.Sprintf("%s: widget %v is not attached", e.Op, e.Widget)
}

// CreateEventArgs translates a raw pointer event into event args relative
// to widget w. The page offset of w's backing element is recomputed on
// every call.
// If w is not attached, a DetachedWidgetError is returned.
func CreateEventArgs(w Widget, raw PointerEvent) (*EventArgs, error) {
	if w == nil {
		return nil, fmt.Errorf("create event args: %w", ErrNotAWidget)
	}
	c := w.AsControl()
	if c.element == nil {
		return nil, &DetachedWidgetError{Widget: w, Op: "create event args"}
	}
	off := c.element.PageOffset()
	return &EventArgs{
		target:   weak.Make(c.ref),
		Raw:      raw,
		PageX:    raw.PageX,
		PageY:    raw.PageY,
		ElementX: raw.PageX - off.X,
		ElementY: raw.PageY - off.Y,
	}, nil
}
