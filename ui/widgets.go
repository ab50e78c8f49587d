package ui

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/xpui/dom"
)

// Box is a generic container widget.
type Box struct {
	Control
}

// NewBox creates a box widget.
func NewBox() *Box {
	b := &Box{}
	b.Init(b)
	return b
}

// Template renders a box as a `div`.
func (b *Box) Template() *dom.Element {
	return dom.NewElement("div")
}

// Defaults is part of interface Widget.
func (b *Box) Defaults() []DefaultsFunc {
	return append(b.Control.Defaults(), func(p *Props) {
		p.Set("class", "xp-box")
	})
}

// Placeholder is a widget without visual content. It reserves space in a
// layout and hides itself from assistive technology.
type Placeholder struct {
	Box
}

// NewPlaceholder creates a placeholder widget.
func NewPlaceholder() *Placeholder {
	ph := &Placeholder{}
	ph.Init(ph)
	return ph
}

// Template renders a placeholder as an empty `div`.
func (ph *Placeholder) Template() *dom.Element {
	el := dom.NewElement("div")
	_ = el.SetAttribute("aria-hidden", "true")
	return el
}

// Defaults is part of interface Widget.
func (ph *Placeholder) Defaults() []DefaultsFunc {
	return append(ph.Box.Defaults(), func(p *Props) {
		p.Set("class", "xp-placeholder")
	})
}

// Label displays a line of text.
type Label struct {
	Control
}

// NewLabel creates a label widget.
func NewLabel() *Label {
	l := &Label{}
	l.Init(l)
	return l
}

// Template renders a label as a `span`.
func (l *Label) Template() *dom.Element {
	return dom.NewElement("span")
}

// Defaults is part of interface Widget.
func (l *Label) Defaults() []DefaultsFunc {
	return append(l.Control.Defaults(), func(p *Props) {
		p.Set("class", "xp-label")
		p.Set("text", "")
	})
}

// Button is a clickable widget with a text.
type Button struct {
	Control
}

// NewButton creates a button widget.
func NewButton() *Button {
	b := &Button{}
	b.Init(b)
	return b
}

// Template renders a button as a `button` element.
func (b *Button) Template() *dom.Element {
	el := dom.NewElement("button")
	_ = el.SetAttribute("type", "button")
	return el
}

// ApplyProperty is part of interface PropertyApplier. Property `text` is
// also the accessible name of the button.
func (b *Button) ApplyProperty(el *dom.Element, key, value string) bool {
	if key != "text" {
		return false
	}
	el.SetText(value)
	if value == "" {
		el.RemoveAttribute("aria-label")
	} else {
		_ = el.SetAttribute("aria-label", value)
	}
	return true
}

// Defaults is part of interface Widget.
func (b *Button) Defaults() []DefaultsFunc {
	return append(b.Control.Defaults(), func(p *Props) {
		p.Set("class", "xp-button")
		p.Set("role", "button")
		p.Set("text", "Button")
	})
}

var (
	_ Widget = (*Box)(nil)
	_ Widget = (*Placeholder)(nil)
	_ Widget = (*Label)(nil)
	_ Widget = (*Button)(nil)

	_ PropertyApplier = (*Button)(nil)
)
