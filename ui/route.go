package ui

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"

	"github.com/npillmayer/xpui/dom"
)

// WidgetOf returns the widget owning el or the nearest ancestor of el
// which is owned by a widget. It returns nil if there is no such element.
func WidgetOf(el *dom.Element) Widget {
	for e := el; e != nil; e = e.ParentElement() {
		if w, ok := e.Owner().(Widget); ok {
			return w
		}
	}
	return nil
}

// Router delivers raw pointer events to widgets.
type Router struct {
	// Propagate makes Route return the failures of event handlers.
	// Otherwise they are only reported.
	Propagate bool
}

// Route delivers a raw pointer event with the default router.
func Route(raw PointerEvent) (int, error) {
	return Router{}.Route(raw)
}

// Route finds the widget owning raw.Target and dispatches raw to that
// widget's channel named raw.Type, then to the same channel of every
// ancestor widget. Every widget receives event args relative to its own
// element. Widgets which do not expose the channel are skipped.
//
// Route returns the number of widgets the event has been delivered to.
// Handler failures in one widget do not keep the event from the others.
func (r Router) Route(raw PointerEvent) (int, error) {
	if raw.Target == nil {
		return 0, fmt.Errorf("route %v: event has no target element", raw)
	}
	w := WidgetOf(raw.Target)
	if w == nil {
		tracer().Debugf("route %v: target %v is not owned by a widget", raw, raw.Target)
		return 0, nil
	}
	var errs []error
	count := 0
	for ; w != nil; w = w.AsControl().Parent() {
		c := w.AsControl()
		ch := c.Channel(raw.Type)
		if ch == nil {
			continue
		}
		args, err := CreateEventArgs(w, raw)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		count++
		if r.Propagate {
			if err := ch.DispatchE(args); err != nil {
				errs = append(errs, err)
			}
		} else {
			ch.Dispatch(args)
		}
	}
	return count, errors.Join(errs...)
}

// Find returns the widgets in the subtree under w (excluding w) whose
// backing elements match a CSS selector. w has to be attached.
func Find(w Widget, selector string) ([]Widget, error) {
	c := w.AsControl()
	if c.element == nil {
		return nil, &DetachedWidgetError{Widget: w, Op: "find"}
	}
	elements, err := c.element.QueryAll(selector)
	if err != nil {
		return nil, err
	}
	var r []Widget
	for _, el := range elements {
		if o, ok := el.Owner().(Widget); ok && o != w {
			r = append(r, o)
		}
	}
	return r, nil
}
