package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"bytes"
	"fmt"
	"io"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/xpui/tree"
	"golang.org/x/net/html"
)

// QueryAll returns all descendants of el (excluding el) matching a CSS
// selector, in document order.
func (el *Element) QueryAll(selector string) ([]*Element, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("illegal selector %q: %w", selector, err)
	}
	return el.queryAll(sel), nil
}

func (el *Element) queryAll(sel cascadia.Selector) []*Element {
	matching := tree.DescendantsWith(&el.Node, func(n *tree.Node[*Element]) bool {
		return sel.Match(ElementOf(n).htmlNode)
	})
	r := make([]*Element, len(matching))
	for i, n := range matching {
		r[i] = ElementOf(n)
	}
	return r
}

// Query returns the first descendant of el matching a CSS selector, or nil.
func (el *Element) Query(selector string) (*Element, error) {
	all, err := el.QueryAll(selector)
	if err != nil || len(all) == 0 {
		return nil, err
	}
	return all[0], nil
}

// Render writes the HTML of the subtree under el to w.
func (el *Element) Render(w io.Writer) error {
	return html.Render(w, el.htmlNode)
}

// OuterHTML returns the HTML of the subtree under el.
func (el *Element) OuterHTML() string {
	var b bytes.Buffer
	if err := el.Render(&b); err != nil {
		tracer().Errorf("cannot render %v: %v", el, err)
		return ""
	}
	return b.String()
}
