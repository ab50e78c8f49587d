package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"io"

	"github.com/npillmayer/xpui/tree"
)

// Document is a live element tree. Widgets are attached into the body
// of a document.
type Document struct {
	root *Element
	body *Element
}

// NewDocument creates an empty document consisting of an `html` and a
// `body` element.
func NewDocument() *Document {
	doc := &Document{
		root: NewElement("html"),
		body: NewElement("body"),
	}
	doc.root.AppendChild(doc.body)
	return doc
}

// Root returns the `html` element of the document.
func (doc *Document) Root() *Element {
	return doc.root
}

// Body returns the `body` element of the document.
func (doc *Document) Body() *Element {
	return doc.body
}

// Contains is a predicate: is el part of the document?
func (doc *Document) Contains(el *Element) bool {
	return el != nil && (el == doc.root || doc.root.IsAncestorOf(&el.Node))
}

// ElementByID returns the first element with a given id, or nil.
func (doc *Document) ElementByID(id string) *Element {
	found := tree.DescendantsWith(&doc.root.Node, func(n *tree.Node[*Element]) bool {
		v, ok := ElementOf(n).Attribute("id")
		return ok && v == id
	})
	if len(found) == 0 {
		return nil
	}
	return ElementOf(found[0])
}

// Query returns the first element of the document matching a CSS selector.
func (doc *Document) Query(selector string) (*Element, error) {
	return doc.root.Query(selector)
}

// QueryAll returns all elements of the document matching a CSS selector.
func (doc *Document) QueryAll(selector string) ([]*Element, error) {
	return doc.root.QueryAll(selector)
}

// HitTest returns the innermost element under page position p. The body
// covers the whole page; if no other element is hit, the body is
// returned.
func (doc *Document) HitTest(p Point) *Element {
	children := doc.body.ChildElements()
	offset := doc.body.PageOffset()
	for i := len(children) - 1; i >= 0; i-- {
		if hit := children[i].hitTest(p, offset); hit != nil {
			return hit
		}
	}
	return doc.body
}

// ElementCount returns the number of elements in the document.
func (doc *Document) ElementCount() int {
	return tree.Count(&doc.root.Node)
}

// Render writes the HTML of the document to w.
func (doc *Document) Render(w io.Writer) error {
	if _, err := io.WriteString(w, "<!DOCTYPE html>\n"); err != nil {
		return err
	}
	return doc.root.Render(w)
}

func (doc *Document) String() string {
	return fmt.Sprintf("Document{%d elements}", doc.ElementCount())
}
