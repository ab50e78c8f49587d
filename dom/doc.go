/*
Package dom implements the tree of backing visual elements of xpui.

Every widget which is attached to a document owns exactly one Element.
Elements mirror an HTML node (package golang.org/x/net/html), which makes
the element tree renderable and queryable with CSS selectors, and carry a
layout box in CSS pixels. Boxes are relative to the parent element; page
coordinates are computed on demand by summing the offsets of all
ancestors. Nothing is cached, as layout may change between two pointer
events.

Tree Implementation

Elements are built on top of the general purpose tree type of package
tree. Each Element embeds a tree node whose payload references the
element itself:

	el := dom.NewElement("div")
	n := el.TreeNode()            // *tree.Node[*dom.Element]
	same := dom.ElementOf(n)      // == el

Containers

A widget template may designate a descendant element as the container
for the elements of child widgets, by setting the attribute
`data-xp-container`. Templates without such an attribute use their root
element as container.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'xpui.dom'
func tracer() tracing.Trace {
	return tracing.Select("xpui.dom")
}
