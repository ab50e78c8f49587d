/*
Package tree implements an ordered tree type for the UI trees of xpui.

Two trees are built from it: the tree of backing visual elements (package
dom) and the tree of widgets (package ui). Both embed or link a Node and
set the node's payload to the enclosing object, so that navigating the
generic tree always leads back to the concrete type:

	type Element struct {
	    tree.Node[*Element]
	    ...
	}

	el := &Element{}
	el.Payload = el

In a fully object oriented language we would subclass the tree node, but
in Go we resort to composition, which means providing an adapter to get
from the generic node back to the sub-type.

Concurrency

xpui runs on a single logical thread of control (the platform event
loop). Tree operations are therefore synchronous: walkers visit nodes in
document order and return as soon as the traversal is done. Children
slices are still guarded by a mutex, so that read access from a debugging
goroutine will not see a torn slice.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'xpui.tree'.
func tracer() tracing.Trace {
	return tracing.Select("xpui.tree")
}
