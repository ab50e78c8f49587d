package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/xpui/tree"
)

// IsContainer is a predicate to match elements designated as containers
// for child widgets. It is intended to be used with the walkers of
// package tree.
var IsContainer tree.Predicate[*Element] = func(n *tree.Node[*Element]) bool {
	_, ok := ElementOf(n).Attribute(ContainerAttr)
	return ok
}

// HasTag returns a predicate matching elements with a given tag name.
func HasTag(tag string) tree.Predicate[*Element] {
	return func(n *tree.Node[*Element]) bool {
		return ElementOf(n).Tag() == tag
	}
}

// HasOwner is a predicate to match elements which currently back a widget.
var HasOwner tree.Predicate[*Element] = func(n *tree.Node[*Element]) bool {
	return ElementOf(n).Owner() != nil
}
