package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "errors"

// ErrEmptyTree is returned if a walk is started with a nil node.
var ErrEmptyTree = errors.New("cannot walk empty tree")

// SkipChildren may be returned by an Action during TopDown to signal that
// the children of the current node should not be visited. It is not
// reported as an error by TopDown.
var SkipChildren = errors.New("skip children of this node")

// Predicate is a function type to match against nodes of a tree.
type Predicate[T comparable] func(test *Node[T]) bool

// Whatever is a predicate to match anything (see type Predicate).
func Whatever[T comparable]() Predicate[T] {
	return func(*Node[T]) bool {
		return true
	}
}

// NodeIsLeaf is a predicate to match leafs of a tree.
func NodeIsLeaf[T comparable]() Predicate[T] {
	return func(test *Node[T]) bool {
		return test.ChildCount() == 0
	}
}

// Action is a function type to operate on tree nodes. position is the
// index of n within the children of parent; for the start node of a walk
// parent is nil and position is 0.
type Action[T comparable] func(n *Node[T], parent *Node[T], position int) error

// TopDown traverses a tree starting at (and including) node. Parents are
// always processed before their children, children in document order.
//
// If the action returns an error for a node, the walk stops and the error
// is returned, with the exception of SkipChildren, which prunes the
// branch below the node and continues.
func TopDown[T comparable](node *Node[T], action Action[T]) error {
	if node == nil {
		return ErrEmptyTree
	}
	return topDown(node, nil, 0, action)
}

func topDown[T comparable](node, parent *Node[T], position int, action Action[T]) error {
	if err := action(node, parent, position); err != nil {
		if errors.Is(err, SkipChildren) {
			return nil
		}
		return err
	}
	// iterate over a copy: actions may re-arrange children of node
	for i, ch := range node.Children() {
		if err := topDown(ch, node, i, action); err != nil {
			return err
		}
	}
	return nil
}

// BottomUp traverses a tree starting at node. Children are always
// processed before their parents, siblings in document order. The start
// node is processed last.
//
// If the action returns an error for a node, the walk stops and the error
// is returned.
func BottomUp[T comparable](node *Node[T], action Action[T]) error {
	if node == nil {
		return ErrEmptyTree
	}
	return bottomUp(node, nil, 0, action)
}

func bottomUp[T comparable](node, parent *Node[T], position int, action Action[T]) error {
	for i, ch := range node.Children() {
		if err := bottomUp(ch, node, i, action); err != nil {
			return err
		}
	}
	return action(node, parent, position)
}

// DescendantsWith collects all descendants of node matching a predicate,
// in document order. The search does not include the start node.
func DescendantsWith[T comparable](node *Node[T], predicate Predicate[T]) []*Node[T] {
	if node == nil || predicate == nil {
		return nil
	}
	var selection []*Node[T]
	_ = TopDown(node, func(n, parent *Node[T], pos int) error {
		if n != node && predicate(n) {
			selection = append(selection, n)
		}
		return nil
	})
	tracer().Debugf("descendants of %v: %d match(es)", node, len(selection))
	return selection
}

// AncestorWith finds the nearest ancestor matching the given predicate.
// The search does not include the start node.
func AncestorWith[T comparable](node *Node[T], predicate Predicate[T]) *Node[T] {
	if predicate == nil {
		return nil
	}
	for anc := node.Parent(); anc != nil; anc = anc.Parent() {
		if predicate(anc) {
			return anc
		}
	}
	return nil
}

// Count returns the number of nodes in the tree spanned by node,
// including node itself.
func Count[T comparable](node *Node[T]) int {
	cnt := 0
	_ = TopDown(node, func(*Node[T], *Node[T], int) error {
		cnt++
		return nil
	})
	return cnt
}
