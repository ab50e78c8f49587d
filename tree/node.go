package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sync"
)

// Node is the base type our trees are built of.
// Each node carries a payload of type parameter T and maintains an
// ordered slice of children. Child order is document order.
type Node[T comparable] struct {
	parent   *Node[T]         // parent node of this node
	children childrenSlice[T] // mutex-protected slice of children nodes
	Payload  T                // nodes may carry a payload of arbitrary type
}

// NewNode creates a new tree node with a given payload.
func NewNode[T comparable](payload T) *Node[T] {
	return &Node[T]{Payload: payload}
}

func (node *Node[T]) String() string {
	return fmt.Sprintf("(Node #ch=%d %v)", node.ChildCount(), node.Payload)
}

// AddChild appends a child node. If ch is currently a child of another
// node, it is isolated from its old parent first.
// It returns the parent node to allow for chaining.
func (node *Node[T]) AddChild(ch *Node[T]) *Node[T] {
	if ch == nil || ch == node {
		return node
	}
	ch.Isolate()
	node.children.insertAt(-1, ch, node)
	return node
}

// InsertChildAt inserts a child node at position i, shifting children at
// later positions. Positions beyond the end append.
// It returns the parent node to allow for chaining.
func (node *Node[T]) InsertChildAt(i int, ch *Node[T]) *Node[T] {
	if ch == nil || ch == node {
		return node
	}
	ch.Isolate()
	node.children.insertAt(i, ch, node)
	return node
}

// Parent returns the parent node or nil (for the root of the tree).
func (node *Node[T]) Parent() *Node[T] {
	if node == nil {
		return nil
	}
	return node.parent
}

// Root returns the topmost ancestor of node, which is node itself for
// a root node.
func (node *Node[T]) Root() *Node[T] {
	r := node
	for r != nil && r.parent != nil {
		r = r.parent
	}
	return r
}

// Depth returns the number of ancestors of node.
func (node *Node[T]) Depth() int {
	d := 0
	for p := node.Parent(); p != nil; p = p.Parent() {
		d++
	}
	return d
}

// Isolate removes a node from its parent. The remaining siblings close
// ranks; no empty slots are left behind.
// Isolate returns the isolated node.
func (node *Node[T]) Isolate() *Node[T] {
	if node != nil && node.parent != nil {
		if !node.parent.children.remove(node) {
			tracer().Errorf("tree node %v not found in children of its parent", node)
		}
		node.parent = nil
	}
	return node
}

// ChildCount returns the number of children-nodes for a node.
func (node *Node[T]) ChildCount() int {
	return node.children.length()
}

// Child returns the child at position n.
func (node *Node[T]) Child(n int) (*Node[T], bool) {
	ch := node.children.child(n)
	return ch, ch != nil
}

// Children returns a copy of the slice of children of a node.
func (node *Node[T]) Children() []*Node[T] {
	return node.children.asSlice()
}

// IndexOfChild returns the index of a child within the list of children
// of its parent, or -1.
func (node *Node[T]) IndexOfChild(ch *Node[T]) int {
	return node.children.indexOf(ch)
}

// IsAncestorOf is a predicate: is node an ancestor of n?
func (node *Node[T]) IsAncestorOf(n *Node[T]) bool {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if p == node {
			return true
		}
	}
	return false
}

// --- Slices of children -----------------------------------------------

type childrenSlice[T comparable] struct {
	sync.RWMutex
	slice []*Node[T]
}

func (chs *childrenSlice[T]) length() int {
	chs.RLock()
	defer chs.RUnlock()
	return len(chs.slice)
}

// insertAt inserts child at position i; i < 0 or i ≥ len appends.
func (chs *childrenSlice[T]) insertAt(i int, child *Node[T], parent *Node[T]) {
	chs.Lock()
	defer chs.Unlock()
	if i < 0 || i >= len(chs.slice) {
		chs.slice = append(chs.slice, child)
	} else {
		chs.slice = append(chs.slice, nil)   // make room for one child
		copy(chs.slice[i+1:], chs.slice[i:]) // shift i+1..n
		chs.slice[i] = child
	}
	child.parent = parent
}

func (chs *childrenSlice[T]) remove(node *Node[T]) bool {
	chs.Lock()
	defer chs.Unlock()
	for i, ch := range chs.slice {
		if ch == node {
			copy(chs.slice[i:], chs.slice[i+1:])
			chs.slice[len(chs.slice)-1] = nil
			chs.slice = chs.slice[:len(chs.slice)-1]
			return true
		}
	}
	return false
}

func (chs *childrenSlice[T]) child(n int) *Node[T] {
	chs.RLock()
	defer chs.RUnlock()
	if n < 0 || n >= len(chs.slice) {
		return nil
	}
	return chs.slice[n]
}

func (chs *childrenSlice[T]) indexOf(node *Node[T]) int {
	chs.RLock()
	defer chs.RUnlock()
	for i, ch := range chs.slice {
		if ch == node {
			return i
		}
	}
	return -1
}

func (chs *childrenSlice[T]) asSlice() []*Node[T] {
	chs.RLock()
	defer chs.RUnlock()
	children := make([]*Node[T], len(chs.slice))
	copy(children, chs.slice)
	return children
}
