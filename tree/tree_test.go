package tree

import (
	"errors"
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tp "github.com/xlab/treeprint"
)

func TestNodeAddAndIsolate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "xpui.tree")
	defer teardown()
	//
	root := NewNode("root")
	a, b, c := NewNode("a"), NewNode("b"), NewNode("c")
	root.AddChild(a).AddChild(b).AddChild(c)
	require.Equal(t, 3, root.ChildCount())
	assert.Equal(t, 1, root.IndexOfChild(b))
	assert.Same(t, root, b.Parent())
	//
	b.Isolate()
	assert.Equal(t, 2, root.ChildCount(), "siblings should close ranks")
	assert.Nil(t, b.Parent())
	ch, ok := root.Child(1)
	require.True(t, ok)
	assert.Equal(t, "c", ch.Payload)
	assert.Equal(t, -1, root.IndexOfChild(b))
}

func TestNodeReparent(t *testing.T) {
	r1, r2 := NewNode(1), NewNode(2)
	x := NewNode(3)
	r1.AddChild(x)
	r2.AddChild(x)
	assert.Equal(t, 0, r1.ChildCount())
	assert.Equal(t, 1, r2.ChildCount())
	assert.Same(t, r2, x.Parent())
}

func TestNodeInsertAt(t *testing.T) {
	root := NewNode("r")
	root.AddChild(NewNode("a")).AddChild(NewNode("c"))
	root.InsertChildAt(1, NewNode("b"))
	root.InsertChildAt(99, NewNode("d"))
	assert.Equal(t, "abcd", payloads(root.Children()))
}

func TestNodeRootAndDepth(t *testing.T) {
	root := NewNode("r")
	a := NewNode("a")
	b := NewNode("b")
	root.AddChild(a)
	a.AddChild(b)
	assert.Same(t, root, b.Root())
	assert.Equal(t, 2, b.Depth())
	assert.True(t, root.IsAncestorOf(b))
	assert.False(t, b.IsAncestorOf(root))
}

func TestTopDownOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "xpui.tree")
	defer teardown()
	//
	root := createTreeForTest()
	t.Logf("tree for test =\n%s", printTree(root))
	var seq string
	err := TopDown(root, func(n, parent *Node[string], pos int) error {
		seq += n.Payload
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "rabcde", seq)
}

func TestTopDownSkipAndAbort(t *testing.T) {
	root := createTreeForTest()
	var seq string
	err := TopDown(root, func(n, parent *Node[string], pos int) error {
		seq += n.Payload
		if n.Payload == "a" {
			return SkipChildren
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "rade", seq)
	//
	boom := errors.New("boom")
	seq = ""
	err = TopDown(root, func(n, parent *Node[string], pos int) error {
		seq += n.Payload
		if n.Payload == "b" {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "rab", seq)
}

func TestBottomUpOrder(t *testing.T) {
	root := createTreeForTest()
	var seq string
	err := BottomUp(root, func(n, parent *Node[string], pos int) error {
		seq += fmt.Sprintf("%s%d", n.Payload, pos)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "b0c1a0e0d1r0", seq)
}

func TestWalkEmpty(t *testing.T) {
	var empty *Node[int]
	assert.ErrorIs(t, TopDown(empty, nil), ErrEmptyTree)
	assert.ErrorIs(t, BottomUp(empty, nil), ErrEmptyTree)
}

func TestDescendantsAndAncestors(t *testing.T) {
	root := createTreeForTest()
	leaves := DescendantsWith(root, NodeIsLeaf[string]())
	assert.Equal(t, "bce", payloads(leaves))
	all := DescendantsWith(root, Whatever[string]())
	assert.Equal(t, "abcde", payloads(all))
	//
	e := DescendantsWith(root, func(n *Node[string]) bool { return n.Payload == "e" })
	require.Len(t, e, 1)
	anc := AncestorWith(e[0], func(n *Node[string]) bool { return n.Payload == "r" })
	assert.Same(t, root, anc)
	assert.Equal(t, 6, Count(root))
}

// --- Helpers ---------------------------------------------------------------

// r ─┬─ a ─┬─ b
//    │     └─ c
//    └─ d ─── e
func createTreeForTest() *Node[string] {
	root := NewNode("r")
	a, d := NewNode("a"), NewNode("d")
	root.AddChild(a).AddChild(d)
	a.AddChild(NewNode("b")).AddChild(NewNode("c"))
	d.AddChild(NewNode("e"))
	return root
}

func payloads(nodes []*Node[string]) string {
	s := ""
	for _, n := range nodes {
		s += n.Payload
	}
	return s
}

func printTree(root *Node[string]) string {
	p := tp.New()
	ppt(p, root)
	return p.String()
}

func ppt(p tp.Tree, node *Node[string]) {
	if node.ChildCount() == 0 {
		p.AddNode(node.Payload)
		return
	}
	branch := p.AddBranch(node.Payload)
	for _, ch := range node.Children() {
		ppt(branch, ch)
	}
}
