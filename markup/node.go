package markup

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Attr is an attribute of a markup node.
type Attr struct {
	Name  string
	Value string
}

// Node is a node of a markup document.
type Node struct {
	Tag      string
	Attrs    []Attr // in document order
	Children []*Node
	Text     string // text content, whitespace-trimmed
	Line     int    // line of the start tag, if read from a source
}

// NewNode creates a markup node programmatically.
func NewNode(tag string, attrs ...Attr) *Node {
	return &Node{Tag: tag, Attrs: attrs}
}

// Append appends child nodes. It returns n to allow for chaining.
func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Attr returns the value of the last attribute with a given name.
func (n *Node) Attr(name string) (string, bool) {
	v, found := "", false
	for _, a := range n.Attrs {
		if a.Name == name {
			v, found = a.Value, true
		}
	}
	return v, found
}

func (n *Node) String() string {
	var b strings.Builder
	b.WriteString("<" + n.Tag)
	for _, a := range n.Attrs {
		fmt.Fprintf(&b, " %s=%q", a.Name, a.Value)
	}
	fmt.Fprintf(&b, "> (%d children)", len(n.Children))
	return b.String()
}

// ReadString reads a markup document from a string.
func ReadString(s string) (*Node, error) {
	return Read(strings.NewReader(s))
}

// Read reads a markup document. Documents have exactly one root node.
// Comments, processing instructions and directives are skipped.
func Read(r io.Reader) (*Node, error) {
	dec := xml.NewDecoder(r)
	var root *Node
	var stack []*Node
	for {
		tok, err := dec.RawToken()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read markup: %w", err)
		}
		line, _ := dec.InputPos()
		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{Tag: qname(t.Name), Line: line}
			for _, a := range t.Attr {
				n.Attrs = append(n.Attrs, Attr{Name: qname(a.Name), Value: a.Value})
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("markup line %d: more than one root node <%s>", line, n.Tag)
				}
				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			}
			stack = append(stack, n)
		case xml.EndElement:
			if len(stack) == 0 || stack[len(stack)-1].Tag != qname(t.Name) {
				return nil, fmt.Errorf("markup line %d: unexpected end tag </%s>", line, qname(t.Name))
			}
			stack = stack[:len(stack)-1]
		case xml.CharData:
			text := strings.TrimSpace(string(t))
			if text == "" {
				continue
			}
			if len(stack) == 0 {
				return nil, fmt.Errorf("markup line %d: text outside of root node", line)
			}
			n := stack[len(stack)-1]
			if n.Text != "" {
				n.Text += " "
			}
			n.Text += text
		}
	}
	if len(stack) > 0 {
		return nil, fmt.Errorf("markup: unclosed tag <%s>", stack[len(stack)-1].Tag)
	}
	if root == nil {
		return nil, errors.New("markup: empty document")
	}
	tracer().Debugf("read markup document with root <%s>", root.Tag)
	return root, nil
}

func qname(n xml.Name) string {
	if n.Space != "" {
		return n.Space + ":" + n.Local
	}
	return n.Local
}
