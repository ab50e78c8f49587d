package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/xpui/dom/style"
	"github.com/npillmayer/xpui/tree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ContainerAttr marks the element of a widget template which receives the
// elements of child widgets.
const ContainerAttr = "data-xp-container"

// Element is a backing visual element, the building block of the
// element tree.
type Element struct {
	tree.Node[*Element] // we build on top of general purpose tree
	htmlNode            *html.Node
	styles              *style.Declarations
	bounds              Rect
	owner               any
}

// NewElement creates a new, unattached element for an HTML tag.
func NewElement(tag string) *Element {
	tag = strings.ToLower(strings.TrimSpace(tag))
	el := &Element{}
	el.Payload = el // Payload will always reference the element itself
	el.htmlNode = &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	el.styles = style.NewDeclarations()
	return el
}

// ElementOf gets the element from a generic tree node.
func ElementOf(n *tree.Node[*Element]) *Element {
	if n == nil {
		return nil
	}
	return n.Payload
}

// TreeNode returns the generic tree node of el.
func (el *Element) TreeNode() *tree.Node[*Element] {
	if el == nil {
		return nil
	}
	return &el.Node
}

// HTMLNode gets the HTML node mirrored by this element.
func (el *Element) HTMLNode() *html.Node {
	return el.htmlNode
}

// Tag returns the (lowercase) tag name of el.
func (el *Element) Tag() string {
	return el.htmlNode.Data
}

func (el *Element) String() string {
	if id, ok := el.Attribute("id"); ok {
		return fmt.Sprintf("<%s#%s>", el.Tag(), id)
	}
	return fmt.Sprintf("<%s>", el.Tag())
}

// --- Tree ------------------------------------------------------------------

// ParentElement returns the parent element or nil.
func (el *Element) ParentElement() *Element {
	return ElementOf(el.Parent())
}

// ChildElements returns the child elements of el in document order.
func (el *Element) ChildElements() []*Element {
	children := el.Children()
	r := make([]*Element, len(children))
	for i, ch := range children {
		r[i] = ElementOf(ch)
	}
	return r
}

// AppendChild appends ch as the last child of el. If ch currently is the
// child of another element, it is removed from there first.
// AppendChild returns el to allow for chaining.
func (el *Element) AppendChild(ch *Element) *Element {
	if ch == nil || ch == el {
		return el
	}
	if ch.IsAncestorOf(&el.Node) {
		tracer().Errorf("cannot append %v to its own descendant %v", ch, el)
		return el
	}
	ch.Remove()
	el.AddChild(&ch.Node)
	el.htmlNode.AppendChild(ch.htmlNode)
	return el
}

// RemoveChild removes ch from the children of el. It returns false if ch
// is not a child of el.
func (el *Element) RemoveChild(ch *Element) bool {
	if ch == nil || ch.Parent() != &el.Node {
		return false
	}
	ch.Isolate()
	if ch.htmlNode.Parent == el.htmlNode {
		el.htmlNode.RemoveChild(ch.htmlNode)
	}
	return true
}

// Remove removes el from its parent, if any.
// Remove returns el.
func (el *Element) Remove() *Element {
	if p := el.ParentElement(); p != nil {
		p.RemoveChild(el)
	}
	return el
}

// Container returns the element receiving the elements of child widgets:
// the first element (in document order) carrying attribute
// `data-xp-container`, or el itself.
func (el *Element) Container() *Element {
	if IsContainer(&el.Node) {
		return el
	}
	if c := tree.DescendantsWith(&el.Node, IsContainer); len(c) > 0 {
		return ElementOf(c[0])
	}
	return el
}

// --- Owner -----------------------------------------------------------------

// Owner returns the object owning el, usually a widget control.
func (el *Element) Owner() any {
	return el.owner
}

// SetOwner sets the object owning el. Clients set a nil owner when
// releasing the element.
func (el *Element) SetOwner(owner any) {
	el.owner = owner
}

// --- Attributes ------------------------------------------------------------

// Attribute returns the value of an attribute.
func (el *Element) Attribute(key string) (string, bool) {
	for _, a := range el.htmlNode.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// Attributes returns a copy of the attributes of el in order.
func (el *Element) Attributes() []html.Attribute {
	attrs := make([]html.Attribute, len(el.htmlNode.Attr))
	copy(attrs, el.htmlNode.Attr)
	return attrs
}

// SetAttribute sets an attribute, overwriting an existing value in place.
// Attribute `style` is parsed into the style declarations of el; if it
// cannot be parsed, the old styles remain and an error is returned.
func (el *Element) SetAttribute(key, value string) error {
	if key == "style" {
		decl, err := style.ParseInline(value)
		if err != nil {
			return err
		}
		el.styles = decl
		el.syncStyleAttribute()
		return nil
	}
	el.setAttr(key, value)
	return nil
}

func (el *Element) setAttr(key, value string) {
	for i, a := range el.htmlNode.Attr {
		if a.Namespace == "" && a.Key == key {
			el.htmlNode.Attr[i].Val = value
			return
		}
	}
	el.htmlNode.Attr = append(el.htmlNode.Attr, html.Attribute{Key: key, Val: value})
}

// RemoveAttribute removes an attribute. It returns false if the attribute
// has not been set.
func (el *Element) RemoveAttribute(key string) bool {
	if key == "style" {
		el.styles = style.NewDeclarations()
	}
	for i, a := range el.htmlNode.Attr {
		if a.Namespace == "" && a.Key == key {
			el.htmlNode.Attr = append(el.htmlNode.Attr[:i], el.htmlNode.Attr[i+1:]...)
			return true
		}
	}
	return false
}

// --- Styles ----------------------------------------------------------------

// Style returns the value of an inline style property.
func (el *Element) Style(key string) (style.Property, bool) {
	return el.styles.Get(key)
}

// Styles returns the inline style declarations of el.
func (el *Element) Styles() *style.Declarations {
	return el.styles
}

// SetStyle sets an inline style property. An empty value removes it.
func (el *Element) SetStyle(key string, value style.Property) {
	el.styles.Set(key, value)
	el.syncStyleAttribute()
}

// RemoveStyle removes an inline style property.
func (el *Element) RemoveStyle(key string) {
	if el.styles.Remove(key) {
		el.syncStyleAttribute()
	}
}

func (el *Element) syncStyleAttribute() {
	if el.styles.Len() == 0 {
		for i, a := range el.htmlNode.Attr {
			if a.Namespace == "" && a.Key == "style" {
				el.htmlNode.Attr = append(el.htmlNode.Attr[:i], el.htmlNode.Attr[i+1:]...)
				return
			}
		}
		return
	}
	el.setAttr("style", el.styles.String())
}

// --- Text ------------------------------------------------------------------

// Text returns the concatenated text of the direct text children of el.
func (el *Element) Text() string {
	var b strings.Builder
	for c := el.htmlNode.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}

// SetText replaces the direct text children of el with a single text
// node, placed before any child elements. An empty string removes all text.
func (el *Element) SetText(text string) {
	var next *html.Node
	for c := el.htmlNode.FirstChild; c != nil; c = next {
		next = c.NextSibling
		if c.Type == html.TextNode {
			el.htmlNode.RemoveChild(c)
		}
	}
	if text == "" {
		return
	}
	t := &html.Node{Type: html.TextNode, Data: text}
	el.htmlNode.InsertBefore(t, el.htmlNode.FirstChild)
}

// --- Layout ----------------------------------------------------------------

// Bounds returns the layout box of el, relative to its parent element.
func (el *Element) Bounds() Rect {
	return el.bounds
}

// SetBounds sets the layout box of el, relative to its parent element.
func (el *Element) SetBounds(r Rect) {
	el.bounds = r
}

// PageOffset returns the page-space origin of the layout box of el.
// It is recomputed on every call.
func (el *Element) PageOffset() Point {
	var off Point
	for e := el; e != nil; e = e.ParentElement() {
		off = off.Add(e.bounds.Origin())
	}
	return off
}

// PageBounds returns the layout box of el in page coordinates.
func (el *Element) PageBounds() Rect {
	r := el.bounds
	if p := el.ParentElement(); p != nil {
		r = r.Translate(p.PageOffset())
	}
	return r
}

// HitTest returns the innermost element of the subtree under el whose
// page bounds contain p, or nil. Later siblings are painted on top of
// earlier ones and are tested first.
func (el *Element) HitTest(p Point) *Element {
	return el.hitTest(p, el.ParentElement().pageOffsetOrZero())
}

func (el *Element) pageOffsetOrZero() Point {
	if el == nil {
		return Point{}
	}
	return el.PageOffset()
}

func (el *Element) hitTest(p Point, parentOffset Point) *Element {
	box := el.bounds.Translate(parentOffset)
	if !box.Contains(p) {
		return nil
	}
	children := el.ChildElements()
	for i := len(children) - 1; i >= 0; i-- {
		if hit := children[i].hitTest(p, box.Origin()); hit != nil {
			return hit
		}
	}
	return el
}
