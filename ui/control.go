package ui

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/xpui/css"
	"github.com/npillmayer/xpui/dom"
	"github.com/npillmayer/xpui/dom/style"
	"github.com/npillmayer/xpui/event"
	"github.com/npillmayer/xpui/tree"
)

// Widget is the capability set of every node of a widget tree.
type Widget interface {
	// AsControl returns the control embedded in the widget.
	AsControl() *Control
	// Template creates a new, unattached backing element. It may read the
	// widget's own properties, but nothing else.
	Template() *dom.Element
	// Defaults returns the functions setting the default properties of the
	// widget, the most general first.
	Defaults() []DefaultsFunc
}

// PropertyApplier is implemented by widgets which write some of their
// properties to the backing element themselves. ApplyProperty returns
// false for properties left to the control.
type PropertyApplier interface {
	ApplyProperty(el *dom.Element, key, value string) bool
}

// DefaultsFunc sets default properties.
type DefaultsFunc func(p *Props)

// PointerChannels are the names of the event channels every control
// exposes.
var PointerChannels = []string{"click", "mousedown", "mouseup", "mousemove", "mouseenter", "mouseleave"}

// Errors of widget tree operations.
var (
	ErrAttached    = errors.New("widget is already attached")
	ErrNoParent    = errors.New("no parent element to attach to")
	ErrNotAWidget  = errors.New("not a widget")
	ErrUninitiated = errors.New("control has not been initialized")
)

// Control is the base of all widgets.
type Control struct {
	self     Widget
	ref      *controlRef
	node     tree.Node[*Control]
	props    *Props
	element  *dom.Element
	channels map[string]*event.Channel[*EventArgs]
	// Changed receives an event for every call to Set.
	Changed *event.Channel[PropertyChange]
}

// controlRef is referenced weakly from event arguments. It is owned by
// its control only.
type controlRef struct {
	c *Control
}

// NewControl creates a generic widget, rendered as a `div`.
func NewControl() *Control {
	c := &Control{}
	c.Init(c)
	return c
}

// Init initializes a control for widget self, which usually embeds c.
// Init creates the event channels. It returns c.
func (c *Control) Init(self Widget) *Control {
	if self == nil {
		self = c
	}
	c.self = self
	c.ref = &controlRef{c: c}
	c.node.Payload = c
	c.props = NewProps()
	c.channels = make(map[string]*event.Channel[*EventArgs], len(PointerChannels))
	for _, name := range PointerChannels {
		c.channels[name] = event.NewChannel[*EventArgs](name)
	}
	c.Changed = event.NewChannel[PropertyChange]("changed")
	return c
}

// AsControl is part of interface Widget.
func (c *Control) AsControl() *Control {
	return c
}

// Template is part of interface Widget. A plain control is rendered as a
// `div`.
func (c *Control) Template() *dom.Element {
	return dom.NewElement("div")
}

// Defaults is part of interface Widget.
func (c *Control) Defaults() []DefaultsFunc {
	return []DefaultsFunc{controlDefaults}
}

func controlDefaults(p *Props) {
	p.Set("width", "auto")
	p.Set("height", "auto")
	p.Set("visible", "true")
	p.Set("enabled", "true")
}

// Widget returns the widget c is embedded in.
func (c *Control) Widget() Widget {
	return c.self
}

func (c *Control) String() string {
	kind := "Control"
	if c.self != nil {
		kind = strings.TrimPrefix(fmt.Sprintf("%T", c.self), "*")
	}
	if id, ok := c.props.Get("id"); ok {
		return fmt.Sprintf("%s#%s", kind, id)
	}
	return kind
}

// --- Properties ------------------------------------------------------------

// Props returns the property map of c.
// Clients should not modify it directly, but use Set.
func (c *Control) Props() *Props {
	return c.props
}

// SetDefaults applies the default properties of the widget. It is
// idempotent. If the widget is attached, the backing element is updated.
func (c *Control) SetDefaults() {
	if c.self == nil {
		tracer().Errorf("SetDefaults called on uninitialized control")
		return
	}
	for _, f := range c.self.Defaults() {
		f(c.props)
	}
	if c.element != nil {
		c.applyAll()
	}
}

// Set sets a property. If the widget is attached, the property is applied
// to the backing element at once. Listeners on Changed are notified.
//
// Property `style` takes a list of inline style declarations. Geometry
// declarations in it are set as properties of their own; property `style`
// keeps the remaining ones.
func (c *Control) Set(key, value string) {
	if key == "style" {
		c.setStyle(value)
		return
	}
	c.set(key, value)
}

func (c *Control) setStyle(value string) {
	decl, err := style.ParseInline(value)
	if err != nil {
		tracer().Errorf("%v: cannot set style: %v", c, err)
		return
	}
	rest := style.NewDeclarations()
	for _, kv := range decl.Properties() {
		if style.IsGeometry(kv.Key) {
			c.set(kv.Key, kv.Value.String())
			continue
		}
		rest.Set(kv.Key, kv.Value)
	}
	c.set("style", rest.String())
}

func (c *Control) set(key, value string) {
	old, wasSet := c.props.Get(key)
	c.props.Set(key, value)
	if c.element != nil {
		c.apply(key, value)
	}
	c.Changed.Dispatch(PropertyChange{Widget: c.self, Key: key, Old: old, New: value, WasSet: wasSet})
}

// Get returns a property.
func (c *Control) Get(key string) (string, bool) {
	return c.props.Get(key)
}

// Width returns the width of c as a CSS dimension. Unset or illegal
// widths are reported as `auto`.
func (c *Control) Width() css.DimenT {
	return c.dimen("width")
}

// Height returns the height of c as a CSS dimension. Unset or illegal
// heights are reported as `auto`.
func (c *Control) Height() css.DimenT {
	return c.dimen("height")
}

func (c *Control) dimen(key string) css.DimenT {
	v, ok := c.props.Get(key)
	if !ok {
		return css.Auto()
	}
	d, err := css.ParseDimen(v)
	if err != nil {
		return css.Auto()
	}
	return d
}

func (c *Control) applyAll() {
	for _, k := range c.props.Keys() {
		v, _ := c.props.Get(k)
		c.apply(k, v)
	}
}

// apply writes a property to the backing element. Geometry properties go
// to the inline style, `text` to the text content, `visible` and
// `enabled` to the corresponding HTML attributes; everything else is
// written to an attribute of the same name.
func (c *Control) apply(key, value string) {
	el := c.element
	if a, ok := c.self.(PropertyApplier); ok && a.ApplyProperty(el, key, value) {
		return
	}
	switch {
	case style.IsGeometry(key):
		if style.Property(value) == style.InitialValue(key) || value == "" {
			el.RemoveStyle(key)
			return
		}
		if d, err := css.ParseDimen(value); err == nil {
			value = d.String()
		} else {
			tracer().Debugf("%v: geometry property %s=%q is not a dimension", c, key, value)
		}
		el.SetStyle(key, style.Property(value))
	case key == "style":
		c.applyStyle(value)
	case key == "text":
		el.SetText(value)
	case key == "visible":
		if isFalse(value) {
			_ = el.SetAttribute("hidden", "")
		} else {
			el.RemoveAttribute("hidden")
		}
	case key == "enabled":
		if isFalse(value) {
			_ = el.SetAttribute("aria-disabled", "true")
		} else {
			el.RemoveAttribute("aria-disabled")
		}
	default:
		if err := el.SetAttribute(key, value); err != nil {
			tracer().Errorf("%v: cannot apply property %s: %v", c, key, err)
		}
	}
}

// applyStyle replaces the non-geometry declarations of the backing
// element. Geometry declarations are owned by the geometry properties.
func (c *Control) applyStyle(value string) {
	decl, err := style.ParseInline(value)
	if err != nil {
		tracer().Errorf("%v: cannot apply style: %v", c, err)
		return
	}
	el := c.element
	for _, kv := range el.Styles().Properties() {
		if !style.IsGeometry(kv.Key) {
			el.RemoveStyle(kv.Key)
		}
	}
	for _, kv := range decl.Properties() {
		if !style.IsGeometry(kv.Key) {
			el.SetStyle(kv.Key, kv.Value)
		}
	}
}

func isFalse(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "false", "no", "off", "0":
		return true
	}
	return false
}

// --- Events ----------------------------------------------------------------

// Channel returns the pointer event channel with a given name, or nil if
// the widget does not expose such a channel.
func (c *Control) Channel(name string) *event.Channel[*EventArgs] {
	return c.channels[name]
}

// ChannelNames returns the names of the exposed pointer event channels.
func (c *Control) ChannelNames() []string {
	names := make([]string, 0, len(c.channels))
	for _, n := range PointerChannels {
		if _, ok := c.channels[n]; ok {
			names = append(names, n)
		}
	}
	return names
}

func (c *Control) clearChannels() {
	for _, ch := range c.channels {
		ch.Clear()
	}
	c.Changed.Clear()
}

// --- Widget tree -----------------------------------------------------------

// Parent returns the parent widget or nil.
func (c *Control) Parent() Widget {
	p := c.node.Parent()
	if p == nil {
		return nil
	}
	return p.Payload.self
}

// Children returns the child widgets in order.
func (c *Control) Children() []Widget {
	children := c.node.Children()
	r := make([]Widget, len(children))
	for i, ch := range children {
		r[i] = ch.Payload.self
	}
	return r
}

// TreeNode returns the node of c in the widget tree.
func (c *Control) TreeNode() *tree.Node[*Control] {
	return &c.node
}

// AppendChild appends w as the last child of c. If w is the child of
// another widget, it is removed from there first. If c is attached, w is
// attached into c's container element.
func (c *Control) AppendChild(w Widget) error {
	if w == nil {
		return ErrNotAWidget
	}
	ch := w.AsControl()
	if ch.self == nil {
		return ErrUninitiated
	}
	if ch == c || ch.node.IsAncestorOf(&c.node) {
		return fmt.Errorf("cannot append %v to %v: would create a cycle", ch, c)
	}
	if p := ch.Parent(); p != nil {
		p.AsControl().RemoveChild(w)
	} else if ch.IsAttached() {
		ch.Detach()
	}
	c.node.AddChild(&ch.node)
	if c.element != nil {
		return ch.Attach(c.element.Container())
	}
	return nil
}

// RemoveChild removes w from the children of c, detaching it if it is
// attached. It returns false if w is not a child of c.
func (c *Control) RemoveChild(w Widget) bool {
	if w == nil {
		return false
	}
	ch := w.AsControl()
	if ch.node.Parent() != &c.node {
		return false
	}
	if ch.IsAttached() {
		ch.Detach()
	}
	ch.node.Isolate()
	return true
}

// --- Attachment ------------------------------------------------------------

// IsAttached is true if c currently owns a backing element.
func (c *Control) IsAttached() bool {
	return c.element != nil
}

// Element returns the backing element of c, or nil if c is detached.
func (c *Control) Element() *dom.Element {
	return c.element
}

// Attach creates the backing element of c from its template, applies all
// properties and appends it to parent, which usually is the container
// element of the parent widget. Then all children are attached
// into the container of the new element, in order.
// If attaching a child fails, c is detached again.
func (c *Control) Attach(parent *dom.Element) error {
	if c.self == nil {
		return ErrUninitiated
	}
	if c.element != nil {
		return fmt.Errorf("%v: %w", c, ErrAttached)
	}
	if parent == nil {
		return fmt.Errorf("%v: %w", c, ErrNoParent)
	}
	el := c.self.Template()
	if el == nil {
		return fmt.Errorf("%v: template returned no element", c)
	}
	el.SetOwner(c.self)
	c.element = el
	c.applyAll()
	parent.AppendChild(el)
	tracer().Debugf("attached %v to %v", c, parent)
	for _, ch := range c.Children() {
		if err := ch.AsControl().Attach(el.Container()); err != nil {
			c.Detach()
			return err
		}
	}
	return nil
}

// Detach releases the backing elements of c and all its descendants and
// removes every subscription from their event channels. Detaching a
// detached widget does nothing.
func (c *Control) Detach() {
	_ = tree.BottomUp(&c.node, func(n, _ *tree.Node[*Control], _ int) error {
		n.Payload.release()
		return nil
	})
}

func (c *Control) release() {
	if c.element == nil {
		return
	}
	c.element.Remove()
	c.element.SetOwner(nil)
	c.element = nil
	c.clearChannels()
	tracer().Debugf("detached %v", c)
}

// Destroy detaches c and removes it from its parent widget. The children
// of c are destroyed as well. All event handlers of c are removed, whether
// c has been attached or not.
func (c *Control) Destroy() {
	c.Detach()
	c.clearChannels()
	if p := c.Parent(); p != nil {
		p.AsControl().RemoveChild(c.self)
	}
	for _, ch := range c.Children() {
		ch.AsControl().Destroy()
	}
}

var _ Widget = (*Control)(nil)
