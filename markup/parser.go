package markup

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/xpui/css"
	"github.com/npillmayer/xpui/dom/style"
	"github.com/npillmayer/xpui/ui"
)

// ParseOptions are handed to parsers by the builder.
type ParseOptions struct {
	// Strict rejects attributes which do not correspond to a property of
	// the widget.
	Strict bool
}

// Parser applies the attributes, text and children of a markup node to a
// freshly constructed widget. The builder calls Apply after the widget's
// defaults have been set and before any child is built.
type Parser interface {
	Apply(w ui.Widget, n *Node, opts ParseOptions) error
}

// ParserFunc adapts a function to interface Parser.
type ParserFunc func(w ui.Widget, n *Node, opts ParseOptions) error

// Apply calls f(w, n, opts).
func (f ParserFunc) Apply(w ui.Widget, n *Node, opts ParseOptions) error {
	return f(w, n, opts)
}

// AttrHandler handles a single attribute.
type AttrHandler func(w ui.Widget, value string) error

// AttrParser is the standard parser. It maps attributes 1:1 onto widget
// properties, in document order.
//
// Attribute `style` is parsed as a list of CSS declarations. Geometry
// declarations become properties and have to be valid dimensions; other
// declarations are ignored (rejected in strict mode).
type AttrParser struct {
	// Handlers take over attributes with custom semantics.
	Handlers map[string]AttrHandler
	// Allowed lists additional attributes accepted in strict mode. Without
	// it, strict mode accepts the properties present after setting defaults,
	// plus `id` and `class`.
	Allowed []string
	// Leaf kinds do not accept child nodes.
	Leaf bool
	// TextProperty receives the text content of a node. If empty, text
	// content is rejected.
	TextProperty string
}

// Apply is part of interface Parser.
func (p *AttrParser) Apply(w ui.Widget, n *Node, opts ParseOptions) error {
	c := w.AsControl()
	for _, a := range n.Attrs {
		if h, ok := p.Handlers[a.Name]; ok {
			if err := h(w, a.Value); err != nil {
				return attrError(n, a.Name, err)
			}
			continue
		}
		if a.Name == "style" {
			if err := p.applyStyle(c, a.Value, opts); err != nil {
				return attrError(n, a.Name, err)
			}
			continue
		}
		if opts.Strict && !p.allows(c, a.Name) {
			return attrError(n, a.Name, ErrUnknownAttribute)
		}
		tracer().Debugf("<%s>: %s = %q", n.Tag, a.Name, a.Value)
		c.Set(a.Name, a.Value)
	}
	if n.Text != "" {
		if p.TextProperty == "" {
			return &ParseError{Tag: n.Tag, Line: n.Line, Err: ErrUnexpectedText}
		}
		c.Set(p.TextProperty, n.Text)
	}
	if p.Leaf && len(n.Children) > 0 {
		return &ParseError{Tag: n.Tag, Line: n.Line, Err: ErrUnexpectedChildren}
	}
	return nil
}

func (p *AttrParser) allows(c *ui.Control, name string) bool {
	if name == "id" || name == "class" {
		return true
	}
	if _, ok := c.Get(name); ok {
		return true
	}
	for _, a := range p.Allowed {
		if a == name {
			return true
		}
	}
	return false
}

func (p *AttrParser) applyStyle(c *ui.Control, value string, opts ParseOptions) error {
	decl, err := style.ParseInline(value)
	if err != nil {
		return err
	}
	for _, kv := range decl.Properties() {
		if !style.IsGeometry(kv.Key) {
			if opts.Strict {
				return fmt.Errorf("style property %q: %w", kv.Key, ErrUnknownAttribute)
			}
			tracer().Infof("ignoring non-geometry style property %q", kv.Key)
			continue
		}
		if _, err := css.ParseDimen(kv.Value.String()); err != nil {
			return fmt.Errorf("style property %q: %w", kv.Key, err)
		}
		c.Set(kv.Key, kv.Value.String())
	}
	return nil
}

var _ Parser = (*AttrParser)(nil)
