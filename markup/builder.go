package markup

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sort"
	"sync"

	"github.com/npillmayer/xpui/dom"
	"github.com/npillmayer/xpui/ui"
)

// Instances maps application-defined keys to widgets. The builder stores
// every widget of a successfully built document whose node carries an
// `id` attribute.
type Instances struct {
	mu sync.RWMutex
	m  map[string]ui.Widget
}

// NewInstances creates an empty instance store.
func NewInstances() *Instances {
	return &Instances{m: make(map[string]ui.Widget)}
}

// Put stores a widget under key, replacing an existing one.
func (in *Instances) Put(key string, w ui.Widget) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.m[key] = w
}

// Get returns the widget stored under key.
func (in *Instances) Get(key string) (ui.Widget, bool) {
	in.mu.RLock()
	defer in.mu.RUnlock()
	w, ok := in.m[key]
	return w, ok
}

// Remove deletes a key.
func (in *Instances) Remove(key string) {
	in.mu.Lock()
	defer in.mu.Unlock()
	delete(in.m, key)
}

// Keys returns all keys in lexical order.
func (in *Instances) Keys() []string {
	in.mu.RLock()
	defer in.mu.RUnlock()
	keys := make([]string, 0, len(in.m))
	for k := range in.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// --- Builder ---------------------------------------------------------------

// Builder constructs widget trees from markup.
type Builder struct {
	registry  *Registry
	instances *Instances
	opts      ParseOptions
}

// Option configures a builder.
type Option func(*Builder)

// Strict makes the builder reject unknown attributes.
func Strict(strict bool) Option {
	return func(b *Builder) {
		b.opts.Strict = strict
	}
}

// WithInstances sets the instance store of a builder.
func WithInstances(in *Instances) Option {
	return func(b *Builder) {
		b.instances = in
	}
}

// NewBuilder creates a builder for a registry.
func NewBuilder(r *Registry, opts ...Option) *Builder {
	b := &Builder{registry: r}
	for _, opt := range opts {
		opt(b)
	}
	if b.instances == nil {
		b.instances = NewInstances()
	}
	return b
}

// Instances returns the instance store of b.
func (b *Builder) Instances() *Instances {
	return b.instances
}

// built is a widget constructed from a node, collected for rollback and
// instance registration.
type built struct {
	w ui.Widget
	n *Node
}

// Build constructs a detached widget tree from a markup node. Children are
// appended in document order.
//
// If any node fails, everything constructed so far is destroyed and a
// *ParseError is returned.
func (b *Builder) Build(n *Node) (ui.Widget, error) {
	w, all, err := b.build(n)
	if err != nil {
		return nil, err
	}
	b.register(all)
	return w, nil
}

// BuildInto constructs a widget tree and attaches it to parent. Parents
// are attached before their children. If attachment fails, the tree is
// destroyed.
func (b *Builder) BuildInto(parent *dom.Element, n *Node) (ui.Widget, error) {
	if n == nil {
		return nil, ErrNilNode
	}
	if parent == nil {
		return nil, &ParseError{Tag: n.Tag, Line: n.Line, Err: ui.ErrNoParent}
	}
	w, all, err := b.build(n)
	if err != nil {
		return nil, err
	}
	if err := w.AsControl().Attach(parent); err != nil {
		w.AsControl().Destroy()
		tracer().Errorf("cannot attach <%s>: %v", n.Tag, err)
		return nil, asParseError(n, err)
	}
	b.register(all)
	return w, nil
}

// BuildDocument constructs a widget tree and attaches it into the body of
// doc.
func (b *Builder) BuildDocument(doc *dom.Document, n *Node) (ui.Widget, error) {
	return b.BuildInto(doc.Body(), n)
}

func (b *Builder) build(n *Node) (ui.Widget, []built, error) {
	if n == nil {
		return nil, nil, ErrNilNode
	}
	b.registry.Seal()
	var all []built
	w, err := b.construct(n, &all)
	if err != nil {
		for _, x := range all {
			x.w.AsControl().Destroy()
		}
		tracer().Errorf("build of <%s> failed: %v", n.Tag, err)
		return nil, nil, err
	}
	return w, all, nil
}

func (b *Builder) construct(n *Node, all *[]built) (ui.Widget, error) {
	entry, err := b.registry.Lookup(n.Tag)
	if err != nil {
		return nil, &ParseError{Tag: n.Tag, Line: n.Line, Err: err}
	}
	w := entry.New()
	if w == nil || w.AsControl().Widget() == nil {
		return nil, &ParseError{Tag: n.Tag, Line: n.Line,
			Err: fmt.Errorf("constructor returned an uninitialized widget: %w", ui.ErrUninitiated)}
	}
	*all = append(*all, built{w: w, n: n})
	c := w.AsControl()
	c.SetDefaults()
	if err := entry.Parser.Apply(w, n, b.opts); err != nil {
		return nil, asParseError(n, err)
	}
	tracer().Debugf("constructed %v from <%s>", c, n.Tag)
	for _, chn := range n.Children {
		ch, err := b.construct(chn, all)
		if err != nil {
			return nil, err
		}
		if err := c.AppendChild(ch); err != nil {
			return nil, asParseError(chn, err)
		}
	}
	return w, nil
}

func (b *Builder) register(all []built) {
	for _, x := range all {
		if id, ok := x.n.Attr("id"); ok && id != "" {
			b.instances.Put(id, x.w)
		}
	}
}
