package markup

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/npillmayer/xpui/ui"
)

// Constructor creates a new, uninitialized-by-markup widget. Constructors
// take no arguments; all configuration happens after construction.
type Constructor func() ui.Widget

// Entry is the registration of a widget kind.
type Entry struct {
	Tag    string
	New    Constructor
	Parser Parser
}

// Registry maps tag names to widget kinds.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Entry
	sealed  bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// Register stores a constructor and a parser for a tag. Registering a tag
// a second time replaces the previous entry. If parser is nil, a default
// AttrParser is used.
// After the registry has been sealed, Register fails with ErrRegistrySealed.
func (r *Registry) Register(tag string, ctor Constructor, parser Parser) error {
	if tag == "" || ctor == nil {
		return errors.New("registry: tag and constructor are required")
	}
	if parser == nil {
		parser = &AttrParser{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sealed {
		return fmt.Errorf("cannot register <%s>: %w", tag, ErrRegistrySealed)
	}
	if _, ok := r.entries[tag]; ok {
		tracer().Infof("registry: replacing entry for <%s>", tag)
	}
	r.entries[tag] = Entry{Tag: tag, New: ctor, Parser: parser}
	return nil
}

// MustRegister is like Register, but panics on failure. It is intended for
// the initialization phase of applications.
func (r *Registry) MustRegister(tag string, ctor Constructor, parser Parser) {
	if err := r.Register(tag, ctor, parser); err != nil {
		panic(err)
	}
}

// Lookup returns the entry for a tag. Tags are matched case-sensitively.
// If no entry exists, a *LookupError is returned.
func (r *Registry) Lookup(tag string) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[tag]
	if !ok {
		return Entry{}, &LookupError{Tag: tag}
	}
	return e, nil
}

// Tags returns the registered tags in lexical order.
func (r *Registry) Tags() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tags := make([]string, 0, len(r.entries))
	for t := range r.entries {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

// Seal ends the registration phase.
func (r *Registry) Seal() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.sealed {
		tracer().Debugf("registry sealed with %d entries", len(r.entries))
	}
	r.sealed = true
}

// IsSealed is true after Seal has been called.
func (r *Registry) IsSealed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sealed
}
