package style

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

	"github.com/aymerick/douceur/parser"
)

// Declarations is an ordered set of style properties. nil is a legal
// (empty) set of declarations for read access.
type Declarations struct {
	props []KeyValue
}

// NewDeclarations returns a new empty set of declarations.
func NewDeclarations() *Declarations {
	return &Declarations{}
}

// Len returns the number of declarations.
func (decl *Declarations) Len() int {
	if decl == nil {
		return 0
	}
	return len(decl.props)
}

// Get a property's value.
func (decl *Declarations) Get(key string) (Property, bool) {
	if decl == nil {
		return NullStyle, false
	}
	for _, kv := range decl.props {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return NullStyle, false
}

// Set a property's value. Overwrites an existing value, if present, in
// place. Setting an empty value removes the property.
func (decl *Declarations) Set(key string, p Property) {
	key = strings.ToLower(strings.TrimSpace(key))
	if p.IsEmpty() {
		decl.Remove(key)
		return
	}
	p = Property(strings.TrimSpace(string(p)))
	for i, kv := range decl.props {
		if kv.Key == key {
			decl.props[i].Value = p
			return
		}
	}
	decl.props = append(decl.props, KeyValue{Key: key, Value: p})
}

// Remove deletes a property. It returns false if key was not set.
func (decl *Declarations) Remove(key string) bool {
	for i, kv := range decl.props {
		if kv.Key == key {
			decl.props = append(decl.props[:i], decl.props[i+1:]...)
			return true
		}
	}
	return false
}

// Properties returns a copy of all declarations in order.
func (decl *Declarations) Properties() []KeyValue {
	if decl == nil {
		return nil
	}
	r := make([]KeyValue, len(decl.props))
	copy(r, decl.props)
	return r
}

// String formats the declarations as the value of a `style` attribute.
func (decl *Declarations) String() string {
	if decl.Len() == 0 {
		return ""
	}
	var b strings.Builder
	for i, kv := range decl.props {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(kv.Key)
		b.WriteString(": ")
		b.WriteString(kv.Value.String())
	}
	return b.String()
}

// ErrEmptyValue is wrapped by errors of ParseInline for declarations
// without a value.
var ErrEmptyValue = errors.New("style declaration without value")

// ParseInline parses the value of a `style` attribute, e.g.
//
//	"width: 50px; color: red"
//
// and returns the declarations in document order. Later declarations of
// the same property override earlier ones.
func ParseInline(s string) (*Declarations, error) {
	decl := NewDeclarations()
	text := strings.TrimSpace(s)
	if text == "" {
		return decl, nil
	}
	// douceur assigns a value only when a declaration is terminated
	if !strings.HasSuffix(text, ";") {
		text += ";"
	}
	parsed, err := parser.ParseDeclarations(text)
	if err != nil {
		return nil, fmt.Errorf("cannot parse inline style %q: %w", s, err)
	}
	for _, d := range parsed {
		if strings.TrimSpace(d.Value) == "" {
			return nil, fmt.Errorf("cannot parse inline style %q: %w: %q",
				s, ErrEmptyValue, d.Property)
		}
		tracer().Debugf("inline style: %s = %s", d.Property, d.Value)
		decl.Set(d.Property, Property(d.Value))
	}
	return decl, nil
}
