package ui

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"
)

// Props is the property map of a widget. Keys keep the order in which they
// have first been set, which is the order properties are applied to a
// backing element.
type Props struct {
	keys   []string
	values map[string]string
}

// NewProps creates an empty property map.
func NewProps() *Props {
	return &Props{values: make(map[string]string)}
}

// Set a property. Overwrites an existing value in place.
func (p *Props) Set(key, value string) {
	if p.values == nil {
		p.values = make(map[string]string)
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// Get a property.
func (p *Props) Get(key string) (string, bool) {
	if p == nil {
		return "", false
	}
	v, ok := p.values[key]
	return v, ok
}

// Delete removes a property. It returns false if key was not set.
func (p *Props) Delete(key string) bool {
	if _, ok := p.values[key]; !ok {
		return false
	}
	delete(p.values, key)
	for i, k := range p.keys {
		if k == key {
			p.keys = append(p.keys[:i], p.keys[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of properties.
func (p *Props) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Keys returns the property keys in order.
func (p *Props) Keys() []string {
	if p == nil {
		return nil
	}
	keys := make([]string, len(p.keys))
	copy(keys, p.keys)
	return keys
}

// Map returns a copy of the properties as a map.
func (p *Props) Map() map[string]string {
	m := make(map[string]string, p.Len())
	if p == nil {
		return m
	}
	for k, v := range p.values {
		m[k] = v
	}
	return m
}

// Clone returns a copy of p.
func (p *Props) Clone() *Props {
	c := NewProps()
	for _, k := range p.Keys() {
		c.Set(k, p.values[k])
	}
	return c
}

func (p *Props) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, k := range p.Keys() {
		if i > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%s=%q", k, p.values[k])
	}
	b.WriteString("}")
	return b.String()
}

// PropertyChange is the argument of events on a widget's Changed channel.
type PropertyChange struct {
	Widget   Widget
	Key      string
	Old, New string
	WasSet   bool // false if the property has not been set before
}
