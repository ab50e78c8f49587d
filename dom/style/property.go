/*
Package style holds inline style declarations of visual elements.

Widgets do not take part in a cascade of style sheets. Their geometry
properties are written to the `style` attribute of their backing element
as a list of declarations:

	width: 50px; height: 20px

Declarations keep the order in which they have first been set, so that
rendering an element is deterministic.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'xpui.dom'
func tracer() tracing.Trace {
	return tracing.Select("xpui.dom")
}

// Property is a raw value for a CSS property. For example, with
//
//	width: 50px
//
// a property value of "50px" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient helpers.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritence-type "initial"
func (p Property) IsInitial() bool {
	return p == "initial"
}

// IsInherit denotes if a property is of inheritence-type "inherit"
func (p Property) IsInherit() bool {
	return p == "inherit"
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return strings.TrimSpace(string(p)) == ""
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

// isGeometry lists the geometry properties of widgets together with
// their initial values.
var isGeometry = map[string]Property{
	"width":      "auto",
	"height":     "auto",
	"min-width":  "auto",
	"min-height": "auto",
	"max-width":  "none",
	"max-height": "none",
	"top":        "auto",
	"right":      "auto",
	"bottom":     "auto",
	"left":       "auto",
}

// IsGeometry returns true if key names a geometry property, i.e. a
// property which is written to the inline style of a backing element.
func IsGeometry(key string) bool {
	_, ok := isGeometry[key]
	return ok
}

// InitialValue returns the initial value of a geometry property, or
// NullStyle for other keys.
func InitialValue(key string) Property {
	return isGeometry[key]
}
