package css

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	kindMask      uint32 = 0x000f

	// Flags for content dependent dimensions
	DimenContentMax uint32 = 0x0010
	DimenContentMin uint32 = 0x0020
	DimenContentFit uint32 = 0x0030
	contentMask     uint32 = 0x00f0

	dimenEM      uint32 = 0x0100
	dimenEX      uint32 = 0x0200
	dimenCH      uint32 = 0x0300
	dimenREM     uint32 = 0x0400
	dimenVW      uint32 = 0x0500
	dimenVH      uint32 = 0x0600
	dimenVMIN    uint32 = 0x0700
	dimenVMAX    uint32 = 0x0800
	dimenPercent uint32 = 0x0900
	relativeMask uint32 = 0xff00
)

// pxPerBP is the number of CSS pixels per PDF big point (1px = 1/96in,
// 1bp = 1/72in).
const pxPerBP = 96.0 / 72.0

// DimenT is an option type for CSS dimensions.
type DimenT struct {
	d       dimen.DU
	percent percent.Percent
	flags   uint32
	value   float64 // numeric value as written
	unit    string  // unit as written, e.g. "px"
}

/*
type DimenT
	= Auto
	| Inherit
	| Initial
	| JustDimen dimen
	| Percentage Percent
	| ViewRel unit
	| FontRel unit
	| ContentRel Min N
	| ContentRel Max N
*/

// Auto creates a CSS dimension with value `auto`.
func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

// Inherit creates a CSS dimension with value `inherit`.
func Inherit() DimenT {
	return DimenT{flags: dimenInherit}
}

// Initial creates a CSS dimension with value `initial`.
func Initial() DimenT {
	return DimenT{flags: dimenInitial}
}

// JustDimen creates a CSS dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute, value: float64(x) / float64(dimen.BP), unit: "bp"}
}

// Pixels creates a CSS dimension with a fixed value of n CSS pixels.
func Pixels(n float64) DimenT {
	return DimenT{d: pxToDU(n), flags: dimenAbsolute, value: n, unit: "px"}
}

// Percentage creates a CSS dimension with a %-relative value.
func Percentage(n int) DimenT {
	return DimenT{percent: percent.FromInt(n), flags: dimenPercent, value: float64(n), unit: "%"}
}

func pxToDU(n float64) dimen.DU {
	return dimen.DU(n / pxPerBP * float64(dimen.BP))
}

// IsAuto is a predicate for dimensions of value `auto`.
func (d DimenT) IsAuto() bool {
	return d.flags&kindMask == dimenAuto
}

// IsAbsolute is a predicate for fixed dimensions.
func (d DimenT) IsAbsolute() bool {
	return d.flags&kindMask == dimenAbsolute
}

// IsPercent is a predicate for %-relative dimensions.
func (d DimenT) IsPercent() bool {
	return d.flags&relativeMask == dimenPercent
}

// IsNone is true for the zero value, i.e. an unset dimension.
func (d DimenT) IsNone() bool {
	return d.flags == dimenNone
}

// Unwrap returns the fixed value of a dimension. It returns 0 for
// dimensions which are not absolute.
func (d DimenT) Unwrap() dimen.DU {
	if d.IsAbsolute() {
		return d.d
	}
	return 0
}

// Px resolves a dimension to CSS pixels. ref is the reference length in
// pixels for %-values. Dimensions which cannot be resolved without layout
// context (auto, font- or viewport-relative) return false.
func (d DimenT) Px(ref float64) (float64, bool) {
	switch {
	case d.IsAbsolute():
		return float64(d.d) / float64(dimen.BP) * pxPerBP, true
	case d.IsPercent():
		return ref * d.value / 100, true
	}
	return 0, false
}

// String returns the CSS text for a dimension.
func (d DimenT) String() string {
	switch d.flags & kindMask {
	case dimenAuto:
		return "auto"
	case dimenInherit:
		return "inherit"
	case dimenInitial:
		return "initial"
	}
	switch d.flags & contentMask {
	case DimenContentMax:
		return "max-content"
	case DimenContentMin:
		return "min-content"
	case DimenContentFit:
		return "fit-content"
	}
	if d.IsNone() {
		return ""
	}
	return strconv.FormatFloat(d.value, 'f', -1, 64) + d.unit
}

// GoString is used for debugging output.
func (d DimenT) GoString() string {
	return fmt.Sprintf("DimenT{%s flags=%#04x}", d.String(), d.flags)
}

// ---------------------------------------------------------------------------

// Match starts a match expression for d.
//
//	switch m := d.Match(); m {
//	case m.Just(&du):
//	    …
//	}
func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

// Matcher is the state of a match expression on a DimenT.
type Matcher struct {
	dimen DimenT
}

// IsKind matches if the dimension is of the same kind as d.
func (m *Matcher) IsKind(d DimenT) *Matcher {
	switch {
	case (m.dimen.flags&kindMask) != 0 && (m.dimen.flags&kindMask) == (d.flags&kindMask):
		return m
	case (m.dimen.flags&relativeMask > 0) && (d.flags&relativeMask > 0):
		if (m.dimen.flags&relativeMask == dimenPercent) != (d.flags&relativeMask == dimenPercent) {
			return nil
		}
		return m
	case (m.dimen.flags&contentMask > 0) && (d.flags&contentMask > 0):
		return m
	}
	return nil
}

// Just matches fixed dimensions and extracts the value into du.
func (m *Matcher) Just(du *dimen.DU) *Matcher {
	if m.dimen.IsAbsolute() {
		if du != nil {
			*du = m.dimen.d
		}
		return m
	}
	return nil
}

// Percentage matches %-relative dimensions and extracts the value into p.
func (m *Matcher) Percentage(p *percent.Percent) *Matcher {
	if m.dimen.IsPercent() {
		if p != nil {
			*p = m.dimen.percent
		}
		return m
	}
	return nil
}

// --- Expression matching ---------------------------------------------------

// DimenPatterns holds result values for the kinds of a dimension.
type DimenPatterns[T any] struct {
	Auto    T
	Inherit T
	Initial T
	Just    T
	Percent T
	Default T
}

// DimenPattern starts a pattern expression resulting in a value of type T.
func DimenPattern[T any](d DimenT) *MatchExpr[T] {
	return &MatchExpr[T]{dimen: d}
}

// MatchExpr is a pattern expression on a DimenT.
type MatchExpr[T any] struct {
	dimen DimenT
}

// OneOf selects the pattern value matching the kind of the dimension.
func (m *MatchExpr[T]) OneOf(patterns DimenPatterns[T]) T {
	switch m.dimen.flags & kindMask {
	case dimenAuto:
		return patterns.Auto
	case dimenAbsolute:
		return patterns.Just
	case dimenInitial:
		return patterns.Initial
	case dimenInherit:
		return patterns.Inherit
	}
	if m.dimen.IsPercent() {
		return patterns.Percent
	}
	return patterns.Default
}

// With extracts the fixed value of the dimension into du.
func (m *MatchExpr[T]) With(du *dimen.DU) *MatchExpr[T] {
	*du = m.dimen.d
	return m
}

// Const returns x.
func (m *MatchExpr[T]) Const(x T) T {
	return x
}
