package css

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/tyse/core/dimen"
)

// ErrIllegalDimension is wrapped by errors of ParseDimen.
var ErrIllegalDimension = errors.New("illegal dimension")

// Length of absolute units in big points.
var absoluteUnits = map[string]float64{
	"px": 1 / pxPerBP,
	"bp": 1,
	"pt": 72.0 / 72.27,
	"pc": 12 * 72.0 / 72.27,
	"in": 72,
	"cm": 72 / 2.54,
	"mm": 72 / 25.4,
}

var relativeUnits = map[string]uint32{
	"em":   dimenEM,
	"ex":   dimenEX,
	"ch":   dimenCH,
	"rem":  dimenREM,
	"vw":   dimenVW,
	"vh":   dimenVH,
	"vmin": dimenVMIN,
	"vmax": dimenVMAX,
}

// ParseDimen converts a property string to a dimension.
// Accepted are the keywords auto, inherit, initial, min-content,
// max-content and fit-content, plain numbers (taken as pixels),
// numbers with an absolute unit (px, bp, pt, pc, in, cm, mm), numbers with
// a font- or viewport-relative unit (em, ex, ch, rem, vw, vh, vmin, vmax)
// and percentages.
func ParseDimen(s string) (DimenT, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "":
		return DimenT{}, fmt.Errorf("%w: empty string", ErrIllegalDimension)
	case "auto":
		return Auto(), nil
	case "inherit":
		return Inherit(), nil
	case "initial":
		return Initial(), nil
	case "max-content":
		return DimenT{flags: DimenContentMax}, nil
	case "min-content":
		return DimenT{flags: DimenContentMin}, nil
	case "fit-content":
		return DimenT{flags: DimenContentFit}, nil
	}
	num, unit := splitUnit(s)
	v, err := strconv.ParseFloat(num, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return DimenT{}, fmt.Errorf("%w: %q", ErrIllegalDimension, s)
	}
	if unit == "" {
		unit = "px"
	}
	if unit == "%" {
		d := Percentage(int(math.Round(v)))
		d.value = v
		return d, nil
	}
	if bp, ok := absoluteUnits[unit]; ok {
		du := dimen.DU(math.Round(v * bp * float64(dimen.BP)))
		return DimenT{d: du, flags: dimenAbsolute, value: v, unit: unit}, nil
	}
	if flag, ok := relativeUnits[unit]; ok {
		return DimenT{flags: flag, value: v, unit: unit}, nil
	}
	tracer().Debugf("unknown unit %q in dimension %q", unit, s)
	return DimenT{}, fmt.Errorf("%w: unknown unit in %q", ErrIllegalDimension, s)
}

// MustParseDimen is like ParseDimen, but panics on illegal input.
// It is intended for tests and for constant widget defaults.
func MustParseDimen(s string) DimenT {
	d, err := ParseDimen(s)
	if err != nil {
		panic(err)
	}
	return d
}

// splitUnit splits "12.5px" into "12.5" and "px".
func splitUnit(s string) (string, string) {
	i := len(s)
	for i > 0 {
		c := s[i-1]
		if c >= 'a' && c <= 'z' || c == '%' {
			i--
			continue
		}
		break
	}
	return s[:i], s[i:]
}
