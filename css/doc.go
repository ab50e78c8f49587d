/*
Package css provides values for CSS-like geometry properties of widgets.

Geometry properties of widgets (width, height, left, top, …) may be set
as plain strings at any time. Clients needing a numeric interpretation
convert them to DimenT, an option type for dimensions:

	d, err := css.ParseDimen("50px")

DimenT keeps the original numeric value and unit, so a dimension converted
from a property string renders back to the same CSS text.

Status

This is a first draft. The set of relative units is incomplete.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'xpui.dom'.
func tracer() tracing.Trace {
	return tracing.Select("xpui.dom")
}
