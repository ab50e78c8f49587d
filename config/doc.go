/*
Package config reads the configuration of xpui applications.

Configuration files are YAML. Nested maps are flattened to dotted keys,
so that

	tracing:
	  adapter: go
	tracelevel:
	  root: Info
	  xpui.markup: Debug
	markup:
	  strict: true

yields the keys `tracing.adapter`, `tracelevel.root`, `tracelevel.xpui.markup`
and `markup.strict`. A Conf implements schuko.Configuration and may be used
to set up tracing with package schuko/tracing/trace2go.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package config

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'xpui.config'.
func tracer() tracing.Trace {
	return tracing.Select("xpui.config")
}
