/*
Package markup builds widget trees from declarative markup.

Markup documents are XML-like. Tag names select a widget kind, attributes
set widget properties and child elements become child widgets:

	<Box width="50">
	    <Label id="greeting">Hello</Label>
	    <Box height="20"/>
	</Box>

Tag names are matched case-sensitively against a Registry, which maps
every tag to a constructor and a Parser. Registries are created and
populated explicitly by the application and handed to a Builder. The first
build seals the registry; registering kinds afterwards fails.

A build is all or nothing. If any node of a document cannot be resolved
or parsed, the builder tears down whatever it has constructed so far and
returns a single ParseError, identifying the offending tag and attribute.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package markup

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'xpui.markup'.
func tracer() tracing.Trace {
	return tracing.Select("xpui.markup")
}
