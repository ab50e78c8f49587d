package markup

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"

	"github.com/npillmayer/xpui/ui"
)

// RegisterStandard registers the standard widget kinds of package ui
// under the tags Box, Placeholder, Label and Button.
func RegisterStandard(r *Registry) error {
	return errors.Join(
		r.Register("Box", func() ui.Widget { return ui.NewBox() }, &AttrParser{}),
		r.Register("Placeholder", func() ui.Widget { return ui.NewPlaceholder() },
			&AttrParser{Leaf: true}),
		r.Register("Label", func() ui.Widget { return ui.NewLabel() },
			&AttrParser{Leaf: true, TextProperty: "text"}),
		r.Register("Button", func() ui.Widget { return ui.NewButton() },
			&AttrParser{Leaf: true, TextProperty: "text"}),
	)
}
