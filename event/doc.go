/*
Package event implements typed event channels.

A Channel[A] is a publish/subscribe object for events with arguments of
type A. Every channel is owned by exactly one widget, which exposes it by
name (e.g. "click"). Subscriptions are pairs of a handler and a context
object; they are invoked in the order they have been added.

	clicks := event.NewChannel[Args]("click")
	h := event.Func(func(ctx any, args Args) error {
	    ...
	})
	clicks.AddHandler(h, myContext)
	clicks.Dispatch(args)

Dispatch takes a snapshot of the subscriptions before invoking the first
handler. Handlers added during a dispatch will not be called until the
next dispatch, handlers removed during a dispatch are skipped if they have
not yet been reached.

Failing handlers do not interrupt a dispatch. Returned errors and recovered
panics are wrapped into a HandlerError and handed to the channel's
Reporter; the default reporter traces them as errors.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package event

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'xpui.event'.
func tracer() tracing.Trace {
	return tracing.Select("xpui.event")
}
