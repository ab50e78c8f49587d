package event

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"
)

// Handler receives events with arguments of type A. ctx is the context
// object the handler has been subscribed with.
type Handler[A any] interface {
	HandleEvent(ctx any, args A) error
}

// funcHandler wraps a function. Functions are not comparable in Go, so
// handlers created by Func are identified by the address of the wrapper.
type funcHandler[A any] struct {
	fn func(ctx any, args A) error
}

func (h *funcHandler[A]) HandleEvent(ctx any, args A) error {
	return h.fn(ctx, args)
}

// Func creates a handler from a function. Every call to Func returns a
// handler with a new identity; clients keep the result for removing the
// subscription later.
func Func[A any](fn func(ctx any, args A) error) Handler[A] {
	return &funcHandler[A]{fn: fn}
}

// subscription is a (handler, context) pair. removed is set when the
// subscription is removed while a dispatch may still hold it in a snapshot.
type subscription[A any] struct {
	handler Handler[A]
	ctx     any
	removed atomic.Bool
}

// Channel is a typed publish/subscribe object.
type Channel[A any] struct {
	name     string
	reporter Reporter
	mu       sync.Mutex
	subs     []*subscription[A]
}

// Option configures a channel.
type Option func(*options)

type options struct {
	reporter Reporter
}

// WithReporter sets a reporter for handler failures of a channel.
func WithReporter(r Reporter) Option {
	return func(o *options) {
		o.reporter = r
	}
}

// NewChannel creates a channel with a given name.
func NewChannel[A any](name string, opts ...Option) *Channel[A] {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	return &Channel[A]{name: name, reporter: o.reporter}
}

// Name returns the name of the channel.
func (ch *Channel[A]) Name() string {
	return ch.name
}

func (ch *Channel[A]) String() string {
	return fmt.Sprintf("Channel[%s](#h=%d)", ch.name, ch.Len())
}

// AddHandler appends a subscription of handler h with context object ctx.
// Adding the same pair twice results in two subscriptions.
func (ch *Channel[A]) AddHandler(h Handler[A], ctx any) {
	if h == nil {
		tracer().Errorf("channel %q: ignoring nil handler", ch.name)
		return
	}
	ch.mu.Lock()
	defer ch.mu.Unlock()
	ch.subs = append(ch.subs, &subscription[A]{handler: h, ctx: ctx})
}

// RemoveHandler removes the first subscription matching both the identity
// of h and of ctx. It returns false if no subscription matched; this is not
// an error.
func (ch *Channel[A]) RemoveHandler(h Handler[A], ctx any) bool {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	for i, s := range ch.subs {
		if identical(s.handler, h) && identical(s.ctx, ctx) {
			s.removed.Store(true)
			ch.subs = append(ch.subs[:i:i], ch.subs[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of subscriptions.
func (ch *Channel[A]) Len() int {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	return len(ch.subs)
}

// Clear removes all subscriptions. A dispatch in progress will not call
// any handler it has not yet reached.
func (ch *Channel[A]) Clear() {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	for _, s := range ch.subs {
		s.removed.Store(true)
	}
	ch.subs = nil
}

// Dispatch invokes every subscribed handler with args, in subscription
// order. Handler failures are reported, never returned.
func (ch *Channel[A]) Dispatch(args A) {
	ch.dispatch(args, nil)
}

// DispatchE is like Dispatch, but returns the failures of all handlers
// joined into one error. Failures are reported as well.
// It returns nil if every handler succeeded.
func (ch *Channel[A]) DispatchE(args A) error {
	var errs []error
	ch.dispatch(args, func(herr *HandlerError) {
		errs = append(errs, herr)
	})
	return errors.Join(errs...)
}

func (ch *Channel[A]) dispatch(args A, collect func(*HandlerError)) {
	ch.mu.Lock()
	snapshot := make([]*subscription[A], len(ch.subs))
	copy(snapshot, ch.subs)
	ch.mu.Unlock()
	tracer().Debugf("dispatching to %d handler(s) of channel %q", len(snapshot), ch.name)
	for i, s := range snapshot {
		if s.removed.Load() {
			continue
		}
		if herr := ch.invoke(i, s, args); herr != nil {
			ch.report(herr)
			if collect != nil {
				collect(herr)
			}
		}
	}
}

func (ch *Channel[A]) invoke(i int, s *subscription[A], args A) (herr *HandlerError) {
	defer func() {
		if r := recover(); r != nil {
			herr = &HandlerError{
				Channel:    ch.name,
				Index:      i,
				Context:    s.ctx,
				Recovered:  r,
				StackTrace: captureStack(),
			}
			if err, ok := r.(error); ok {
				herr.Err = err
			}
		}
	}()
	if err := s.handler.HandleEvent(s.ctx, args); err != nil {
		return &HandlerError{Channel: ch.name, Index: i, Context: s.ctx, Err: err}
	}
	return nil
}

func (ch *Channel[A]) report(herr *HandlerError) {
	r := ch.reporter
	if r == nil {
		r = getDefaultReporter()
	}
	r.ReportHandlerError(herr)
}

// identical compares two values by identity: pointer-like values by
// address, comparable values with ==. Values of non-comparable types are
// never identical.
func identical(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.UnsafePointer:
		if va.Kind() == reflect.Slice && va.Len() != vb.Len() {
			return false
		}
		return va.Pointer() == vb.Pointer()
	}
	if va.Comparable() {
		return va.Equal(vb)
	}
	return false
}
