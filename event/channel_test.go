package event

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type args struct {
	N int
}

// recorder collects the names of invoked handlers.
type recorder struct {
	calls []string
}

func (r *recorder) handler(name string) Handler[args] {
	return Func(func(ctx any, a args) error {
		r.calls = append(r.calls, name)
		return nil
	})
}

func TestDispatchOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "xpui.event")
	defer teardown()
	//
	rec := &recorder{}
	ch := NewChannel[args]("click")
	ch.AddHandler(rec.handler("H1"), nil)
	ch.AddHandler(rec.handler("H2"), nil)
	ch.AddHandler(rec.handler("H3"), nil)
	ch.Dispatch(args{})
	assert.Equal(t, []string{"H1", "H2", "H3"}, rec.calls)
}

func TestContextIsPassed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "xpui.event")
	defer teardown()
	//
	type ctxT struct{ name string }
	c1, c2 := &ctxT{"C1"}, &ctxT{"C2"}
	var seen []string
	var argsSeen []args
	h := Func(func(ctx any, a args) error {
		seen = append(seen, ctx.(*ctxT).name)
		argsSeen = append(argsSeen, a)
		return nil
	})
	ch := NewChannel[args]("click")
	ch.AddHandler(h, c1)
	ch.AddHandler(h, c2)
	ch.Dispatch(args{N: 7})
	assert.Equal(t, []string{"C1", "C2"}, seen)
	assert.Equal(t, []args{{7}, {7}}, argsSeen)
}

func TestRemoveMatchesHandlerAndContext(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "xpui.event")
	defer teardown()
	//
	var seen []any
	h := Func(func(ctx any, a args) error {
		seen = append(seen, ctx)
		return nil
	})
	other := Func(func(ctx any, a args) error { return nil })
	ch := NewChannel[args]("click")
	ch.AddHandler(h, "a")
	ch.AddHandler(h, "b")
	ch.AddHandler(h, "a")
	assert.False(t, ch.RemoveHandler(h, "c"))
	assert.False(t, ch.RemoveHandler(other, "a"))
	assert.True(t, ch.RemoveHandler(h, "a")) // removes the first one only
	assert.Equal(t, 2, ch.Len())
	ch.Dispatch(args{})
	assert.Equal(t, []any{"b", "a"}, seen)
}

func TestRemovalDuringDispatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "xpui.event")
	defer teardown()
	//
	rec := &recorder{}
	ch := NewChannel[args]("click")
	h1 := rec.handler("H1")
	h3 := rec.handler("H3")
	h2 := Func(func(ctx any, a args) error {
		rec.calls = append(rec.calls, "H2")
		ch.RemoveHandler(h1, nil) // already invoked
		ch.RemoveHandler(h3, nil) // not yet reached => skipped
		return nil
	})
	ch.AddHandler(h1, nil)
	ch.AddHandler(h2, nil)
	ch.AddHandler(h3, nil)
	ch.Dispatch(args{})
	assert.Equal(t, []string{"H1", "H2"}, rec.calls)
	assert.Equal(t, 1, ch.Len())
}

func TestAddDuringDispatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "xpui.event")
	defer teardown()
	//
	rec := &recorder{}
	ch := NewChannel[args]("click")
	late := rec.handler("late")
	ch.AddHandler(Func(func(ctx any, a args) error {
		rec.calls = append(rec.calls, "first")
		ch.AddHandler(late, nil)
		return nil
	}), nil)
	ch.Dispatch(args{})
	assert.Equal(t, []string{"first"}, rec.calls)
	rec.calls = nil
	ch.Dispatch(args{})
	assert.Equal(t, []string{"first", "late"}, rec.calls)
}

func TestFailIsolation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "xpui.event")
	defer teardown()
	//
	var reported []*HandlerError
	rep := ReporterFunc(func(err *HandlerError) {
		reported = append(reported, err)
	})
	rec := &recorder{}
	boom := errors.New("boom")
	ch := NewChannel[args]("click", WithReporter(rep))
	ch.AddHandler(Func(func(ctx any, a args) error { return boom }), "ctx0")
	ch.AddHandler(Func(func(ctx any, a args) error { panic("argh") }), nil)
	ch.AddHandler(rec.handler("H3"), nil)
	ch.Dispatch(args{})
	assert.Equal(t, []string{"H3"}, rec.calls)
	require.Len(t, reported, 2)
	assert.ErrorIs(t, reported[0], boom)
	assert.Equal(t, "ctx0", reported[0].Context)
	assert.False(t, reported[0].IsPanic())
	assert.True(t, reported[1].IsPanic())
	assert.Equal(t, 1, reported[1].Index)
	assert.NotEmpty(t, reported[1].StackTrace)
	assert.True(t, strings.Contains(reported[1].Error(), "argh"))
}

func TestDispatchE(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "xpui.event")
	defer teardown()
	//
	boom := errors.New("boom")
	ch := NewChannel[args]("click", WithReporter(ReporterFunc(func(*HandlerError) {})))
	ok := Func(func(ctx any, a args) error { return nil })
	ch.AddHandler(ok, nil)
	assert.NoError(t, ch.DispatchE(args{}))
	//
	ch.AddHandler(Func(func(ctx any, a args) error { return boom }), nil)
	err := ch.DispatchE(args{})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	var herr *HandlerError
	require.True(t, errors.As(err, &herr))
	assert.Equal(t, "click", herr.Channel)
}

func TestDefaultReporter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "xpui.event")
	defer teardown()
	//
	count := 0
	SetDefaultReporter(ReporterFunc(func(*HandlerError) { count++ }))
	defer SetDefaultReporter(nil)
	ch := NewChannel[args]("x")
	ch.AddHandler(Func(func(ctx any, a args) error { return errors.New("e") }), nil)
	ch.Dispatch(args{})
	assert.Equal(t, 1, count)
}

func TestClear(t *testing.T) {
	rec := &recorder{}
	ch := NewChannel[args]("click")
	ch.AddHandler(Func(func(ctx any, a args) error {
		rec.calls = append(rec.calls, "clearing")
		ch.Clear()
		return nil
	}), nil)
	ch.AddHandler(rec.handler("never"), nil)
	ch.Dispatch(args{})
	assert.Equal(t, []string{"clearing"}, rec.calls)
	assert.Equal(t, 0, ch.Len())
	ch.AddHandler(nil, nil)
	assert.Equal(t, 0, ch.Len())
}

func TestIdentical(t *testing.T) {
	type point struct{ x, y int }
	p := &point{1, 2}
	s := []int{1}
	assert.True(t, identical(nil, nil))
	assert.False(t, identical(nil, p))
	assert.True(t, identical(p, p))
	assert.False(t, identical(p, &point{1, 2}))
	assert.True(t, identical(point{1, 2}, point{1, 2}))
	assert.True(t, identical(s, s))
	assert.False(t, identical(s, []int{1}))
	assert.False(t, identical(1, int64(1)))
	assert.True(t, identical("a", "a"))
}
