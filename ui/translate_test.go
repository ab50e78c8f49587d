package ui

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/xpui/dom"
	"github.com/npillmayer/xpui/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEventArgsOnDetachedWidget(t *testing.T) {
	b := NewBox()
	_, err := CreateEventArgs(b, PointerEvent{Type: "click", PageX: 1, PageY: 2})
	var derr *DetachedWidgetError
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, Widget(b), derr.Widget)
	_, err = CreateEventArgs(nil, PointerEvent{})
	assert.ErrorIs(t, err, ErrNotAWidget)
}

func TestCreateEventArgsIsRelativeToCurrentOffset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "xpui.ui")
	defer teardown()
	//
	doc := dom.NewDocument()
	outer, inner := NewBox(), NewButton()
	require.NoError(t, outer.AppendChild(inner))
	require.NoError(t, outer.Attach(doc.Body()))
	outer.Element().SetBounds(dom.Rect{X: 100, Y: 50, W: 300, H: 200})
	inner.Element().SetBounds(dom.Rect{X: 10, Y: 20, W: 80, H: 30})
	//
	raw := PointerEvent{Type: "click", PageX: 125, PageY: 80}
	args, err := CreateEventArgs(inner, raw)
	require.NoError(t, err)
	assert.Equal(t, 15.0, args.ElementX)
	assert.Equal(t, 10.0, args.ElementY)
	assert.Equal(t, 125.0, args.PageX)
	assert.Equal(t, Widget(inner), args.Target())
	assert.Equal(t, dom.Point{X: 15, Y: 10}, args.Position())
	//
	outer.Element().SetBounds(dom.Rect{X: 0, Y: 0, W: 300, H: 200}) // layout changed
	args, err = CreateEventArgs(inner, raw)
	require.NoError(t, err)
	assert.Equal(t, 115.0, args.ElementX)
	assert.Equal(t, 60.0, args.ElementY)
}

type clickContext struct {
	name string
}

func TestClickWithTwoContexts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "xpui.ui")
	defer teardown()
	//
	doc := dom.NewDocument()
	b := NewButton()
	b.SetDefaults()
	require.NoError(t, b.Attach(doc.Body()))
	c1, c2 := &clickContext{"C1"}, &clickContext{"C2"}
	var order []string
	var received []*EventArgs
	h := event.Func(func(ctx any, args *EventArgs) error {
		order = append(order, ctx.(*clickContext).name)
		received = append(received, args)
		return nil
	})
	b.Channel("click").AddHandler(h, c1)
	b.Channel("click").AddHandler(h, c2)
	//
	args, err := CreateEventArgs(b, PointerEvent{Type: "click", PageX: 3, PageY: 4, Target: b.Element()})
	require.NoError(t, err)
	b.Channel("click").Dispatch(args)
	assert.Equal(t, []string{"C1", "C2"}, order)
	require.Len(t, received, 2)
	assert.Same(t, received[0], received[1])
}

func TestChannelsExistBeforeAttach(t *testing.T) {
	b := NewLabel()
	for _, name := range PointerChannels {
		assert.NotNil(t, b.Channel(name), name)
	}
	assert.Equal(t, PointerChannels, b.ChannelNames())
	assert.Nil(t, b.Channel("keypress"))
}

func TestRoute(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "xpui.ui")
	defer teardown()
	//
	doc := dom.NewDocument()
	outer, inner := NewBox(), NewButton()
	require.NoError(t, outer.AppendChild(inner))
	require.NoError(t, outer.Attach(doc.Body()))
	outer.Element().SetBounds(dom.Rect{X: 100, Y: 100, W: 300, H: 200})
	inner.Element().SetBounds(dom.Rect{X: 10, Y: 10, W: 80, H: 30})
	//
	var log []string
	var xs []float64
	record := func(name string) event.Handler[*EventArgs] {
		return event.Func(func(ctx any, args *EventArgs) error {
			log = append(log, name)
			xs = append(xs, args.ElementX)
			return nil
		})
	}
	failing := event.Func(func(ctx any, args *EventArgs) error {
		return errors.New("inner handler failed")
	})
	inner.Channel("mousedown").AddHandler(failing, nil)
	inner.Channel("mousedown").AddHandler(record("inner"), nil)
	outer.Channel("mousedown").AddHandler(record("outer"), nil)
	//
	target := doc.HitTest(dom.Point{X: 115, Y: 115})
	require.Equal(t, inner.Element(), target)
	raw := PointerEvent{Type: "mousedown", PageX: 115, PageY: 115, Target: target}
	n, err := Route(raw)
	assert.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"inner", "outer"}, log)
	assert.Equal(t, []float64{5, 15}, xs)
	//
	n, err = Router{Propagate: true}.Route(raw)
	assert.Equal(t, 2, n)
	assert.Error(t, err)
	//
	_, err = Route(PointerEvent{Type: "click"})
	assert.Error(t, err)
	n, err = Route(PointerEvent{Type: "click", Target: doc.Body()})
	assert.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestFind(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "xpui.ui")
	defer teardown()
	//
	doc := dom.NewDocument()
	root := NewBox()
	root.SetDefaults()
	ok, cancel := NewButton(), NewButton()
	ok.SetDefaults()
	cancel.SetDefaults()
	cancel.Set("id", "cancel")
	require.NoError(t, root.AppendChild(ok))
	require.NoError(t, root.AppendChild(cancel))
	_, err := Find(root, "button")
	var derr *DetachedWidgetError
	assert.True(t, errors.As(err, &derr))
	require.NoError(t, root.Attach(doc.Body()))
	//
	found, err := Find(root, "button")
	require.NoError(t, err)
	assert.Equal(t, []Widget{ok, cancel}, found)
	found, err = Find(root, "#cancel")
	require.NoError(t, err)
	assert.Equal(t, []Widget{cancel}, found)
	assert.Equal(t, Widget(cancel), WidgetOf(cancel.Element()))
	assert.Nil(t, WidgetOf(doc.Body()))
}
