package css_test

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
	"github.com/npillmayer/xpui/css"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDimenBasic(t *testing.T) {
	ten := css.JustDimen(dimen.PT * 10)
	var du dimen.DU
	switch m := ten.Match(); m {
	case m.Just(&du):
		t.Logf("du = %d", du)
	default:
		t.Errorf("expected Just(10pt) to be a fixed value, isn't: %#v", ten)
	}

	auto := css.Auto()
	switch m := auto.Match(); m {
	case m.IsKind(css.Auto()):
		t.Logf("dimen is auto")
	default:
		t.Errorf("expected dimen auto to match auto, isn't: %#v", auto)
	}

	pcnt := css.Percentage(80)
	var p percent.Percent
	switch m := pcnt.Match(); m {
	case m.Percentage(&p):
		t.Logf("percent = %v", p)
	default:
		t.Errorf("expected Percentage(80) to be a percentage value, isn't: %#v", pcnt)
	}
}

func TestDimenPattern(t *testing.T) {
	ten := css.JustDimen(dimen.PT * 10)
	// now use it
	var du dimen.DU
	m := css.DimenPattern[int](ten)
	zehn := m.OneOf(css.DimenPatterns[int]{
		Just:    m.With(&du).Const(10),
		Auto:    0,
		Default: -1,
	})
	if zehn != 10 {
		t.Errorf("expected zehn == 10, isn't: %#v", zehn)
	}

	d := css.JustDimen(dimen.PT * 10)
	e := css.DimenPattern[dimen.DU](d)
	distance := e.OneOf(css.DimenPatterns[dimen.DU]{
		Just:    e.With(&du).Const(2 * du),
		Auto:    0,
		Default: -1,
	})
	if distance != 2*10*dimen.PT {
		t.Errorf("expected distance to be %v, isn't: %#v", 10*dimen.PT, distance)
	}
}

func TestParseDimen(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "xpui.dom")
	defer teardown()
	//
	for _, tc := range []struct {
		in    string
		str   string
		px    float64
		fixed bool
	}{
		{"50", "50px", 50, true},
		{"50px", "50px", 50, true},
		{" 12.5PX ", "12.5px", 12.5, true},
		{"72bp", "72bp", 96, true},
		{"1in", "1in", 96, true},
		{"25%", "25%", 50, true},
		{"2em", "2em", 0, false},
		{"auto", "auto", 0, false},
	} {
		d, err := css.ParseDimen(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.str, d.String(), tc.in)
		px, ok := d.Px(200)
		assert.Equal(t, tc.fixed, ok, tc.in)
		assert.InDelta(t, tc.px, px, 0.01, tc.in)
	}
}

func TestParseDimenKinds(t *testing.T) {
	assert.True(t, css.MustParseDimen("auto").IsAuto())
	assert.True(t, css.MustParseDimen("3mm").IsAbsolute())
	assert.True(t, css.MustParseDimen("3%").IsPercent())
	assert.Equal(t, "max-content", css.MustParseDimen("max-content").String())
	assert.True(t, css.DimenT{}.IsNone())
	//
	em := css.MustParseDimen("2em")
	switch m := em.Match(); m {
	case m.IsKind(css.MustParseDimen("1rem")):
		t.Logf("font-relative dimensions match each other")
	default:
		t.Errorf("expected 2em to be of kind relative, isn't: %#v", em)
	}
}

func TestParseDimenErrors(t *testing.T) {
	for _, in := range []string{"", "px", "12furlongs", "abc", "1..2px"} {
		_, err := css.ParseDimen(in)
		assert.ErrorIs(t, err, css.ErrIllegalDimension, in)
	}
	assert.Panics(t, func() { css.MustParseDimen("wide") })
}
