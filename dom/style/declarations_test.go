package style

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeclarationsOrder(t *testing.T) {
	decl := NewDeclarations()
	decl.Set("width", "50px")
	decl.Set("Height", " 20px ")
	decl.Set("width", "60px")
	assert.Equal(t, 2, decl.Len())
	assert.Equal(t, "width: 60px; height: 20px", decl.String())
	//
	h, ok := decl.Get("height")
	assert.True(t, ok)
	assert.Equal(t, Property("20px"), h)
	//
	decl.Set("width", NullStyle)
	assert.Equal(t, "height: 20px", decl.String())
	assert.False(t, decl.Remove("width"))
}

func TestNilDeclarations(t *testing.T) {
	var decl *Declarations
	assert.Equal(t, 0, decl.Len())
	assert.Equal(t, "", decl.String())
	_, ok := decl.Get("width")
	assert.False(t, ok)
	assert.Nil(t, decl.Properties())
}

func TestParseInline(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "xpui.dom")
	defer teardown()
	//
	decl, err := ParseInline("width: 50px; color: red; width: 70px")
	require.NoError(t, err)
	props := decl.Properties()
	require.Len(t, props, 2)
	assert.Equal(t, KeyValue{"width", "70px"}, props[0])
	assert.Equal(t, KeyValue{"color", "red"}, props[1])
	//
	decl, err = ParseInline("   ")
	require.NoError(t, err)
	assert.Equal(t, 0, decl.Len())
}

func TestParseInlineWithoutTrailingSemicolon(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "xpui.dom")
	defer teardown()
	//
	decl, err := ParseInline("width: 50px")
	require.NoError(t, err)
	assert.Equal(t, []KeyValue{{"width", "50px"}}, decl.Properties())
	//
	decl, err = ParseInline(" height: 2em; width: 50px ")
	require.NoError(t, err)
	assert.Equal(t, "height: 2em; width: 50px", decl.String())
	//
	decl, err = ParseInline("width: 50px; color: red;")
	require.NoError(t, err)
	assert.Equal(t, 2, decl.Len())
}

func TestParseInlineRejectsEmptyValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "xpui.dom")
	defer teardown()
	//
	_, err := ParseInline("width: 50px; width:")
	assert.ErrorIs(t, err, ErrEmptyValue)
	_, err = ParseInline("width")
	assert.Error(t, err)
}

func TestGeometryKeys(t *testing.T) {
	assert.True(t, IsGeometry("width"))
	assert.True(t, IsGeometry("max-height"))
	assert.False(t, IsGeometry("color"))
	assert.Equal(t, Property("auto"), InitialValue("height"))
	assert.True(t, InitialValue("color").IsEmpty())
	assert.True(t, Property("inherit").IsInherit())
	assert.True(t, Property("initial").IsInitial())
}
