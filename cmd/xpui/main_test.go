package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `<Box id="main" width="50">
  <Label id="greeting">Hello</Label>
  <Button flavour="vanilla">OK</Button>
</Box>`

func writeSample(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "sample.xml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))
	return path
}

func TestParseArgs(t *testing.T) {
	opts, err := parseArgs([]string{"-html", "-strict", "true", "x.xml"}, io.Discard)
	require.NoError(t, err)
	assert.True(t, opts.html)
	assert.Equal(t, "true", opts.strict)
	assert.Equal(t, "x.xml", opts.input)
	_, err = parseArgs([]string{}, io.Discard)
	assert.Error(t, err)
	_, err = parseArgs([]string{"-nosuchflag", "x.xml"}, io.Discard)
	assert.Error(t, err)
}

func TestRunPrintsTree(t *testing.T) {
	defer trace2go.Teardown()
	lipgloss.SetColorProfile(termenv.Ascii)
	//
	opts := options{config: filepath.Join(t.TempDir(), "none.yaml"), input: writeSample(t)}
	var out strings.Builder
	require.NoError(t, run(opts, &out))
	s := out.String()
	assert.Contains(t, s, "sample.xml")
	assert.Contains(t, s, "ui.Box#main <div>")
	assert.Contains(t, s, "ui.Label#greeting <span>")
	assert.Contains(t, s, "instances [greeting main]")
}

func TestRunHTMLAndStrict(t *testing.T) {
	defer trace2go.Teardown()
	//
	opts := options{config: filepath.Join(t.TempDir(), "none.yaml"), input: writeSample(t), html: true}
	var out strings.Builder
	require.NoError(t, run(opts, &out))
	assert.True(t, strings.HasPrefix(out.String(), "<!DOCTYPE html>\n<html><body><div"))
	assert.Contains(t, out.String(), `<button type="button"`)
	//
	opts.strict = "true"
	err := run(opts, io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "flavour")
	opts.strict = "maybe"
	assert.Error(t, run(opts, io.Discard))
}

func TestRunDot(t *testing.T) {
	defer trace2go.Teardown()
	//
	opts := options{config: filepath.Join(t.TempDir(), "none.yaml"), input: writeSample(t), dot: true}
	var out strings.Builder
	require.NoError(t, run(opts, &out))
	assert.True(t, strings.HasPrefix(out.String(), "digraph g {"))
	//
	opts.input = filepath.Join(t.TempDir(), "missing.xml")
	assert.Error(t, run(opts, io.Discard))
}

// clickFailWriter fails every write of a click handler.
type clickFailWriter struct {
	strings.Builder
}

func (w *clickFailWriter) Write(p []byte) (int, error) {
	if strings.HasPrefix(string(p), "click on") {
		return 0, errors.New("output closed")
	}
	return w.Builder.Write(p)
}

func TestRunClickBubbles(t *testing.T) {
	defer trace2go.Teardown()
	lipgloss.SetColorProfile(termenv.Ascii)
	//
	opts := options{config: filepath.Join(t.TempDir(), "none.yaml"), input: writeSample(t),
		html: true, click: "greeting"}
	var out strings.Builder
	require.NoError(t, run(opts, &out))
	s := out.String()
	assert.Contains(t, s, "click on ui.Label#greeting at (0, 0)\n")
	assert.Contains(t, s, "click on ui.Box#main at (0, 0)\n")
	assert.Less(t, strings.Index(s, "ui.Label#greeting at"), strings.Index(s, "ui.Box#main at"))
	assert.Contains(t, s, "click delivered to 2 widgets")
	//
	opts.click = "nosuchid"
	assert.Error(t, run(opts, io.Discard))
}

func TestRunClickPropagatesHandlerFailures(t *testing.T) {
	defer trace2go.Teardown()
	//
	dir := t.TempDir()
	input := writeSample(t)
	quiet := filepath.Join(dir, "quiet.yaml")
	require.NoError(t, os.WriteFile(quiet, []byte("event:\n  propagate: false\n"), 0o644))
	loud := filepath.Join(dir, "loud.yaml")
	require.NoError(t, os.WriteFile(loud, []byte("event:\n  propagate: true\n"), 0o644))
	//
	opts := options{config: quiet, input: input, html: true, click: "greeting"}
	assert.NoError(t, run(opts, &clickFailWriter{}))
	opts.config = loud
	err := run(opts, &clickFailWriter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output closed")
}
