/*
Package uidbg implements helpers to debug a widget tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package uidbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/xpui/ui"
	tp "github.com/xlab/treeprint"
)

// Sprint returns an indented print of the widget tree under w, one line
// per widget, listing its kind, attachment state and properties.
func Sprint(w ui.Widget) string {
	if w == nil {
		return "<nil>\n"
	}
	p := tp.New()
	p.SetValue(label(w.AsControl()))
	for _, ch := range w.AsControl().Children() {
		branches(p, ch)
	}
	return p.String()
}

func branches(p tp.Tree, w ui.Widget) {
	c := w.AsControl()
	children := c.Children()
	if len(children) == 0 {
		p.AddNode(label(c))
		return
	}
	b := p.AddBranch(label(c))
	for _, ch := range children {
		branches(b, ch)
	}
}

func label(c *ui.Control) string {
	state := "detached"
	if c.IsAttached() {
		state = "<" + c.Element().Tag() + ">"
	}
	return fmt.Sprintf("%v %s %v", c, state, c.Props())
}

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname  string
	NodeTmpl  *template.Template
	EdgeTmpl  *template.Template
	PropsTmpl *template.Template
	PedgeTmpl *template.Template
}

// ToGraphViz outputs a diagram for a widget tree in GraphViz (DOT) format.
// Clients provide the root widget and a Writer. If withProps is set, the
// diagram includes a table of properties for every widget.
func ToGraphViz(root ui.Widget, w io.Writer, withProps bool) error {
	head, err := template.New("widgets").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("widget").Parse(widgetNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("edge").Parse(widgetEdgeTmpl))
	if withProps {
		gparams.PropsTmpl = template.Must(template.New("props").Parse(propsTmpl))
		gparams.PedgeTmpl = template.Must(template.New("pedge").Parse(propsEdgeTmpl))
	}
	if err = head.Execute(w, gparams); err != nil {
		return err
	}
	if root != nil {
		dict := make(map[*ui.Control]string, 64)
		if err = nodes(root.AsControl(), w, dict, &gparams); err != nil {
			return err
		}
	}
	_, err = io.WriteString(w, "}\n")
	return err
}

// Dotty is a helper for testing. Given a widget and a testing.T, it will
// create a GraphViz image of the widget tree under `root` and write it to
// a file in the current folder, choosing a unique file name.
// The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
func Dotty(root ui.Widget, t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "widgets.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing widget digraph to %s\n", tmpfile.Name())
	if err := ToGraphViz(root, tmpfile, true); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

type node struct {
	C        *ui.Control
	Name     string
	Kind     string
	Attached bool
}

type edge struct {
	N1, N2 string
}

type propRow struct {
	Key, Value string
}

type propTable struct {
	Name string
	Rows []propRow
}

func nodes(c *ui.Control, w io.Writer, dict map[*ui.Control]string, gparams *graphParamsType) error {
	name := nodeName(c, dict)
	n := node{C: c, Name: name, Kind: kind(c), Attached: c.IsAttached()}
	if err := gparams.NodeTmpl.Execute(w, n); err != nil {
		return err
	}
	if gparams.PropsTmpl != nil {
		table := propTable{Name: name}
		for _, k := range c.Props().Keys() {
			v, _ := c.Get(k)
			table.Rows = append(table.Rows, propRow{k, v})
		}
		if err := gparams.PropsTmpl.Execute(w, table); err != nil {
			return err
		}
		if err := gparams.PedgeTmpl.Execute(w, table); err != nil {
			return err
		}
	}
	for _, ch := range c.Children() {
		cc := ch.AsControl()
		if err := nodes(cc, w, dict, gparams); err != nil {
			return err
		}
		if err := gparams.EdgeTmpl.Execute(w, edge{name, dict[cc]}); err != nil {
			return err
		}
	}
	return nil
}

func nodeName(c *ui.Control, dict map[*ui.Control]string) string {
	name := dict[c]
	if name == "" {
		name = fmt.Sprintf("w%05d", len(dict)+1)
		dict[c] = name
	}
	return name
}

func kind(c *ui.Control) string {
	s := c.String()
	s = strings.ReplaceAll(s, `"`, `'`)
	return s
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const widgetNodeTmpl = `{{ if .Attached }}
{{ .Name }}	[ label={{ printf "%q" .Kind }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ else }}
{{ .Name }}	[ label={{ printf "%q" .Kind }} shape=ellipse style=dashed ] ;
{{ end }}
`

const propsTmpl = `p{{ .Name }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      {{ range .Rows }}
      <tr><td align="right">{{ .Key | html }}:</td><td>{{ .Value | html }}</td></tr>
      {{ else }}
      <tr><td colspan="2">no properties</td></tr>
      {{ end }}
    </table>> ] ;
`

const widgetEdgeTmpl = `{{ .N1 }} -> {{ .N2 }} [weight=1] ;
`

const propsEdgeTmpl = `{{ .Name }} -> p{{ .Name }} [dir=none weight=1 style="dashed"] ;
`
