/*
Command xpui reads a markup file, builds it with the standard widget kinds
and prints the result.

Usage:

	xpui [options] <file.xml>

Options:

	-config path   YAML configuration file (default xpui.yaml)
	-html          print the rendered document
	-dot           print a GraphViz diagram of the widget tree
	-strict        reject unknown attributes (overrides markup.strict)
	-plain         no colors
	-click id      route a click event to the element with this id

With -click, handler failures are returned as errors if configuration
key event.propagate is set.

Without -html or -dot, an indented print of the widget tree is written.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/xpui/config"
	"github.com/npillmayer/xpui/dom"
	"github.com/npillmayer/xpui/event"
	"github.com/npillmayer/xpui/markup"
	"github.com/npillmayer/xpui/tree"
	"github.com/npillmayer/xpui/ui"
	"github.com/npillmayer/xpui/ui/uidbg"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type options struct {
	config string
	html   bool
	dot    bool
	strict string
	plain  bool
	click  string
	input  string
}

func main() {
	opts, err := parseArgs(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}
	if opts.plain {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	if err := run(opts, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("xpui: ")+err.Error())
		os.Exit(1)
	}
}

func parseArgs(args []string, errout io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("xpui", flag.ContinueOnError)
	fs.SetOutput(errout)
	fs.StringVar(&opts.config, "config", "xpui.yaml", "YAML configuration file")
	fs.BoolVar(&opts.html, "html", false, "print the rendered document")
	fs.BoolVar(&opts.dot, "dot", false, "print a GraphViz diagram of the widget tree")
	fs.StringVar(&opts.strict, "strict", "", "reject unknown attributes (true|false)")
	fs.BoolVar(&opts.plain, "plain", false, "no colors")
	fs.StringVar(&opts.click, "click", "", "route a click event to the element with this id")
	fs.Usage = func() {
		fmt.Fprintf(errout, "Usage: %s [options] <file.xml>\n", filepath.Base(os.Args[0]))
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return opts, fmt.Errorf("expected exactly one markup file, have %d", fs.NArg())
	}
	opts.input = fs.Arg(0)
	return opts, nil
}

func run(opts options, out io.Writer) error {
	conf, err := config.Load(opts.config)
	if err != nil {
		return err
	}
	if opts.strict != "" {
		if _, err := strconv.ParseBool(opts.strict); err != nil {
			return fmt.Errorf("invalid value for -strict: %q", opts.strict)
		}
		conf.Set(config.KeyMarkupStrict, opts.strict)
	}
	if err := config.SetupTracing(conf); err != nil {
		return err
	}
	trace := tracing.Select("xpui.cmd")
	//
	f, err := os.Open(opts.input)
	if err != nil {
		return err
	}
	defer f.Close()
	root, err := markup.Read(f)
	if err != nil {
		return err
	}
	registry := markup.NewRegistry()
	if err := markup.RegisterStandard(registry); err != nil {
		return err
	}
	builder := markup.NewBuilder(registry, markup.Strict(conf.GetBool(config.KeyMarkupStrict)))
	doc := dom.NewDocument()
	w, err := builder.BuildDocument(doc, root)
	if err != nil {
		return err
	}
	trace.Infof("built %d elements from %s", doc.ElementCount(), opts.input)
	//
	switch {
	case opts.dot:
		err = uidbg.ToGraphViz(w, out, true)
	case opts.html:
		err = doc.Render(out)
	default:
		fmt.Fprintln(out, titleStyle.Render(filepath.Base(opts.input)))
		fmt.Fprint(out, uidbg.Sprint(w))
		fmt.Fprintln(out, dimStyle.Render(fmt.Sprintf("%d elements, instances %v",
			doc.ElementCount(), builder.Instances().Keys())))
	}
	if err != nil || opts.click == "" {
		return err
	}
	router := ui.Router{Propagate: conf.GetBool(config.KeyPropagate)}
	return routeClick(doc, w, router, opts.click, out)
}

// routeClick subscribes a printing handler to the click channel of every
// widget under root and routes a click on the element with the given id.
func routeClick(doc *dom.Document, root ui.Widget, router ui.Router, id string, out io.Writer) error {
	el := doc.ElementByID(id)
	if el == nil {
		return fmt.Errorf("no element with id %q", id)
	}
	report := event.Func(func(ctx any, args *ui.EventArgs) error {
		_, err := fmt.Fprintf(out, "click on %v at (%g, %g)\n", ctx, args.ElementX, args.ElementY)
		return err
	})
	_ = tree.TopDown(root.AsControl().TreeNode(), func(n, _ *tree.Node[*ui.Control], _ int) error {
		n.Payload.Channel("click").AddHandler(report, n.Payload)
		return nil
	})
	count, err := router.Route(ui.PointerEvent{Type: "click", Target: el})
	fmt.Fprintln(out, dimStyle.Render(fmt.Sprintf("click delivered to %d widgets", count)))
	return err
}
