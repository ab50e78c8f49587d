package markup

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
)

// Errors of parsers and registries.
var (
	ErrRegistrySealed     = errors.New("registry is sealed")
	ErrUnknownAttribute   = errors.New("unknown attribute")
	ErrUnexpectedChildren = errors.New("widget kind does not accept children")
	ErrUnexpectedText     = errors.New("widget kind does not accept text content")
	ErrNilNode            = errors.New("cannot build nil node")
)

// LookupError is returned for tags without a registry entry.
type LookupError struct {
	Tag string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("no widget kind registered for tag <%s>", e.Tag)
}

// ParseError is returned when a markup node cannot be turned into a
// widget. If the tag is unknown, Err is a *LookupError.
type ParseError struct {
	Tag  string // tag of the offending node
	Attr string // offending attribute, if any
	Line int    // line of the node in the markup source, if known
	Err  error
}

func (e *ParseError) Error() string {
	where := "<" + e.Tag
	if e.Attr != "" {
		where += " " + e.Attr
	}
	where += ">"
	if e.Line > 0 {
		return fmt.Sprintf("markup line %d: %s: %v", e.Line, where, e.Err)
	}
	return fmt.Sprintf("markup %s: %v", where, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// attrError creates a ParseError for an attribute of node n.
func attrError(n *Node, attr string, err error) *ParseError {
	return &ParseError{Tag: n.Tag, Attr: attr, Line: n.Line, Err: err}
}

// asParseError makes sure err is a ParseError for node n.
func asParseError(n *Node, err error) *ParseError {
	var perr *ParseError
	if errors.As(err, &perr) {
		if perr.Tag == "" {
			perr.Tag = n.Tag
		}
		if perr.Line == 0 {
			perr.Line = n.Line
		}
		return perr
	}
	return &ParseError{Tag: n.Tag, Line: n.Line, Err: err}
}
