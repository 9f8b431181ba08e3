package ast

import "github.com/Arachnid/dfpga/pkg/source"

// Statement is either an Assignment or a BusSwitch, distinguished by a type
// switch in pkg/synth. Every statement carries the span of source text it
// was parsed from, so a resource-conflict error can point back at it.
type Statement interface {
	Span() source.Span
}

// Assignment binds an expression to one or more output bus names, with an
// explicit sync/async flag. The zero value for Sync is false, i.e. async,
// matching the language default (an omitted "sync"/"async" keyword means
// async).
type Assignment struct {
	Expr Expr
	// Sync is true when the statement wrote the "sync" keyword; false
	// (the default) means async, whether "async" was written explicitly
	// or the keyword was omitted entirely.
	Sync bool
	// Outputs is the ordered, non-empty list of output bus names following
	// the chain of "->" tokens.
	Outputs []string
	span    source.Span
}

// NewAssignment constructs an Assignment statement.
func NewAssignment(expr Expr, sync bool, outputs []string, span source.Span) *Assignment {
	return &Assignment{expr, sync, outputs, span}
}

// Span implements Statement.
func (a *Assignment) Span() source.Span { return a.span }

// BusSwitch declares the state of one bidirectional bus-switch pair: A and B
// are the two endpoint bus names in source order (not yet canonicalised),
// and Connected is true for "<->" and false for "</>".
type BusSwitch struct {
	A, B      string
	Connected bool
	span      source.Span
}

// NewBusSwitch constructs a BusSwitch statement.
func NewBusSwitch(a, b string, connected bool, span source.Span) *BusSwitch {
	return &BusSwitch{a, b, connected, span}
}

// Span implements Statement.
func (b *BusSwitch) Span() source.Span { return b.span }

// SliceDefinition is a named slice and its ordered list of statements.
type SliceDefinition struct {
	Name       string
	Statements []Statement
}

// Invocation is the rectangular grid of slice names laid out by the
// invocation block. Rows[0] is the first row as written in the source; the
// grid emitter (pkg/grid) is responsible for reinterpreting row order as
// bottom-up.
type Invocation struct {
	Rows [][]string
}

// Program is the root of a parsed DHDL source file.
type Program struct {
	Slices     []*SliceDefinition
	Invocation *Invocation
}

// Lookup returns the named slice definition, or nil if no slice with that
// name was defined.
func (p *Program) Lookup(name string) *SliceDefinition {
	for _, s := range p.Slices {
		if s.Name == name {
			return s
		}
	}

	return nil
}
