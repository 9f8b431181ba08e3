// Package parser implements the DHDL lexer and recursive-descent parser
// described by spec §6: it turns source text directly into a *ast.Program.
package parser

import (
	log "github.com/sirupsen/logrus"

	"github.com/Arachnid/dfpga/pkg/ast"
	"github.com/Arachnid/dfpga/pkg/source"
)

// Parse parses DHDL source text into a Program, or returns a
// *source.ParseError naming the first malformed construct.
func Parse(file *source.File) (*ast.Program, error) {
	p := &parser{lex: newLexer(file), file: file}
	p.advance()

	prog, err := p.parseProgram()
	if err != nil {
		return nil, err
	}

	log.Debugf("parsed %d slice definition(s)", len(prog.Slices))

	return prog, nil
}

type parser struct {
	lex  *lexer
	file *source.File
	tok  token
}

func (p *parser) advance() {
	p.tok = p.lex.next()
}

func (p *parser) errorf(span source.Span, format string, args ...any) error {
	return source.NewParseError(p.file, span, format, args...)
}

func (p *parser) expect(kind tokenKind, what string) (token, error) {
	if p.tok.kind != kind {
		return token{}, p.errorf(p.tok.span, "expected %s, found %q", what, p.tok.text)
	}

	t := p.tok
	p.advance()

	return t, nil
}

func (p *parser) parseProgram() (*ast.Program, error) {
	prog := &ast.Program{}

	for p.tok.kind == tokKwSlice {
		def, err := p.parseSliceDef()
		if err != nil {
			return nil, err
		}

		prog.Slices = append(prog.Slices, def)
	}

	if p.tok.kind != tokEOF {
		inv, err := p.parseInvocation()
		if err != nil {
			return nil, err
		}

		prog.Invocation = inv
	}

	if p.tok.kind != tokEOF {
		return nil, p.errorf(p.tok.span, "unexpected trailing input %q", p.tok.text)
	}

	return prog, nil
}

func (p *parser) parseSliceDef() (*ast.SliceDefinition, error) {
	if _, err := p.expect(tokKwSlice, "'slice'"); err != nil {
		return nil, err
	}

	name, err := p.expect(tokIdent, "slice name")
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(tokLBrace, "'{'"); err != nil {
		return nil, err
	}

	var stmts []ast.Statement

	for p.tok.kind != tokRBrace {
		if p.tok.kind == tokSemi {
			p.advance()
			continue
		}

		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}

		stmts = append(stmts, stmt)

		switch p.tok.kind {
		case tokSemi:
			p.advance()
		case tokRBrace:
		default:
			return nil, p.errorf(p.tok.span, "expected ';' or '}', found %q", p.tok.text)
		}
	}

	p.advance() // consume '}'

	return &ast.SliceDefinition{Name: name.text, Statements: stmts}, nil
}

// parseStatement disambiguates a BusSwitch from an Assignment with a
// two-token lookahead: a BusSwitch is exactly "<ident> (<-> | </>)
// <ident>", so seeing one of those operators as the second token is
// sufficient — no other construct in the expression grammar can produce
// them.
func (p *parser) parseStatement() (ast.Statement, error) {
	if p.tok.kind == tokIdent {
		save := *p.lex
		saveTok := p.tok

		a := p.tok
		p.advance()

		if p.tok.kind == tokConnect || p.tok.kind == tokDisconn {
			connected := p.tok.kind == tokConnect
			p.advance()

			b, err := p.expect(tokIdent, "bus name")
			if err != nil {
				return nil, err
			}

			span := a.span.Merge(b.span)

			return ast.NewBusSwitch(a.text, b.text, connected, span), nil
		}

		*p.lex = save
		p.tok = saveTok
	}

	return p.parseAssignment()
}

func (p *parser) parseAssignment() (ast.Statement, error) {
	start := p.tok.span

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	sync := false

	switch p.tok.kind {
	case tokKwSync:
		sync = true
		p.advance()
	case tokKwAsync:
		p.advance()
	}

	if _, err := p.expect(tokArrow, "'->'"); err != nil {
		return nil, err
	}

	var outputs []string

	for {
		name, err := p.expect(tokIdent, "output bus name")
		if err != nil {
			return nil, err
		}

		outputs = append(outputs, name.text)

		if p.tok.kind != tokArrow {
			break
		}

		p.advance()
	}

	span := start.Merge(p.tok.span)

	return ast.NewAssignment(expr, sync, outputs, span), nil
}

// Expression grammar, loosest to tightest: AND (&), XOR (^), OR (|), NOT
// (!), atoms.
func (p *parser) parseExpr() (ast.Expr, error) {
	return p.parseAnd()
}

func (p *parser) parseAnd() (ast.Expr, error) {
	first, err := p.parseXor()
	if err != nil {
		return nil, err
	}

	xs := []ast.Expr{first}

	for p.tok.kind == tokAmp {
		p.advance()

		x, err := p.parseXor()
		if err != nil {
			return nil, err
		}

		xs = append(xs, x)
	}

	if len(xs) == 1 {
		return xs[0], nil
	}

	return ast.And{Xs: xs}, nil
}

func (p *parser) parseXor() (ast.Expr, error) {
	first, err := p.parseOr()
	if err != nil {
		return nil, err
	}

	xs := []ast.Expr{first}

	for p.tok.kind == tokCaret {
		p.advance()

		x, err := p.parseOr()
		if err != nil {
			return nil, err
		}

		xs = append(xs, x)
	}

	if len(xs) == 1 {
		return xs[0], nil
	}

	return ast.Xor{Xs: xs}, nil
}

func (p *parser) parseOr() (ast.Expr, error) {
	first, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	xs := []ast.Expr{first}

	for p.tok.kind == tokPipe {
		p.advance()

		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		xs = append(xs, x)
	}

	if len(xs) == 1 {
		return xs[0], nil
	}

	return ast.Or{Xs: xs}, nil
}

func (p *parser) parseUnary() (ast.Expr, error) {
	if p.tok.kind == tokBang {
		p.advance()

		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		return ast.Not{X: x}, nil
	}

	return p.parseAtom()
}

func (p *parser) parseAtom() (ast.Expr, error) {
	switch p.tok.kind {
	case tokIdent:
		name := p.tok.text
		p.advance()

		return ast.BusRef{Name: name}, nil
	case tokLit0:
		p.advance()
		return ast.Lit{Value: false}, nil
	case tokLit1:
		p.advance()
		return ast.Lit{Value: true}, nil
	case tokLParen:
		p.advance()

		x, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		if _, err := p.expect(tokRParen, "')'"); err != nil {
			return nil, err
		}

		return x, nil
	default:
		return nil, p.errorf(p.tok.span, "expected expression, found %q", p.tok.text)
	}
}

func (p *parser) parseInvocation() (*ast.Invocation, error) {
	inv := &ast.Invocation{}

	row, err := p.parseInvocationRow()
	if err != nil {
		return nil, err
	}

	inv.Rows = append(inv.Rows, row)

	for p.tok.kind == tokComma {
		p.advance()

		row, err := p.parseInvocationRow()
		if err != nil {
			return nil, err
		}

		inv.Rows = append(inv.Rows, row)
	}

	return inv, nil
}

func (p *parser) parseInvocationRow() ([]string, error) {
	var row []string

	for p.tok.kind == tokIdent {
		row = append(row, p.tok.text)
		p.advance()
	}

	if len(row) == 0 {
		return nil, p.errorf(p.tok.span, "expected slice name, found %q", p.tok.text)
	}

	return row, nil
}
