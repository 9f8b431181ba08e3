package parser

import "github.com/Arachnid/dfpga/pkg/source"

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIllegal
	tokIdent
	tokLit0
	tokLit1
	tokLBrace
	tokRBrace
	tokLParen
	tokRParen
	tokSemi
	tokComma
	tokArrow     // ->
	tokConnect   // <->
	tokDisconn   // </>
	tokAmp       // &
	tokCaret     // ^
	tokPipe      // |
	tokBang      // !
	tokKwSlice
	tokKwSync
	tokKwAsync
)

type token struct {
	kind tokenKind
	text string
	span source.Span
}

var keywords = map[string]tokenKind{
	"slice": tokKwSlice,
	"sync":  tokKwSync,
	"async": tokKwAsync,
}

// lexer turns DHDL source text into a flat token stream, modeled on the
// hand-rolled rune scanner in pkg/sexp but extended for multi-character
// operators and keywords.
type lexer struct {
	file  *source.File
	text  []rune
	index int
}

func newLexer(file *source.File) *lexer {
	return &lexer{file: file, text: file.Text()}
}

func isIdentStart(c rune) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentCont(c rune) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

func (l *lexer) peekByte(offset int) rune {
	pos := l.index + offset
	if pos >= len(l.text) {
		return 0
	}

	return l.text[pos]
}

// next returns the next token in the stream. It never returns an error:
// unrecognised characters are reported by the parser, which has more
// context for a useful message.
func (l *lexer) next() token {
	for {
		c := l.peekByte(0)
		switch {
		case c == 0:
			return token{kind: tokEOF, span: source.NewSpan(l.index, l.index)}
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			l.index++
			continue
		case c == '#':
			for l.peekByte(0) != '\n' && l.peekByte(0) != 0 {
				l.index++
			}
			continue
		}

		break
	}

	start := l.index
	c := l.peekByte(0)

	switch {
	case c == '{':
		l.index++
		return l.tok(tokLBrace, start)
	case c == '}':
		l.index++
		return l.tok(tokRBrace, start)
	case c == '(':
		l.index++
		return l.tok(tokLParen, start)
	case c == ')':
		l.index++
		return l.tok(tokRParen, start)
	case c == ';':
		l.index++
		return l.tok(tokSemi, start)
	case c == ',':
		l.index++
		return l.tok(tokComma, start)
	case c == '&':
		l.index++
		return l.tok(tokAmp, start)
	case c == '^':
		l.index++
		return l.tok(tokCaret, start)
	case c == '!':
		l.index++
		return l.tok(tokBang, start)
	case c == '|':
		l.index++
		return l.tok(tokPipe, start)
	case c == '0':
		l.index++
		return l.tok(tokLit0, start)
	case c == '1':
		l.index++
		return l.tok(tokLit1, start)
	case c == '-' && l.peekByte(1) == '>':
		l.index += 2
		return l.tok(tokArrow, start)
	case c == '<' && l.peekByte(1) == '-' && l.peekByte(2) == '>':
		l.index += 3
		return l.tok(tokConnect, start)
	case c == '<' && l.peekByte(1) == '/' && l.peekByte(2) == '>':
		l.index += 3
		return l.tok(tokDisconn, start)
	case isIdentStart(c):
		for isIdentCont(l.peekByte(0)) {
			l.index++
		}

		text := string(l.text[start:l.index])
		if kw, ok := keywords[text]; ok {
			return token{kind: kw, text: text, span: source.NewSpan(start, l.index)}
		}

		return token{kind: tokIdent, text: text, span: source.NewSpan(start, l.index)}
	default:
		l.index++
		return l.tok(tokIllegal, start)
	}
}

func (l *lexer) tok(kind tokenKind, start int) token {
	return token{kind: kind, text: string(l.text[start:l.index]), span: source.NewSpan(start, l.index)}
}
