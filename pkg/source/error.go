package source

import "fmt"

// ParseError reports malformed DHDL source text: an unexpected token, an
// unterminated construct, or anything else the lexer or parser rejects
// before an AST can be built.
type ParseError struct {
	file *File
	span Span
	msg  string
}

// NewParseError constructs a ParseError anchored at span within file.
func NewParseError(file *File, span Span, format string, args ...any) *ParseError {
	return &ParseError{file, span, fmt.Sprintf(format, args...)}
}

// Error implements error, reporting the offending token's line:column.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.file.Locate(e.span), e.msg)
}

// Span returns the span of the offending token or construct.
func (e *ParseError) Span() Span { return e.span }
