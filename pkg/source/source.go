// Package source provides source-file and span tracking shared by the lexer,
// parser, and the later compiler stages that need to report a precise
// location when a statement violates a resource constraint.
package source

import "fmt"

// Span represents a contiguous slice of an original source file, as a pair of
// rune offsets into File.Text. Keeping raw offsets (rather than a copy of the underlying
// text) lets later stages recover the enclosing line and column cheaply.
type Span struct {
	start int
	end   int
}

// NewSpan constructs a span covering [start,end) of some source file.
func NewSpan(start, end int) Span {
	if start > end {
		panic("invalid span")
	}

	return Span{start, end}
}

// Start returns the first rune offset covered by this span.
func (s Span) Start() int { return s.start }

// End returns one past the last rune offset covered by this span.
func (s Span) End() int { return s.end }

// Merge returns the smallest span covering both s and other.
func (s Span) Merge(other Span) Span {
	start, end := s.start, s.end
	if other.start < start {
		start = other.start
	}

	if other.end > end {
		end = other.end
	}

	return Span{start, end}
}

// File represents a named source file together with its contents, and knows
// how to translate a rune offset into a 1-indexed (line, column) pair for
// error reporting.
type File struct {
	name string
	text []rune
}

// NewFile wraps a filename and its raw contents for span resolution.
func NewFile(name string, text string) *File {
	return &File{name, []rune(text)}
}

// Name returns the filename this file was constructed with.
func (f *File) Name() string { return f.name }

// Text returns the full contents of this file.
func (f *File) Text() []rune { return f.text }

// Position resolves a rune offset into a 1-indexed (line, column) pair. An
// offset past the end of the file resolves to the position immediately after
// the last character.
func (f *File) Position(offset int) (line, column int) {
	line, column = 1, 1

	limit := offset
	if limit > len(f.text) {
		limit = len(f.text)
	}

	for i := 0; i < limit; i++ {
		if f.text[i] == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}

	return line, column
}

// Locate formats a span as "line:column" using this file's line breaks,
// anchored on the span's starting offset.
func (f *File) Locate(span Span) string {
	line, column := f.Position(span.Start())
	return fmt.Sprintf("%d:%d", line, column)
}
