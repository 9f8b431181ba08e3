// Package grid implements the grid emitter (spec §4.3): it resolves an
// invocation grid of slice names against a name→*synth.Slice mapping and
// concatenates their packed words in boustrophedon order.
package grid

import (
	"fmt"

	"github.com/Arachnid/dfpga/pkg/ast"
	"github.com/Arachnid/dfpga/pkg/pack"
	"github.com/Arachnid/dfpga/pkg/source"
	"github.com/Arachnid/dfpga/pkg/synth"
)

// InvocationError reports that an invocation grid is malformed: a ragged
// row, or a reference to an undefined slice (spec §7, "SliceInvocation").
type InvocationError struct {
	file *source.File
	msg  string
}

// Error implements error.
func (e *InvocationError) Error() string {
	return fmt.Sprintf("%s: %s", e.file.Name(), e.msg)
}

func newInvocationError(file *source.File, format string, args ...any) *InvocationError {
	return &InvocationError{file, fmt.Sprintf(format, args...)}
}

// Emit resolves every name in inv against slices and concatenates their
// packed 4-byte words in boustrophedon order: rows are numbered from 0 at
// the bottom of the grid (the last row as written), and rows with an odd
// index are emitted right-to-left.
func Emit(file *source.File, inv *ast.Invocation, slices map[string]*synth.Slice) ([]byte, error) {
	if len(inv.Rows) == 0 {
		return nil, newInvocationError(file, "invocation grid is empty")
	}

	width := len(inv.Rows[0])
	for _, row := range inv.Rows {
		if len(row) != width {
			return nil, newInvocationError(file, "invocation grid is not rectangular: rows of length %d and %d", width, len(row))
		}
	}

	out := make([]byte, 0, len(inv.Rows)*width*pack.Size)

	for i := 0; i < len(inv.Rows); i++ {
		row := inv.Rows[len(inv.Rows)-1-i]
		if i%2 != 0 {
			row = reversed(row)
		}

		for _, name := range row {
			s, ok := slices[name]
			if !ok {
				return nil, newInvocationError(file, "invocation references undefined slice %q", name)
			}

			word := pack.Slice(s)
			out = append(out, word[:]...)
		}
	}

	return out, nil
}

func reversed(row []string) []string {
	out := make([]string, len(row))
	for i, n := range row {
		out[len(row)-1-i] = n
	}

	return out
}
