package synth

import (
	"fmt"

	"github.com/Arachnid/dfpga/pkg/source"
)

// ConfigError reports that a slice definition violates one of the fabric's
// resource constraints (spec §7, "SliceConfiguration"): two statements
// fighting over the same LUT, an expression referencing a bus the input
// muxes cannot route, a bus switch naming buses that aren't connected by any
// physical switch, or the same switch defined twice.
type ConfigError struct {
	file *source.File
	span source.Span
	msg  string
}

// Error implements error, reporting the offending statement's line:column.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s", e.file.Locate(e.span), e.msg)
}

// Span returns the span of the statement that triggered this error.
func (e *ConfigError) Span() source.Span { return e.span }

func newConfigError(file *source.File, span source.Span, format string, args ...any) *ConfigError {
	return &ConfigError{file, span, fmt.Sprintf(format, args...)}
}
