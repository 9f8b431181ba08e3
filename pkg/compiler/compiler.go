// Package compiler drives the full DHDL pipeline: parse, synthesize every
// slice, then emit the invocation grid's bitstream.
package compiler

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/Arachnid/dfpga/pkg/grid"
	"github.com/Arachnid/dfpga/pkg/parser"
	"github.com/Arachnid/dfpga/pkg/source"
	"github.com/Arachnid/dfpga/pkg/synth"
)

// Compile parses, synthesizes, and emits text as a complete bitstream.
// name is used only for error reporting.
func Compile(name, text string) ([]byte, error) {
	file := source.NewFile(name, text)

	prog, err := parser.Parse(file)
	if err != nil {
		return nil, err
	}

	if prog.Invocation == nil {
		return nil, fmt.Errorf("%s: no invocation grid", name)
	}

	slices := make(map[string]*synth.Slice, len(prog.Slices))

	for _, def := range prog.Slices {
		s, err := synth.Synthesize(file, def)
		if err != nil {
			return nil, err
		}

		slices[def.Name] = s
	}

	log.Infof("synthesized %d slice(s)", len(slices))

	bytes, err := grid.Emit(file, prog.Invocation, slices)
	if err != nil {
		return nil, err
	}

	log.Infof("emitted %d bytes of bitstream", len(bytes))

	return bytes, nil
}
