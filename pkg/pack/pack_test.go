package pack

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Arachnid/dfpga/pkg/parser"
	"github.com/Arachnid/dfpga/pkg/source"
	"github.com/Arachnid/dfpga/pkg/synth"
)

func packSource(t *testing.T, src string) [Size]byte {
	t.Helper()

	file := source.NewFile("test", src)
	prog, err := parser.Parse(file)
	require.NoError(t, err)
	require.Len(t, prog.Slices, 1)

	s, err := synth.Synthesize(file, prog.Slices[0])
	require.NoError(t, err)

	return Slice(s)
}

// Reproduces the six single-slice end-to-end scenarios of spec §8 at the
// packing level (the seventh, an invocation grid, is exercised separately
// in pkg/compiler).
func TestSlice_referenceScenarios(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"empty slice", "slice foo {}", "561e0000"},
		{"both luts driven", "slice foo { l0 -> r0 -> r1; l0 -> d0 -> d1; }", "2e00aaaa"},
		{"single output via l1", "slice foo { l1 -> r0; }", "763c00aa"},
		{"single output via r1", "slice foo { r1 -> r0; }", "769c00f0"},
		{"explicit disconnects", "slice foo { l0 </> r0; u1 </> d1; }", "560c0000"},
		{"sync both luts", "slice foo { l0 sync -> r0; u0 sync -> d0; }", "7814ccaa"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := packSource(t, tt.src)
			require.Equal(t, tt.want, hex.EncodeToString(got[:]))
		})
	}
}
