package synth

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Arachnid/dfpga/pkg/ast"
	"github.com/Arachnid/dfpga/pkg/parser"
	"github.com/Arachnid/dfpga/pkg/source"
)

func synthesize(t *testing.T, src string) *Slice {
	t.Helper()

	file := source.NewFile("test", src)
	prog, err := parser.Parse(file)
	require.NoError(t, err)
	require.Len(t, prog.Slices, 1)

	s, err := Synthesize(file, prog.Slices[0])
	require.NoError(t, err)

	return s
}

func TestSynthesize_emptySlice(t *testing.T) {
	s := synthesize(t, "slice foo {}")

	require.Equal(t, [2]bool{true, true}, s.Asyncs)
	require.Equal(t, [2][2]bool{{false, false}, {false, false}}, s.OutputEnables)
	require.Equal(t, [4]bool{true, true, true, true}, s.BusSwitches)
}

func TestSynthesize_switchDefaultsFollowDrivenOutputs(t *testing.T) {
	s := synthesize(t, "slice foo { l0 -> r0 -> r1; l0 -> d0 -> d1; }")

	require.Equal(t, [4]bool{false, false, false, false}, s.BusSwitches)
}

func TestSynthesize_truthTableSatisfiesEvalProperty(t *testing.T) {
	s := synthesize(t, "slice foo { l1 -> r0; }")

	for idx := 0; idx < 8; idx++ {
		want := (idx >> 0) & 1 // l1 selected on pair 0, bit 0 of idx
		require.Equal(t, want != 0, s.Luts[1][idx], "idx=%d", idx)
	}
}

func TestSynthesize_conflictingLutUseIsAConfigError(t *testing.T) {
	file := source.NewFile("test", "slice foo { l0 -> r0; l1 -> r1; }")
	prog, _ := parser.Parse(file)

	_, err := Synthesize(file, prog.Slices[0])
	require.Error(t, err)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestSynthesize_muxDemandConflictIsAConfigError(t *testing.T) {
	// l0 and l1 are the two faces of the same input mux; referencing both
	// in one expression cannot be routed by a single mux setting.
	file := source.NewFile("test", "slice foo { l0 & l1 -> r0; }")
	prog, _ := parser.Parse(file)

	_, err := Synthesize(file, prog.Slices[0])
	require.Error(t, err)
}

func TestSynthesize_unknownSwitchIsAConfigError(t *testing.T) {
	def := &ast.SliceDefinition{
		Name: "foo",
		Statements: []ast.Statement{
			ast.NewBusSwitch("l0", "u0", true, source.NewSpan(0, 1)),
		},
	}

	file := source.NewFile("test", "slice foo { l0 <-> u0; }")

	_, err := Synthesize(file, def)
	require.Error(t, err)
}

func TestSynthesize_duplicateSwitchIsAConfigError(t *testing.T) {
	file := source.NewFile("test", "slice foo { l0 <-> r0; l0 </> r0; }")
	prog, _ := parser.Parse(file)

	_, err := Synthesize(file, prog.Slices[0])
	require.Error(t, err)
}
