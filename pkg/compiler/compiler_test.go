package compiler

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

// Fixtures 1-6 of the testable-properties table name just a slice
// definition; Compile additionally requires an invocation grid, so each
// is given the most trivial one (the single slice, once).
func TestCompile_singleSliceScenarios(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"empty", "slice foo {}\nfoo", "561e0000"},
		{"both luts driven by same bus", "slice foo { l0 -> r0 -> r1; l0 -> d0 -> d1; }\nfoo", "2e00aaaa"},
		{"single output via l1", "slice foo { l1 -> r0; }\nfoo", "763c00aa"},
		{"single output via r1", "slice foo { r1 -> r0; }\nfoo", "769c00f0"},
		{"explicit switch disconnects", "slice foo { l0 </> r0; u1 </> d1; }\nfoo", "560c0000"},
		{"sync assignments to both luts", "slice foo { l0 sync -> r0; u0 sync -> d0; }\nfoo", "7814ccaa"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compile(tt.name, tt.src)
			require.NoError(t, err)
			require.Equal(t, tt.want, hex.EncodeToString(got))
		})
	}
}

func TestCompile_gridBoustrophedon(t *testing.T) {
	src := "slice a {} slice b { l0 </> r0; }\na b, a b"

	got, err := Compile("grid", src)
	require.NoError(t, err)
	require.Equal(t, "561e0000561c0000561c0000561e0000", hex.EncodeToString(got))
}

func TestCompile_rectangularGridByteCount(t *testing.T) {
	src := "slice a {}\na a a, a a a"

	got, err := Compile("rect", src)
	require.NoError(t, err)
	require.Len(t, got, 4*2*3)
}

func TestCompile_raggedGridIsAnError(t *testing.T) {
	src := "slice a {}\na a, a"

	_, err := Compile("ragged", src)
	require.Error(t, err)
}

func TestCompile_undefinedSliceIsAnError(t *testing.T) {
	src := "slice a {}\nb"

	_, err := Compile("undefined", src)
	require.Error(t, err)
}

func TestCompile_conflictingLutUseIsAnError(t *testing.T) {
	src := "slice a { l0 -> r0; l1 -> r1; }\na"

	_, err := Compile("conflict", src)
	require.Error(t, err)
}
