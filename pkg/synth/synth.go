// Package synth implements the slice synthesizer: it translates one parsed
// SliceDefinition into a concrete Slice value — input-mux selections, two
// 8-entry lookup tables, output enables, bus-switch closures, and sync/async
// flags — or reports the first resource conflict it finds.
package synth

import (
	"github.com/bits-and-blooms/bitset"
	log "github.com/sirupsen/logrus"

	"github.com/Arachnid/dfpga/pkg/ast"
	"github.com/Arachnid/dfpga/pkg/fabric"
	"github.com/Arachnid/dfpga/pkg/source"
)

// Slice is the synthesized configuration of one slice instance: the
// resolved value object described by spec §3, ready for pkg/pack to
// serialize.
type Slice struct {
	// InputMuxes holds, per input-mux pair, which of the two bus names
	// it currently selects (0 or 1).
	InputMuxes [3]uint8
	// OutputEnables is indexed [lut][output index within that LUT's pair].
	OutputEnables [2][2]bool
	// Luts holds the two fully-populated 8-entry truth tables.
	Luts [2][fabric.LutSize]bool
	// Asyncs is true per-LUT when that LUT is asynchronous (the default).
	Asyncs [2]bool
	// BusSwitches holds the resolved value of each of the four canonical
	// switches (fabric.Switches order), true meaning connected.
	BusSwitches [4]bool
}

// Synthesize produces a Slice from a parsed SliceDefinition, or a
// *ConfigError naming the first offending statement. file supplies line:column
// locations for any reported error.
func Synthesize(file *source.File, def *ast.SliceDefinition) (*Slice, error) {
	var (
		lutBound      = bitset.New(fabric.NumLuts)
		lutExpr       [fabric.NumLuts]ast.Expr
		outputEnables [fabric.NumLuts][2]bool
		asyncs        = [fabric.NumLuts]bool{true, true}
		muxSet        = bitset.New(uint(len(fabric.Inputs)))
		inputMuxes    [len(fabric.Inputs)]uint8
		swExplicit    = bitset.New(uint(len(fabric.Switches)))
		swDriven      = bitset.New(uint(len(fabric.Switches)))
		swValue       [len(fabric.Switches)]bool
	)

	log.Debugf("synthesizing slice %q (%d statements)", def.Name, len(def.Statements))

	for _, stmt := range def.Statements {
		switch s := stmt.(type) {
		case *ast.Assignment:
			lut, ok := fabric.FindOutputPair(s.Outputs)
			if !ok {
				return nil, newConfigError(file, s.Span(),
					"no LUT is capable of outputting to all of %v", s.Outputs)
			}

			if lutBound.Test(uint(lut)) {
				return nil, newConfigError(file, s.Span(), "LUT %d already in use", lut)
			}

			lutBound.Set(uint(lut))
			lutExpr[lut] = s.Expr
			asyncs[lut] = !s.Sync

			for _, name := range s.Outputs {
				idx := fabric.OutputIndex(lut, name)
				outputEnables[lut][idx] = true

				for _, swIdx := range fabric.SwitchesContaining(name) {
					swDriven.Set(uint(swIdx))
				}
			}

			if err := assignInputMuxes(file, s, muxSet, &inputMuxes); err != nil {
				return nil, err
			}
		case *ast.BusSwitch:
			pair, idx, ok := fabric.CanonicalSwitch(s.A, s.B)
			if !ok {
				return nil, newConfigError(file, s.Span(), "cannot connect %q and %q: no such switch", s.A, s.B)
			}

			if swExplicit.Test(uint(idx)) {
				return nil, newConfigError(file, s.Span(),
					"duplicate definition of switch %s<->%s", pair[0], pair[1])
			}

			swExplicit.Set(uint(idx))
			swValue[idx] = s.Connected
		default:
			return nil, newConfigError(file, stmt.Span(), "unrecognised statement shape")
		}
	}

	var busSwitches [len(fabric.Switches)]bool
	for i := range busSwitches {
		switch {
		case swExplicit.Test(uint(i)):
			busSwitches[i] = swValue[i]
		default:
			// Default is connected (true) unless an assignment drives one
			// of this switch's endpoints.
			busSwitches[i] = !swDriven.Test(uint(i))
		}
	}

	return &Slice{
		InputMuxes:    inputMuxes,
		OutputEnables: outputEnables,
		Luts:          fillTruthTables(lutExpr, inputMuxes),
		Asyncs:        asyncs,
		BusSwitches:   busSwitches,
	}, nil
}

// assignInputMuxes resolves, for every bus name referenced by s's
// expression, which input-mux pair it belongs to and which index within
// that pair it selects, failing if two referenced names disagree about the
// same mux.
//
// Every referenced name belongs to exactly one INPUTS pair by construction
// of the fabric.Inputs table, so a single linear pass over the referenced
// names — independent of the (arbitrary) iteration order of the underlying
// set — always yields the same, uniquely determined assignment; see
// DESIGN.md for why this resolves the open question in spec §9 about
// mux-assignment ordering.
func assignInputMuxes(file *source.File, s *ast.Assignment, muxSet *bitset.BitSet, inputMuxes *[len(fabric.Inputs)]uint8) error {
	names := make(map[string]bool)
	s.Expr.CollectNames(names)

	for name := range names {
		pair, idx, ok := fabric.FindInput(name)
		if !ok {
			return newConfigError(file, s.Span(), "bus %q is not a recognised input", name)
		}

		if muxSet.Test(uint(pair)) && inputMuxes[pair] != uint8(idx) {
			return newConfigError(file, s.Span(), "cannot find appropriate input mux setting for bus %q", name)
		}

		muxSet.Set(uint(pair))
		inputMuxes[pair] = uint8(idx)
	}

	return nil
}

// fillTruthTables enumerates all LutSize input-variable assignments for
// each LUT and evaluates its bound expression (or constant false, if
// unbound) against each one.
func fillTruthTables(lutExpr [fabric.NumLuts]ast.Expr, inputMuxes [len(fabric.Inputs)]uint8) [fabric.NumLuts][fabric.LutSize]bool {
	var luts [fabric.NumLuts][fabric.LutSize]bool

	for lut := 0; lut < fabric.NumLuts; lut++ {
		expr := lutExpr[lut]

		for idx := 0; idx < fabric.LutSize; idx++ {
			if expr == nil {
				continue
			}

			env := make(map[string]bool, len(fabric.Inputs))
			for i := range fabric.Inputs {
				name := fabric.InputNameForIndex(i, int(inputMuxes[i]))
				env[name] = (idx>>i)&1 != 0
			}

			luts[lut][idx] = expr.Eval(env)
		}
	}

	return luts
}
