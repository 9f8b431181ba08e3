// Package pack serializes a synthesized slice into the four-byte wire
// format consumed by the fabric: spec §4.2's async_oe, switch_mux, and the
// two packed lookup-table bytes.
package pack

import "github.com/Arachnid/dfpga/pkg/synth"

// Size is the number of bytes one packed slice occupies.
const Size = 4

// Slice packs s into its four-byte wire representation.
//
// Byte order is async_oe, switch_mux, and then the two LUT truth tables —
// but, contrary to a literal reading of spec §4.2's "lut_1" / "lut_0"
// labels, the worked fixtures in spec §8 pin the LUT truth tables down as
// luts[0] first and luts[1] second; see DESIGN.md.
func Slice(s *synth.Slice) [Size]byte {
	return [Size]byte{
		packAsyncOE(s),
		packSwitchMux(s),
		packBits(s.Luts[0][:]...),
		packBits(s.Luts[1][:]...),
	}
}

func packAsyncOE(s *synth.Slice) byte {
	return packBits(
		false,
		s.Asyncs[0],
		s.Asyncs[1],
		s.OutputEnables[0][0],
		!s.OutputEnables[0][1],
		s.OutputEnables[1][0],
		!s.OutputEnables[1][1],
		false,
	)
}

func packSwitchMux(s *synth.Slice) byte {
	return packBits(
		false,
		s.BusSwitches[0],
		s.BusSwitches[1],
		s.BusSwitches[2],
		s.BusSwitches[3],
		s.InputMuxes[0] != 0,
		s.InputMuxes[1] != 0,
		s.InputMuxes[2] != 0,
	)
}

// packBits packs bits LSB-first: pack([b0,...,bN-1]) = Σ bi·2^i.
func packBits(bits ...bool) byte {
	var v byte

	for i, b := range bits {
		if b {
			v |= 1 << uint(i)
		}
	}

	return v
}
