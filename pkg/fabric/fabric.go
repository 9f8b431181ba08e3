// Package fabric holds the fixed, compile-time device model targeted by
// dfpgac. These tables describe the physical grid fabric itself: changing
// them changes the output bitstream format, so they are process-wide
// immutable configuration rather than anything a DHDL program can alter.
package fabric

// InputPair names the two bus lines a single input multiplexer chooses
// between. The mux selector bit for a name is its suffix digit (see
// suffixIndex), not its position within the pair.
type InputPair [2]string

// Inputs lists the three input multiplexers of a slice, in mux-index order.
var Inputs = [3]InputPair{
	{"l1", "l0"},
	{"u0", "u1"},
	{"r1", "r0"},
}

// NumLuts is the number of lookup tables per slice.
const NumLuts = 2

// LutSize is the number of entries in one lookup table: 2^(len(Inputs)).
const LutSize = 1 << len(Inputs)

// OutputPair names the two bus lines a single LUT may drive.
type OutputPair [2]string

// Outputs lists, per LUT, the pair of output bus lines it may drive.
var Outputs = [NumLuts]OutputPair{
	{"d1", "d0"},
	{"r0", "r1"},
}

// SwitchPair is a canonically (lexicographically) ordered bus-switch
// endpoint pair.
type SwitchPair [2]string

// Switches lists the four bidirectional bus-switches of a slice, in the
// order used to lay out the packed switch_mux byte (spec §4.2). Note this
// is NOT the left-to-right order the spec prose lists the four pairs in:
// the packed byte places (d0,u0) ahead of (d1,u1); see DESIGN.md for how
// the worked fixtures in spec §8 pin this down.
var Switches = [4]SwitchPair{
	{"l0", "r0"},
	{"l1", "r1"},
	{"d0", "u0"},
	{"d1", "u1"},
}

// suffixIndex returns the trailing digit of a bus name ("l0", "r1", ...) as
// 0 or 1. Every bus name in InputPair/OutputPair tables ends in such a
// digit, and that digit — not the name's position within the documented
// pair tuple — is what the packed bitstream actually records; see
// DESIGN.md.
func suffixIndex(name string) int {
	return int(name[len(name)-1] - '0')
}

// FindInput locates the input-mux pair containing name, returning the pair
// index (0..len(Inputs)), the index of name within that pair (0 or 1, its
// suffix digit), and whether name was found at all.
func FindInput(name string) (pair, index int, ok bool) {
	for p, ip := range Inputs {
		for _, n := range ip {
			if n == name {
				return p, suffixIndex(name), true
			}
		}
	}

	return 0, 0, false
}

// InputNameForIndex returns the bus name in the given INPUTS pair whose
// suffix digit equals idx. Used to rebuild the bus name actually bound to a
// mux from its packed (pair, idx) form, since that need not be
// Inputs[pair][idx] read literally (see suffixIndex).
func InputNameForIndex(pair, idx int) string {
	for _, n := range Inputs[pair] {
		if suffixIndex(n) == idx {
			return n
		}
	}

	return Inputs[pair][0]
}

// FindOutputPair locates the unique OUTPUTS pair that is a superset of the
// given non-empty set of output bus names, returning the LUT index that pair
// belongs to. ok is false if no such pair exists (names span more than one
// pair, or reference an unknown bus).
func FindOutputPair(names []string) (lut int, ok bool) {
	for l, op := range Outputs {
		if allIn(names, op) {
			return l, true
		}
	}

	return 0, false
}

func allIn(names []string, pair OutputPair) bool {
	for _, n := range names {
		if n != pair[0] && n != pair[1] {
			return false
		}
	}

	return true
}

// OutputIndex returns the index (0 or 1) of name within its OUTPUTS pair —
// its suffix digit, which need not equal its position in the Outputs[lut]
// tuple (see suffixIndex). The caller must already know name belongs to
// that pair.
func OutputIndex(lut int, name string) int {
	return suffixIndex(name)
}

// CanonicalSwitch sorts a and b lexicographically and reports whether the
// resulting pair is a member of SWITCHES, returning its canonical index
// (into Switches) when it is.
func CanonicalSwitch(a, b string) (pair SwitchPair, index int, ok bool) {
	if a > b {
		a, b = b, a
	}

	pair = SwitchPair{a, b}
	for i, sw := range Switches {
		if sw == pair {
			return pair, i, true
		}
	}

	return pair, 0, false
}

// SwitchesContaining returns the canonical indices (into Switches) of every
// switch pair having bus as one of its two endpoints.
func SwitchesContaining(bus string) []int {
	var out []int

	for i, sw := range Switches {
		if sw[0] == bus || sw[1] == bus {
			out = append(out, i)
		}
	}

	return out
}
