package circuit

import "github.com/Skilldehyde/gen-factor-sat/symbol"

// NBitAdder is an MSB-first ripple-carry adder. Inputs are left-padded
// with constant 0 to the longer width; the result is that common width
// plus one, with the final carry-out prepended as the new
// most-significant bit — spec §4.F.
func NBitAdder[W any](ops Ops[W], xs, ys symbol.Vector, carryIn symbol.Symbol, w W) symbol.Vector {
	width := max(len(xs), len(ys))
	px := xs.PadLeft(width)
	py := ys.PadLeft(width)

	sum := make(symbol.Vector, width)
	carry := carryIn
	for i := width - 1; i >= 0; i-- {
		var s symbol.Symbol
		s, carry = FullAdder(ops, px[i], py[i], carry, w)
		sum[i] = s
	}

	return append(symbol.Vector{carry}, sum...)
}

// Subtract computes xs - ys via two's-complement: negate ys bitwise
// (after zero-padding to the common width), set carry-in to 1, ripple
// add, and discard the overflow bit the adder prepends. Result width is
// max(len(xs), len(ys)) — spec §4.F.
func Subtract[W any](ops Ops[W], xs, ys symbol.Vector, w W) symbol.Vector {
	width := max(len(xs), len(ys))
	px := xs.PadLeft(width)
	py := ys.PadLeft(width)

	negY := make(symbol.Vector, width)
	for i, b := range py {
		negY[i] = ops.Not(b, w)
	}

	sum := NBitAdder(ops, px, negY, symbol.Constant(symbol.One), w)
	return sum[1:] // discard the adder's overflow bit
}

// Shift performs a left logical shift of xs by k bits, appending k
// constant-0 bits at the LSB end. It needs no gate strategy: the result
// is purely structural — spec §4.F.
func Shift(xs symbol.Vector, k int) symbol.Vector {
	if k <= 0 {
		return xs
	}
	result := make(symbol.Vector, len(xs)+k)
	copy(result, xs)
	for i := len(xs); i < len(result); i++ {
		result[i] = symbol.Constant(symbol.Zero)
	}
	return result
}

// NBitEquality returns a single Symbol that is 1 iff xs and ys are
// equal, after zero-padding both to their common width: pairwise bit
// equality, AND-reduced — spec §4.F. Two empty vectors are vacuously
// equal.
func NBitEquality[W any](ops Ops[W], xs, ys symbol.Vector, w W) symbol.Symbol {
	width := max(len(xs), len(ys))
	if width == 0 {
		return symbol.Constant(symbol.One)
	}

	px := xs.PadLeft(width)
	py := ys.PadLeft(width)

	result := Equality(ops, px[0], py[0], w)
	for i := 1; i < width; i++ {
		eq := Equality(ops, px[i], py[i], w)
		result = ops.And(result, eq, w)
	}
	return result
}
