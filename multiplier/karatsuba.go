package multiplier

import (
	"github.com/Skilldehyde/gen-factor-sat/circuit"
	"github.com/Skilldehyde/gen-factor-sat/symbol"
)

// karatsubaThreshold is the operand width below which Karatsuba defers
// to Wallace — splitting operands smaller than this never pays for the
// extra adder/subtractor overhead.
const karatsubaThreshold = 20

// Karatsuba multiplies xs and ys via recursive divide-and-conquer,
// falling back to Wallace below karatsubaThreshold bits on either
// operand — spec §4.G.
func Karatsuba[W any](ops circuit.Ops[W], xs, ys symbol.Vector, w W) symbol.Vector {
	if len(xs) < karatsubaThreshold || len(ys) < karatsubaThreshold {
		return Wallace(ops, xs, ys, w)
	}

	n := max(len(xs), len(ys))
	half := (n + 1) / 2

	x1, x0 := splitHigh(xs, half), splitLow(xs, half)
	y1, y0 := splitHigh(ys, half), splitLow(ys, half)

	z0 := Karatsuba(ops, x0, y0, w)

	var z2 symbol.Vector
	if len(x1) > 0 && len(y1) > 0 {
		z2 = Karatsuba(ops, x1, y1, w)
	} else {
		z2 = symbol.Vector{symbol.Constant(symbol.Zero)}
	}

	sumX := x0
	if len(x1) > 0 {
		sumX = circuit.NBitAdder(ops, x1, x0, symbol.Constant(symbol.Zero), w)
	}
	sumY := y0
	if len(y1) > 0 {
		sumY = circuit.NBitAdder(ops, y1, y0, symbol.Constant(symbol.Zero), w)
	}

	z1 := Karatsuba(ops, sumX, sumY, w)
	z1 = circuit.Subtract(ops, z1, z2, w)
	z1 = circuit.Subtract(ops, z1, z0, w)

	sum := circuit.NBitAdder(ops, circuit.Shift(z2, half), z1, symbol.Constant(symbol.Zero), w)
	sum = circuit.NBitAdder(ops, circuit.Shift(sum, half), z0, symbol.Constant(symbol.Zero), w)

	return sum
}

// splitHigh returns the high-order bits above the low half bits, i.e.
// xs[:len(xs)-half] — empty when half covers the whole vector.
func splitHigh(xs symbol.Vector, half int) symbol.Vector {
	if half >= len(xs) {
		return symbol.Vector{}
	}
	return xs[:len(xs)-half]
}

// splitLow returns the low-order half bits, i.e. xs[len(xs)-half:].
func splitLow(xs symbol.Vector, half int) symbol.Vector {
	if half >= len(xs) {
		return xs
	}
	return xs[len(xs)-half:]
}
