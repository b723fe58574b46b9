// Package multiplier implements the two n-bit multiplication strategies
// of spec §4.G: Wallace-tree reduction and Karatsuba divide-and-conquer,
// both generic over circuit.Ops so they run under eval and Tseitin
// alike. The algorithms are grounded directly on the original source's
// Multiplication.py — neither multiplier has a close analogue anywhere
// in the teacher repo, whose bitvector arithmetic is fixed-width and
// non-symbolic.
package multiplier

import (
	"sort"

	"github.com/Skilldehyde/gen-factor-sat/circuit"
	"github.com/Skilldehyde/gen-factor-sat/symbol"
)

type weighted struct {
	weight int
	sym    symbol.Symbol
}

// Wallace multiplies xs and ys (MSB-first) via Wallace-tree column
// reduction: weight every partial product by its bit position, merge
// each weight's operands down to at most two terms per layer using
// half/full adders, and ripple the final two-wide columns into the
// product — spec §4.G.
func Wallace[W any](ops circuit.Ops[W], xs, ys symbol.Vector, w W) symbol.Vector {
	merged := group(weightedProduct(ops, xs, ys, w))

	for hasWideColumn(merged) {
		var next []weighted
		for _, weight := range sortedKeys(merged) {
			next = append(next, addLayer(ops, weight, merged[weight], w)...)
		}
		merged = group(next)
	}

	lastCarry := symbol.Constant(symbol.Zero)
	var result symbol.Vector
	for _, key := range sortedKeys(merged) {
		col := merged[key]

		var sum, carry symbol.Symbol
		if len(col) == 1 {
			sum, carry = circuit.HalfAdder(ops, col[0], lastCarry, w)
		} else {
			sum, carry = circuit.FullAdder(ops, col[0], col[1], lastCarry, w)
		}

		lastCarry = carry
		result = append(symbol.Vector{sum}, result...)
	}

	return append(symbol.Vector{lastCarry}, result...)
}

// weightedProduct yields every partial product x_i AND y_j tagged with
// the column weight (len(xs)-i)+(len(ys)-j) that it contributes to.
func weightedProduct[W any](ops circuit.Ops[W], xs, ys symbol.Vector, w W) []weighted {
	var out []weighted
	for i, x := range xs {
		wx := len(xs) - i
		for j, y := range ys {
			wy := len(ys) - j
			out = append(out, weighted{weight: wx + wy, sym: ops.And(x, y, w)})
		}
	}
	return out
}

// addLayer reduces one weighted column by one adder: a lone term passes
// through unchanged, two terms go through a half adder, three or more
// take the first three through a full adder and defer the rest to the
// next layer at the same weight.
func addLayer[W any](ops circuit.Ops[W], weight int, col []symbol.Symbol, w W) []weighted {
	switch {
	case len(col) == 1:
		return []weighted{{weight, col[0]}}
	case len(col) == 2:
		sum, carry := circuit.HalfAdder(ops, col[0], col[1], w)
		return []weighted{{weight, sum}, {weight + 1, carry}}
	default:
		sum, carry := circuit.FullAdder(ops, col[0], col[1], col[2], w)
		out := []weighted{{weight, sum}, {weight + 1, carry}}
		for _, x := range col[3:] {
			out = append(out, weighted{weight, x})
		}
		return out
	}
}

func group(xs []weighted) map[int][]symbol.Symbol {
	result := make(map[int][]symbol.Symbol)
	for _, x := range xs {
		result[x.weight] = append(result[x.weight], x.sym)
	}
	return result
}

func hasWideColumn(merged map[int][]symbol.Symbol) bool {
	for _, col := range merged {
		if len(col) > 2 {
			return true
		}
	}
	return false
}

func sortedKeys(merged map[int][]symbol.Symbol) []int {
	keys := make([]int, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
