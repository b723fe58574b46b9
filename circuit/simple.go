package circuit

import "github.com/Skilldehyde/gen-factor-sat/symbol"

// HalfAdder returns (sum, carry) for a + b: sum = a⊕b, carry = a∧b —
// spec §4.E.
func HalfAdder[W any](ops Ops[W], a, b symbol.Symbol, w W) (sum, carry symbol.Symbol) {
	sum = ops.Xor(a, b, w)
	carry = ops.And(a, b, w)
	return sum, carry
}

// FullAdder returns (sum, carry) for a + b + c: sum = a⊕b⊕c,
// carry = (a∧b) ∨ (c∧(a⊕b)) — spec §4.E.
func FullAdder[W any](ops Ops[W], a, b, c symbol.Symbol, w W) (sum, carry symbol.Symbol) {
	axorb := ops.Xor(a, b, w)
	sum = ops.Xor(axorb, c, w)

	ab := ops.And(a, b, w)
	cAxorb := ops.And(c, axorb, w)
	carry = ops.Or(ab, cAxorb, w)
	return sum, carry
}

// Equality returns ¬(a⊕b) — spec §4.E.
func Equality[W any](ops Ops[W], a, b symbol.Symbol, w W) symbol.Symbol {
	return ops.Not(ops.Xor(a, b, w), w)
}

// Multiplexer returns (cond∧t) ∨ (¬cond∧f) — spec §4.E.
func Multiplexer[W any](ops Ops[W], cond, t, f symbol.Symbol, w W) symbol.Symbol {
	onTrue := ops.And(cond, t, w)
	onFalse := ops.And(ops.Not(cond, w), f, w)
	return ops.Or(onTrue, onFalse, w)
}
