// Package gate implements the gate-strategy abstraction of spec §4.D: a
// single contract over AND/OR/NOT (and Assume) for Symbols, realized two
// ways — Eval, which only ever sees constants and folds them directly,
// and Tseitin, which emits clauses through a cnf.Builder whenever
// constant folding cannot resolve an operand. Every circuit function in
// this module is written once against Strategy and gets both
// interpretations for free.
//
// The strategy is generic over its writer type W: Eval's writer is the
// zero-size Unit (there is nothing to write), Tseitin's writer is
// *cnf.Builder. This is the capability-set polymorphism spec §9 calls
// for — a strategy value threaded as an explicit parameter through every
// circuit function.
package gate

import (
	"fmt"

	"github.com/Skilldehyde/gen-factor-sat/cnf"
	"github.com/Skilldehyde/gen-factor-sat/symbol"
)

// Strategy is the abstract gate provider: AND, OR, NOT over Symbols, plus
// Assume for constraining a Symbol to a known value. W is the
// side-channel writer threaded through every call.
type Strategy[W any] interface {
	And(x, y symbol.Symbol, w W) symbol.Symbol
	Or(x, y symbol.Symbol, w W) symbol.Symbol
	Not(x symbol.Symbol, w W) symbol.Symbol

	// Assume constrains x to the constant value v. If x is already a
	// Constant unequal to v, the empty clause is emitted (spec §7: not
	// an error, the intended channel for statically provable
	// infeasibility). If x is a Variable, the corresponding unit clause
	// is emitted. If x is already Constant(v), this is a no-op. Assume
	// always returns v.
	Assume(x symbol.Symbol, v symbol.Bit, w W) symbol.Bit
}

// Unit is the writer type for EvalStrategy: there is nothing to record,
// since Eval is never reached with non-constant operands.
type Unit struct{}

// EvalStrategy interprets AND/OR/NOT numerically on constants. Spec
// §4.D: "the eval realization is never reached with non-constants" — by
// construction, every Symbol fed to EvalStrategy is already a Constant,
// so each method here is a direct boolean computation rather than a
// constant-fold-then-allocate dance.
type EvalStrategy struct{}

// And returns the constant AND of x and y.
func (EvalStrategy) And(x, y symbol.Symbol, _ Unit) symbol.Symbol {
	mustBeConstant("EvalStrategy.And", x, y)
	if x.IsZero() || y.IsZero() {
		return symbol.Constant(symbol.Zero)
	}
	return symbol.Constant(symbol.One)
}

// Or returns the constant OR of x and y.
func (EvalStrategy) Or(x, y symbol.Symbol, _ Unit) symbol.Symbol {
	mustBeConstant("EvalStrategy.Or", x, y)
	if x.IsOne() || y.IsOne() {
		return symbol.Constant(symbol.One)
	}
	return symbol.Constant(symbol.Zero)
}

// Not returns the constant negation of x.
func (EvalStrategy) Not(x symbol.Symbol, _ Unit) symbol.Symbol {
	mustBeConstant("EvalStrategy.Not", x)
	return x.Negate()
}

// Assume checks x against v and returns v; under Eval there is no writer
// to emit anything into, so a mismatch is a programmer error (the caller
// asked Eval to assume something the circuit already proved false).
func (EvalStrategy) Assume(x symbol.Symbol, v symbol.Bit, _ Unit) symbol.Bit {
	mustBeConstant("EvalStrategy.Assume", x)
	if x.Bit() != v {
		panic(fmt.Sprintf("gate: EvalStrategy.Assume: %v cannot be assumed to be %v", x, v))
	}
	return v
}

func mustBeConstant(op string, xs ...symbol.Symbol) {
	for _, x := range xs {
		if !x.IsConstant() {
			panic(fmt.Sprintf("gate: %s: EvalStrategy reached with a non-constant symbol %v", op, x))
		}
	}
}

// TseitinStrategy folds constants first (spec §4.D's mandatory rules)
// and, only when both operands remain variables, allocates a fresh
// output variable via the builder and emits the corresponding Tseitin
// clauses.
type TseitinStrategy struct{}

// And returns x AND y, folding constants or allocating a fresh Tseitin
// variable.
func (TseitinStrategy) And(x, y symbol.Symbol, w *cnf.Builder) symbol.Symbol {
	if x.IsConstant() || y.IsConstant() {
		return constantAnd(x, y)
	}
	out := w.FromTseitin(cnf.AndEquality, x.Variable(), y.Variable())
	return symbol.Variable(out)
}

// Or returns x OR y, folding constants or allocating a fresh Tseitin
// variable.
func (TseitinStrategy) Or(x, y symbol.Symbol, w *cnf.Builder) symbol.Symbol {
	if x.IsConstant() || y.IsConstant() {
		return constantOr(x, y)
	}
	out := w.FromTseitin(cnf.OrEquality, x.Variable(), y.Variable())
	return symbol.Variable(out)
}

// Not returns the negation of x. NOT on a Variable is free — it flips
// the literal's sign and emits no clauses.
func (TseitinStrategy) Not(x symbol.Symbol, _ *cnf.Builder) symbol.Symbol {
	return x.Negate()
}

// Assume constrains x to v, emitting the empty clause, a unit clause, or
// nothing, per spec §4.D/§7.
func (TseitinStrategy) Assume(x symbol.Symbol, v symbol.Bit, w *cnf.Builder) symbol.Bit {
	switch {
	case x.IsConstant() && x.Bit() != v:
		w.Append(cnf.EmptyClause())
	case !x.IsConstant():
		lit := x.Variable()
		if v == symbol.Zero {
			lit = -lit
		}
		w.Append(cnf.UnitClause(lit))
	}
	return v
}

func constantAnd(x, y symbol.Symbol) symbol.Symbol {
	switch {
	case x.IsZero() || y.IsZero():
		return symbol.Constant(symbol.Zero)
	case x.IsOne():
		return y
	case y.IsOne():
		return x
	default:
		panic(fmt.Sprintf("gate: constantAnd: neither %v nor %v is a constant", x, y))
	}
}

func constantOr(x, y symbol.Symbol) symbol.Symbol {
	switch {
	case x.IsOne() || y.IsOne():
		return symbol.Constant(symbol.One)
	case x.IsZero():
		return y
	case y.IsZero():
		return x
	default:
		panic(fmt.Sprintf("gate: constantOr: neither %v nor %v is a constant", x, y))
	}
}
