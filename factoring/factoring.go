// Package factoring assembles the Tseitin-encoded CNF instance that
// witnesses a number's factorization — spec §4.H. It wires together
// symbol, cnf, circuit, and multiplier: allocate two factor vectors,
// multiply them, assert equality against the target number's bits, and
// finalize the accumulated clauses.
package factoring

import (
	"math/big"

	"github.com/Skilldehyde/gen-factor-sat/circuit"
	"github.com/Skilldehyde/gen-factor-sat/cnf"
	"github.com/Skilldehyde/gen-factor-sat/gate"
	"github.com/Skilldehyde/gen-factor-sat/multiplier"
	"github.com/Skilldehyde/gen-factor-sat/symbol"
)

// Error reports a failure in constructing a factoring instance.
type Error struct {
	Op      string
	Message string
}

func (e *Error) Error() string {
	return "factoring: " + e.Op + ": " + e.Message
}

func newError(op, message string) *Error {
	return &Error{Op: op, Message: message}
}

// Instance is the immutable result of encoding the factorization of
// Number as a CNF formula. Factor1 and Factor2 name the variables that
// encode each factor, most-significant bit first.
type Instance struct {
	Number  *big.Int
	Factor1 []int
	Factor2 []int
	CNF     cnf.CNF
}

// toBits encodes n into its binary representation, MSB-first, matching
// the Python original's bin(value)[2:].
func toBits(n *big.Int) symbol.Vector {
	s := n.Text(2)
	bits := make(symbol.Vector, len(s))
	for i, c := range s {
		if c == '1' {
			bits[i] = symbol.Constant(symbol.One)
		} else {
			bits[i] = symbol.Constant(symbol.Zero)
		}
	}
	return bits
}

// factorLengths splits a number's bit length into the two factor
// widths used by the original encoding: factor 1 gets ceil(len/2) bits,
// factor 2 gets len-1 bits — spec §4.H.
func factorLengths(numberLength int) (int, int) {
	factorLength1 := (numberLength + 1) / 2
	factorLength2 := numberLength - 1
	return factorLength1, factorLength2
}

// Factorize builds the CNF instance asserting that Factor1 * Factor2 ==
// number. Invalid input, a nil or a negative number, is reported
// through *Error.
func Factorize(number *big.Int) (Instance, error) {
	if number == nil {
		return Instance{}, newError("Factorize", "number must not be nil")
	}
	if number.Sign() < 0 {
		return Instance{}, newError("Factorize", "number must be non-negative")
	}

	bits := toBits(number)
	width1, width2 := factorLengths(len(bits))

	builder := cnf.NewBuilder()
	factor1 := newVariableVector(builder, width1)
	factor2 := newVariableVector(builder, width2)

	ops := circuit.TseitinOps{}
	product := multiplier.Karatsuba(ops, factor1, factor2, builder)
	equal := circuit.NBitEquality(ops, product, bits, builder)

	strategy := gate.TseitinStrategy{}
	strategy.Assume(equal, symbol.One, builder)

	return Instance{
		Number:  new(big.Int).Set(number),
		Factor1: variableIDs(factor1),
		Factor2: variableIDs(factor2),
		CNF:     builder.Finalize(),
	}, nil
}

func newVariableVector(builder *cnf.Builder, width int) symbol.Vector {
	if width <= 0 {
		return symbol.Vector{}
	}
	vars := builder.NextVariables(width)
	vec := make(symbol.Vector, width)
	for i, v := range vars {
		vec[i] = symbol.Variable(v)
	}
	return vec
}

func variableIDs(vec symbol.Vector) []int {
	ids := make([]int, len(vec))
	for i, s := range vec {
		ids[i] = s.Variable()
	}
	return ids
}
