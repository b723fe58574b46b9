// Package cnf implements the Tseitin clause equalities (spec §4.B) and the
// CNF/Builder types that accumulate them (spec §4.C). Clause equalities
// are pure functions over signed integer literals; Builder is the single
// mutable, aliasable resource in the system, threaded explicitly as a
// writer argument through every circuit function rather than hidden
// behind shared state.
package cnf

import (
	"fmt"
	"sort"
	"strings"
)

// Clause is a disjunction of literals, stored as a set: two clauses with
// the same literals in a different order are the same clause. The empty
// Clause denotes the empty clause (⊥); a single-literal Clause is a unit
// clause.
type Clause struct {
	literals map[int]struct{}
}

// NewClause builds a Clause from the given literals, deduplicating
// repeats. A literal of 0 is a programming error and panics, since 0 is
// never a valid DIMACS literal.
func NewClause(literals ...int) Clause {
	c := Clause{literals: make(map[int]struct{}, len(literals))}
	for _, l := range literals {
		if l == 0 {
			panic("cnf: literal 0 is not valid")
		}
		c.literals[l] = struct{}{}
	}
	return c
}

// UnitClause returns the clause {x} — spec §4.B's unit_clause.
func UnitClause(x int) Clause {
	return NewClause(x)
}

// EmptyClause returns the clause {} (⊥) — spec §4.B's empty_clause. An
// empty clause is trivially unsatisfiable; it is the channel through
// which Assume reports statically provable infeasibility (spec §7).
func EmptyClause() Clause {
	return NewClause()
}

// Literals returns the clause's literals in ascending order by absolute
// value, for deterministic iteration and rendering.
func (c Clause) Literals() []int {
	out := make([]int, 0, len(c.literals))
	for l := range c.literals {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool {
		ai, aj := abs(out[i]), abs(out[j])
		if ai != aj {
			return ai < aj
		}
		return out[i] < out[j]
	})
	return out
}

// Len returns the number of literals in the clause.
func (c Clause) Len() int {
	return len(c.literals)
}

// IsUnit reports whether the clause has exactly one literal.
func (c Clause) IsUnit() bool {
	return len(c.literals) == 1
}

// IsEmpty reports whether the clause has no literals (⊥).
func (c Clause) IsEmpty() bool {
	return len(c.literals) == 0
}

// Contains reports whether the clause contains the literal l.
func (c Clause) Contains(l int) bool {
	_, ok := c.literals[l]
	return ok
}

// IsTautology reports whether the clause contains both a literal and its
// negation — spec §4.B's tautology predicate, the single filter applied
// at CNF finalization.
func (c Clause) IsTautology() bool {
	for l := range c.literals {
		if _, ok := c.literals[-l]; ok {
			return true
		}
	}
	return false
}

// key returns a canonical string for set-of-clauses deduplication: the
// sorted literal tuple, matching the teacher's convention of hashing on a
// canonical form rather than relying on insertion order.
func (c Clause) key() string {
	lits := c.Literals()
	parts := make([]string, len(lits))
	for i, l := range lits {
		parts[i] = fmt.Sprintf("%d", l)
	}
	return strings.Join(parts, ",")
}

// String renders the clause as DIMACS-style literals terminated by " 0",
// with the empty clause rendered as the single token "0".
func (c Clause) String() string {
	lits := c.Literals()
	if len(lits) == 0 {
		return "0"
	}
	parts := make([]string, len(lits))
	for i, l := range lits {
		parts[i] = fmt.Sprintf("%d", l)
	}
	return strings.Join(parts, " ") + " 0"
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// AndEquality returns the clause set equivalent to z <-> (x AND y):
// {¬x∨¬y∨z, x∨¬z, y∨¬z} — spec §4.B.
func AndEquality(x, y, z int) []Clause {
	return []Clause{
		NewClause(-x, -y, z),
		NewClause(x, -z),
		NewClause(y, -z),
	}
}

// OrEquality returns the clause set equivalent to z <-> (x OR y):
// {x∨y∨¬z, ¬x∨z, ¬y∨z} — spec §4.B.
func OrEquality(x, y, z int) []Clause {
	return []Clause{
		NewClause(x, y, -z),
		NewClause(-x, z),
		NewClause(-y, z),
	}
}

// XorEquality returns the clause set equivalent to z <-> (x XOR y):
// {¬x∨¬y∨¬z, x∨y∨¬z, x∨¬y∨z, ¬x∨y∨z} — spec §4.B.
func XorEquality(x, y, z int) []Clause {
	return []Clause{
		NewClause(-x, -y, -z),
		NewClause(x, y, -z),
		NewClause(x, -y, z),
		NewClause(-x, y, z),
	}
}
