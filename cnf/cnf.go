package cnf

// CNF is the immutable finalized formula: a variable count and a set of
// clauses whose literals range over ±{1..NumVariables}. No clause in a
// CNF is a tautology — the filter runs once, at Builder.Finalize.
type CNF struct {
	NumVariables int
	Clauses      []Clause
}

// Builder is the mutable scratch state behind CNF construction: a
// monotonically increasing variable counter and a clause accumulator.
// Builder is created fresh per factoring job, handed to circuit code as
// an explicit writer argument, and consumed by Finalize — it is the
// single aliasable mutable resource in the system; nothing outlives it.
type Builder struct {
	numVariables int
	seen         map[string]struct{}
	clauses      []Clause
	finalized    bool
}

// NewBuilder returns an empty Builder with no variables allocated yet.
func NewBuilder() *Builder {
	return &Builder{seen: make(map[string]struct{})}
}

// NextVariable allocates and returns a fresh positive variable literal.
// Variables are handed out in strictly ascending order starting at 1.
func (b *Builder) NextVariable() int {
	b.mustNotBeFinalized("NextVariable")
	b.numVariables++
	return b.numVariables
}

// NextVariables allocates n fresh variables and returns them in
// ascending order.
func (b *Builder) NextVariables(n int) []int {
	b.mustNotBeFinalized("NextVariables")
	out := make([]int, n)
	for i := range out {
		out[i] = b.NextVariable()
	}
	return out
}

// Append adds clauses to the accumulator. Duplicate clauses collapse by
// set semantics; tautologies are kept in the accumulator and removed
// only at Finalize, matching spec §4.B/§9's stated filter placement.
func (b *Builder) Append(clauses ...Clause) {
	b.mustNotBeFinalized("Append")
	for _, c := range clauses {
		key := c.key()
		if _, dup := b.seen[key]; dup {
			continue
		}
		b.seen[key] = struct{}{}
		b.clauses = append(b.clauses, c)
	}
}

// TseitinEncoder is the shape shared by AndEquality/OrEquality/
// XorEquality: given two input literals and a fresh output literal,
// return the clause set equivalent to their defining equivalence.
type TseitinEncoder func(x, y, z int) []Clause

// FromTseitin allocates a fresh output variable, evaluates encoder on
// (x, y, output), appends the resulting clauses, and returns the fresh
// output variable — spec §4.C's from_tseitin.
func (b *Builder) FromTseitin(encoder TseitinEncoder, x, y int) int {
	b.mustNotBeFinalized("FromTseitin")
	out := b.NextVariable()
	b.Append(encoder(x, y, out)...)
	return out
}

// NumVariables returns the number of variables allocated so far.
func (b *Builder) NumVariables() int {
	return b.numVariables
}

// Finalize returns the (number_of_variables, tautology-filtered clause
// set) pair and marks the Builder unusable for further mutation. Calling
// any mutating method after Finalize panics — variable IDs and clause
// generation order are meaningless once the job's CNF has been taken.
func (b *Builder) Finalize() CNF {
	b.mustNotBeFinalized("Finalize")
	b.finalized = true

	filtered := make([]Clause, 0, len(b.clauses))
	for _, c := range b.clauses {
		if !c.IsTautology() {
			filtered = append(filtered, c)
		}
	}

	return CNF{
		NumVariables: b.numVariables,
		Clauses:      filtered,
	}
}

func (b *Builder) mustNotBeFinalized(op string) {
	if b.finalized {
		panic("cnf: Builder." + op + " called after Finalize")
	}
}
