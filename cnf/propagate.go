package cnf

// Propagate runs forward unit propagation over clauses to a fixpoint,
// starting from assignment. It returns the extended assignment and
// false if propagation derives a contradiction (a clause with every
// literal falsified). The Tseitin CNF this module builds is acyclic —
// each gate's output variable is defined only in terms of earlier
// variables — so fixing every input variable and propagating forward
// determines every derived variable without ever needing a decision
// (backtracking) step.
//
// Grounded on sat/dpll.go's DPLLSolver.unitPropagation, adapted to this
// module's signed-integer literal representation and to an explicit
// assignment map passed in and returned, rather than solver-owned
// mutable state.
func Propagate(clauses []Clause, assignment map[int]bool) (map[int]bool, bool) {
	result := make(map[int]bool, len(assignment))
	for k, v := range assignment {
		result[k] = v
	}

	changed := true
	for changed {
		changed = false
		for _, c := range clauses {
			switch status, unit := evaluateClause(c, result); status {
			case statusConflict:
				return result, false
			case statusUnit:
				result[abs(unit)] = unit > 0
				changed = true
			}
		}
	}

	return result, true
}

// Satisfied reports whether every clause has at least one literal that
// evaluates to true under assignment. A literal whose variable is
// missing from assignment is treated as unresolved, not true.
func Satisfied(clauses []Clause, assignment map[int]bool) bool {
	for _, c := range clauses {
		if !clauseIsSatisfied(c, assignment) {
			return false
		}
	}
	return true
}

type clauseStatus int

const (
	statusSatisfied clauseStatus = iota
	statusConflict
	statusUnit
	statusUndetermined
)

// evaluateClause classifies c under the partial assignment and, for the
// statusUnit case, returns the single forced literal.
func evaluateClause(c Clause, assignment map[int]bool) (clauseStatus, int) {
	var unassigned []int
	for _, l := range c.Literals() {
		v, ok := assignment[abs(l)]
		if !ok {
			unassigned = append(unassigned, l)
			continue
		}
		if (l > 0 && v) || (l < 0 && !v) {
			return statusSatisfied, 0
		}
	}

	switch len(unassigned) {
	case 0:
		return statusConflict, 0
	case 1:
		return statusUnit, unassigned[0]
	default:
		return statusUndetermined, 0
	}
}

func clauseIsSatisfied(c Clause, assignment map[int]bool) bool {
	for _, l := range c.Literals() {
		v, ok := assignment[abs(l)]
		if !ok {
			continue
		}
		if (l > 0 && v) || (l < 0 && !v) {
			return true
		}
	}
	return false
}
