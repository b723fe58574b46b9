// Package dimacs encodes and decodes cnf.CNF values in the DIMACS CNF
// text format, including the `c `-prefixed comment block the original
// Python writer emits ahead of the `p cnf` problem line — spec §4.I /
// §7. Grounded on original_source/gen_factor_sat/factoring_sat.py's
// cnf_to_dimacs and clause_to_dimacs.
package dimacs

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/Skilldehyde/gen-factor-sat/cnf"
)

// Error reports a malformed DIMACS document.
type Error struct {
	Line    int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("dimacs: line %d: %s", e.Line, e.Message)
}

// Encode renders c as a DIMACS CNF document. comments, if non-empty,
// are emitted as `c `-prefixed lines ahead of the problem line, in
// order, exactly as given.
func Encode(c cnf.CNF, comments []string) string {
	var b strings.Builder

	for _, line := range comments {
		b.WriteString("c ")
		b.WriteString(line)
		b.WriteByte('\n')
	}

	fmt.Fprintf(&b, "p cnf %d %d", c.NumVariables, len(c.Clauses))

	for _, clause := range c.Clauses {
		b.WriteByte('\n')
		b.WriteString(clause.String())
	}

	return b.String()
}

// Decode parses a DIMACS CNF document, returning the formula and the
// text of every comment line (without the leading `c ` marker) in
// document order.
func Decode(text string) (cnf.CNF, []string, error) {
	var comments []string
	var clauses []cnf.Clause
	numVariables := 0
	sawProblemLine := false

	scanner := bufio.NewScanner(strings.NewReader(text))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "c "):
			comments = append(comments, strings.TrimPrefix(line, "c "))
		case line == "c":
			comments = append(comments, "")
		case strings.HasPrefix(line, "p cnf"):
			if sawProblemLine {
				return cnf.CNF{}, nil, &Error{Line: lineNo, Message: "duplicate problem line"}
			}
			fields := strings.Fields(line)
			if len(fields) != 4 {
				return cnf.CNF{}, nil, &Error{Line: lineNo, Message: "malformed problem line: " + line}
			}
			n, err := strconv.Atoi(fields[2])
			if err != nil {
				return cnf.CNF{}, nil, &Error{Line: lineNo, Message: "invalid variable count: " + fields[2]}
			}
			numVariables = n
			sawProblemLine = true
		default:
			if !sawProblemLine {
				return cnf.CNF{}, nil, &Error{Line: lineNo, Message: "clause before problem line"}
			}
			clause, err := parseClause(line)
			if err != nil {
				return cnf.CNF{}, nil, &Error{Line: lineNo, Message: err.Error()}
			}
			clauses = append(clauses, clause)
		}
	}

	if err := scanner.Err(); err != nil {
		return cnf.CNF{}, nil, err
	}
	if !sawProblemLine {
		return cnf.CNF{}, nil, &Error{Line: lineNo, Message: "missing problem line"}
	}

	return cnf.CNF{NumVariables: numVariables, Clauses: clauses}, comments, nil
}

func parseClause(line string) (cnf.Clause, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || fields[len(fields)-1] != "0" {
		return cnf.Clause{}, fmt.Errorf("clause missing trailing 0: %q", line)
	}

	literals := make([]int, 0, len(fields)-1)
	for _, f := range fields[:len(fields)-1] {
		lit, err := strconv.Atoi(f)
		if err != nil {
			return cnf.Clause{}, fmt.Errorf("invalid literal %q", f)
		}
		literals = append(literals, lit)
	}

	if len(literals) == 0 {
		return cnf.EmptyClause(), nil
	}
	return cnf.NewClause(literals...), nil
}
