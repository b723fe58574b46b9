package dimacs

import (
	"strings"
	"testing"

	"github.com/Skilldehyde/gen-factor-sat/cnf"
)

func sampleCNF() cnf.CNF {
	return cnf.CNF{
		NumVariables: 3,
		Clauses: []cnf.Clause{
			cnf.NewClause(1, -2, 3),
			cnf.UnitClause(-1),
			cnf.EmptyClause(),
		},
	}
}

func TestEncodeProducesProblemLine(t *testing.T) {
	out := Encode(sampleCNF(), nil)
	lines := strings.Split(out, "\n")
	if lines[0] != "p cnf 3 3" {
		t.Errorf("first line = %q, want %q", lines[0], "p cnf 3 3")
	}
}

func TestEncodeWithComments(t *testing.T) {
	out := Encode(sampleCNF(), []string{"Factorization of the number: 35", ""})
	lines := strings.Split(out, "\n")
	if lines[0] != "c Factorization of the number: 35" {
		t.Errorf("comment line = %q", lines[0])
	}
	if lines[1] != "c " {
		t.Errorf("blank comment line = %q, want %q", lines[1], "c ")
	}
	if lines[2] != "p cnf 3 3" {
		t.Errorf("problem line = %q", lines[2])
	}
}

func TestDecodeRoundTrips(t *testing.T) {
	original := sampleCNF()
	encoded := Encode(original, []string{"Factorization of the number: 35"})

	decoded, comments, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}

	if decoded.NumVariables != original.NumVariables {
		t.Errorf("NumVariables = %d, want %d", decoded.NumVariables, original.NumVariables)
	}
	if len(decoded.Clauses) != len(original.Clauses) {
		t.Fatalf("got %d clauses, want %d", len(decoded.Clauses), len(original.Clauses))
	}
	for i, c := range decoded.Clauses {
		if c.String() != original.Clauses[i].String() {
			t.Errorf("clause %d = %q, want %q", i, c.String(), original.Clauses[i].String())
		}
	}
	if len(comments) != 1 || comments[0] != "Factorization of the number: 35" {
		t.Errorf("comments = %v", comments)
	}
}

func TestDecodeMissingProblemLine(t *testing.T) {
	if _, _, err := Decode("1 2 0\n"); err == nil {
		t.Error("expected an error when the problem line is missing")
	}
}

func TestDecodeMalformedClause(t *testing.T) {
	if _, _, err := Decode("p cnf 2 1\n1 2\n"); err == nil {
		t.Error("expected an error for a clause missing its trailing 0")
	}
}

func TestDecodeEmptyClauseLine(t *testing.T) {
	decoded, _, err := Decode("p cnf 1 1\n0\n")
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if len(decoded.Clauses) != 1 || !decoded.Clauses[0].IsEmpty() {
		t.Errorf("expected a single empty clause, got %v", decoded.Clauses)
	}
}
