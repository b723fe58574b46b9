package primality

import (
	"math/big"
	"testing"
)

func TestIsPrimeDeterministic(t *testing.T) {
	primes := []int64{2, 3, 5, 7, 11, 97, 7919}
	for _, p := range primes {
		if !IsPrime(big.NewInt(p), 0) {
			t.Errorf("IsPrime(%d, 0) = false, want true", p)
		}
	}

	composites := []int64{4, 6, 8, 9, 100, 7921}
	for _, c := range composites {
		if IsPrime(big.NewInt(c), 0) {
			t.Errorf("IsPrime(%d, 0) = true, want false", c)
		}
	}
}

func TestIsPrimeProbabilistic(t *testing.T) {
	if !IsPrime(big.NewInt(104729), 0.001) {
		t.Error("IsPrime(104729, 0.001) = false, want true")
	}
	if IsPrime(big.NewInt(100), 0.001) {
		t.Error("IsPrime(100, 0.001) = true, want false")
	}
}

func TestRoundsForError(t *testing.T) {
	if got := roundsForError(1); got != 1 {
		t.Errorf("roundsForError(1) = %d, want 1", got)
	}
	if got := roundsForError(0.25); got < 1 {
		t.Errorf("roundsForError(0.25) = %d, want >= 1", got)
	}
	small := roundsForError(0.000001)
	large := roundsForError(0.25)
	if small <= large {
		t.Errorf("smaller error bound should require more rounds: roundsForError(1e-6)=%d, roundsForError(0.25)=%d", small, large)
	}
}
