package multiplier

import (
	"strconv"
	"testing"

	"github.com/Skilldehyde/gen-factor-sat/circuit"
	"github.com/Skilldehyde/gen-factor-sat/gate"
	"github.com/Skilldehyde/gen-factor-sat/symbol"
)

func toVector(n uint64, width int) symbol.Vector {
	s := strconv.FormatUint(n, 2)
	for len(s) < width {
		s = "0" + s
	}
	v := make(symbol.Vector, len(s))
	for i, c := range s {
		if c == '1' {
			v[i] = symbol.Constant(symbol.One)
		} else {
			v[i] = symbol.Constant(symbol.Zero)
		}
	}
	return v
}

func toUint(v symbol.Vector) uint64 {
	var s string
	for _, sym := range v {
		s += sym.Bit().String()
	}
	if s == "" {
		return 0
	}
	n, err := strconv.ParseUint(s, 2, 64)
	if err != nil {
		panic(err)
	}
	return n
}

func TestWallaceMatchesMultiplication(t *testing.T) {
	ops := circuit.EvalOps{}
	for x := uint64(0); x < 16; x++ {
		for y := uint64(0); y < 16; y++ {
			result := Wallace(ops, toVector(x, 4), toVector(y, 4), gate.Unit{})
			if got := toUint(result); got != x*y {
				t.Errorf("Wallace(%d, %d) = %d, want %d", x, y, got, x*y)
			}
		}
	}
}

func TestWallaceAsymmetricWidths(t *testing.T) {
	ops := circuit.EvalOps{}
	x, y := uint64(13), uint64(3)
	result := Wallace(ops, toVector(x, 5), toVector(y, 2), gate.Unit{})
	if got := toUint(result); got != x*y {
		t.Errorf("Wallace(13,3) asymmetric widths = %d, want %d", got, x*y)
	}
}

func TestKaratsubaFallsBackToWallaceBelowThreshold(t *testing.T) {
	ops := circuit.EvalOps{}
	for x := uint64(0); x < 16; x++ {
		for y := uint64(0); y < 16; y++ {
			result := Karatsuba(ops, toVector(x, 4), toVector(y, 4), gate.Unit{})
			if got := toUint(result); got != x*y {
				t.Errorf("Karatsuba(%d, %d) = %d, want %d", x, y, got, x*y)
			}
		}
	}
}

func TestKaratsubaAboveThreshold(t *testing.T) {
	ops := circuit.EvalOps{}
	x, y := uint64(123456), uint64(654321)
	result := Karatsuba(ops, toVector(x, 24), toVector(y, 24), gate.Unit{})
	if got := toUint(result); got != x*y {
		t.Errorf("Karatsuba(123456, 654321) = %d, want %d", got, x*y)
	}
}

func TestKaratsubaMatchesWallace(t *testing.T) {
	ops := circuit.EvalOps{}
	x, y := uint64(999983), uint64(104729)
	wallace := toUint(Wallace(ops, toVector(x, 24), toVector(y, 24), gate.Unit{}))
	karatsuba := toUint(Karatsuba(ops, toVector(x, 24), toVector(y, 24), gate.Unit{}))
	if wallace != karatsuba {
		t.Errorf("Wallace and Karatsuba disagree: %d vs %d", wallace, karatsuba)
	}
	if wallace != x*y {
		t.Errorf("cross-check product wrong: %d, want %d", wallace, x*y)
	}
}

func TestWallaceZeroWidth(t *testing.T) {
	ops := circuit.EvalOps{}
	result := Wallace(ops, symbol.Vector{}, symbol.Vector{}, gate.Unit{})
	if got := toUint(result); got != 0 {
		t.Errorf("Wallace of empty vectors = %d, want 0", got)
	}
}
