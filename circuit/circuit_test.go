package circuit

import (
	"strconv"
	"testing"

	"github.com/Skilldehyde/gen-factor-sat/gate"
	"github.com/Skilldehyde/gen-factor-sat/symbol"
)

func bit(b byte) symbol.Symbol {
	if b == '1' {
		return symbol.Constant(symbol.One)
	}
	return symbol.Constant(symbol.Zero)
}

func toVector(bits string) symbol.Vector {
	v := make(symbol.Vector, len(bits))
	for i := 0; i < len(bits); i++ {
		v[i] = bit(bits[i])
	}
	return v
}

func toInt(v symbol.Vector) uint64 {
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

func TestHalfAdder(t *testing.T) {
	ops := EvalOps{}
	for a := 0; a < 2; a++ {
		for b := 0; b < 2; b++ {
			sum, carry := HalfAdder(ops, bit(byte('0'+a)), bit(byte('0'+b)), gate.Unit{})
			want := a + b
			got := int(carry.Bit())*2 + int(sum.Bit())
			if got != want {
				t.Errorf("HalfAdder(%d,%d) = %d, want %d", a, b, got, want)
			}
		}
	}
}

func TestFullAdder(t *testing.T) {
	ops := EvalOps{}
	for a := 0; a < 2; a++ {
		for b := 0; b < 2; b++ {
			for c := 0; c < 2; c++ {
				sum, carry := FullAdder(ops, bit(byte('0'+a)), bit(byte('0'+b)), bit(byte('0'+c)), gate.Unit{})
				want := a + b + c
				got := int(carry.Bit())*2 + int(sum.Bit())
				if got != want {
					t.Errorf("FullAdder(%d,%d,%d) = %d, want %d", a, b, c, got, want)
				}
			}
		}
	}
}

func TestNBitAdder(t *testing.T) {
	tests := []struct {
		x, y string
		want uint64
	}{
		{"0", "0", 0},
		{"1", "1", 2},
		{"101", "011", 8},
		{"1111", "1", 16},
		{"", "", 0},
	}

	ops := EvalOps{}
	for _, tt := range tests {
		result := NBitAdder(ops, toVector(tt.x), toVector(tt.y), symbol.Constant(symbol.Zero), gate.Unit{})
		if got := toInt(result); got != tt.want {
			t.Errorf("NBitAdder(%q,%q) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
		if len(result) != max(len(tt.x), len(tt.y))+1 {
			t.Errorf("NBitAdder(%q,%q) width = %d, want %d", tt.x, tt.y, len(result), max(len(tt.x), len(tt.y))+1)
		}
	}
}

func TestSubtract(t *testing.T) {
	tests := []struct {
		x, y string
		want uint64
	}{
		{"101", "011", 2},  // 5 - 3 = 2
		{"1111", "1", 14},  // 15 - 1 = 14
		{"1010", "1010", 0},
	}

	ops := EvalOps{}
	for _, tt := range tests {
		result := Subtract(ops, toVector(tt.x), toVector(tt.y), gate.Unit{})
		if got := toInt(result); got != tt.want {
			t.Errorf("Subtract(%q,%q) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestShift(t *testing.T) {
	result := Shift(toVector("101"), 2)
	if got := toInt(result); got != 20 {
		t.Errorf("Shift(101, 2) = %d, want 20", got)
	}
	if len(result) != 5 {
		t.Errorf("Shift(101, 2) width = %d, want 5", len(result))
	}

	noop := Shift(toVector("101"), 0)
	if toInt(noop) != 5 {
		t.Errorf("Shift by 0 should be a no-op")
	}
}

func TestNBitEquality(t *testing.T) {
	ops := EvalOps{}
	tests := []struct {
		x, y string
		want symbol.Bit
	}{
		{"101", "101", symbol.One},
		{"101", "001", symbol.Zero},
		{"01", "1", symbol.One},
		{"0", "", symbol.One},
		{"", "", symbol.One},
	}

	for _, tt := range tests {
		got := NBitEquality(ops, toVector(tt.x), toVector(tt.y), gate.Unit{})
		if got.Bit() != tt.want {
			t.Errorf("NBitEquality(%q,%q) = %v, want %v", tt.x, tt.y, got.Bit(), tt.want)
		}
	}
}

func TestMultiplexer(t *testing.T) {
	ops := EvalOps{}
	one, zero := symbol.Constant(symbol.One), symbol.Constant(symbol.Zero)

	if got := Multiplexer(ops, one, one, zero, gate.Unit{}); got.Bit() != symbol.One {
		t.Errorf("Multiplexer(1, 1, 0) = %v, want 1", got.Bit())
	}
	if got := Multiplexer(ops, zero, one, zero, gate.Unit{}); got.Bit() != symbol.Zero {
		t.Errorf("Multiplexer(0, 1, 0) = %v, want 0", got.Bit())
	}
}
