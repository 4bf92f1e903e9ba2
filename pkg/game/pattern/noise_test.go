package pattern

import "testing"

func TestNewNoiseMask_Deterministic(t *testing.T) {
	a := NewNoiseMask(20, 30, 7, DefaultOptions())
	b := NewNoiseMask(20, 30, 7, DefaultOptions())
	if a.String() != b.String() {
		t.Error("same seed produced different masks")
	}
}

func TestNewNoiseMask_Mixed(t *testing.T) {
	m := NewNoiseMask(40, 40, 3, DefaultOptions())
	f := m.Fraction()
	if f <= 0 || f >= 1 {
		t.Errorf("Fraction() = %v, want a mix of eligible and ineligible cells", f)
	}
}

func TestMask_OutOfBounds(t *testing.T) {
	m := Full(2, 2)
	if !m.Eligible(1, 1) {
		t.Error("Full mask rejected an in-bounds cell")
	}
	if m.Eligible(2, 0) || m.Eligible(0, -1) {
		t.Error("mask accepted an out-of-bounds cell")
	}
	if got := m.Fraction(); got != 1 {
		t.Errorf("Full Fraction() = %v, want 1", got)
	}
}

func TestNewNoiseMask_EmptySize(t *testing.T) {
	m := NewNoiseMask(0, 5, 1, DefaultOptions())
	if m.Eligible(0, 0) || m.Fraction() != 0 {
		t.Error("empty mask reported eligible cells")
	}
}
