package cave

import (
	"math/rand"
	"testing"
)

func TestGenerate_BorderIsPermanent(t *testing.T) {
	l := Generate(12, 20, rand.New(rand.NewSource(1)), 0.4, 4)
	for row := 0; row < l.Rows(); row++ {
		for col := 0; col < l.Cols(); col++ {
			border := row == 0 || col == 0 || row == l.Rows()-1 || col == l.Cols()-1
			if border && l.At(row, col) != PermanentWall {
				t.Errorf("border cell %d,%d = %v, want PermanentWall", row, col, l.At(row, col))
			}
			if !border && l.At(row, col) == PermanentWall {
				t.Errorf("interior cell %d,%d is a permanent wall", row, col)
			}
		}
	}
}

func TestGenerate_InitialOpenCount(t *testing.T) {
	l := Generate(10, 10, rand.New(rand.NewSource(2)), 0.4, 0)
	if got, want := l.FloorCount(), 40; got != want {
		t.Errorf("FloorCount() = %d, want %d before smoothing", got, want)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a := Generate(15, 25, rand.New(rand.NewSource(9)), 0.45, 3)
	b := Generate(15, 25, rand.New(rand.NewSource(9)), 0.45, 3)
	if a.String() != b.String() {
		t.Error("same seed produced different caverns")
	}
}

func TestGenerate_TinyGrid(t *testing.T) {
	l := Generate(2, 2, rand.New(rand.NewSource(1)), 0.9, 2)
	if l.FloorCount() != 0 {
		t.Errorf("2x2 layout has %d floor tiles, want 0", l.FloorCount())
	}
}
