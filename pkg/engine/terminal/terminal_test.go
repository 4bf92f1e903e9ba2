package terminal

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetSize_Positive(t *testing.T) {
	w, h := GetSize()
	if w <= 0 || h <= 0 {
		t.Errorf("GetSize() = %d, %d, want positive values", w, h)
	}
}

func TestIsTerminal_RegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if IsTerminal(f) {
		t.Error("a regular file reported as a terminal")
	}
	if IsTerminal(nil) {
		t.Error("nil file reported as a terminal")
	}
}

func TestFits(t *testing.T) {
	if !Fits(1) {
		t.Error("a single column should always fit")
	}
	if Fits(1 << 20) {
		t.Error("a million columns should not fit")
	}
}
