package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leonelquinteros/gotext"
)

func TestLocalesDir_SourceTree(t *testing.T) {
	if got := localesDir(); got != "locales" {
		t.Errorf("localesDir() = %q, want locales", got)
	}
}

func TestLocalesDir_NextToExecutable(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
	exe, err := os.Executable()
	if err != nil {
		t.Skipf("no executable path: %v", err)
	}
	want := filepath.Join(filepath.Dir(exe), "locales")
	if got := localesDir(); got != want {
		t.Errorf("localesDir() = %q, want %q", got, want)
	}
}

func TestMessages_WithoutCatalog(t *testing.T) {
	gotext.Configure(filepath.Join(t.TempDir(), "missing"), "en_GB", "default")
	t.Cleanup(func() { initGettext("en_GB") })

	if got, want := gotext.Get(msgGenerated, "Maze Fill", 2, 3, 4), "Maze Fill: 2x3 grid, seed 4"; got != want {
		t.Errorf("Get() = %q, want %q", got, want)
	}
	if got := gotext.Get(msgError); got != "Error" {
		t.Errorf("Get(msgError) = %q, want Error", got)
	}
}

func TestConfigureColor_UnknownMode(t *testing.T) {
	_, err := configureColor("sometimes")
	if err == nil || !strings.Contains(err.Error(), `"sometimes"`) {
		t.Errorf("configureColor() error = %v", err)
	}
}
