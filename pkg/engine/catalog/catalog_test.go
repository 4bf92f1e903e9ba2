package catalog

import (
	"errors"
	"math/rand"
	"path/filepath"
	"testing"

	"dungeonforge/pkg/engine/world"
)

func TestStandard_HasEveryCombination(t *testing.T) {
	c := Standard("")
	if got, want := c.Len(), 31; got != want {
		t.Fatalf("Standard().Len() = %d, want %d", got, want)
	}
	if _, ok := c.Find("ROOM-NESW"); !ok {
		t.Error("Find is not case-insensitive or room-nesw is missing")
	}
	if _, ok := c.Find("passage-closed"); ok {
		t.Error("standard catalog should not contain a closed passage")
	}
	if _, ok := c.Find("room-closed"); !ok {
		t.Error("standard catalog is missing the closed room")
	}
}

func TestFindRandom_DeterministicForSeed(t *testing.T) {
	c := Standard("")
	f := world.Filter{Passage: world.On}

	draw := func(seed int64) []string {
		rng := rand.New(rand.NewSource(seed))
		var ids []string
		for i := 0; i < 20; i++ {
			tmpl, err := c.FindRandom(f, rng)
			if err != nil {
				t.Fatalf("FindRandom: %v", err)
			}
			ids = append(ids, tmpl.ID())
		}
		return ids
	}

	a, b := draw(42), draw(42)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("draw %d differs for the same seed: %s vs %s", i, a[i], b[i])
		}
	}
}

func TestFindRandom_OnlyReturnsMatches(t *testing.T) {
	c := Standard("")
	var f world.Filter
	f.Room = world.On
	f.SetDirection(world.North, world.On)
	f.SetDirection(world.South, world.Off)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		tmpl, err := c.FindRandom(f, rng)
		if err != nil {
			t.Fatalf("FindRandom: %v", err)
		}
		if !tmpl.Matches(f) {
			t.Fatalf("FindRandom returned %v which does not match", tmpl)
		}
	}
	if n := len(c.Enum(f)); n != 4 {
		t.Errorf("Enum found %d rooms open North and closed South, want 4", n)
	}
}

func TestFindRandom_Errors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	if _, err := New().FindRandom(world.Filter{}, rng); !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("empty catalog error = %v, want ErrEmptyCatalog", err)
	}
	if _, err := New().EmptyFilter(); !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("EmptyFilter error = %v, want ErrEmptyCatalog", err)
	}

	f := world.Filter{SubsetID: "nowhere"}
	if _, err := Standard("caves").FindRandom(f, rng); !errors.Is(err, ErrNoMatchingTemplate) {
		t.Errorf("mismatched subset error = %v, want ErrNoMatchingTemplate", err)
	}
}

func TestSubsets(t *testing.T) {
	c := Standard("caves")
	c.Merge(Standard("Halls"))
	c.Add(world.NewDirectionalRoom("extra", world.Room, "CAVES", world.North))

	ids := c.SubsetIDs()
	if len(ids) != 2 || ids[0] != "caves" || ids[1] != "Halls" {
		t.Errorf("SubsetIDs() = %v, want [caves Halls]", ids)
	}
	if got := len(c.FindBySubset("halls")); got != 31 {
		t.Errorf("FindBySubset(halls) = %d templates, want 31", got)
	}
	if got := len(c.FindBySubset("caves")); got != 32 {
		t.Errorf("FindBySubset(caves) = %d templates, want 32", got)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := Standard("caves")
	src.Add(world.NewDirectionalRoom("hall", world.Passage, "halls", world.East, world.West))

	path := filepath.Join(dir, "mixed"+FileExtension)
	if err := src.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if got.Len() != src.Len() {
		t.Fatalf("loaded %d templates, want %d", got.Len(), src.Len())
	}
	for i, want := range src.All() {
		have := got.All()[i]
		if have.ID() != want.ID() || have.Kind() != want.Kind() || have.SubsetID() != want.SubsetID() {
			t.Errorf("template %d = %s/%v/%s, want %s/%v/%s", i,
				have.ID(), have.Kind(), have.SubsetID(), want.ID(), want.Kind(), want.SubsetID())
		}
		for _, dir := range world.AllDirections() {
			if have.IsOpen(dir) != want.IsOpen(dir) {
				t.Errorf("template %s: IsOpen(%v) = %v, want %v", want.ID(), dir, have.IsOpen(dir), want.IsOpen(dir))
			}
		}
	}
}

func TestLoad_RejectsUnknownType(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad"+FileExtension)
	writeFile(t, path, "rooms:\n  - id: odd\n    type: tunnel\n    north: true\n")

	if _, err := Load(path); err == nil {
		t.Error("Load accepted an unknown room type")
	}
}

func TestLoad_DefaultSubset(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "caves"+FileExtension)
	writeFile(t, path, "subset: caves\nrooms:\n  - id: a\n    type: room\n    north: true\n  - id: b\n    type: passage\n    subset: halls\n    east: true\n    west: true\n")

	c, err := LoadPath(path)
	if err != nil {
		t.Fatalf("LoadPath: %v", err)
	}
	a, _ := c.Find("a")
	b, _ := c.Find("b")
	if a == nil || b == nil {
		t.Fatal("templates a and b not loaded")
	}
	if a.SubsetID() != "caves" {
		t.Errorf("a subset = %q, want caves", a.SubsetID())
	}
	if b.SubsetID() != "halls" || b.Kind() != world.Passage || !b.IsOpen(world.East) || b.IsOpen(world.North) {
		t.Errorf("b loaded incorrectly: %v subset %q", b, b.SubsetID())
	}
}

func TestLoad_OpenList(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "named"+FileExtension)
	writeFile(t, path, "rooms:\n  - id: bend\n    type: passage\n    open: [north, e]\n  - id: mixed\n    type: room\n    south: true\n    open: [W]\n")

	c, err := LoadPath(path)
	if err != nil {
		t.Fatalf("LoadPath: %v", err)
	}
	bend, _ := c.Find("bend")
	if bend == nil || !bend.IsOpen(world.North) || !bend.IsOpen(world.East) || bend.IsOpen(world.South) || bend.IsOpen(world.West) {
		t.Errorf("bend loaded incorrectly: %v", bend)
	}
	mixed, _ := c.Find("mixed")
	if mixed == nil || !mixed.IsOpen(world.South) || !mixed.IsOpen(world.West) || mixed.IsOpen(world.North) {
		t.Errorf("mixed loaded incorrectly: %v", mixed)
	}
}

func TestLoad_RejectsUnknownDirection(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad"+FileExtension)
	writeFile(t, path, "rooms:\n  - id: odd\n    type: room\n    open: [up]\n")

	if _, err := Load(path); err == nil {
		t.Error("Load accepted an unknown direction")
	}
}
