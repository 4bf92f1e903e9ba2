package catalog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"dungeonforge/pkg/engine/world"
)

// FileExtension is the suffix LoadDir looks for
const FileExtension = ".rooms.yaml"

// fileData is the on-disk form of a catalog file
type fileData struct {
	Subset string      `yaml:"subset,omitempty"`
	Rooms  []roomEntry `yaml:"rooms"`
}

type roomEntry struct {
	ID     string `yaml:"id"`
	Type   string `yaml:"type"`
	Subset string `yaml:"subset,omitempty"`
	North  bool   `yaml:"north,omitempty"`
	East   bool   `yaml:"east,omitempty"`
	South  bool   `yaml:"south,omitempty"`
	West   bool   `yaml:"west,omitempty"`
	// Open lists openings by name or initial, as an alternative to the flags.
	Open []string `yaml:"open,omitempty"`
}

func (e roomEntry) openings() ([]world.Direction, error) {
	flags := map[world.Direction]bool{
		world.North: e.North,
		world.East:  e.East,
		world.South: e.South,
		world.West:  e.West,
	}
	for _, name := range e.Open {
		dir, ok := world.ParseDirection(name)
		if !ok {
			return nil, fmt.Errorf("unknown direction %q", name)
		}
		flags[dir] = true
	}

	var open []world.Direction
	for _, dir := range world.AllDirections() {
		if flags[dir] {
			open = append(open, dir)
		}
	}
	return open, nil
}

// Decode reads a catalog file from r
func Decode(r io.Reader) (*Catalog, error) {
	var data fileData
	if err := yaml.NewDecoder(r).Decode(&data); err != nil {
		if err == io.EOF {
			return New(), nil
		}
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	c := New()
	for i, entry := range data.Rooms {
		if strings.TrimSpace(entry.ID) == "" {
			return nil, fmt.Errorf("room %d: missing id", i)
		}
		kind, err := world.ParseKind(entry.Type)
		if err != nil {
			return nil, fmt.Errorf("room %q: %w", entry.ID, err)
		}
		subset := entry.Subset
		if subset == "" {
			subset = data.Subset
		}
		open, err := entry.openings()
		if err != nil {
			return nil, fmt.Errorf("room %q: %w", entry.ID, err)
		}
		c.Add(world.NewDirectionalRoom(entry.ID, kind, subset, open...))
	}
	return c, nil
}

// Load reads a catalog file from disk
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// LoadDir merges every catalog file in dir, in lexical order
func LoadDir(dir string) (*Catalog, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*"+FileExtension))
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)

	c := New()
	for _, path := range matches {
		part, err := Load(path)
		if err != nil {
			return nil, err
		}
		c.Merge(part)
	}
	return c, nil
}

// LoadPath loads a single file or, when path is a directory, every catalog file in it
func LoadPath(path string) (*Catalog, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	if info.IsDir() {
		return LoadDir(path)
	}
	return Load(path)
}

// Encode writes the catalog to w. A subset shared by every template becomes
// the file default and is omitted from individual entries.
func (c *Catalog) Encode(w io.Writer) error {
	data := fileData{Subset: c.defaultSubset()}
	for _, t := range c.templates {
		entry := roomEntry{
			ID:    t.ID(),
			Type:  t.Kind().String(),
			North: t.IsOpen(world.North),
			East:  t.IsOpen(world.East),
			South: t.IsOpen(world.South),
			West:  t.IsOpen(world.West),
		}
		if !strings.EqualFold(t.SubsetID(), data.Subset) {
			entry.Subset = t.SubsetID()
		}
		data.Rooms = append(data.Rooms, entry)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&data); err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	return enc.Close()
}

// Save writes the catalog to path
func (c *Catalog) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to write catalog file: %w", err)
	}
	if err := c.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (c *Catalog) defaultSubset() string {
	if len(c.templates) == 0 {
		return ""
	}
	first := c.templates[0].SubsetID()
	for _, t := range c.templates[1:] {
		if !strings.EqualFold(t.SubsetID(), first) {
			return ""
		}
	}
	return first
}
