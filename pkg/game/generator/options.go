package generator

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"dungeonforge/pkg/game/assemble"
	"dungeonforge/pkg/game/pattern"
)

// UnconnectedAction selects what the maze generator does with regions
// that are cut off from each other after filling
type UnconnectedAction string

const (
	LeaveAlone UnconnectedAction = "leave"
	ConnectAll UnconnectedAction = "connect"
	PruneSmall UnconnectedAction = "prune"
)

// Options holds the parameters of one generation run
type Options struct {
	Rows            int               `yaml:"rows"`
	Cols            int               `yaml:"cols"`
	Seed            int64             `yaml:"seed"`
	SubsetID        string            `yaml:"subset_id"`
	IgnoreBoundary  bool              `yaml:"ignore_boundary"`
	IncludeRooms    bool              `yaml:"include_rooms"`
	IncludePassages bool              `yaml:"include_passages"`
	RoomsPercentage float64           `yaml:"rooms_percentage"`
	Unconnected     UnconnectedAction `yaml:"unconnected"`
	Pattern         PatternOptions    `yaml:"pattern"`
	Cave            CaveOptions       `yaml:"cave"`

	// Logger receives progress messages. Nil discards them.
	Logger *log.Logger `yaml:"-"`
}

// PatternOptions configures the seed placement mask
type PatternOptions struct {
	Enabled         bool `yaml:"enabled"`
	pattern.Options `yaml:",inline"`
}

// CaveOptions configures the cavern automaton
type CaveOptions struct {
	InitialOpen float64 `yaml:"initial_open"`
	Iterations  int     `yaml:"iterations"`
}

// DefaultOptions returns the settings used when nothing is configured
func DefaultOptions() Options {
	return Options{
		Rows:            20,
		Cols:            40,
		Seed:            1,
		IncludeRooms:    true,
		IncludePassages: true,
		RoomsPercentage: 0.1,
		Unconnected:     ConnectAll,
		Pattern:         PatternOptions{Options: pattern.DefaultOptions()},
		Cave:            CaveOptions{InitialOpen: 0.4, Iterations: 4},
	}
}

// Load reads generation options from a YAML file. Keys missing from the
// file keep their default values.
func Load(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read options file: %w", err)
	}

	opts := DefaultOptions()
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return nil, fmt.Errorf("failed to parse options file: %w", err)
	}
	opts.fillDefaults()

	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &opts, nil
}

// Save writes the options to a YAML file
func (o *Options) Save(path string) error {
	data, err := yaml.Marshal(o)
	if err != nil {
		return fmt.Errorf("failed to encode options: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write options file: %w", err)
	}
	return nil
}

// fillDefaults replaces zero values that have no useful meaning
func (o *Options) fillDefaults() {
	def := DefaultOptions()
	if o.RoomsPercentage == 0 {
		o.RoomsPercentage = def.RoomsPercentage
	}
	if o.Unconnected == "" {
		o.Unconnected = def.Unconnected
	}
	if o.Cave.InitialOpen == 0 {
		o.Cave.InitialOpen = def.Cave.InitialOpen
	}
	if o.Pattern.Radius == 0 {
		o.Pattern.Radius = def.Pattern.Radius
	}
	if o.Pattern.Octaves == 0 {
		o.Pattern.Octaves = def.Pattern.Octaves
	}
	if o.Pattern.Scale == 0 {
		o.Pattern.Scale = def.Pattern.Scale
	}
}

// Validate checks the options for values no generator can use
func (o *Options) Validate() error {
	if o.Rows <= 0 || o.Cols <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, o.Rows, o.Cols)
	}
	if !o.IncludeRooms && !o.IncludePassages {
		return fmt.Errorf("generator: at least one of include_rooms and include_passages must be set")
	}
	switch o.Unconnected {
	case LeaveAlone, ConnectAll, PruneSmall:
	default:
		return fmt.Errorf("generator: unknown unconnected action %q", o.Unconnected)
	}
	if o.RoomsPercentage < 0 || o.RoomsPercentage > 1 {
		return fmt.Errorf("generator: rooms_percentage %v outside [0,1]", o.RoomsPercentage)
	}
	return nil
}

func (o Options) assembleOptions() assemble.Options {
	return assemble.Options{
		IgnoreBoundary: o.IgnoreBoundary,
		SubsetID:       o.SubsetID,
		AllowRooms:     o.IncludeRooms,
		AllowPassages:  o.IncludePassages,
	}
}
