package world

import (
	"fmt"
	"strings"
)

// Kind distinguishes full rooms from connecting passages
type Kind int

const (
	Room Kind = iota
	Passage
)

func (k Kind) String() string {
	switch k {
	case Room:
		return "room"
	case Passage:
		return "passage"
	default:
		return "unknown"
	}
}

// ParseKind parses "room" or "passage", case-insensitively
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "room":
		return Room, nil
	case "passage":
		return Passage, nil
	}
	return Room, fmt.Errorf("unknown room type %q", s)
}

// Template is an authored tile that can be placed in a cell
type Template interface {
	ID() string
	SubsetID() string
	Kind() Kind
	IsOpen(dir Direction) bool
	// Connects reports whether this template, placed next to other in
	// direction dir, shares an opening with it.
	Connects(dir Direction, other Template) bool
	Matches(f Filter) bool
	// Requirement returns the filter that describes exactly this template.
	Requirement() Filter
	Clone() Template
}

// DirectionalRoom is a template with one open flag per cardinal direction
type DirectionalRoom struct {
	id     string
	subset string
	kind   Kind
	open   [directionCount]bool
}

// NewDirectionalRoom creates a template open toward the listed directions
func NewDirectionalRoom(id string, kind Kind, subsetID string, open ...Direction) *DirectionalRoom {
	r := &DirectionalRoom{id: id, subset: subsetID, kind: kind}
	for _, dir := range open {
		if dir.IsValid() {
			r.open[dir] = true
		}
	}
	return r
}

func (r *DirectionalRoom) ID() string       { return r.id }
func (r *DirectionalRoom) SubsetID() string { return r.subset }
func (r *DirectionalRoom) Kind() Kind       { return r.kind }

// IsOpen returns true if the template has an opening toward dir
func (r *DirectionalRoom) IsOpen(dir Direction) bool {
	return dir.IsValid() && r.open[dir]
}

// Connects returns true if r is open toward dir and other is open back
func (r *DirectionalRoom) Connects(dir Direction, other Template) bool {
	if other == nil {
		return false
	}
	return r.IsOpen(dir) && other.IsOpen(dir.Opposite())
}

// Matches checks the subset, then the kind, then every direction
func (r *DirectionalRoom) Matches(f Filter) bool {
	if f.SubsetID != "" && !strings.EqualFold(f.SubsetID, r.subset) {
		return false
	}

	switch f.Room {
	case On:
		if r.kind != Room {
			return false
		}
	case Off:
		if r.kind == Room {
			return false
		}
	}
	switch f.Passage {
	case On:
		if r.kind != Passage {
			return false
		}
	case Off:
		if r.kind == Passage {
			return false
		}
	}

	for _, dir := range AllDirections() {
		switch f.Direction(dir) {
		case On:
			if !r.open[dir] {
				return false
			}
		case Off:
			if r.open[dir] {
				return false
			}
		}
	}
	return true
}

// Requirement returns the filter that this template exactly satisfies
func (r *DirectionalRoom) Requirement() Filter {
	f := Filter{SubsetID: r.subset}
	f.Room = boolMode(r.kind == Room)
	f.Passage = boolMode(r.kind == Passage)
	for _, dir := range AllDirections() {
		f.openings[dir] = boolMode(r.open[dir])
	}
	return f
}

// Clone returns an independent copy of the template
func (r *DirectionalRoom) Clone() Template {
	c := *r
	return &c
}

func (r *DirectionalRoom) String() string {
	return fmt.Sprintf("%s(%s)", r.id, r.kind)
}
