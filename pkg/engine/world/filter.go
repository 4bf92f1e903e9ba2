package world

// Mode is the tri-state requirement a Filter places on one attribute
type Mode int

const (
	Optional Mode = iota // no requirement
	On                   // attribute must be present
	Off                  // attribute must be absent
)

func (m Mode) String() string {
	switch m {
	case Optional:
		return "Optional"
	case On:
		return "On"
	case Off:
		return "Off"
	default:
		return "Unknown"
	}
}

// boolMode maps an attribute flag onto the mode that requires it
func boolMode(b bool) Mode {
	if b {
		return On
	}
	return Off
}

// Filter describes what a template must look like to be placed in a cell.
// The zero value has every field Optional and matches any template.
type Filter struct {
	SubsetID string
	Room     Mode
	Passage  Mode

	openings [directionCount]Mode
}

// EmptyFilter returns a filter with every field Off and no subset.
// It is the base element before any neighbor information is folded in.
func EmptyFilter() Filter {
	var f Filter
	f.SetAll(Off, "")
	return f
}

// Direction returns the requirement on the opening toward dir
func (f *Filter) Direction(dir Direction) Mode {
	if !dir.IsValid() {
		return Off
	}
	return f.openings[dir]
}

// SetDirection sets the requirement on the opening toward dir
func (f *Filter) SetDirection(dir Direction, m Mode) {
	if dir.IsValid() {
		f.openings[dir] = m
	}
}

// Kind returns the requirement placed on the given template kind
func (f *Filter) Kind(k Kind) Mode {
	if k == Passage {
		return f.Passage
	}
	return f.Room
}

// SetAll forces both kinds and all four directions to mode. The subset is
// kept only when mode is On.
func (f *Filter) SetAll(mode Mode, subsetID string) {
	f.setSubset(mode, subsetID)
	f.Room = mode
	f.Passage = mode
	for i := range f.openings {
		f.openings[i] = mode
	}
}

// SetAllWhere replaces every kind and direction currently equal to required with mode
func (f *Filter) SetAllWhere(mode, required Mode, subsetID string) {
	f.setSubset(mode, subsetID)
	if f.Room == required {
		f.Room = mode
	}
	if f.Passage == required {
		f.Passage = mode
	}
	for i := range f.openings {
		if f.openings[i] == required {
			f.openings[i] = mode
		}
	}
}

func (f *Filter) setSubset(mode Mode, subsetID string) {
	if mode == On {
		f.SubsetID = subsetID
	} else {
		f.SubsetID = ""
	}
}

// SetConnectionOn requires the opening toward dir. With onlyIfOptional set,
// a direction that is already forced is left alone.
func (f *Filter) SetConnectionOn(dir Direction, onlyIfOptional bool) {
	if !onlyIfOptional || f.Direction(dir) == Optional {
		f.SetDirection(dir, On)
	}
}

// SetConnectionOff forbids the opening toward dir. With onlyIfOptional set,
// a direction that is already forced is left alone.
func (f *Filter) SetConnectionOff(dir Direction, onlyIfOptional bool) {
	if !onlyIfOptional || f.Direction(dir) == Optional {
		f.SetDirection(dir, Off)
	}
}

// FillFromNeighbors resets the filter to Optional under subsetID and then
// mirrors each neighbor's opening toward this cell. A nil neighbor leaves
// that direction Optional.
func (f *Filter) FillFromNeighbors(north, south, west, east *Filter, subsetID string) {
	f.SetAll(Optional, "")
	f.SubsetID = subsetID

	if north != nil {
		f.openings[North] = north.openings[South]
	}
	if south != nil {
		f.openings[South] = south.openings[North]
	}
	if west != nil {
		f.openings[West] = west.openings[East]
	}
	if east != nil {
		f.openings[East] = east.openings[West]
	}
}
