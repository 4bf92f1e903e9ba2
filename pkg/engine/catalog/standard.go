package catalog

import (
	"strings"

	"dungeonforge/pkg/engine/world"
)

// TemplateID builds the conventional id for a template, e.g. "room-nes"
func TemplateID(kind world.Kind, open ...world.Direction) string {
	var b strings.Builder
	b.WriteString(kind.String())
	b.WriteString("-")
	for _, dir := range world.AllDirections() {
		for _, o := range open {
			if o == dir {
				b.WriteString(dir.Letter())
				break
			}
		}
	}
	if len(open) == 0 {
		b.WriteString("closed")
	}
	return b.String()
}

// Standard returns every opening combination for both kinds in subsetID:
// sixteen rooms, including the closed room, and fifteen passages.
func Standard(subsetID string) *Catalog {
	c := New()
	for _, kind := range []world.Kind{world.Room, world.Passage} {
		for mask := 0; mask < 16; mask++ {
			if kind == world.Passage && mask == 0 {
				continue
			}
			var open []world.Direction
			for _, dir := range world.AllDirections() {
				if mask&(1<<uint(dir)) != 0 {
					open = append(open, dir)
				}
			}
			c.Add(world.NewDirectionalRoom(TemplateID(kind, open...), kind, subsetID, open...))
		}
	}
	return c
}
