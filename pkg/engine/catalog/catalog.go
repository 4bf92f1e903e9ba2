// Package catalog holds the authored templates a grid is assembled from.
package catalog

import (
	"errors"
	"math/rand"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"dungeonforge/pkg/engine/world"
)

var (
	// ErrNoMatchingTemplate is returned when no template satisfies a filter
	ErrNoMatchingTemplate = errors.New("catalog: no template matches filter")
	// ErrEmptyCatalog is returned when a catalog with no templates is queried
	ErrEmptyCatalog = errors.New("catalog: catalog is empty")
)

// Catalog is an ordered, read-only-during-generation collection of templates
type Catalog struct {
	templates []world.Template
}

// New creates a catalog holding the given templates in order
func New(templates ...world.Template) *Catalog {
	c := &Catalog{}
	for _, t := range templates {
		c.Add(t)
	}
	return c
}

// Add appends a template. Nil templates are ignored.
func (c *Catalog) Add(t world.Template) {
	if t != nil {
		c.templates = append(c.templates, t)
	}
}

// Merge appends every template of other
func (c *Catalog) Merge(other *Catalog) {
	if other == nil {
		return
	}
	c.templates = append(c.templates, other.templates...)
}

// Len returns the number of templates
func (c *Catalog) Len() int {
	return len(c.templates)
}

// All returns the templates in catalog order
func (c *Catalog) All() []world.Template {
	out := make([]world.Template, len(c.templates))
	copy(out, c.templates)
	return out
}

// Find returns the first template whose id matches, case-insensitively
func (c *Catalog) Find(id string) (world.Template, bool) {
	for _, t := range c.templates {
		if strings.EqualFold(t.ID(), id) {
			return t, true
		}
	}
	return nil, false
}

// FindBySubset returns every template in the given subset
func (c *Catalog) FindBySubset(subsetID string) []world.Template {
	var out []world.Template
	for _, t := range c.templates {
		if strings.EqualFold(t.SubsetID(), subsetID) {
			out = append(out, t)
		}
	}
	return out
}

// SubsetIDs returns the distinct subset ids in first-seen order
func (c *Catalog) SubsetIDs() []string {
	seen := mapset.New[string]()
	var ids []string
	for _, t := range c.templates {
		key := strings.ToLower(t.SubsetID())
		if seen.Has(key) {
			continue
		}
		seen.Put(key)
		ids = append(ids, t.SubsetID())
	}
	return ids
}

// Enum returns every template matching f in catalog order
func (c *Catalog) Enum(f world.Filter) []world.Template {
	var out []world.Template
	for _, t := range c.templates {
		if t.Matches(f) {
			out = append(out, t)
		}
	}
	return out
}

// FindRandom draws uniformly from the templates matching f
func (c *Catalog) FindRandom(f world.Filter, rng *rand.Rand) (world.Template, error) {
	if len(c.templates) == 0 {
		return nil, ErrEmptyCatalog
	}
	found := c.Enum(f)
	if len(found) == 0 {
		return nil, ErrNoMatchingTemplate
	}
	return found[rng.Intn(len(found))], nil
}

// EmptyFilter returns the all-Off base filter for this catalog's templates
func (c *Catalog) EmptyFilter() (world.Filter, error) {
	if len(c.templates) == 0 {
		return world.Filter{}, ErrEmptyCatalog
	}
	return world.EmptyFilter(), nil
}
