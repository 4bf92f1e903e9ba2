// Package pattern builds placement masks that decide which cells may
// receive seed rooms.
package pattern

import (
	"math/rand"

	"github.com/aquilax/go-perlin"
)

// Options control the noise mask
type Options struct {
	// Radius is the half-width of the box the noise is averaged over.
	Radius int `yaml:"radius"`
	// Octaves is the number of perlin iterations.
	Octaves int `yaml:"octaves"`
	// Scale stretches the noise; larger values give bigger blobs.
	Scale float64 `yaml:"scale"`
}

// DefaultOptions returns the mask settings used when none are configured
func DefaultOptions() Options {
	return Options{Radius: 1, Octaves: 3, Scale: 6}
}

const (
	perlinAlpha = 2.0
	perlinBeta  = 2.0
)

// Mask is a per-cell eligibility grid
type Mask struct {
	rows, cols int
	cells      []bool
}

// Full returns a mask where every cell is eligible
func Full(rows, cols int) *Mask {
	m := &Mask{rows: rows, cols: cols, cells: make([]bool, rows*cols)}
	for i := range m.cells {
		m.cells[i] = true
	}
	return m
}

// NewNoiseMask samples 2-D perlin noise seeded from seed, box-averages it
// over opts.Radius and marks the cells whose average is non-negative.
func NewNoiseMask(rows, cols int, seed int64, opts Options) *Mask {
	if rows <= 0 || cols <= 0 {
		return &Mask{}
	}
	if opts.Octaves <= 0 {
		opts.Octaves = DefaultOptions().Octaves
	}
	if opts.Scale <= 0 {
		opts.Scale = DefaultOptions().Scale
	}
	if opts.Radius < 0 {
		opts.Radius = 0
	}

	p := perlin.NewPerlinRandSource(perlinAlpha, perlinBeta, int32(opts.Octaves), rand.NewSource(seed))
	raw := make([]float64, rows*cols)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			raw[row*cols+col] = p.Noise2D(float64(col)/opts.Scale, float64(row)/opts.Scale)
		}
	}

	m := &Mask{rows: rows, cols: cols, cells: make([]bool, rows*cols)}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			m.cells[row*cols+col] = average(raw, rows, cols, row, col, opts.Radius) >= 0
		}
	}
	return m
}

// average returns the mean of raw over the box of the given radius around
// (row, col), clipped to the grid
func average(raw []float64, rows, cols, row, col, radius int) float64 {
	sum, n := 0.0, 0
	for r := row - radius; r <= row+radius; r++ {
		if r < 0 || r >= rows {
			continue
		}
		for c := col - radius; c <= col+radius; c++ {
			if c < 0 || c >= cols {
				continue
			}
			sum += raw[r*cols+c]
			n++
		}
	}
	return sum / float64(n)
}

// Eligible reports whether a seed room may be placed at (row, col)
func (m *Mask) Eligible(row, col int) bool {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return false
	}
	return m.cells[row*m.cols+col]
}

// Fraction returns the share of eligible cells
func (m *Mask) Fraction() float64 {
	if len(m.cells) == 0 {
		return 0
	}
	n := 0
	for _, ok := range m.cells {
		if ok {
			n++
		}
	}
	return float64(n) / float64(len(m.cells))
}

// String draws the mask with '#' for eligible cells
func (m *Mask) String() string {
	buf := make([]byte, 0, (m.cols+1)*m.rows)
	for row := 0; row < m.rows; row++ {
		for col := 0; col < m.cols; col++ {
			if m.cells[row*m.cols+col] {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
