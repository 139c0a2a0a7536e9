package loopgen

import (
	"fmt"
)

// Validate checks the grid's cross-references: every face has at least
// three corners and one neighbour slot per corner, all indices are in
// range, every face appears in the corner list of each of its dots, and
// edge adjacency is reciprocal. It does not attempt to prove planarity;
// a structurally consistent but non-planar input surfaces later as
// ErrTopologyViolated.
// Complexity: O(F·d + D·d).
func (g *Grid) Validate() error {
	if len(g.Faces) == 0 {
		return ErrEmptyGrid
	}

	var fi, di, nb int
	for fi = range g.Faces {
		f := &g.Faces[fi]
		if len(f.Dots) < 3 {
			return fmt.Errorf("face %d has %d corners: %w", fi, len(f.Dots), ErrGridInvalid)
		}
		if len(f.Neighbours) != len(f.Dots) {
			return fmt.Errorf("face %d has %d corners but %d neighbour slots: %w",
				fi, len(f.Dots), len(f.Neighbours), ErrGridInvalid)
		}
		for _, di = range f.Dots {
			if di < 0 || di >= len(g.Dots) {
				return fmt.Errorf("face %d references dot %d: %w", fi, di, ErrGridInvalid)
			}
			if !containsFace(g.Dots[di].Faces, fi) {
				return fmt.Errorf("dot %d does not list face %d: %w", di, fi, ErrGridInvalid)
			}
		}
		for _, nb = range f.Neighbours {
			if nb == Outside {
				continue
			}
			if nb < 0 || nb >= len(g.Faces) {
				return fmt.Errorf("face %d references neighbour %d: %w", fi, nb, ErrGridInvalid)
			}
			if !containsFace(g.Faces[nb].Neighbours, fi) {
				return fmt.Errorf("faces %d and %d disagree on adjacency: %w", fi, nb, ErrGridInvalid)
			}
		}
	}

	for di = range g.Dots {
		d := &g.Dots[di]
		if len(d.Faces) < 2 {
			return fmt.Errorf("dot %d touches %d faces: %w", di, len(d.Faces), ErrGridInvalid)
		}
		for _, fi = range d.Faces {
			if fi == Outside {
				continue
			}
			if fi < 0 || fi >= len(g.Faces) {
				return fmt.Errorf("dot %d references face %d: %w", di, fi, ErrGridInvalid)
			}
		}
	}

	return nil
}

func containsFace(list []int, face int) bool {
	for _, f := range list {
		if f == face {
			return true
		}
	}

	return false
}

// NewSquareGrid builds the width×height square tiling: faces are unit
// squares indexed row-major, corners are the (width+1)×(height+1) lattice
// dots. Face corners run clockwise from the top-left; faces around a dot
// run clockwise starting in its upper-left quadrant, with the exterior
// compressed to a single Outside entry per contiguous stretch.
// Returns ErrEmptyGrid for non-positive dimensions.
// Complexity: O(width×height).
func NewSquareGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}

	g := &Grid{
		Faces: make([]Face, width*height),
		Dots:  make([]Dot, (width+1)*(height+1)),
	}

	// dot (x,y) -> lattice index
	dot := func(x, y int) int { return y*(width+1) + x }
	// face (x,y) -> row-major index, Outside when off the board
	face := func(x, y int) int {
		if x < 0 || x >= width || y < 0 || y >= height {
			return Outside
		}

		return y*width + x
	}

	var x, y int
	for y = 0; y < height; y++ {
		for x = 0; x < width; x++ {
			g.Faces[face(x, y)] = Face{
				// clockwise: top-left, top-right, bottom-right, bottom-left
				Dots: []int{dot(x, y), dot(x+1, y), dot(x+1, y+1), dot(x, y+1)},
				// across the edges top, right, bottom, left
				Neighbours: []int{face(x, y-1), face(x+1, y), face(x, y+1), face(x-1, y)},
			}
		}
	}

	for y = 0; y <= height; y++ {
		for x = 0; x <= width; x++ {
			// clockwise quadrants around the dot
			ring := []int{face(x-1, y-1), face(x, y-1), face(x, y), face(x-1, y)}
			g.Dots[dot(x, y)] = Dot{Faces: compressOutside(ring)}
		}
	}

	return g, nil
}

// compressOutside collapses consecutive Outside entries of a cyclic face
// ring into one, including across the wrap point, so the exterior face
// appears once per contiguous stretch.
func compressOutside(ring []int) []int {
	out := make([]int, 0, len(ring))
	for _, f := range ring {
		if f == Outside && len(out) > 0 && out[len(out)-1] == Outside {
			continue
		}
		out = append(out, f)
	}
	if len(out) > 1 && out[0] == Outside && out[len(out)-1] == Outside {
		out = out[:len(out)-1]
	}

	return out
}
