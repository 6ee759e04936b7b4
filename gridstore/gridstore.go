package gridstore

import (
	"math"

	"github.com/katalvlaran/tensorway/geom"
)

// GridStorage is a uniform spatial hash over a rectangular world region.
// Cell side length equals the separation distance dsep. Cells hold
// unordered point lists and are append-only during a generation pass.
type GridStorage struct {
	worldDimensions geom.Vector
	origin          geom.Vector
	dsep            float64
	dsepSq          float64
	gridWidth       int
	gridHeight      int
	grid            [][][]geom.Vector
}

// New constructs a GridStorage covering worldDimensions from origin with
// cell size dsep. Returns ErrEmptyWorld or ErrInvalidSeparation on
// non-positive inputs.
// Complexity: O(W×H) cells of memory.
func New(worldDimensions, origin geom.Vector, dsep float64) (*GridStorage, error) {
	// 1. Validate input.
	if worldDimensions.X <= 0 || worldDimensions.Y <= 0 {
		return nil, ErrEmptyWorld
	}
	if dsep <= 0 {
		return nil, ErrInvalidSeparation
	}

	// 2. Derive cell dimensions; at least one cell per axis so the
	// out-of-bounds remap to cell (0,0) always has a target.
	w := int(worldDimensions.X / dsep)
	h := int(worldDimensions.Y / dsep)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	// 3. Allocate the dense cell array.
	grid := make([][][]geom.Vector, w)
	for x := range grid {
		grid[x] = make([][]geom.Vector, h)
	}

	return &GridStorage{
		worldDimensions: worldDimensions,
		origin:          origin,
		dsep:            dsep,
		dsepSq:          dsep * dsep,
		gridWidth:       w,
		gridHeight:      h,
		grid:            grid,
	}, nil
}

// Dsep returns the separation distance the grid was built with.
func (gs *GridStorage) Dsep() float64 { return gs.dsep }

// AddAll copies every sample from another grid into this one. No
// separation is enforced.
func (gs *GridStorage) AddAll(other *GridStorage) {
	for _, column := range other.grid {
		for _, cell := range column {
			for _, sample := range cell {
				gs.AddSample(sample)
			}
		}
	}
}

// AddPolyline adds every point of line. No separation is enforced.
func (gs *GridStorage) AddPolyline(line []geom.Vector) {
	for _, v := range line {
		gs.AddSample(v)
	}
}

// AddSample appends v to its cell. It enforces no separation and does
// not deduplicate.
func (gs *GridStorage) AddSample(v geom.Vector) {
	cx, cy := gs.SampleCoords(v)
	gs.grid[cx][cy] = append(gs.grid[cx][cy], v)
}

// IsValidSample reports whether v is at least √dSq away from every
// stored point, checking the 3×3 cell neighborhood around v's cell.
// A stored point equal to v counts as a violation (distance zero):
// candidates are tested before they are stored, so an equal point is a
// genuine collision, not the candidate itself.
// Hot path: called at every integration step.
func (gs *GridStorage) IsValidSample(v geom.Vector, dSq float64) bool {
	cx, cy := gs.SampleCoords(v)
	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			nx, ny := cx+x, cy+y
			if !gs.cellInBounds(nx, ny) {
				continue
			}
			if !farFromSamples(v, gs.grid[nx][ny], dSq) {
				return false
			}
		}
	}
	return true
}

// IsValidSampleDsep is IsValidSample at the grid's own dsep².
func (gs *GridStorage) IsValidSampleDsep(v geom.Vector) bool {
	return gs.IsValidSample(v, gs.dsepSq)
}

// farFromSamples reports whether v is at least √dSq from every sample.
func farFromSamples(v geom.Vector, samples []geom.Vector, dSq float64) bool {
	for _, sample := range samples {
		if sample.DistanceToSq(v) < dSq {
			return false
		}
	}
	return true
}

// NearbyPoints returns every point stored in cells within
// ceil(distance/dsep − 0.5) + 1 cells of v's cell, a square
// over-approximation of the circular query of the given radius. The
// result is a superset of the exact circle query and includes v itself
// if stored. Callers needing exactness must post-filter.
func (gs *GridStorage) NearbyPoints(v geom.Vector, distance float64) []geom.Vector {
	radius := int(math.Ceil(distance/gs.dsep-0.5)) + 1
	cx, cy := gs.SampleCoords(v)

	var out []geom.Vector
	for x := -radius; x <= radius; x++ {
		for y := -radius; y <= radius; y++ {
			nx, ny := cx+x, cy+y
			if gs.cellInBounds(nx, ny) {
				out = append(out, gs.grid[nx][ny]...)
			}
		}
	}
	return out
}

// WorldToGrid translates a world point into grid space.
func (gs *GridStorage) WorldToGrid(v geom.Vector) geom.Vector {
	return v.Sub(gs.origin)
}

// GridToWorld translates a grid-space point back into world space.
func (gs *GridStorage) GridToWorld(v geom.Vector) geom.Vector {
	return v.Add(gs.origin)
}

// SampleCoords maps a world point to its cell coordinates. Out-of-bounds
// points are remapped to cell (0,0) rather than erroring; separation
// tests near the world edge may therefore consult the wrong neighborhood.
// Hot path: called at every integration step.
func (gs *GridStorage) SampleCoords(worldV geom.Vector) (int, int) {
	v := gs.WorldToGrid(worldV)
	if v.X < 0 || v.Y < 0 || v.X >= gs.worldDimensions.X || v.Y >= gs.worldDimensions.Y {
		return 0, 0
	}
	cx := int(v.X / gs.dsep)
	cy := int(v.Y / gs.dsep)
	// Clamp the far edge into the last cell.
	if cx >= gs.gridWidth {
		cx = gs.gridWidth - 1
	}
	if cy >= gs.gridHeight {
		cy = gs.gridHeight - 1
	}
	return cx, cy
}

// cellInBounds reports whether cell (x,y) lies inside the grid.
func (gs *GridStorage) cellInBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < gs.gridWidth && y < gs.gridHeight
}
