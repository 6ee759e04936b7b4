package blocks_test

import (
	"testing"

	"github.com/katalvlaran/tensorway/blocks"
	"github.com/katalvlaran/tensorway/field"
	"github.com/katalvlaran/tensorway/geom"
	"github.com/katalvlaran/tensorway/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// Fixtures
//----------------------------------------------------------------------------//

// squareGraph builds a # of two horizontal and two vertical lines whose
// crossings enclose a 10×10 face, with the dangling arms pruned away.
func squareGraph() *graph.Graph {
	lines := [][]geom.Vector{
		{{X: -5, Y: 0}, {X: 15, Y: 0}},
		{{X: -5, Y: 10}, {X: 15, Y: 10}},
		{{X: 0, Y: -5}, {X: 0, Y: 15}},
		{{X: 10, Y: -5}, {X: 10, Y: 15}},
	}
	return graph.New(lines, 1, graph.WithPruneDangling())
}

func squareParams() blocks.Params {
	return blocks.Params{MaxLength: 20, MinArea: 30, ShrinkSpacing: 1}
}

//----------------------------------------------------------------------------//
// Face extraction
//----------------------------------------------------------------------------//

// TestFindPolygons_Square: the pruned # graph is a single 4-cycle; both
// directed orientations close, each consuming its own edges, so exactly
// two 100-area faces come out and no directed edge is reused.
func TestFindPolygons_Square(t *testing.T) {
	f := blocks.NewFinder(squareGraph(), nil, squareParams())
	faces := f.FindPolygons()

	require.Len(t, faces, 2)
	for _, face := range faces {
		require.Len(t, face, 4)
		assert.InDelta(t, 100, face.Area(), 1e-6)
	}

	// All directed adjacency consumed.
	g := squareGraph()
	f2 := blocks.NewFinder(g, nil, squareParams())
	f2.FindPolygons()
	for _, n := range g.Nodes() {
		if !n.Dead() {
			assert.Empty(t, n.Adj)
		}
	}
}

// TestFindPolygons_MaxLength: a bound below the cycle length abandons
// every walk.
func TestFindPolygons_MaxLength(t *testing.T) {
	f := blocks.NewFinder(squareGraph(), nil, blocks.Params{MaxLength: 3})
	assert.Empty(t, f.FindPolygons())
}

// TestFindPolygons_SeaFiltered: a face whose average point is on water
// is dropped.
func TestFindPolygons_SeaFiltered(t *testing.T) {
	tf := field.NewTensorField(field.NoiseParams{})
	tf.SetSea(geom.Polygon{
		{X: -100, Y: -100}, {X: 100, Y: -100}, {X: 100, Y: 100}, {X: -100, Y: 100},
	})
	f := blocks.NewFinder(squareGraph(), tf, squareParams())
	assert.Empty(t, f.FindPolygons())
}

// TestFindPolygons_ParkFiltered: a face inside a park is dropped.
func TestFindPolygons_ParkFiltered(t *testing.T) {
	tf := field.NewTensorField(field.NoiseParams{})
	tf.SetParks([]geom.Polygon{
		{{X: -100, Y: -100}, {X: 100, Y: -100}, {X: 100, Y: 100}, {X: -100, Y: 100}},
	})
	f := blocks.NewFinder(squareGraph(), tf, squareParams())
	assert.Empty(t, f.FindPolygons())
}

//----------------------------------------------------------------------------//
// Refinement
//----------------------------------------------------------------------------//

// TestShrink: a 10×10 face offset inward by 1 becomes 8×8.
func TestShrink(t *testing.T) {
	f := blocks.NewFinder(squareGraph(), nil, squareParams())
	shrunk := f.Shrink()

	require.NotEmpty(t, shrunk)
	for _, p := range shrunk {
		assert.InDelta(t, 64, p.Area(), 1e-6)
	}
}

// TestShrink_CollapseDropped: an offset exceeding the half-width empties
// the polygon.
func TestShrink_CollapseDropped(t *testing.T) {
	p := squareParams()
	p.ShrinkSpacing = 6
	f := blocks.NewFinder(squareGraph(), nil, p)
	assert.Empty(t, f.Shrink())
}

// TestDivide: pieces of the divided generation each meet the area floor
// and jointly cover the parent area.
func TestDivide(t *testing.T) {
	f := blocks.NewFinder(squareGraph(), nil, squareParams(), blocks.WithSeed(11))
	f.FindPolygons()
	divided := f.Divide()

	require.NotEmpty(t, divided)
	var total float64
	for _, p := range divided {
		assert.GreaterOrEqual(t, p.Area(), 0.5*squareParams().MinArea)
		total += p.Area()
	}
	// Raw parents: 2 faces of 100 each; sliver discards may lose a
	// little.
	assert.LessOrEqual(t, total, 2*100.0+1e-6)
}

// TestDivide_ChanceNoDivide: probability 1 passes every block through
// whole.
func TestDivide_ChanceNoDivide(t *testing.T) {
	p := squareParams()
	p.ChanceNoDivide = 1
	f := blocks.NewFinder(squareGraph(), nil, p, blocks.WithSeed(3))
	f.FindPolygons()
	f.Shrink()
	divided := f.Divide()

	require.Len(t, divided, len(f.Shrunk()))
	for i := range divided {
		assert.Equal(t, f.Shrunk()[i], divided[i])
	}
}

// TestDivide_Determinism: identical seeds divide identically.
func TestDivide_Determinism(t *testing.T) {
	run := func() []geom.Polygon {
		f := blocks.NewFinder(squareGraph(), nil, squareParams(), blocks.WithSeed(42))
		f.Shrink()
		return f.Divide()
	}
	assert.Equal(t, run(), run())
}

//----------------------------------------------------------------------------//
// Stepper
//----------------------------------------------------------------------------//

// TestUpdate_MatchesBatch: stepping to exhaustion produces the same
// generations as the batch calls.
func TestUpdate_MatchesBatch(t *testing.T) {
	batch := blocks.NewFinder(squareGraph(), nil, squareParams(), blocks.WithSeed(5))
	batch.Shrink()
	batch.Divide()

	stepped := blocks.NewFinder(squareGraph(), nil, squareParams(), blocks.WithSeed(5))
	for stepped.Update() {
	}

	assert.Equal(t, batch.Raw(), stepped.Raw())
	assert.Equal(t, batch.Shrunk(), stepped.Shrunk())
	assert.Equal(t, batch.Divided(), stepped.Divided())
	assert.Equal(t, stepped.Divided(), stepped.Polygons())
}

// TestPolygons_Generations: Polygons always returns the most refined
// generation available.
func TestPolygons_Generations(t *testing.T) {
	f := blocks.NewFinder(squareGraph(), nil, squareParams(), blocks.WithSeed(9))
	raw := f.FindPolygons()
	assert.Equal(t, raw, f.Polygons())

	shrunk := f.Shrink()
	assert.Equal(t, shrunk, f.Polygons())

	divided := f.Divide()
	assert.Equal(t, divided, f.Polygons())
}
