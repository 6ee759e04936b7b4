package graph

import "github.com/katalvlaran/tensorway/geom"

// nodeMergeRadius is the fuzzy merge distance: a new node closer than
// this to an existing node is the same node. Absorbs floating-point
// near-coincidences between independently traced streamlines.
const nodeMergeRadius = 0.001

// Node is one planar graph vertex, arena-indexed by its Graph.
type Node struct {
	// Value is the node's world position.
	Value geom.Vector
	// Adj holds arena indices of the node's neighbors. Face extraction
	// consumes entries destructively; Graph.ResetAdjacency restores them.
	Adj []int

	neighbors map[int]struct{}
	segments  map[int]struct{}
	dead      bool
}

// Degree returns the number of live neighbors.
func (n *Node) Degree() int { return len(n.neighbors) }

// Dead reports whether the node was removed by dangling pruning.
func (n *Node) Dead() bool { return n.dead }

// Option configures graph construction.
type Option func(*Options)

// Options holds the configurable construction knobs.
type Options struct {
	// PruneDangling removes degree-≤1 nodes recursively after linking.
	PruneDangling bool
}

// DefaultOptions returns Options with pruning disabled.
func DefaultOptions() Options {
	return Options{PruneDangling: false}
}

// WithPruneDangling returns an Option enabling recursive dangling-node
// removal.
func WithPruneDangling() Option {
	return func(o *Options) { o.PruneDangling = true }
}
