package streamline

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/tensorway/geom"
)

// Sentinel errors for generator construction.
var (
	// ErrNilIntegrator indicates a nil field integrator.
	ErrNilIntegrator = errors.New("streamline: integrator is nil")
	// ErrInvalidStep indicates a non-positive dstep.
	ErrInvalidStep = errors.New("streamline: dstep must be positive")
)

// Params carries the spacing and search distances of one generation
// pass. All distances are in world units; JoinAngle is radians.
type Params struct {
	// Dsep is the streamline seed separation distance.
	Dsep float64
	// Dtest is the separation enforced during tracing; clamped to ≤ Dsep.
	Dtest float64
	// Dstep is the integration step length. Must be ≤ Dsep for the
	// separation guarantee to hold; a violation is logged, not fatal.
	Dstep float64
	// DCircleJoin is the distance under which forward and backward
	// branches close into a circle, and sizes the self-collision window.
	DCircleJoin float64
	// DLookahead bounds the endpoint-joining candidate search.
	DLookahead float64
	// JoinAngle is the maximum heading deviation (radians) accepted when
	// joining a dangling end.
	JoinAngle float64
	// PathIterations bounds the integration steps of one streamline.
	PathIterations int
	// SeedTries bounds the random seed attempts per streamline slot.
	SeedTries int
	// SimplifyTolerance drives the exported-form decimation.
	SimplifyTolerance float64
	// CollideEarly is the per-streamline probability (0–1) of tracing
	// against both family grids, stopping earlier at collisions.
	CollideEarly float64
}

// Streamline is one traced polyline, tagged with its family. The dense
// traced form and the decimated exported form coexist.
type Streamline struct {
	// Points is the dense traced point sequence.
	Points []geom.Vector
	// Simplified is the decimated exported form, filled after joining.
	Simplified []geom.Vector
	// Major tags the eigendirection family the streamline follows.
	Major bool
}

// Phase identifies the generator's position in the resumable pass.
type Phase int

const (
	// PhaseSeeding traces one streamline per Update call.
	PhaseSeeding Phase = iota
	// PhaseJoining runs the dangling-end join pass.
	PhaseJoining
	// PhaseDone means the pass has finished; Update is a no-op.
	PhaseDone
)

// defaultRNGSeed is the fixed "zero" seed used when callers pass
// seed==0. Arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// Option configures optional generator behavior.
type Option func(*Options)

// Options holds the configurable knobs applied at construction.
type Options struct {
	// Seed drives seeding and collide-early draws; 0 selects the fixed
	// default seed.
	Seed int64
	// SeedAtEndpoints reuses open streamline endpoints as candidate
	// seeds for the opposite family.
	SeedAtEndpoints bool
}

// DefaultOptions returns Options with the default seed and endpoint
// seeding disabled.
func DefaultOptions() Options {
	return Options{Seed: 0, SeedAtEndpoints: false}
}

// WithSeed returns an Option fixing the random seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithEndpointSeeds returns an Option enabling endpoint candidate seeds.
func WithEndpointSeeds() Option {
	return func(o *Options) { o.SeedAtEndpoints = true }
}
