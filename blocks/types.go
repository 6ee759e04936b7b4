package blocks

import "math/rand"

// Params carries the face-extraction and refinement knobs.
type Params struct {
	// MaxLength bounds the node count of one face walk; longer walks are
	// abandoned. Zero selects a default of 50.
	MaxLength int
	// MinArea is the target block area driving recursive division.
	MinArea float64
	// ShrinkSpacing is the inward offset applied by the shrink stage.
	ShrinkSpacing float64
	// ChanceNoDivide is the per-polygon probability (0–1) of skipping
	// division, leaving an occasional oversized block.
	ChanceNoDivide float64
}

// defaultMaxLength bounds face walks when Params.MaxLength is zero.
const defaultMaxLength = 50

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

// Option configures optional finder behavior.
type Option func(*Options)

// Options holds the configurable knobs applied at construction.
type Options struct {
	// Seed drives the division randomness; 0 selects the fixed default.
	Seed int64
}

// DefaultOptions returns Options with the default seed.
func DefaultOptions() Options {
	return Options{Seed: 0}
}

// WithSeed returns an Option fixing the random seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}
