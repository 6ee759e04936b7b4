package streamline

import (
	"math/rand"

	"github.com/katalvlaran/tensorway"
	"github.com/katalvlaran/tensorway/geom"
	"github.com/katalvlaran/tensorway/gridstore"
	"github.com/katalvlaran/tensorway/integrate"
)

// Generator orchestrates one streamline generation pass: seeding,
// bidirectional tracing, acceptance, and dangling-end joining. It owns
// its grids and streamline lists for the duration of the pass.
type Generator struct {
	integrator      *integrate.FieldIntegrator
	origin          geom.Vector
	worldDimensions geom.Vector
	params          Params

	// Squared distances, derived once.
	dsepSq         float64
	dtestSq        float64
	dstepSq        float64
	dcirclejoinSq  float64
	dcollideselfSq float64

	// Self-collision window: recent points exempt, older points sampled
	// at nStreamlineStep stride.
	nStreamlineStep     int
	nStreamlineLookBack int

	majorGrid *gridstore.GridStorage
	minorGrid *gridstore.GridStorage

	all   []*Streamline
	major []*Streamline
	minor []*Streamline
	seeds []geom.Vector

	candidateSeedsMajor []geom.Vector
	candidateSeedsMinor []geom.Vector
	seedAtEndpoints     bool

	lastStreamlineMajor bool
	phase               Phase
	rng                 *rand.Rand
}

// integration is the per-direction tracing state of one streamline.
// Mutated only between unit boundaries.
type integration struct {
	seed              geom.Vector
	originalDir       geom.Vector
	streamline        []geom.Vector
	previousDirection geom.Vector
	previousPoint     geom.Vector
	valid             bool
}

// New constructs a Generator over the given integrator and world region.
// dstep > dsep is logged as a configuration error and generation
// proceeds with degraded packing; dtest > dsep is clamped.
func New(fi *integrate.FieldIntegrator, origin, worldDimensions geom.Vector, params Params, opts ...Option) (*Generator, error) {
	// 1. Validate input.
	if fi == nil {
		return nil, ErrNilIntegrator
	}
	if params.Dstep <= 0 {
		return nil, ErrInvalidStep
	}
	if params.Dstep > params.Dsep {
		tensorway.Logger().Error("streamline: dstep exceeds dsep; separation degrades",
			"dstep", params.Dstep, "dsep", params.Dsep)
	}
	if params.Dtest > params.Dsep {
		tensorway.Logger().Warn("streamline: clamping dtest to dsep",
			"dtest", params.Dtest, "dsep", params.Dsep)
		params.Dtest = params.Dsep
	}

	// 2. Apply options.
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Family grids, both cell-sized at dsep.
	majorGrid, err := gridstore.New(worldDimensions, origin, params.Dsep)
	if err != nil {
		return nil, err
	}
	minorGrid, err := gridstore.New(worldDimensions, origin, params.Dsep)
	if err != nil {
		return nil, err
	}

	// 4. Derived thresholds.
	nStep := int(params.DCircleJoin / params.Dstep)
	if nStep < 1 {
		nStep = 1
	}

	return &Generator{
		integrator:          fi,
		origin:              origin,
		worldDimensions:     worldDimensions,
		params:              params,
		dsepSq:              params.Dsep * params.Dsep,
		dtestSq:             params.Dtest * params.Dtest,
		dstepSq:             params.Dstep * params.Dstep,
		dcirclejoinSq:       params.DCircleJoin * params.DCircleJoin,
		dcollideselfSq:      (params.DCircleJoin / 2) * (params.DCircleJoin / 2),
		nStreamlineStep:     nStep,
		nStreamlineLookBack: 2 * nStep,
		majorGrid:           majorGrid,
		minorGrid:           minorGrid,
		seedAtEndpoints:     o.SeedAtEndpoints,
		lastStreamlineMajor: true,
		phase:               PhaseSeeding,
		rng:                 rngFromSeed(o.Seed),
	}, nil
}

// Phase returns the generator's position in the resumable pass.
func (g *Generator) Phase() Phase { return g.phase }

// Done reports whether the pass has finished.
func (g *Generator) Done() bool { return g.phase == PhaseDone }

// All returns every accepted streamline in acceptance order.
func (g *Generator) All() []*Streamline { return g.all }

// Seeds returns the seed point of every accepted streamline, aligned
// with All. Seeds of rejected traces are not recorded.
func (g *Generator) Seeds() []geom.Vector { return g.seeds }

// Family returns the accepted streamlines of one family.
func (g *Generator) Family(major bool) []*Streamline {
	if major {
		return g.major
	}
	return g.minor
}

// DensePoints returns the dense point sequences of all streamlines,
// ready for graph construction.
func (g *Generator) DensePoints() [][]geom.Vector {
	out := make([][]geom.Vector, len(g.all))
	for i, s := range g.all {
		out[i] = s.Points
	}
	return out
}

// SimplifiedPoints returns the decimated exported forms.
func (g *Generator) SimplifiedPoints() [][]geom.Vector {
	out := make([][]geom.Vector, len(g.all))
	for i, s := range g.all {
		out[i] = s.Simplified
	}
	return out
}

// ClearStreamlines drops all accepted streamlines and resets the pass
// phase. Grid samples from previous passes are kept by design: callers
// wanting a fresh world build a new Generator.
func (g *Generator) ClearStreamlines() {
	g.all = nil
	g.major = nil
	g.minor = nil
	g.seeds = nil
	g.phase = PhaseSeeding
}

// CreateAllStreamlines runs the whole pass synchronously: seeding until
// exhaustion, then the joining pass.
func (g *Generator) CreateAllStreamlines() {
	for g.Update() {
	}
}

// Update performs one bounded unit of work and reports whether any work
// remains. During PhaseSeeding one unit is one streamline trace
// (alternating families); the next unit after seed exhaustion is the
// joining pass; afterwards Update returns false. No unit is ever left
// half-applied, so generation may pause or resume at any boundary.
func (g *Generator) Update() bool {
	switch g.phase {
	case PhaseSeeding:
		g.lastStreamlineMajor = !g.lastStreamlineMajor
		if !g.createStreamline(g.lastStreamlineMajor) {
			g.phase = PhaseJoining
		}
		return true
	case PhaseJoining:
		g.JoinDanglingStreamlines()
		g.phase = PhaseDone
		return true
	default:
		return false
	}
}

// grid returns the family's spatial grid.
func (g *Generator) grid(major bool) *gridstore.GridStorage {
	if major {
		return g.majorGrid
	}
	return g.minorGrid
}

// candidateSeeds returns the family's endpoint-seed queue.
func (g *Generator) candidateSeeds(major bool) *[]geom.Vector {
	if major {
		return &g.candidateSeedsMajor
	}
	return &g.candidateSeedsMinor
}

// createStreamline seeds and traces one streamline. It returns false
// only on seed exhaustion, the terminal condition of the seeding phase.
// A traced streamline that fails acceptance still returns true; the slot
// is spent, not the pass.
func (g *Generator) createStreamline(major bool) bool {
	seed, ok := g.getSeed(major)
	if !ok {
		return false
	}
	points := g.integrateStreamline(seed, major)
	if !g.validStreamline(points) {
		return true
	}

	// Accept: register every point, then list the streamline.
	g.grid(major).AddPolyline(points)
	s := &Streamline{
		Points:     points,
		Simplified: g.simplifyStreamline(points),
		Major:      major,
	}
	g.all = append(g.all, s)
	g.seeds = append(g.seeds, seed)
	if major {
		g.major = append(g.major, s)
	} else {
		g.minor = append(g.minor, s)
	}

	// Open endpoints make good opposite-family seeds.
	if g.seedAtEndpoints && points[0] != points[len(points)-1] {
		q := g.candidateSeeds(!major)
		*q = append(*q, points[0], points[len(points)-1])
	}
	return true
}

// validStreamline requires more than 5 points.
func (g *Generator) validStreamline(points []geom.Vector) bool {
	return len(points) > 5
}

// getSeed produces the next valid seed for the family, or ok=false once
// SeedTries random candidates in a row have failed, the seed
// exhaustion condition.
func (g *Generator) getSeed(major bool) (geom.Vector, bool) {
	// 1. Endpoint candidates first, when enabled.
	if g.seedAtEndpoints {
		q := g.candidateSeeds(major)
		for len(*q) > 0 {
			seed := (*q)[len(*q)-1]
			*q = (*q)[:len(*q)-1]
			if g.isValidSample(major, seed, g.dsepSq, true) {
				return seed, true
			}
		}
	}

	// 2. Random sampling with a bounded retry budget.
	seed := g.samplePoint()
	for i := 0; !g.isValidSample(major, seed, g.dsepSq, true); i++ {
		if i >= g.params.SeedTries {
			return geom.Zero(), false
		}
		seed = g.samplePoint()
	}
	return seed, true
}

// samplePoint draws a uniform random point in the world rectangle.
func (g *Generator) samplePoint() geom.Vector {
	return geom.Vector{
		X: g.rng.Float64() * g.worldDimensions.X,
		Y: g.rng.Float64() * g.worldDimensions.Y,
	}.Add(g.origin)
}

// isValidSample enforces on-land plus grid separation: the family's own
// grid always, both grids when bothGrids is set (seeding, and
// collide-early tracing).
func (g *Generator) isValidSample(major bool, point geom.Vector, dSq float64, bothGrids bool) bool {
	gridValid := g.grid(major).IsValidSample(point, dSq)
	if bothGrids {
		gridValid = gridValid && g.grid(!major).IsValidSample(point, dSq)
	}
	return g.integrator.OnLand(point) && gridValid
}

// pointInBounds reports whether v lies in the half-open world rectangle.
func (g *Generator) pointInBounds(v geom.Vector) bool {
	return g.origin.X <= v.X && v.X < g.origin.X+g.worldDimensions.X &&
		g.origin.Y <= v.Y && v.Y < g.origin.Y+g.worldDimensions.Y
}

// integrateStreamline traces one streamline forward and backward from
// seed, joining the two branches into a circle when they meet again
// after escaping the join radius.
func (g *Generator) integrateStreamline(seed geom.Vector, major bool) []geom.Vector {
	count := 0
	pointsEscaped := false
	collideBoth := g.rng.Float64() < g.params.CollideEarly

	d := g.integrator.Integrate(seed, major)
	forward := integration{
		seed:              seed,
		originalDir:       d,
		streamline:        []geom.Vector{seed},
		previousDirection: d,
		previousPoint:     seed.Add(d),
		valid:             true,
	}
	forward.valid = g.pointInBounds(forward.previousPoint)

	negD := d.Negate()
	backward := integration{
		seed:              seed,
		originalDir:       negD,
		previousDirection: negD,
		previousPoint:     seed.Add(negD),
		valid:             true,
	}
	backward.valid = g.pointInBounds(backward.previousPoint)

	for count < g.params.PathIterations && (forward.valid || backward.valid) {
		g.integrationStep(&forward, major, collideBoth)
		g.integrationStep(&backward, major, collideBoth)

		// Close into a circle once the branch heads meet again.
		sqBetween := forward.previousPoint.DistanceToSq(backward.previousPoint)
		if !pointsEscaped && sqBetween > g.dcirclejoinSq {
			pointsEscaped = true
		}
		if pointsEscaped && sqBetween <= g.dcirclejoinSq {
			forward.streamline = append(forward.streamline, forward.previousPoint, backward.previousPoint)
			backward.streamline = append(backward.streamline, backward.previousPoint)
			break
		}
		count++
	}

	// Geometric order: farthest-backward … seed … farthest-forward.
	out := make([]geom.Vector, 0, len(backward.streamline)+len(forward.streamline))
	for i := len(backward.streamline) - 1; i >= 0; i-- {
		out = append(out, backward.streamline[i])
	}
	return append(out, forward.streamline...)
}

// integrationStep advances one branch by one step, or invalidates it.
// Termination conditions: out of bounds, separation violation at dtest,
// degenerate field vector, self-collision, or a reversal past the seed.
func (g *Generator) integrationStep(st *integration, major, collideBoth bool) {
	if !st.valid {
		return
	}
	st.streamline = append(st.streamline, st.previousPoint)

	nextDirection := g.integrator.Integrate(st.previousPoint, major)
	if nextDirection.LengthSq() <= 0.001 {
		// Degenerate point: water or dead field.
		st.valid = false
		return
	}

	// Streamlines are undirected; keep travelling the same way.
	if nextDirection.Dot(st.previousDirection) < 0 {
		nextDirection = nextDirection.Negate()
	}

	nextPoint := st.previousPoint.Add(nextDirection)
	if g.pointInBounds(nextPoint) &&
		g.isValidSample(major, nextPoint, g.dtestSq, collideBoth) &&
		!g.collidesSelf(nextPoint, st.streamline) &&
		!streamlineTurned(st.seed, st.originalDir, nextPoint, nextDirection) {
		st.previousPoint = nextPoint
		st.previousDirection = nextDirection
	} else {
		// One last point so the trace meets its stop, then invalidate.
		st.streamline = append(st.streamline, nextPoint)
		st.valid = false
	}
}

// collidesSelf tests the candidate against the branch's own points older
// than the look-back window, sampled at nStreamlineStep stride. The most
// recent points are exempt: consecutive trace points sit dstep apart,
// well inside the collision radius.
func (g *Generator) collidesSelf(point geom.Vector, streamline []geom.Vector) bool {
	limit := len(streamline) - g.nStreamlineLookBack
	for i := 0; i < limit; i += g.nStreamlineStep {
		if point.DistanceToSq(streamline[i]) < g.dcollideselfSq {
			return true
		}
	}
	return false
}

// streamlineTurned detects a branch that has looped past its seed and is
// now heading back along itself: the direction has reversed relative to
// the original heading while the point sits on the turning side.
func streamlineTurned(seed, originalDir, point, direction geom.Vector) bool {
	if originalDir.Dot(direction) >= 0 {
		return false
	}
	perpendicular := geom.Vector{X: originalDir.Y, Y: -originalDir.X}
	isLeft := point.Sub(seed).Dot(perpendicular) < 0
	directionUp := direction.Dot(perpendicular) > 0
	return isLeft == directionUp
}

// simplifyStreamline produces the decimated exported form.
func (g *Generator) simplifyStreamline(points []geom.Vector) []geom.Vector {
	return geom.Simplify(points, g.params.SimplifyTolerance)
}
