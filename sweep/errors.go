package sweep

import "errors"

// Sentinel errors for sweep execution. Callers branch with errors.Is;
// implementations attach context via %w wrapping.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("sweep: graph is nil")

	// ErrScoreCoverage is returned when the score vector does not cover
	// every vertex exactly once (missing, surplus, or misnamed entries).
	ErrScoreCoverage = errors.New("sweep: score vector must cover every vertex exactly once")

	// ErrScoreNotFinite is returned when a score is NaN or ±Inf.
	ErrScoreNotFinite = errors.New("sweep: score vector contains a non-finite value")

	// ErrNegativeWeight is returned when the graph carries a negative edge
	// weight; detected by an upfront scan before any sweep work begins.
	ErrNegativeWeight = errors.New("sweep: negative edge weight")

	// ErrUnknownMode is returned for a Mode outside the declared enum.
	ErrUnknownMode = errors.New("sweep: unknown ratio mode")

	// ErrNoValidSweep is returned when no candidate prefix admits a defined
	// ratio — a legitimate outcome for graphs with fewer than two vertices
	// or fully degenerate volume, not necessarily a caller bug.
	ErrNoValidSweep = errors.New("sweep: no candidate prefix admits a defined ratio")
)
