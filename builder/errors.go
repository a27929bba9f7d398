// SPDX-License-Identifier: MIT
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   - Only package-level sentinel variables are exposed.
//   - Callers MUST branch with errors.Is(err, ErrX).
//   - Implementations attach context via %w wrapping, never by mutating
//     the sentinel message.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, clique size, side
// size) is smaller than the minimum the requested topology admits.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates the orchestrator could not run a
// constructor (for example, a nil Constructor was supplied).
// Usage: if errors.Is(err, ErrConstructFailed) { /* fix composition */ }.
var ErrConstructFailed = errors.New("builder: construction failed")
