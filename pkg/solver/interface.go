// Package solver is the core, finding every dictionary word that can be built
// from a bag of letters with either permutation enumeration or signature filtering.
package solver

// ISolver defines the interface for jumble solvers
type ISolver interface {
	// Solve normalizes raw, matches it and returns the ordered result
	Solve(raw string) (Result, error)

	// SolveWith is Solve with a strategy that overrides the configured one
	SolveWith(raw string, strategy Strategy) (Result, error)

	// Info reports the solver's settings and loaded dictionaries
	Info() Info
}
