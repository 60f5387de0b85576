package sema

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/oacc-lang/oacc/internal/diagnostics"
)

// Unit is one independent validation job, typically the re-validation
// of a construct after template instantiation. Run receives a fresh
// Checker and drives its ActOn* entry points.
type Unit struct {
	Name string
	Run  func(*Checker) error
}

// UnitResult carries the outcome of one Unit in input order.
type UnitResult struct {
	Name        string
	Diagnostics []diagnostics.Diagnostic
	Err         error
}

// ValidateUnits validates independent units concurrently. Every unit
// gets its own Checker, so the diagnostics of one unit never interleave
// with another's; per-construct validation itself stays synchronous.
// Concurrency is bounded by limit (values below 1 mean unbounded).
// The returned slice is indexed like units. A context cancellation
// aborts units that have not started.
func ValidateUnits(ctx context.Context, opts Options, units []Unit, limit int) ([]UnitResult, error) {
	results := make([]UnitResult, len(units))

	g, gctx := errgroup.WithContext(ctx)

	var sem chan struct{}
	if limit > 0 {
		sem = make(chan struct{}, limit)
	}

	for i, unit := range units {
		i := i
		unit := unit

		g.Go(func() error {
			if sem != nil {
				select {
				case sem <- struct{}{}:
				case <-gctx.Done():
					return gctx.Err()
				}

				defer func() { <-sem }()
			}

			checker, err := NewChecker(opts)
			if err != nil {
				return err
			}

			runErr := unit.Run(checker)
			results[i] = UnitResult{
				Name:        unit.Name,
				Diagnostics: checker.Diagnostics().Diagnostics(),
				Err:         runErr,
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
