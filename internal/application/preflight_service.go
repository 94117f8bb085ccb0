package application

import (
	"context"
	"fmt"
	"time"

	"github.com/pipecheck/pipecheck/internal/domain"
	"github.com/pipecheck/pipecheck/internal/domain/checks"
)

// PreflightService runs every registered check in declared order and
// assembles the run record. It is the only component that knows the full
// check list.
type PreflightService struct {
	deps checks.Deps
}

func NewPreflightService(deps checks.Deps) *PreflightService {
	return &PreflightService{deps: deps}
}

// Run executes all registered checks sequentially. Failing checks never stop
// the run; cancellation is honored only between checks so that fixture
// cleanup inside a check always completes.
func (s *PreflightService) Run(ctx context.Context) (*domain.Run, error) {
	return s.RunSpecs(ctx, checks.All())
}

// RunSpecs executes the given checks in order and returns the populated run
// record. On cancellation the partial run is returned with the context error.
func (s *PreflightService) RunSpecs(ctx context.Context, specs []checks.Spec) (*domain.Run, error) {
	run := &domain.Run{StartedAt: time.Now()}

	for _, spec := range specs {
		if err := ctx.Err(); err != nil {
			run.FinishedAt = time.Now()
			return run, err
		}
		run.Checks = append(run.Checks, s.execute(spec))
	}

	run.FinishedAt = time.Now()
	return run, nil
}

// execute runs one check, converting a panic into a single synthetic FAIL
// assertion and rejecting checks that recorded nothing.
func (s *PreflightService) execute(spec checks.Spec) domain.Check {
	check := domain.Check{ID: spec.ID, Title: spec.Title}
	rec := checks.NewRecorder(&check)

	func() {
		defer func() {
			if p := recover(); p != nil {
				check.Assertions = append(check.Assertions, domain.Assertion{
					Description: spec.Title,
					Outcome:     domain.OutcomeFail,
					Detail:      fmt.Sprintf("internal error: %v", p),
				})
			}
		}()
		spec.Run(s.deps, rec)
	}()

	// A check that asserts nothing is a harness bug, not a pass.
	if len(check.Assertions) == 0 {
		check.Assertions = append(check.Assertions, domain.Assertion{
			Description: spec.Title,
			Outcome:     domain.OutcomeFail,
			Detail:      "internal error: check produced no assertions",
		})
	}

	return check
}
