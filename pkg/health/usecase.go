package health

import (
	"context"
	"fmt"
)

// Checker represents a dependency health check.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

// ReadinessUseCase describes readiness verification.
type ReadinessUseCase interface {
	Ready(ctx context.Context) error
	Checks(ctx context.Context) map[string]error
}

type service struct {
	checkers []Checker
}

// NewService aggregates dependency checkers.
func NewService(checkers ...Checker) ReadinessUseCase {
	return &service{checkers: checkers}
}

// Ready returns the first failing check, prefixed with its name.
func (s *service) Ready(ctx context.Context) error {
	for _, ch := range s.checkers {
		if err := ch.Check(ctx); err != nil {
			return fmt.Errorf("%s: %w", ch.Name(), err)
		}
	}
	return nil
}

// Checks runs every checker and reports each result by name.
func (s *service) Checks(ctx context.Context) map[string]error {
	out := make(map[string]error, len(s.checkers))
	for _, ch := range s.checkers {
		out[ch.Name()] = ch.Check(ctx)
	}
	return out
}
