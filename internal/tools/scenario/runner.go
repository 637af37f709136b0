// Package scenario runs Lua scripts that describe Greed rolls and the scores
// they must produce.
package scenario

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/louisbranch/greed/internal/platform/otel"
)

// Config controls scenario execution.
type Config struct {
	Assertions AssertionMode
	Verbose    bool
	Logger     *log.Logger
	// Seeds supplies entropy for unseeded roll steps; nil means crypto/rand.
	Seeds io.Reader
}

// DefaultConfig returns default runner configuration.
func DefaultConfig() Config {
	return Config{
		Assertions: AssertionStrict,
		Verbose:    false,
	}
}

// Report summarizes a finished scenario.
type Report struct {
	Name     string
	Steps    int
	Failures int
}

// Passed reports whether every expectation held.
func (r Report) Passed() bool {
	return r.Failures == 0
}

// Runner executes scenarios against the scoring rules.
type Runner struct {
	assertions *Assertions
	logger     *log.Logger
	verbose    bool
	seeds      io.Reader
}

// NewRunner prepares a scenario runner.
func NewRunner(cfg Config) *Runner {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(os.Stderr, "", 0)
	}
	return &Runner{
		assertions: &Assertions{Mode: cfg.Assertions, Logger: logger},
		logger:     logger,
		verbose:    cfg.Verbose,
		seeds:      cfg.Seeds,
	}
}

// RunFile loads a Lua scenario from path and runs it.
func RunFile(ctx context.Context, cfg Config, path string) (Report, error) {
	scenario, err := LoadScenarioFromFile(path)
	if err != nil {
		return Report{}, err
	}
	return NewRunner(cfg).RunScenario(ctx, scenario)
}

// RunScenario executes the scenario steps in order.
func (r *Runner) RunScenario(ctx context.Context, scenario *Scenario) (Report, error) {
	if scenario == nil {
		return Report{}, errors.New("scenario is required")
	}
	ctx, span := otel.Tracer().Start(ctx, "scenario.run")
	defer span.End()

	report := Report{Name: scenario.Name, Steps: len(scenario.Steps)}
	startFailures := r.assertions.Failures()
	r.logf("scenario start: %s (%d steps)", scenario.Name, len(scenario.Steps))

	for index, step := range scenario.Steps {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		stepNumber := index + 1
		stepStart := time.Now()
		if err := r.runStep(step); err != nil {
			report.Failures = r.assertions.Failures() - startFailures
			return report, fmt.Errorf("step %d (%s): %w", stepNumber, step.Kind, err)
		}
		r.logf("step %d/%d done: %s (%s)", stepNumber, len(scenario.Steps), step.Kind, time.Since(stepStart))
	}

	report.Failures = r.assertions.Failures() - startFailures
	span.SetAttributes(
		attribute.String("scenario.name", scenario.Name),
		attribute.Int("scenario.steps", report.Steps),
		attribute.Int("scenario.failures", report.Failures),
	)
	r.logf("scenario done: %s", scenario.Name)
	return report, nil
}

func (r *Runner) logf(format string, args ...any) {
	if !r.verbose || r.logger == nil {
		return
	}
	r.logger.Printf(format, args...)
}

func (r *Runner) failf(format string, args ...any) error {
	return r.assertions.Failf(format, args...)
}

func (r *Runner) assertf(format string, args ...any) error {
	return r.assertions.Assertf(format, args...)
}
