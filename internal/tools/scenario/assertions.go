package scenario

import (
	"errors"
	"fmt"
	"log"
)

// AssertionMode controls how failed expectations are handled.
type AssertionMode int

const (
	// AssertionStrict stops the scenario at the first failed expectation.
	AssertionStrict AssertionMode = iota
	// AssertionLogOnly logs failed expectations and keeps going.
	AssertionLogOnly
)

// ErrAssertionFailed marks a scenario expectation that did not hold.
var ErrAssertionFailed = errors.New("assertion failed")

// Assertions applies the configured mode to expectation failures.
type Assertions struct {
	Mode     AssertionMode
	Logger   *log.Logger
	failures int
}

// Failf reports a malformed step. It fails regardless of mode.
func (a *Assertions) Failf(format string, args ...any) error {
	return fmt.Errorf(format, args...)
}

// Assertf reports a failed expectation. In log-only mode it is logged and
// counted and nil is returned.
func (a *Assertions) Assertf(format string, args ...any) error {
	a.failures++
	err := fmt.Errorf("%w: %s", ErrAssertionFailed, fmt.Sprintf(format, args...))
	if a.Mode == AssertionLogOnly {
		if a.Logger != nil {
			a.Logger.Print(err)
		}
		return nil
	}
	return err
}

// Failures returns how many expectations failed.
func (a *Assertions) Failures() int {
	return a.failures
}
