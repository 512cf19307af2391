// Package gate implements the evidence layer (spec.md §4.H): deterministic
// checkers that validate crypto vectors, fixture SHA pins, schema shapes,
// and simulation envelopes, aggregated into one pass/fail report. Grounded
// on the domain-stack decision (SPEC_FULL.md §2b) to run independent
// checkers concurrently with golang.org/x/sync/errgroup.
package gate

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// CheckResult is one checker's verdict.
type CheckResult struct {
	Name   string `json:"name"`
	Pass   bool   `json:"pass"`
	Reason string `json:"reason,omitempty"`
}

// Report is the aggregated outcome of a gate run (spec.md §4.H, §6).
type Report struct {
	Pass   bool          `json:"pass"`
	Reason string        `json:"reason,omitempty"`
	Checks []CheckResult `json:"checks"`
}

// Checker produces one CheckResult. Checkers must not mutate shared state;
// Run executes them concurrently (spec.md §7: "Gate failures are terminal
// for the gate run but never mutate engine state").
type Checker func() CheckResult

// Run executes every checker concurrently and aggregates the results. The
// report fails if any checker fails; Reason is the first failing check's
// reason in checker order, for a single-line cause (spec.md §4.H).
func Run(checkers ...Checker) Report {
	results := make([]CheckResult, len(checkers))

	g, _ := errgroup.WithContext(context.Background())
	for i, c := range checkers {
		i, c := i, c
		g.Go(func() error {
			results[i] = c()
			return nil
		})
	}
	_ = g.Wait()

	report := Report{Pass: true, Checks: results}
	for _, r := range results {
		if !r.Pass {
			report.Pass = false
			if report.Reason == "" {
				report.Reason = r.Name + ": " + r.Reason
			}
		}
	}
	return report
}

// ExitCode returns the gate runner's process exit code (spec.md §6): 0 on
// pass, 1 on fail.
func (r Report) ExitCode() int {
	if r.Pass {
		return 0
	}
	return 1
}
