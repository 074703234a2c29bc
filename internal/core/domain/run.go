package domain

import "time"

// RunOutcome is the terminal state of a pipeline run.
type RunOutcome uint8

const (
	// OutcomeSucceeded means every stage ran and the outputs were written.
	OutcomeSucceeded RunOutcome = iota
	// OutcomeFailed means a stage failed and the failure was handed to the notifier.
	OutcomeFailed
	// OutcomeCanceled means the run was interrupted by its context. Nothing was
	// notified or written.
	OutcomeCanceled
)

// String implements fmt.Stringer.
func (o RunOutcome) String() string {
	switch o {
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeFailed:
		return "failed"
	case OutcomeCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// RunReport describes a finished pipeline run.
type RunReport struct {
	Outcome RunOutcome
	// Err is the failure consumed by the notifier, or the cancellation cause. It is nil
	// on success.
	Err     error
	Elapsed time.Duration
	// Written lists the absolute paths of files written by this run.
	Written []string
	// Inputs lists the absolute paths of the modules that made up the bundle.
	Inputs []string
}

// Succeeded reports whether the run completed without a stage failure.
func (r RunReport) Succeeded() bool {
	return r.Outcome == OutcomeSucceeded
}
