package requests

import (
	"os-scheduling-simulator/internal/core"
	"os-scheduling-simulator/internal/schedulers"
)

// ScheduleRequest is the body accepted by every simulation endpoint.
// ProcessCount may be omitted, in which case it defaults to the number of
// burst times.
type ScheduleRequest struct {
	ProcessCount *int   `json:"process_count"`
	BurstTimes   []int  `json:"burst_times"`
	Algorithm    string `json:"algorithm"`
	Quantum      *int   `json:"quantum"`
}

// ProcessSet validates the request and builds the simulation input.
func (r ScheduleRequest) ProcessSet() (core.ProcessSet, error) {
	if r.ProcessCount == nil {
		return core.NewProcessSet(r.BurstTimes)
	}
	return core.NewProcessSetWithCount(*r.ProcessCount, r.BurstTimes)
}

// ResolveAlgorithm parses the requested algorithm, falling back to
// fallback when the request names none.
func (r ScheduleRequest) ResolveAlgorithm(fallback schedulers.Algorithm) (schedulers.Algorithm, error) {
	if r.Algorithm == "" {
		return fallback, nil
	}
	return schedulers.ParseAlgorithm(r.Algorithm)
}

// Options builds the policy options. An absent quantum takes
// defaultQuantum; an explicit one is passed through so a zero or negative
// value is rejected by the round robin policy.
func (r ScheduleRequest) Options(defaultQuantum int) schedulers.Options {
	if r.Quantum == nil {
		return schedulers.Options{Quantum: defaultQuantum}
	}
	return schedulers.Options{Quantum: *r.Quantum}
}
