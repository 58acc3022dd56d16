package schedulers

import (
	"strconv"
	"strings"

	"os-scheduling-simulator/internal/core"
)

// Algorithm is the closed set of scheduling policies the engine runs.
type Algorithm int

const (
	FirstComeFirstServe Algorithm = iota + 1
	ShortestJobFirst
	RoundRobin
)

// Algorithms lists every policy in the order they are reported.
func Algorithms() []Algorithm {
	return []Algorithm{FirstComeFirstServe, ShortestJobFirst, RoundRobin}
}

func (a Algorithm) String() string {
	switch a {
	case FirstComeFirstServe:
		return "fcfs"
	case ShortestJobFirst:
		return "sjf"
	case RoundRobin:
		return "rr"
	}
	return "Algorithm(" + strconv.Itoa(int(a)) + ")"
}

// Title is the human readable policy name used in reports.
func (a Algorithm) Title() string {
	switch a {
	case FirstComeFirstServe:
		return "First-come, first-serve"
	case ShortestJobFirst:
		return "Shortest-job-first"
	case RoundRobin:
		return "Round-robin"
	}
	return "Unknown"
}

// ParseAlgorithm maps a user supplied name onto an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fcfs", "first-come-first-serve", "first_come_first_serve":
		return FirstComeFirstServe, nil
	case "sjf", "shortest-job-first", "shortest_job_first":
		return ShortestJobFirst, nil
	case "rr", "round-robin", "round_robin", "round robin", "roundrobin":
		return RoundRobin, nil
	}
	return 0, &core.ConfigurationError{Value: name}
}

// Options carries the per-run knobs. Quantum is only read by RoundRobin.
type Options struct {
	Quantum int
}

// Policy turns a process set into a scheduling result. Implementations
// hold no state and never modify the set.
type Policy interface {
	Algorithm() Algorithm
	Compute(set core.ProcessSet, options Options) (Result, error)
}

// New returns the policy implementing algorithm.
func New(algorithm Algorithm) (Policy, error) {
	switch algorithm {
	case FirstComeFirstServe:
		return firstComeFirstServe{}, nil
	case ShortestJobFirst:
		return shortestJobFirst{}, nil
	case RoundRobin:
		return roundRobin{}, nil
	}
	return nil, &core.ConfigurationError{Value: algorithm.String()}
}

// Schedule is New followed by Compute.
func Schedule(algorithm Algorithm, set core.ProcessSet, options Options) (Result, error) {
	policy, err := New(algorithm)
	if err != nil {
		return Result{}, err
	}
	return policy.Compute(set, options)
}
