package core

import "math"

// Process is one schedulable job. Every process is ready at time 0.
type Process struct {
	ProcessId int
	BurstTime int
}

// ProcessSet is the ordered, read-only input of a simulation. Its order is
// the FCFS order and the SJF tie-break order.
type ProcessSet struct {
	processes []Process
}

// NewProcessSet builds a set from burst times; process ids are assigned
// 1..n in the given order. The total burst must fit in an int, which
// bounds every clock value a policy computes.
func NewProcessSet(burstTimes []int) (ProcessSet, error) {
	if len(burstTimes) == 0 {
		return ProcessSet{}, Invalid("process_count", "at least one process is required")
	}
	processes := make([]Process, len(burstTimes))
	total := 0
	for i, burst := range burstTimes {
		if burst < 0 {
			return ProcessSet{}, Invalid("burst_times", "burst time of P%d is negative (%d)", i+1, burst)
		}
		if burst > math.MaxInt-total {
			return ProcessSet{}, Invalid("burst_times", "total burst time overflows at P%d", i+1)
		}
		total += burst
		processes[i] = Process{ProcessId: i + 1, BurstTime: burst}
	}
	return ProcessSet{processes: processes}, nil
}

// NewProcessSetWithCount checks the declared count against the bursts
// before building the set.
func NewProcessSetWithCount(processCount int, burstTimes []int) (ProcessSet, error) {
	if processCount <= 0 {
		return ProcessSet{}, Invalid("process_count", "must be positive, got %d", processCount)
	}
	if len(burstTimes) != processCount {
		return ProcessSet{}, Invalid("burst_times", "expected %d burst times, got %d", processCount, len(burstTimes))
	}
	return NewProcessSet(burstTimes)
}

func (s ProcessSet) Len() int {
	return len(s.processes)
}

// At returns the process at position i (0-based).
func (s ProcessSet) At(i int) Process {
	return s.processes[i]
}

// Processes returns a copy, so callers can not reorder the set.
func (s ProcessSet) Processes() []Process {
	out := make([]Process, len(s.processes))
	copy(out, s.processes)
	return out
}

// BurstTimes returns a copy of the burst times in set order.
func (s ProcessSet) BurstTimes() []int {
	out := make([]int, len(s.processes))
	for i, p := range s.processes {
		out[i] = p.BurstTime
	}
	return out
}

func (s ProcessSet) TotalBurst() int {
	total := 0
	for _, p := range s.processes {
		total += p.BurstTime
	}
	return total
}
