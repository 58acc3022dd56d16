package schedulers

import "os-scheduling-simulator/internal/core"

type roundRobin struct{}

func (roundRobin) Algorithm() Algorithm {
	return RoundRobin
}

// Compute time-slices the cpu with options.Quantum. Each round scans the
// set in order and gives every unfinished process one slice.
//
// The fixed-order rescan only matches a FIFO ready queue because every
// process is ready at time 0. Arrival times would need a real queue with
// tail reinsertion.
func (roundRobin) Compute(set core.ProcessSet, options Options) (Result, error) {
	if err := validateProcessSet(set); err != nil {
		return Result{}, err
	}
	timeQuantum := options.Quantum
	if timeQuantum <= 0 {
		return Result{}, core.Invalid("quantum", "must be positive, got %d", timeQuantum)
	}

	remaining := set.BurstTimes()
	waitingTimes := make([]int, set.Len())
	gantt := make(core.GanttChart, 0, set.Len())

	clock := 0
	for done := false; !done; {
		done = true
		for i := range remaining {
			if remaining[i] == 0 {
				continue
			}
			done = false

			run := remaining[i]
			if run > timeQuantum {
				run = timeQuantum
			}
			process := set.At(i)
			gantt = append(gantt, core.Slice{
				ProcessId: process.ProcessId,
				Start:     clock,
				Duration:  run,
			})
			clock += run
			remaining[i] -= run

			if remaining[i] == 0 {
				waitingTimes[i] = clock - process.BurstTime
			}
		}
	}

	return generateResult(RoundRobin, timeQuantum, set, waitingTimes, gantt), nil
}
