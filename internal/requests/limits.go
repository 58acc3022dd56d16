package requests

import (
	"os-scheduling-simulator/internal/core"
	"os-scheduling-simulator/internal/schedulers"
)

// Limits caps the work one request may ask for. A zero field disables
// that cap.
type Limits struct {
	MaxBurstTotal int
	MaxSlices     int
}

// Check rejects a run whose total burst or Gantt chart size exceeds the
// limits. It runs before any policy is computed.
func (l Limits) Check(set core.ProcessSet, algorithm schedulers.Algorithm, options schedulers.Options) error {
	if l.MaxBurstTotal > 0 && set.TotalBurst() > l.MaxBurstTotal {
		return core.Invalid("burst_times", "total burst time %d exceeds the limit of %d", set.TotalBurst(), l.MaxBurstTotal)
	}
	if l.MaxSlices > 0 {
		if slices := SliceCount(set, algorithm, options); slices > l.MaxSlices {
			field := "process_count"
			if algorithm == schedulers.RoundRobin {
				field = "quantum"
			}
			return core.Invalid(field, "run would produce %d gantt slices, the limit is %d", slices, l.MaxSlices)
		}
	}
	return nil
}

// SliceCount is the number of Gantt slices algorithm emits for set.
// A non-positive quantum counts as zero slices; the policy rejects it.
func SliceCount(set core.ProcessSet, algorithm schedulers.Algorithm, options schedulers.Options) int {
	if algorithm != schedulers.RoundRobin {
		return set.Len()
	}
	if options.Quantum <= 0 {
		return 0
	}
	count := 0
	for _, process := range set.Processes() {
		count += process.BurstTime / options.Quantum
		if process.BurstTime%options.Quantum != 0 {
			count++
		}
	}
	return count
}
