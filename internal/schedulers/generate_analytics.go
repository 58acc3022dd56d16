package schedulers

import (
	"os-scheduling-simulator/internal/core"
	"os-scheduling-simulator/internal/util"
)

// Result is the outcome of one policy run. Per-process slices are indexed
// by position in the process set, not by execution order.
//
// A Result is read-only once returned. Every Compute call allocates its own
// slices, so no two results and no ProcessSet share backing arrays.
type Result struct {
	Algorithm Algorithm
	Quantum   int

	Processes       []core.Process
	WaitingTimes    []int
	TurnAroundTimes []int
	ResponseTimes   []int

	AverageWaitingTime    float64
	AverageTurnAroundTime float64
	AverageResponseTime   float64

	Gantt core.GanttChart
	Cpu   core.CpuMetric
}

// CompletionTime is when process i finished. With every process ready at
// time 0 it equals its turnaround time.
func (r Result) CompletionTime(i int) int {
	return r.TurnAroundTimes[i]
}

func validateProcessSet(set core.ProcessSet) error {
	if set.Len() == 0 {
		return core.Invalid("process_count", "at least one process is required")
	}
	return nil
}

// generateResult derives turnaround and response times and the averages
// from the waiting times a policy computed.
func generateResult(algorithm Algorithm, quantum int, set core.ProcessSet, waitingTimes []int, gantt core.GanttChart) Result {
	processes := set.Processes()
	turnAroundTimes := make([]int, len(processes))
	responseTimes := make([]int, len(processes))

	for i, process := range processes {
		turnAroundTimes[i] = waitingTimes[i] + process.BurstTime
		if start, ok := gantt.FirstStart(process.ProcessId); ok {
			responseTimes[i] = start
		} else {
			// never dispatched: a zero burst process finishes on arrival
			responseTimes[i] = waitingTimes[i]
		}
	}

	return Result{
		Algorithm:             algorithm,
		Quantum:               quantum,
		Processes:             processes,
		WaitingTimes:          waitingTimes,
		TurnAroundTimes:       turnAroundTimes,
		ResponseTimes:         responseTimes,
		AverageWaitingTime:    util.CalculateAverage(waitingTimes),
		AverageTurnAroundTime: util.CalculateAverage(turnAroundTimes),
		AverageResponseTime:   util.CalculateAverage(responseTimes),
		Gantt:                 gantt,
		Cpu:                   core.MeasureCpu(gantt),
	}
}

// runInOrder runs processes back to back in the given order of set
// positions, starting at time 0.
func runInOrder(set core.ProcessSet, order []int) ([]int, core.GanttChart) {
	waitingTimes := make([]int, set.Len())
	gantt := make(core.GanttChart, 0, len(order))

	clock := 0
	for _, i := range order {
		process := set.At(i)
		waitingTimes[i] = clock
		gantt = append(gantt, core.Slice{
			ProcessId: process.ProcessId,
			Start:     clock,
			Duration:  process.BurstTime,
		})
		clock += process.BurstTime
	}
	return waitingTimes, gantt
}
