package schedulers

import (
	"sort"

	"os-scheduling-simulator/internal/core"
)

type shortestJobFirst struct{}

func (shortestJobFirst) Algorithm() Algorithm {
	return ShortestJobFirst
}

// Compute runs processes by ascending burst time. Equal bursts keep their
// set order.
func (shortestJobFirst) Compute(set core.ProcessSet, _ Options) (Result, error) {
	if err := validateProcessSet(set); err != nil {
		return Result{}, err
	}

	waitingTimes, gantt := runInOrder(set, sortShortestJob(set))

	return generateResult(ShortestJobFirst, 0, set, waitingTimes, gantt), nil
}

// sortShortestJob returns set positions ordered by burst time.
func sortShortestJob(set core.ProcessSet) []int {
	order := make([]int, set.Len())
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return set.At(order[i]).BurstTime < set.At(order[j]).BurstTime
	})
	return order
}
