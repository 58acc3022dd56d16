package schedulers

import "os-scheduling-simulator/internal/core"

type firstComeFirstServe struct{}

func (firstComeFirstServe) Algorithm() Algorithm {
	return FirstComeFirstServe
}

// Compute runs every process in set order with no preemption.
func (firstComeFirstServe) Compute(set core.ProcessSet, _ Options) (Result, error) {
	if err := validateProcessSet(set); err != nil {
		return Result{}, err
	}

	order := make([]int, set.Len())
	for i := range order {
		order[i] = i
	}
	waitingTimes, gantt := runInOrder(set, order)

	return generateResult(FirstComeFirstServe, 0, set, waitingTimes, gantt), nil
}
