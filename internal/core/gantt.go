package core

// Slice is one uninterrupted run of a process on the cpu.
type Slice struct {
	ProcessId int
	Start     int
	Duration  int
}

func (s Slice) End() int {
	return s.Start + s.Duration
}

// GanttChart is the execution timeline in the order slices ran.
type GanttChart []Slice

// Makespan is the time the last slice finishes.
func (g GanttChart) Makespan() int {
	end := 0
	for _, s := range g {
		if s.End() > end {
			end = s.End()
		}
	}
	return end
}

// BusyTime sums the duration of every slice.
func (g GanttChart) BusyTime() int {
	busy := 0
	for _, s := range g {
		busy += s.Duration
	}
	return busy
}

// FirstStart returns when processId was first dispatched.
func (g GanttChart) FirstStart(processId int) (int, bool) {
	for _, s := range g {
		if s.ProcessId == processId {
			return s.Start, true
		}
	}
	return 0, false
}

// ExecutedTime sums the slice durations of one process.
func (g GanttChart) ExecutedTime(processId int) int {
	total := 0
	for _, s := range g {
		if s.ProcessId == processId {
			total += s.Duration
		}
	}
	return total
}

// Order lists process ids in the order slices ran, repeats included.
func (g GanttChart) Order() []int {
	ids := make([]int, len(g))
	for i, s := range g {
		ids[i] = s.ProcessId
	}
	return ids
}
