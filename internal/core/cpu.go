package core

// CpuMetric summarizes how the single cpu was used over a timeline.
type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// MeasureCpu derives cpu usage from a Gantt chart. Gaps between slices
// count as idle time.
func MeasureCpu(chart GanttChart) CpuMetric {
	totalTime := chart.Makespan()
	utilizationTime := chart.BusyTime()
	return CpuMetric{
		TotalTime:       totalTime,
		UtilizationTime: utilizationTime,
		IdleTime:        totalTime - utilizationTime,
	}
}

// Utilization is the busy fraction of the timeline, 0 for an empty one.
func (m CpuMetric) Utilization() float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(m.UtilizationTime) / float64(m.TotalTime)
}

// Throughput is completed processes per time unit.
func (m CpuMetric) Throughput(processCount int) float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(processCount) / float64(m.TotalTime)
}
