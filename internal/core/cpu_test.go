package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGanttChart(t *testing.T) {
	chart := GanttChart{
		{ProcessId: 1, Start: 0, Duration: 2},
		{ProcessId: 2, Start: 2, Duration: 3},
		{ProcessId: 1, Start: 5, Duration: 1},
	}

	assert.Equal(t, 6, chart.Makespan())
	assert.Equal(t, 6, chart.BusyTime())
	assert.Equal(t, 3, chart.ExecutedTime(1))
	assert.Equal(t, []int{1, 2, 1}, chart.Order())

	start, ok := chart.FirstStart(2)
	assert.True(t, ok)
	assert.Equal(t, 2, start)

	_, ok = chart.FirstStart(3)
	assert.False(t, ok)
}

func TestMeasureCpu(t *testing.T) {
	metric := MeasureCpu(GanttChart{
		{ProcessId: 1, Start: 0, Duration: 4},
		{ProcessId: 2, Start: 6, Duration: 2},
	})

	assert.Equal(t, CpuMetric{TotalTime: 8, UtilizationTime: 6, IdleTime: 2}, metric)
	assert.InDelta(t, 0.75, metric.Utilization(), 1e-9)
	assert.InDelta(t, 0.25, metric.Throughput(2), 1e-9)
}

func TestMeasureCpuEmptyTimeline(t *testing.T) {
	metric := MeasureCpu(nil)

	assert.Zero(t, metric.Utilization())
	assert.Zero(t, metric.Throughput(1))
}
