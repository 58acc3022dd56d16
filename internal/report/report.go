// Package report renders scheduling results as plain text.
package report

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"os-scheduling-simulator/internal/core"
	"os-scheduling-simulator/internal/schedulers"
)

// Format renders the per-process table, in process set order, followed
// by the average waiting and turnaround times.
func Format(result schedulers.Result) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Process", "Burst Time", "Waiting Time", "Turnaround Time"})
	for i, process := range result.Processes {
		table.Append([]string{
			processLabel(process.ProcessId),
			strconv.Itoa(process.BurstTime),
			strconv.Itoa(result.WaitingTimes[i]),
			strconv.Itoa(result.TurnAroundTimes[i]),
		})
	}
	table.Render()

	_, _ = fmt.Fprintf(&buf, "\nAverage Waiting Time = %.2f\n", result.AverageWaitingTime)
	_, _ = fmt.Fprintf(&buf, "Average Turnaround Time = %.2f\n", result.AverageTurnAroundTime)
	return buf.String()
}

// FormatGantt draws the timeline as a row of process cells with the slice
// boundary times underneath.
func FormatGantt(chart core.GanttChart) string {
	if len(chart) == 0 {
		return "|\n0\n"
	}

	var bar, times strings.Builder
	bar.WriteString("|")
	for _, slice := range chart {
		label := processLabel(slice.ProcessId)
		start := strconv.Itoa(slice.Start)

		width := len(label)
		if len(start) > width {
			width = len(start)
		}
		width += 4

		padding := width - len(label)
		bar.WriteString(strings.Repeat(" ", padding/2))
		bar.WriteString(label)
		bar.WriteString(strings.Repeat(" ", padding-padding/2))
		bar.WriteString("|")

		times.WriteString(start)
		times.WriteString(strings.Repeat(" ", width+1-len(start)))
	}
	times.WriteString(strconv.Itoa(chart[len(chart)-1].End()))

	return bar.String() + "\n" + times.String() + "\n"
}

// Full is the complete report: title, Gantt chart, schedule table and cpu
// usage.
func Full(result schedulers.Result) string {
	var buf bytes.Buffer

	title := result.Algorithm.Title()
	if result.Algorithm == schedulers.RoundRobin {
		title = fmt.Sprintf("%s (quantum %d)", title, result.Quantum)
	}
	_, _ = fmt.Fprintln(&buf, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(&buf, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(&buf, strings.Repeat("-", len(title)*2))

	_, _ = fmt.Fprintln(&buf, "Gantt schedule")
	buf.WriteString(FormatGantt(result.Gantt))
	_, _ = fmt.Fprintln(&buf)

	_, _ = fmt.Fprintln(&buf, "Schedule table")
	buf.WriteString(Format(result))
	_, _ = fmt.Fprintf(&buf, "Average Response Time = %.2f\n", result.AverageResponseTime)
	_, _ = fmt.Fprintf(&buf, "CPU Utilization = %.2f%%\n", result.Cpu.Utilization()*100)
	_, _ = fmt.Fprintf(&buf, "Throughput = %.2f/t\n", result.Cpu.Throughput(len(result.Processes)))
	return buf.String()
}

func processLabel(processId int) string {
	return "P" + strconv.Itoa(processId)
}
