package responses

import "os-scheduling-simulator/internal/schedulers"

type ProcessResponse struct {
	ProcessId      int `json:"process_id"`
	BurstTime      int `json:"burst_time"`
	WaitingTime    int `json:"waiting_time"`
	TurnAroundTime int `json:"turn_around_time"`
	ResponseTime   int `json:"response_time"`
	CompletionTime int `json:"completion_time"`
}

type SliceResponse struct {
	ProcessId int `json:"process_id"`
	Start     int `json:"start"`
	Duration  int `json:"duration"`
	End       int `json:"end"`
}

type ScheduleResponse struct {
	RunId                 string            `json:"run_id"`
	Algorithm             string            `json:"algorithm"`
	Quantum               int               `json:"quantum,omitempty"`
	TotalTime             int               `json:"total_time"`
	IdleTime              int               `json:"idle_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	Details               []ProcessResponse `json:"details"`
	Gantt                 []SliceResponse   `json:"gantt"`
}

type CompareResponse struct {
	RunId   string             `json:"run_id"`
	Results []ScheduleResponse `json:"results"`
}

// FromResult converts an engine result into its wire form.
func FromResult(runId string, result schedulers.Result) ScheduleResponse {
	details := make([]ProcessResponse, len(result.Processes))
	for i, process := range result.Processes {
		details[i] = ProcessResponse{
			ProcessId:      process.ProcessId,
			BurstTime:      process.BurstTime,
			WaitingTime:    result.WaitingTimes[i],
			TurnAroundTime: result.TurnAroundTimes[i],
			ResponseTime:   result.ResponseTimes[i],
			CompletionTime: result.CompletionTime(i),
		}
	}

	gantt := make([]SliceResponse, len(result.Gantt))
	for i, slice := range result.Gantt {
		gantt[i] = SliceResponse{
			ProcessId: slice.ProcessId,
			Start:     slice.Start,
			Duration:  slice.Duration,
			End:       slice.End(),
		}
	}

	return ScheduleResponse{
		RunId:                 runId,
		Algorithm:             result.Algorithm.String(),
		Quantum:               result.Quantum,
		TotalTime:             result.Cpu.TotalTime,
		IdleTime:              result.Cpu.IdleTime,
		AverageWaitingTime:    result.AverageWaitingTime,
		AverageResponseTime:   result.AverageResponseTime,
		AverageTurnAroundTime: result.AverageTurnAroundTime,
		CpuUtilization:        result.Cpu.Utilization(),
		CpuThroughput:         result.Cpu.Throughput(len(result.Processes)),
		Details:               details,
		Gantt:                 gantt,
	}
}
