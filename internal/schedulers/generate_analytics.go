package schedulers

import (
	"github.com/devenderkumar212003/cpu-scheduler/internal/core"
	"github.com/devenderkumar212003/cpu-scheduler/internal/responses"
)

// GenerateResponse maps a finished run to its JSON response.
func GenerateResponse(key string, result core.Result) responses.ScheduleResponse {
	response := responses.ScheduleResponse{
		Algorithm:             key,
		Name:                  result.Policy,
		TotalTime:             result.TotalTime,
		IdleTime:              result.IdleTime,
		ContextSwitches:       result.ContextSwitches,
		AverageWaitingTime:    result.AvgWaitingTime,
		AverageResponseTime:   result.AvgResponseTime,
		AverageTurnAroundTime: result.AvgTurnaroundTime,
		CpuUtilization:        result.CPUUtilization,
		CpuThroughput:         result.Throughput,
		Gantt:                 make([]responses.GanttSlice, 0),
		Timeline:              make([]responses.TimelineUnit, 0, len(result.Timeline)),
		Details:               make([]responses.ProcessResponse, 0, len(result.Processes)),
	}

	for _, s := range result.Slices() {
		response.Gantt = append(response.Gantt, responses.GanttSlice{ProcessId: s.Label, Start: s.Start, Stop: s.Stop})
	}
	for _, e := range result.Timeline {
		response.Timeline = append(response.Timeline, responses.TimelineUnit{Label: e.Label, Time: e.Time})
	}
	for _, p := range result.Processes {
		response.Details = append(response.Details, generateProcessDetails(p))
	}
	return response
}

func generateProcessDetails(process core.Process) responses.ProcessResponse {
	return responses.ProcessResponse{
		ProcessId:      process.ID,
		ArrivalTime:    process.ArrivalTime,
		BurstTime:      process.BurstTime,
		Priority:       process.Priority,
		CompletionTime: process.CompletionTime,
		ResponseTime:   process.ResponseTime,
		TurnAroundTime: process.TurnaroundTime,
		WaitingTime:    process.WaitingTime,
	}
}

// PolicyInfo describes every entry for listings.
func PolicyInfo(entries []Entry) []responses.PolicyResponse {
	out := make([]responses.PolicyResponse, len(entries))
	for i, e := range entries {
		out[i] = responses.PolicyResponse{
			Key:         e.Key,
			Name:        e.Policy.Name(),
			Description: e.Policy.Description(),
		}
	}
	return out
}
