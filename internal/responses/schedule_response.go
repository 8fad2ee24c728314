package responses

type ProcessResponse struct {
	ProcessId      string `json:"process_id"`
	ArrivalTime    int    `json:"arrival_time"`
	BurstTime      int    `json:"burst_time"`
	Priority       int    `json:"priority"`
	CompletionTime int    `json:"completion_time"`
	ResponseTime   int    `json:"response_time"`
	TurnAroundTime int    `json:"turn_around_time"`
	WaitingTime    int    `json:"waiting_time"`
}

type GanttSlice struct {
	ProcessId string `json:"process_id"`
	Start     int    `json:"start"`
	Stop      int    `json:"stop"`
}

type TimelineUnit struct {
	Label string `json:"label"`
	Time  int    `json:"time"`
}

type ScheduleResponse struct {
	Algorithm             string            `json:"algorithm"`
	Name                  string            `json:"name"`
	TotalTime             int               `json:"total_time"`
	IdleTime              int               `json:"idle_time"`
	ContextSwitches       int               `json:"context_switches"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	Gantt                 []GanttSlice      `json:"gantt"`
	Timeline              []TimelineUnit    `json:"timeline"`
	Details               []ProcessResponse `json:"details"`
}

type PolicyResponse struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
