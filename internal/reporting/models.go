package reporting

import "time"

type TimeRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// CallsSummaryRequest requests aggregated dial metrics for one team.
type CallsSummaryRequest struct {
	TeamID string    `json:"teamId"`
	Range  TimeRange `json:"range"`
}

type CallsSummary struct {
	TeamID string `json:"teamId"`

	TotalCalls int `json:"totalCalls"`

	TotalDurationSeconds   int `json:"totalDurationSeconds"`
	AverageDurationSeconds int `json:"averageDurationSeconds"`
	TotalTimeSpentSeconds  int `json:"totalTimeSpentSeconds"`

	RecordedCalls int `json:"recordedCalls"`

	// ByDisposition counts responses per outcome label as the dialer sent it.
	ByDisposition map[string]int `json:"byDisposition"`
}
