package reporting

import (
	"context"
	"errors"
	"time"

	"dialdesk/internal/calls"
)

var ErrInvalidRequest = errors.New("reporting: invalid request")

// Repository abstracts read access to the call-response log. Implementations
// must filter strictly by team and half-open range [from, to).
type Repository interface {
	ListCallsByTeam(ctx context.Context, teamID string, from, to time.Time) ([]calls.CallResponse, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service { return &Service{repo: repo} }

func (s *Service) CallsSummary(ctx context.Context, req CallsSummaryRequest) (CallsSummary, error) {
	if req.TeamID == "" {
		return CallsSummary{}, ErrInvalidRequest
	}
	if req.Range.From.IsZero() || req.Range.To.IsZero() || !req.Range.To.After(req.Range.From) {
		return CallsSummary{}, ErrInvalidRequest
	}

	rows, err := s.repo.ListCallsByTeam(ctx, req.TeamID, req.Range.From, req.Range.To)
	if err != nil {
		return CallsSummary{}, err
	}

	out := CallsSummary{TeamID: req.TeamID, ByDisposition: map[string]int{}}
	for _, cr := range rows {
		out.TotalCalls++
		out.TotalDurationSeconds += cr.Duration
		out.TotalTimeSpentSeconds += cr.TimeSpent
		if cr.Recording != "" {
			out.RecordedCalls++
		}
		if cr.Disposition != "" {
			out.ByDisposition[cr.Disposition]++
		}
	}
	if out.TotalCalls > 0 {
		out.AverageDurationSeconds = out.TotalDurationSeconds / out.TotalCalls
	}
	return out, nil
}
