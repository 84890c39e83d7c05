package calls

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidArgument = errors.New("calls: invalid argument")
	ErrTeamNotFound    = errors.New("calls: team not found")
)

// TeamDirectory validates team references without importing the teams package.
type TeamDirectory interface {
	TeamExists(ctx context.Context, id string) (bool, error)
}

type Service struct {
	repo  Repository
	teams TeamDirectory
	clock func() time.Time
}

func NewService(repo Repository, teams TeamDirectory) *Service {
	return &Service{repo: repo, teams: teams, clock: time.Now}
}

type StoreRequest struct {
	Name             string    `json:"name"`
	Phone            string    `json:"phone"`
	Date             time.Time `json:"date"`
	Time             string    `json:"time"`
	Duration         int       `json:"duration"`
	TimeSpent        int       `json:"timeSpent"`
	Dialer           string    `json:"dialer"`
	CalledReceivedBy string    `json:"calledReceivedBy"`
	Disposition      string    `json:"disposition"`
	Remarks          string    `json:"remarks"`
	Notes            string    `json:"notes"`
	ListID           string    `json:"list"`
	TeamID           string    `json:"team"`
	MemberID         string    `json:"memberId"`
	Template         string    `json:"template"`
	Recording        string    `json:"recording"`
}

// Store appends one call response. Free-text fields are trimmed; required
// references must be present.
func (s *Service) Store(ctx context.Context, req StoreRequest) (CallResponse, error) {
	if req.Name == "" || req.Phone == "" || req.Time == "" || req.Dialer == "" ||
		req.CalledReceivedBy == "" || req.Disposition == "" {
		return CallResponse{}, ErrInvalidArgument
	}
	if req.ListID == "" || req.TeamID == "" || req.MemberID == "" {
		return CallResponse{}, ErrInvalidArgument
	}

	ok, err := s.teams.TeamExists(ctx, req.TeamID)
	if err != nil {
		return CallResponse{}, err
	}
	if !ok {
		return CallResponse{}, ErrTeamNotFound
	}

	date := req.Date
	if date.IsZero() {
		date = s.clock().UTC()
	}

	cr := CallResponse{
		ID:               uuid.NewString(),
		Name:             strings.TrimSpace(req.Name),
		Phone:            strings.TrimSpace(req.Phone),
		Date:             date,
		Time:             req.Time,
		Duration:         req.Duration,
		TimeSpent:        req.TimeSpent,
		Dialer:           strings.TrimSpace(req.Dialer),
		CalledReceivedBy: strings.TrimSpace(req.CalledReceivedBy),
		Disposition:      strings.TrimSpace(req.Disposition),
		Remarks:          strings.TrimSpace(req.Remarks),
		Notes:            strings.TrimSpace(req.Notes),
		ListID:           req.ListID,
		TeamID:           req.TeamID,
		MemberID:         req.MemberID,
		Template:         strings.TrimSpace(req.Template),
		Recording:        strings.TrimSpace(req.Recording),
	}
	if err := s.repo.Create(ctx, cr); err != nil {
		return CallResponse{}, err
	}
	return cr, nil
}

func (s *Service) GetByTeam(ctx context.Context, teamID string) ([]CallResponse, error) {
	if teamID == "" {
		return nil, ErrInvalidArgument
	}
	ok, err := s.teams.TeamExists(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrTeamNotFound
	}
	return s.repo.ListByTeam(ctx, teamID)
}
