package attendance

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidArgument = errors.New("attendance: invalid argument")

type Service struct {
	repo  Repository
	clock func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, clock: time.Now}
}

// MarkPresent upserts today's row for the member to present. Marking twice
// on the same day touches the same row.
func (s *Service) MarkPresent(ctx context.Context, memberID string) (View, error) {
	if memberID == "" {
		return View{}, ErrInvalidArgument
	}

	now := s.clock().UTC()
	rec, err := s.repo.Upsert(ctx, Record{
		ID:        uuid.NewString(),
		MemberID:  memberID,
		Day:       now.Truncate(24 * time.Hour),
		Status:    StatusPresent,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return View{}, err
	}
	return rec.view(), nil
}

func (s *Service) GetByMember(ctx context.Context, memberID string) ([]View, error) {
	if memberID == "" {
		return nil, ErrInvalidArgument
	}

	recs, err := s.repo.ListByMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	out := make([]View, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.view())
	}
	return out, nil
}

func (r Record) view() View {
	return View{
		ID:        r.ID,
		MemberID:  r.MemberID,
		Date:      r.Day.Format("02-01-2006"),
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
