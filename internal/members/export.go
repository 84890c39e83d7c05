package members

import (
	"context"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
)

type memberRow struct {
	Name      string `csv:"name"`
	Email     string `csv:"email"`
	LoginID   string `csv:"userId"`
	Role      string `csv:"role"`
	Team      string `csv:"team"`
	Phone     string `csv:"phone"`
	CreatedAt string `csv:"createdAt"`
	UpdatedAt string `csv:"updatedAt"`
}

type ExportService struct {
	repo Repository
}

func NewExportService(repo Repository) *ExportService {
	return &ExportService{repo: repo}
}

// ExportAll renders the full member directory as CSV.
func (s *ExportService) ExportAll(ctx context.Context) (filename, data string, err error) {
	ms, err := s.repo.List(ctx)
	if err != nil {
		return "", "", err
	}
	if len(ms) == 0 {
		return "", "", ErrNotFound
	}

	rows := make([]memberRow, 0, len(ms))
	for _, m := range ms {
		rows = append(rows, memberRow{
			Name:      m.Name,
			Email:     m.Email,
			LoginID:   m.LoginID,
			Role:      string(m.Role),
			Team:      strings.Join(m.TeamIDs, ";"),
			Phone:     m.Phone,
			CreatedAt: m.CreatedAt.Format(time.RFC3339),
			UpdatedAt: m.UpdatedAt.Format(time.RFC3339),
		})
	}

	out, err := gocsv.MarshalString(&rows)
	if err != nil {
		return "", "", err
	}
	return "members.csv", out, nil
}
