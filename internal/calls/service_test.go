package calls

import (
	"context"
	"errors"
	"testing"
)

type stubTeams map[string]bool

func (s stubTeams) TeamExists(_ context.Context, id string) (bool, error) {
	return s[id], nil
}

func validStore() StoreRequest {
	return StoreRequest{
		Name:             "Asha",
		Phone:            "+919876543210",
		Time:             "14:32",
		Duration:         95,
		TimeSpent:        120,
		Dialer:           "auto",
		CalledReceivedBy: "agent-7",
		Disposition:      "INTERESTED",
		Remarks:          "  call back friday  ",
		ListID:           "list-1",
		TeamID:           "team-1",
		MemberID:         "member-1",
	}
}

func TestStore_TrimsFreeTextAndAppends(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo, stubTeams{"team-1": true})

	cr, err := svc.Store(context.Background(), validStore())
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	if cr.Remarks != "call back friday" {
		t.Fatalf("remarks not trimmed: %q", cr.Remarks)
	}
	if cr.ID == "" || cr.Date.IsZero() {
		t.Fatalf("missing generated fields: %+v", cr)
	}

	if _, err := svc.Store(context.Background(), validStore()); err != nil {
		t.Fatalf("second Store: %v", err)
	}
	got, _ := repo.ListByTeam(context.Background(), "team-1")
	if len(got) != 2 {
		t.Fatalf("expected 2 appended responses, got %d", len(got))
	}
}

func TestStore_ValidatesRequiredFields(t *testing.T) {
	svc := NewService(NewMemoryRepo(), stubTeams{"team-1": true})

	req := validStore()
	req.Disposition = ""
	if _, err := svc.Store(context.Background(), req); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for missing disposition, got %v", err)
	}

	req = validStore()
	req.MemberID = ""
	if _, err := svc.Store(context.Background(), req); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for missing memberId, got %v", err)
	}

	req = validStore()
	req.TeamID = "team-missing"
	if _, err := svc.Store(context.Background(), req); !errors.Is(err, ErrTeamNotFound) {
		t.Fatalf("expected ErrTeamNotFound, got %v", err)
	}
}

func TestGetByTeam_FiltersAndValidates(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo, stubTeams{"team-1": true, "team-2": true})

	if _, err := svc.Store(context.Background(), validStore()); err != nil {
		t.Fatalf("Store: %v", err)
	}
	other := validStore()
	other.TeamID = "team-2"
	if _, err := svc.Store(context.Background(), other); err != nil {
		t.Fatalf("Store: %v", err)
	}

	got, err := svc.GetByTeam(context.Background(), "team-1")
	if err != nil {
		t.Fatalf("GetByTeam: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 response for team-1, got %d", len(got))
	}

	if _, err := svc.GetByTeam(context.Background(), ""); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if _, err := svc.GetByTeam(context.Background(), "team-missing"); !errors.Is(err, ErrTeamNotFound) {
		t.Fatalf("expected ErrTeamNotFound, got %v", err)
	}
}
