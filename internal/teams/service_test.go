package teams

import (
	"context"
	"errors"
	"testing"

	"dialdesk/internal/contacts"
	"dialdesk/internal/lists"
)

type stubListCascade struct {
	teamIDs []string
}

func (c *stubListCascade) DeleteByTeam(_ context.Context, teamID string) error {
	c.teamIDs = append(c.teamIDs, teamID)
	return nil
}

func TestCreate_RequiresNameAndAccount(t *testing.T) {
	svc := NewService(NewMemoryRepo(), &stubListCascade{})
	ctx := context.Background()

	if _, err := svc.Create(ctx, "", "acct-1"); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if _, err := svc.Create(ctx, "  ", "acct-1"); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for blank name, got %v", err)
	}
	if _, err := svc.Create(ctx, "Sales", ""); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for missing account, got %v", err)
	}

	team, err := svc.Create(ctx, "Sales", "acct-1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if team.ID == "" || team.Name != "Sales" {
		t.Fatalf("unexpected team: %+v", team)
	}
}

func TestCreate_RejectsDuplicateName(t *testing.T) {
	svc := NewService(NewMemoryRepo(), &stubListCascade{})
	ctx := context.Background()

	if _, err := svc.Create(ctx, "Sales", "acct-1"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(ctx, "Sales", "acct-2"); !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
}

func TestGetByAccount_FiltersOwner(t *testing.T) {
	svc := NewService(NewMemoryRepo(), &stubListCascade{})
	ctx := context.Background()

	if _, err := svc.Create(ctx, "Sales", "acct-1"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(ctx, "Support", "acct-2"); err != nil {
		t.Fatalf("Create: %v", err)
	}

	ts, err := svc.GetByAccount(ctx, "acct-1")
	if err != nil {
		t.Fatalf("GetByAccount: %v", err)
	}
	if len(ts) != 1 || ts[0].Name != "Sales" {
		t.Fatalf("unexpected teams for acct-1: %+v", ts)
	}
}

func TestRename_CollisionUnlessSelf(t *testing.T) {
	svc := NewService(NewMemoryRepo(), &stubListCascade{})
	ctx := context.Background()

	sales, err := svc.Create(ctx, "Sales", "acct-1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(ctx, "Support", "acct-1"); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.Rename(ctx, sales.ID, "Support"); !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}

	// Renaming to its own current name is not a collision.
	renamed, err := svc.Rename(ctx, sales.ID, "Sales")
	if err != nil {
		t.Fatalf("Rename to self: %v", err)
	}
	if renamed.Name != "Sales" {
		t.Fatalf("unexpected name %q", renamed.Name)
	}

	if _, err := svc.Rename(ctx, "team-missing", "Anything"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	svc := NewService(NewMemoryRepo(), &stubListCascade{})
	ctx := context.Background()

	team, err := svc.Create(ctx, "Sales", "acct-1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.Delete(ctx, team.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(ctx, team.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestDelete_CascadesOwnedLists(t *testing.T) {
	cascade := &stubListCascade{}
	svc := NewService(NewMemoryRepo(), cascade)
	ctx := context.Background()

	team, err := svc.Create(ctx, "Sales", "acct-1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.Delete(ctx, team.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(cascade.teamIDs) != 1 || cascade.teamIDs[0] != team.ID {
		t.Fatalf("expected list cascade for %q, got %v", team.ID, cascade.teamIDs)
	}
}

type anyMember struct{}

func (anyMember) MemberExists(context.Context, string) (bool, error) { return true, nil }

// Deleting a team that still owns lists must take the lists and their
// contacts with it instead of failing.
func TestDelete_RemovesListsAndContacts(t *testing.T) {
	ctx := context.Background()
	teamRepo := NewMemoryRepo()
	contactRepo := contacts.NewMemoryRepo()
	listRepo := lists.NewMemoryRepo(contactRepo)
	listSvc := lists.NewService(listRepo, teamRepo, anyMember{}, contactRepo)
	svc := NewService(teamRepo, listSvc)

	team, err := svc.Create(ctx, "Sales", "acct-1")
	if err != nil {
		t.Fatalf("Create team: %v", err)
	}
	l, err := listSvc.Create(ctx, "March Leads", team.ID)
	if err != nil {
		t.Fatalf("Create list: %v", err)
	}
	if err := contactRepo.Create(ctx, contacts.Contact{ID: "c-1", Number: "+911234567890", Name: "Asha", ListID: l.ID}); err != nil {
		t.Fatalf("Create contact: %v", err)
	}

	if err := svc.Delete(ctx, team.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	ls, err := listSvc.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll lists: %v", err)
	}
	if len(ls) != 0 {
		t.Fatalf("expected no lists after team delete, got %+v", ls)
	}
	cs, err := contactRepo.List(ctx)
	if err != nil {
		t.Fatalf("List contacts: %v", err)
	}
	if len(cs) != 0 {
		t.Fatalf("expected no contacts after team delete, got %+v", cs)
	}
}

func TestTeamNames_SkipsUnknownIDs(t *testing.T) {
	svc := NewService(NewMemoryRepo(), &stubListCascade{})
	ctx := context.Background()

	team, err := svc.Create(ctx, "Sales", "acct-1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	names, err := svc.TeamNames(ctx, []string{team.ID, "team-missing"})
	if err != nil {
		t.Fatalf("TeamNames: %v", err)
	}
	if len(names) != 1 || names[team.ID] != "Sales" {
		t.Fatalf("unexpected names: %v", names)
	}
}
