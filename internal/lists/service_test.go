package lists

import (
	"context"
	"errors"
	"testing"

	"dialdesk/internal/contacts"
)

type stubTeams map[string]bool

func (s stubTeams) TeamExists(_ context.Context, id string) (bool, error) { return s[id], nil }

type stubMembers map[string]bool

func (s stubMembers) MemberExists(_ context.Context, id string) (bool, error) { return s[id], nil }

type fixture struct {
	svc      *Service
	repo     *MemoryRepo
	contacts *contacts.MemoryRepo
}

func newFixture() fixture {
	contactRepo := contacts.NewMemoryRepo()
	repo := NewMemoryRepo(contactRepo)
	svc := NewService(repo,
		stubTeams{"team-1": true},
		stubMembers{"member-a": true, "member-b": true},
		contactRepo)
	return fixture{svc: svc, repo: repo, contacts: contactRepo}
}

func (f fixture) createList(t *testing.T, name string) List {
	t.Helper()
	l, err := f.svc.Create(context.Background(), name, "team-1")
	if err != nil {
		t.Fatalf("Create list %q: %v", name, err)
	}
	return l
}

func (f fixture) seedContacts(t *testing.T, listID string, numbers ...string) {
	t.Helper()
	batch := make([]contacts.Contact, 0, len(numbers))
	for _, n := range numbers {
		batch = append(batch, contacts.Contact{ID: "c-" + n, Number: n, Name: "N" + n, ListID: listID})
	}
	if err := f.contacts.BulkInsert(context.Background(), batch); err != nil {
		t.Fatalf("BulkInsert: %v", err)
	}
}

func TestCreate_ValidatesNameTeamAndUniqueness(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	if _, err := f.svc.Create(ctx, "", "team-1"); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if _, err := f.svc.Create(ctx, "Leads", "team-missing"); !errors.Is(err, ErrTeamNotFound) {
		t.Fatalf("expected ErrTeamNotFound, got %v", err)
	}

	f.createList(t, "Leads")
	if _, err := f.svc.Create(ctx, "Leads", "team-1"); !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
}

func TestRename_CollisionUnlessSelf(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	a := f.createList(t, "Leads A")
	f.createList(t, "Leads B")

	if _, err := f.svc.Rename(ctx, a.ID, "Leads B"); !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
	renamed, err := f.svc.Rename(ctx, a.ID, "Leads A")
	if err != nil {
		t.Fatalf("Rename to self: %v", err)
	}
	if renamed.Name != "Leads A" {
		t.Fatalf("unexpected name %q", renamed.Name)
	}
}

func TestDelete_CascadesContacts(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	l := f.createList(t, "Leads")
	f.seedContacts(t, l.ID, "1", "2", "3")

	if err := f.svc.Delete(ctx, l.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := f.svc.GetByID(ctx, l.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected list gone, got %v", err)
	}
	n, err := f.contacts.CountByList(ctx, l.ID)
	if err != nil {
		t.Fatalf("CountByList: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected 0 contacts after cascade, got %d", n)
	}
}

func TestEmpty_DeletesContactsKeepsList(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	l := f.createList(t, "Leads")
	f.seedContacts(t, l.ID, "1", "2")

	if _, err := f.svc.Empty(ctx, l.ID); err != nil {
		t.Fatalf("Empty: %v", err)
	}

	if _, err := f.svc.GetByID(ctx, l.ID); err != nil {
		t.Fatalf("list should survive Empty: %v", err)
	}
	n, _ := f.contacts.CountByList(ctx, l.ID)
	if n != 0 {
		t.Fatalf("expected 0 contacts after Empty, got %d", n)
	}
}

func TestAssign_LastWriterWins(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	l := f.createList(t, "Leads")
	f.seedContacts(t, l.ID, "1", "2", "3")

	n, err := f.svc.Assign(ctx, "member-a", l.ID)
	if err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 assigned contacts, got %d", n)
	}

	if _, err := f.svc.Assign(ctx, "member-b", l.ID); err != nil {
		t.Fatalf("reassign: %v", err)
	}

	got, err := f.svc.GetByID(ctx, l.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.AssignedTo != "member-b" {
		t.Fatalf("expected member-b on list, got %q", got.AssignedTo)
	}
	cs, _ := f.contacts.ListByList(ctx, l.ID)
	for _, c := range cs {
		if c.AssignedTo != "member-b" {
			t.Fatalf("contact %s still assigned to %q", c.ID, c.AssignedTo)
		}
	}
}

func TestAssign_Validation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	l := f.createList(t, "Leads")

	if _, err := f.svc.Assign(ctx, "", l.ID); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if _, err := f.svc.Assign(ctx, "member-missing", l.ID); !errors.Is(err, ErrMemberNotFound) {
		t.Fatalf("expected ErrMemberNotFound, got %v", err)
	}
	if _, err := f.svc.Assign(ctx, "member-a", "list-missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := f.svc.Assign(ctx, "member-a", l.ID); !errors.Is(err, ErrEmptyList) {
		t.Fatalf("expected ErrEmptyList, got %v", err)
	}
}

func TestUnassign_ClearsListAndContacts(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	l := f.createList(t, "Leads")
	f.seedContacts(t, l.ID, "1", "2")
	if _, err := f.svc.Assign(ctx, "member-a", l.ID); err != nil {
		t.Fatalf("Assign: %v", err)
	}

	// The memberId is required but not matched against the assignee.
	if err := f.svc.Unassign(ctx, l.ID, "member-b"); err != nil {
		t.Fatalf("Unassign: %v", err)
	}

	got, _ := f.svc.GetByID(ctx, l.ID)
	if got.AssignedTo != "" {
		t.Fatalf("list still assigned to %q", got.AssignedTo)
	}
	cs, _ := f.contacts.ListByList(ctx, l.ID)
	for _, c := range cs {
		if c.AssignedTo != "" {
			t.Fatalf("contact %s still assigned", c.ID)
		}
	}

	if err := f.svc.Unassign(ctx, l.ID, ""); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for missing memberId, got %v", err)
	}
}

func TestAssignedListNames(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	l := f.createList(t, "March Leads")
	f.seedContacts(t, l.ID, "1")
	if _, err := f.svc.Assign(ctx, "member-a", l.ID); err != nil {
		t.Fatalf("Assign: %v", err)
	}

	names, err := f.svc.AssignedListNames(ctx, []string{"member-a", "member-b"})
	if err != nil {
		t.Fatalf("AssignedListNames: %v", err)
	}
	if len(names["member-a"]) != 1 || names["member-a"][0] != "March Leads" {
		t.Fatalf("unexpected names for member-a: %v", names)
	}
	if len(names["member-b"]) != 0 {
		t.Fatalf("expected no lists for member-b, got %v", names["member-b"])
	}
}
