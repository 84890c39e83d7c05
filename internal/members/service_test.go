package members

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"dialdesk/internal/contacts"
	"dialdesk/internal/lists"

	"golang.org/x/crypto/bcrypt"
)

type stubTeams struct {
	ids map[string]string
}

func (s stubTeams) TeamExists(_ context.Context, id string) (bool, error) {
	_, ok := s.ids[id]
	return ok, nil
}

func (s stubTeams) TeamNames(_ context.Context, ids []string) (map[string]string, error) {
	out := map[string]string{}
	for _, id := range ids {
		if name, ok := s.ids[id]; ok {
			out[id] = name
		}
	}
	return out, nil
}

type stubLists struct {
	assigned map[string][]lists.List
}

func (s stubLists) ListsAssignedTo(_ context.Context, memberID string) ([]lists.List, error) {
	return s.assigned[memberID], nil
}

func (s stubLists) AssignedListNames(_ context.Context, memberIDs []string) (map[string][]string, error) {
	out := map[string][]string{}
	for _, id := range memberIDs {
		for _, l := range s.assigned[id] {
			out[id] = append(out[id], l.Name)
		}
	}
	return out, nil
}

func (s stubLists) ClearAssignmentsFor(_ context.Context, memberID string) error {
	delete(s.assigned, memberID)
	return nil
}

func (s stubLists) ClearAllAssignments(context.Context) error {
	for id := range s.assigned {
		delete(s.assigned, id)
	}
	return nil
}

func newTestService() (*Service, *MemoryRepo) {
	repo := NewMemoryRepo()
	teams := stubTeams{ids: map[string]string{"team-1": "Sales", "team-2": "Support"}}
	svc := NewService(repo, teams, stubLists{assigned: map[string][]lists.List{}})
	return svc, repo
}

func validCreate() CreateRequest {
	return CreateRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		LoginID:  "asha01",
		Password: "secret123",
		Role:     RoleAgent,
		Team:     TeamList{"team-1"},
		Phone:    "9876543210",
	}
}

func TestCreate_HashesPasswordAndStoresTeams(t *testing.T) {
	svc, repo := newTestService()

	m, err := svc.Create(context.Background(), validCreate())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if m.PasswordHash == "secret123" {
		t.Fatalf("password stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(m.PasswordHash), []byte("secret123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}

	stored, ok, err := repo.GetByLoginID(context.Background(), "asha01")
	if err != nil || !ok {
		t.Fatalf("GetByLoginID: ok=%v err=%v", ok, err)
	}
	if len(stored.TeamIDs) != 1 || stored.TeamIDs[0] != "team-1" {
		t.Fatalf("unexpected teams: %v", stored.TeamIDs)
	}
}

func TestCreate_RejectsDuplicateEmailAndUnknownTeam(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.Create(context.Background(), validCreate()); err != nil {
		t.Fatalf("Create: %v", err)
	}

	dup := validCreate()
	dup.LoginID = "asha02"
	if _, err := svc.Create(context.Background(), dup); !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	bad := validCreate()
	bad.Email = "other@example.com"
	bad.LoginID = "other01"
	bad.Team = TeamList{"team-missing"}
	if _, err := svc.Create(context.Background(), bad); !errors.Is(err, ErrTeamNotFound) {
		t.Fatalf("expected ErrTeamNotFound, got %v", err)
	}
}

func TestTeamList_AcceptsStringOrArray(t *testing.T) {
	var fromString CreateRequest
	if err := json.Unmarshal([]byte(`{"team":"team-1"}`), &fromString); err != nil {
		t.Fatalf("unmarshal string team: %v", err)
	}
	if len(fromString.Team) != 1 || fromString.Team[0] != "team-1" {
		t.Fatalf("unexpected team from string: %v", fromString.Team)
	}

	var fromArray CreateRequest
	if err := json.Unmarshal([]byte(`{"team":["team-1","team-2"]}`), &fromArray); err != nil {
		t.Fatalf("unmarshal array team: %v", err)
	}
	if len(fromArray.Team) != 2 {
		t.Fatalf("unexpected team from array: %v", fromArray.Team)
	}

	var fromNumber CreateRequest
	if err := json.Unmarshal([]byte(`{"team":7}`), &fromNumber); err == nil {
		t.Fatalf("expected error for numeric team")
	}
}

func TestGetAll_DecoratesTeamAndListNames(t *testing.T) {
	repo := NewMemoryRepo()
	teams := stubTeams{ids: map[string]string{"team-1": "Sales"}}
	listSrc := stubLists{assigned: map[string][]lists.List{}}
	svc := NewService(repo, teams, listSrc)

	m, err := svc.Create(context.Background(), validCreate())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	listSrc.assigned[m.ID] = []lists.List{{ID: "l1", Name: "March Leads", AssignedTo: m.ID}}

	views, err := svc.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 view, got %d", len(views))
	}
	v := views[0]
	if len(v.Team) != 1 || v.Team[0] != "Sales" {
		t.Fatalf("expected team names, got %v", v.Team)
	}
	if len(v.Lists) != 1 || v.Lists[0] != "March Leads" {
		t.Fatalf("expected list names, got %v", v.Lists)
	}
}

func TestGetAll_EmptyDirectoryIsNotFound(t *testing.T) {
	svc, _ := newTestService()
	if _, err := svc.GetAll(context.Background()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestChangePassword_ByLoginID(t *testing.T) {
	svc, repo := newTestService()

	if _, err := svc.Create(context.Background(), validCreate()); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.ChangePassword(context.Background(), "asha01", "newsecret"); err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}

	m, _, _ := repo.GetByLoginID(context.Background(), "asha01")
	if err := bcrypt.CompareHashAndPassword([]byte(m.PasswordHash), []byte("newsecret")); err != nil {
		t.Fatalf("new password does not verify: %v", err)
	}

	if err := svc.ChangePassword(context.Background(), "nobody", "x"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete_RemovesMember(t *testing.T) {
	svc, repo := newTestService()

	if _, err := svc.Create(context.Background(), validCreate()); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.Delete(context.Background(), "asha01"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := repo.GetByLoginID(context.Background(), "asha01"); ok {
		t.Fatalf("member still present after delete")
	}
	if err := svc.Delete(context.Background(), "asha01"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func newAssignmentFixture() (*Service, *MemoryRepo, *lists.Service, *contacts.MemoryRepo) {
	repo := NewMemoryRepo()
	teams := stubTeams{ids: map[string]string{"team-1": "Sales"}}
	contactRepo := contacts.NewMemoryRepo()
	listRepo := lists.NewMemoryRepo(contactRepo)
	listSvc := lists.NewService(listRepo, teams, repo, contactRepo)
	return NewService(repo, teams, listSvc), repo, listSvc, contactRepo
}

// A deleted member must not stay the assignee of any list or contact.
func TestDelete_ReleasesAssignedListsAndContacts(t *testing.T) {
	ctx := context.Background()
	svc, _, listSvc, contactRepo := newAssignmentFixture()

	m, err := svc.Create(ctx, validCreate())
	if err != nil {
		t.Fatalf("Create member: %v", err)
	}
	l, err := listSvc.Create(ctx, "March Leads", "team-1")
	if err != nil {
		t.Fatalf("Create list: %v", err)
	}
	if err := contactRepo.Create(ctx, contacts.Contact{ID: "c-1", Number: "+919876543210", Name: "Lead", ListID: l.ID}); err != nil {
		t.Fatalf("Create contact: %v", err)
	}
	if _, err := listSvc.Assign(ctx, m.ID, l.ID); err != nil {
		t.Fatalf("Assign: %v", err)
	}

	if err := svc.Delete(ctx, m.LoginID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	got, err := listSvc.GetByID(ctx, l.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.AssignedTo != "" {
		t.Fatalf("list %q still assigned to %q after member delete", got.ID, got.AssignedTo)
	}
	cs, err := contactRepo.ListByList(ctx, l.ID)
	if err != nil {
		t.Fatalf("ListByList: %v", err)
	}
	if len(cs) != 1 || cs[0].AssignedTo != "" {
		t.Fatalf("contact still assigned after member delete: %+v", cs)
	}
}

func TestDeleteAll_ReleasesEveryAssignment(t *testing.T) {
	ctx := context.Background()
	svc, _, listSvc, contactRepo := newAssignmentFixture()

	m, err := svc.Create(ctx, validCreate())
	if err != nil {
		t.Fatalf("Create member: %v", err)
	}
	l, err := listSvc.Create(ctx, "March Leads", "team-1")
	if err != nil {
		t.Fatalf("Create list: %v", err)
	}
	if err := contactRepo.Create(ctx, contacts.Contact{ID: "c-1", Number: "+919876543210", Name: "Lead", ListID: l.ID}); err != nil {
		t.Fatalf("Create contact: %v", err)
	}
	if _, err := listSvc.Assign(ctx, m.ID, l.ID); err != nil {
		t.Fatalf("Assign: %v", err)
	}

	n, err := svc.DeleteAll(ctx)
	if err != nil {
		t.Fatalf("DeleteAll: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 deleted member, got %d", n)
	}

	got, err := listSvc.GetByID(ctx, l.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.AssignedTo != "" {
		t.Fatalf("list still assigned to %q after delete-all", got.AssignedTo)
	}
	cs, err := contactRepo.ListByList(ctx, l.ID)
	if err != nil {
		t.Fatalf("ListByList: %v", err)
	}
	if len(cs) != 1 || cs[0].AssignedTo != "" {
		t.Fatalf("contact still assigned after delete-all: %+v", cs)
	}
}

func TestSetLoginStatus_BumpsLastActivity(t *testing.T) {
	svc, _ := newTestService()

	m, err := svc.Create(context.Background(), validCreate())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.SetLoginStatus(context.Background(), m.ID, true)
	if err != nil {
		t.Fatalf("SetLoginStatus: %v", err)
	}
	if !updated.IsLoggedIn {
		t.Fatalf("expected member logged in")
	}
	if !updated.LastActivity.After(m.LastActivity) && !updated.LastActivity.Equal(m.LastActivity) {
		t.Fatalf("last activity went backwards")
	}
}

func TestGetByTeam_ValidatesTeam(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.GetByTeam(context.Background(), ""); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if _, err := svc.GetByTeam(context.Background(), "team-missing"); !errors.Is(err, ErrTeamNotFound) {
		t.Fatalf("expected ErrTeamNotFound, got %v", err)
	}

	if _, err := svc.Create(context.Background(), validCreate()); err != nil {
		t.Fatalf("Create: %v", err)
	}
	ms, err := svc.GetByTeam(context.Background(), "team-1")
	if err != nil {
		t.Fatalf("GetByTeam: %v", err)
	}
	if len(ms) != 1 {
		t.Fatalf("expected 1 member in team, got %d", len(ms))
	}
}

func TestExportAll_IncludesHeaderAndRows(t *testing.T) {
	svc, repo := newTestService()
	export := NewExportService(repo)

	if _, _, err := export.ExportAll(context.Background()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for empty export, got %v", err)
	}

	if _, err := svc.Create(context.Background(), validCreate()); err != nil {
		t.Fatalf("Create: %v", err)
	}

	filename, data, err := export.ExportAll(context.Background())
	if err != nil {
		t.Fatalf("ExportAll: %v", err)
	}
	if filename != "members.csv" {
		t.Fatalf("unexpected filename %q", filename)
	}
	if !strings.Contains(data, "name,email,userId,role,team,phone,createdAt,updatedAt") {
		t.Fatalf("missing header: %q", data)
	}
	if !strings.Contains(data, "asha@example.com") {
		t.Fatalf("missing row data: %q", data)
	}
}
