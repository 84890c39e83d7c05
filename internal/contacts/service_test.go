package contacts

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestCreate_AppliesDefaults(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	c, err := svc.Create(context.Background(), CreateRequest{
		Number: "+919876543210",
		Name:   "Asha",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if c.Disposition != DispositionNew {
		t.Fatalf("expected NEW disposition, got %q", c.Disposition)
	}
	if c.Status != StatusPending {
		t.Fatalf("expected PENDING status, got %q", c.Status)
	}
	if c.ID == "" || c.CreatedOn.IsZero() {
		t.Fatalf("missing generated fields: %+v", c)
	}
	if c.AssignedTo != "" || c.ListID != "" {
		t.Fatalf("new manual contacts must be unassigned: %+v", c)
	}
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreateRequest{Number: "+911234"}); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for missing name, got %v", err)
	}
	if _, err := svc.Create(ctx, CreateRequest{Name: "Asha"}); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for missing number, got %v", err)
	}
	if _, err := svc.Create(ctx, CreateRequest{
		Number: "+919876543210", Name: "Asha", Disposition: "MAYBE",
	}); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for unknown disposition, got %v", err)
	}
}

func TestCreate_RejectsDuplicateNumber(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreateRequest{Number: "+919876543210", Name: "Asha"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(ctx, CreateRequest{Number: "+919876543210", Name: "Other"}); !errors.Is(err, ErrDuplicateNumber) {
		t.Fatalf("expected ErrDuplicateNumber, got %v", err)
	}
}

func TestGetByList_EmptyIDReturnsAll(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo)
	ctx := context.Background()

	if err := repo.BulkInsert(ctx, []Contact{
		{ID: "c1", Number: "1", Name: "A", ListID: "list-1"},
		{ID: "c2", Number: "2", Name: "B", ListID: "list-2"},
	}); err != nil {
		t.Fatalf("BulkInsert: %v", err)
	}

	all, err := svc.GetByList(ctx, "")
	if err != nil {
		t.Fatalf("GetByList: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected all contacts for empty list id, got %d", len(all))
	}

	one, err := svc.GetByList(ctx, "list-1")
	if err != nil {
		t.Fatalf("GetByList: %v", err)
	}
	if len(one) != 1 || one[0].ID != "c1" {
		t.Fatalf("expected strict list filter, got %+v", one)
	}
}

type staticListSource map[string]ListInfo

func (s staticListSource) GetListInfo(_ context.Context, id string) (ListInfo, bool, error) {
	info, ok := s[id]
	return info, ok, nil
}

func TestExportByList_FilenameAndColumns(t *testing.T) {
	repo := NewMemoryRepo()
	export := NewExportService(repo, staticListSource{"list-1": {ID: "list-1", Name: "March Leads"}})
	ctx := context.Background()

	if err := repo.BulkInsert(ctx, []Contact{
		{ID: "c1", Number: "+919876543210", Name: "Asha", ListID: "list-1", Status: StatusPending, Disposition: DispositionNew},
	}); err != nil {
		t.Fatalf("BulkInsert: %v", err)
	}

	filename, body, err := export.ExportByList(ctx, "list-1")
	if err != nil {
		t.Fatalf("ExportByList: %v", err)
	}
	if filename != "March Leads_contacts.csv" {
		t.Fatalf("unexpected filename %q", filename)
	}
	header := strings.SplitN(body, "\n", 2)[0]
	if strings.TrimSpace(header) != "number,secondaryNumber,name,companyName,email,dealValue,leadScore,disposition,address,extra,remarks,note,createdOn,status" {
		t.Fatalf("unexpected header %q", header)
	}
	if strings.Contains(header, "list") {
		t.Fatalf("per-list export must not carry the list column: %q", header)
	}
}

func TestExportByList_EmptyAndUnknownAreNotFound(t *testing.T) {
	repo := NewMemoryRepo()
	export := NewExportService(repo, staticListSource{"list-1": {ID: "list-1", Name: "March Leads"}})
	ctx := context.Background()

	if _, _, err := export.ExportByList(ctx, "list-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for empty list, got %v", err)
	}
	if _, _, err := export.ExportByList(ctx, "list-missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown list, got %v", err)
	}
	if _, _, err := export.ExportByList(ctx, ""); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for missing id, got %v", err)
	}
}

func TestExportAll_CarriesListColumn(t *testing.T) {
	repo := NewMemoryRepo()
	export := NewExportService(repo, staticListSource{})
	ctx := context.Background()

	if _, _, err := export.ExportAll(ctx); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound with no contacts, got %v", err)
	}

	if err := repo.BulkInsert(ctx, []Contact{
		{ID: "c1", Number: "+919876543210", Name: "Asha", ListID: "list-1"},
	}); err != nil {
		t.Fatalf("BulkInsert: %v", err)
	}

	filename, body, err := export.ExportAll(ctx)
	if err != nil {
		t.Fatalf("ExportAll: %v", err)
	}
	if filename != "all_contacts.csv" {
		t.Fatalf("unexpected filename %q", filename)
	}
	header := strings.SplitN(body, "\n", 2)[0]
	if !strings.HasSuffix(strings.TrimSpace(header), ",list") {
		t.Fatalf("all-contacts export must end with the list column: %q", header)
	}
	if !strings.Contains(body, "list-1") {
		t.Fatalf("list id missing from body: %q", body)
	}
}
