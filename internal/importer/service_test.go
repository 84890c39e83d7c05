package importer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"dialdesk/internal/contacts"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "upload.csv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

const sampleCSV = `number,name,companyName,dealValue,leadScore
9876543210,Asha,Acme,1500.5,7
9123456789,Vikram,,,"3"
9876543210,Asha Again,Dup Inc,,
`

func TestImport_NormalizesAndDeduplicatesWithinFile(t *testing.T) {
	repo := contacts.NewMemoryRepo()
	svc := NewService(repo)

	res, err := svc.Import(context.Background(), writeCSV(t, sampleCSV), "list-1", "IN")
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if res.AddedCount != 2 {
		t.Fatalf("expected 2 added, got %d", res.AddedCount)
	}

	stored, err := repo.ListByList(context.Background(), "list-1")
	if err != nil {
		t.Fatalf("ListByList: %v", err)
	}
	if len(stored) != 2 {
		t.Fatalf("expected 2 contacts in list, got %d", len(stored))
	}
	byNumber := map[string]contacts.Contact{}
	for _, c := range stored {
		byNumber[c.Number] = c
	}
	first, ok := byNumber["+919876543210"]
	if !ok {
		t.Fatalf("normalized number missing: %v", byNumber)
	}
	if first.Name != "Asha" {
		t.Fatalf("first occurrence should win, got %q", first.Name)
	}
	if first.DealValue != 1500.5 || first.LeadScore != 7 {
		t.Fatalf("numeric fields not parsed: %+v", first)
	}
	if first.Disposition != contacts.DispositionNew || first.Status != contacts.StatusPending {
		t.Fatalf("staging defaults not applied: %+v", first)
	}
}

func TestImport_SameFileTwiceAddsNothing(t *testing.T) {
	repo := contacts.NewMemoryRepo()
	svc := NewService(repo)
	path := writeCSV(t, sampleCSV)

	first, err := svc.Import(context.Background(), path, "list-1", "IN")
	if err != nil {
		t.Fatalf("first Import: %v", err)
	}
	second, err := svc.Import(context.Background(), path, "list-1", "IN")
	if err != nil {
		t.Fatalf("second Import: %v", err)
	}

	if second.AddedCount != 0 {
		t.Fatalf("expected 0 added on re-import, got %d", second.AddedCount)
	}
	if second.DuplicatesSkipped != first.AddedCount {
		t.Fatalf("expected duplicatesSkipped=%d, got %d", first.AddedCount, second.DuplicatesSkipped)
	}
}

func TestImport_DuplicateCountFormula(t *testing.T) {
	repo := contacts.NewMemoryRepo()
	svc := NewService(repo)

	if _, err := svc.Import(context.Background(), writeCSV(t, "number,name\n9876543210,A\n"), "list-1", "IN"); err != nil {
		t.Fatalf("seed Import: %v", err)
	}

	// Two new rows against one existing: existing(1) - inserted(2) = -1.
	res, err := svc.Import(context.Background(), writeCSV(t, "number,name\n9123456789,B\n6502530000,C\n"), "list-1", "IN")
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if res.AddedCount != 2 {
		t.Fatalf("expected 2 added, got %d", res.AddedCount)
	}
	if res.DuplicatesSkipped != -1 {
		t.Fatalf("expected duplicatesSkipped=-1, got %d", res.DuplicatesSkipped)
	}
}

func TestImport_RequiresListAndKnownExtension(t *testing.T) {
	svc := NewService(contacts.NewMemoryRepo())

	if _, err := svc.Import(context.Background(), "whatever.csv", "", "IN"); !errors.Is(err, ErrListRequired) {
		t.Fatalf("expected ErrListRequired, got %v", err)
	}

	path := filepath.Join(t.TempDir(), "upload.txt")
	if err := os.WriteFile(path, []byte("number\n1\n"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, err := svc.Import(context.Background(), path, "list-1", "IN"); !errors.Is(err, ErrUnsupportedFileType) {
		t.Fatalf("expected ErrUnsupportedFileType, got %v", err)
	}
}

func TestImport_InvalidNumbersKeptVerbatim(t *testing.T) {
	repo := contacts.NewMemoryRepo()
	svc := NewService(repo)

	res, err := svc.Import(context.Background(), writeCSV(t, "number,name\n12345,Short\n"), "list-1", "IN")
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if res.AddedCount != 1 {
		t.Fatalf("expected 1 added, got %d", res.AddedCount)
	}

	stored, _ := repo.ListByList(context.Background(), "list-1")
	if stored[0].Number != "12345" {
		t.Fatalf("invalid number should be kept verbatim, got %q", stored[0].Number)
	}
}

func TestImport_SkipsRowsWithoutNumber(t *testing.T) {
	repo := contacts.NewMemoryRepo()
	svc := NewService(repo)

	res, err := svc.Import(context.Background(), writeCSV(t, "number,name\n,NoNumber\n9876543210,Asha\n"), "list-1", "IN")
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if res.AddedCount != 1 {
		t.Fatalf("expected only the numbered row staged, got %d", res.AddedCount)
	}

	stored, _ := repo.ListByList(context.Background(), "list-1")
	if len(stored) != 1 || stored[0].Name != "Asha" {
		t.Fatalf("unexpected staged contacts: %+v", stored)
	}
}
