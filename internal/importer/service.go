package importer

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"

	"dialdesk/internal/contacts"
)

var (
	ErrListRequired = errors.New("importer: list id is required")
	ErrNoFile       = errors.New("importer: no file uploaded")
)

// DefaultRegion is applied when the upload does not name a country code.
const DefaultRegion = "IN"

// Result reports what an import did. DuplicatesSkipped is computed as the
// number of contacts already in the list minus the number inserted, which
// matches the dashboard's existing expectations (and can go negative when a
// large file lands in a small list).
type Result struct {
	AddedCount        int `json:"addedCount"`
	DuplicatesSkipped int `json:"duplicatesSkipped"`
}

type Service struct {
	repo  contacts.Repository
	clock func() time.Time
}

func NewService(repo contacts.Repository) *Service {
	return &Service{repo: repo, clock: time.Now}
}

// Import parses the spreadsheet at path and inserts every row whose
// normalized number is not already in the list. Duplicates within the same
// file are also skipped: the first occurrence wins.
func (s *Service) Import(ctx context.Context, path, listID, region string) (Result, error) {
	if listID == "" {
		return Result{}, ErrListRequired
	}
	if region == "" {
		region = DefaultRegion
	}

	existing, err := s.repo.NumbersInList(ctx, listID)
	if err != nil {
		return Result{}, err
	}
	seen := make(map[string]struct{}, len(existing))
	for _, n := range existing {
		seen[n] = struct{}{}
	}

	rows, err := ReadRows(path)
	if err != nil {
		return Result{}, err
	}

	now := s.clock().UTC()
	var batch []contacts.Contact
	for _, row := range rows {
		// A contact is keyed on its unique number; rows without one are
		// dropped rather than staged with a blank key.
		number := FormatPhoneNumber(row["number"], region)
		if number == "" {
			continue
		}
		if _, dup := seen[number]; dup {
			continue
		}
		seen[number] = struct{}{}

		batch = append(batch, contacts.Contact{
			ID:              uuid.NewString(),
			Number:          number,
			SecondaryNumber: FormatPhoneNumber(row["secondaryNumber"], region),
			Name:            row["name"],
			CompanyName:     row["companyName"],
			Email:           row["email"],
			DealValue:       parseFloat(row["dealValue"]),
			LeadScore:       parseInt(row["leadScore"]),
			Disposition:     rowDisposition(row),
			Address:         row["address"],
			Extra:           row["extra"],
			Remarks:         row["remarks"],
			Note:            row["note"],
			CreatedOn:       now,
			Status:          contacts.StatusPending,
			ListID:          listID,
		})
	}

	if len(batch) == 0 {
		return Result{AddedCount: 0, DuplicatesSkipped: len(existing)}, nil
	}
	if err := s.repo.BulkInsert(ctx, batch); err != nil {
		return Result{}, err
	}
	return Result{
		AddedCount:        len(batch),
		DuplicatesSkipped: len(existing) - len(batch),
	}, nil
}

func rowDisposition(row Row) contacts.Disposition {
	if d := contacts.Disposition(row["disposition"]); d != "" {
		return d
	}
	return contacts.DispositionNew
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func parseInt(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}
