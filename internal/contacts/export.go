package contacts

import (
	"context"
	"time"

	"github.com/gocarina/gocsv"
)

// ListInfo is the slice of a list the export path needs.
type ListInfo struct {
	ID   string
	Name string
}

// ListSource resolves list metadata without importing the lists package.
type ListSource interface {
	GetListInfo(ctx context.Context, id string) (ListInfo, bool, error)
}

// listContactRow is the contacts-by-list CSV schema. The field list is
// deliberately literal and ordered; keep it in sync with Contact by hand.
type listContactRow struct {
	Number          string  `csv:"number"`
	SecondaryNumber string  `csv:"secondaryNumber"`
	Name            string  `csv:"name"`
	CompanyName     string  `csv:"companyName"`
	Email           string  `csv:"email"`
	DealValue       float64 `csv:"dealValue"`
	LeadScore       int     `csv:"leadScore"`
	Disposition     string  `csv:"disposition"`
	Address         string  `csv:"address"`
	Extra           string  `csv:"extra"`
	Remarks         string  `csv:"remarks"`
	Note            string  `csv:"note"`
	CreatedOn       string  `csv:"createdOn"`
	Status          string  `csv:"status"`
}

// allContactRow is the all-contacts CSV schema; same columns plus the list id.
type allContactRow struct {
	Number          string  `csv:"number"`
	SecondaryNumber string  `csv:"secondaryNumber"`
	Name            string  `csv:"name"`
	CompanyName     string  `csv:"companyName"`
	Email           string  `csv:"email"`
	DealValue       float64 `csv:"dealValue"`
	LeadScore       int     `csv:"leadScore"`
	Disposition     string  `csv:"disposition"`
	Address         string  `csv:"address"`
	Extra           string  `csv:"extra"`
	Remarks         string  `csv:"remarks"`
	Note            string  `csv:"note"`
	CreatedOn       string  `csv:"createdOn"`
	Status          string  `csv:"status"`
	List            string  `csv:"list"`
}

// ExportService renders point-in-time CSV snapshots of contact records.
type ExportService struct {
	repo  Repository
	lists ListSource
}

func NewExportService(repo Repository, lists ListSource) *ExportService {
	return &ExportService{repo: repo, lists: lists}
}

// ExportByList returns the CSV body and download filename for one list.
// An empty list is a not-found condition, never an empty CSV.
func (s *ExportService) ExportByList(ctx context.Context, listID string) (filename, body string, err error) {
	if listID == "" {
		return "", "", ErrInvalidArgument
	}

	info, ok, err := s.lists.GetListInfo(ctx, listID)
	if err != nil {
		return "", "", err
	}
	if !ok {
		return "", "", ErrNotFound
	}

	cs, err := s.repo.ListByList(ctx, listID)
	if err != nil {
		return "", "", err
	}
	if len(cs) == 0 {
		return "", "", ErrNotFound
	}

	rows := make([]listContactRow, 0, len(cs))
	for _, c := range cs {
		rows = append(rows, listContactRow{
			Number:          c.Number,
			SecondaryNumber: c.SecondaryNumber,
			Name:            c.Name,
			CompanyName:     c.CompanyName,
			Email:           c.Email,
			DealValue:       c.DealValue,
			LeadScore:       c.LeadScore,
			Disposition:     string(c.Disposition),
			Address:         c.Address,
			Extra:           c.Extra,
			Remarks:         c.Remarks,
			Note:            c.Note,
			CreatedOn:       c.CreatedOn.UTC().Format(time.RFC3339),
			Status:          string(c.Status),
		})
	}

	body, err = gocsv.MarshalString(&rows)
	if err != nil {
		return "", "", err
	}
	return info.Name + "_contacts.csv", body, nil
}

// ExportAll returns the CSV body for every contact in the system.
func (s *ExportService) ExportAll(ctx context.Context) (filename, body string, err error) {
	cs, err := s.repo.List(ctx)
	if err != nil {
		return "", "", err
	}
	if len(cs) == 0 {
		return "", "", ErrNotFound
	}

	rows := make([]allContactRow, 0, len(cs))
	for _, c := range cs {
		rows = append(rows, allContactRow{
			Number:          c.Number,
			SecondaryNumber: c.SecondaryNumber,
			Name:            c.Name,
			CompanyName:     c.CompanyName,
			Email:           c.Email,
			DealValue:       c.DealValue,
			LeadScore:       c.LeadScore,
			Disposition:     string(c.Disposition),
			Address:         c.Address,
			Extra:           c.Extra,
			Remarks:         c.Remarks,
			Note:            c.Note,
			CreatedOn:       c.CreatedOn.UTC().Format(time.RFC3339),
			Status:          string(c.Status),
			List:            c.ListID,
		})
	}

	body, err = gocsv.MarshalString(&rows)
	if err != nil {
		return "", "", err
	}
	return "all_contacts.csv", body, nil
}
