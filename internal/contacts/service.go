package contacts

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound        = errors.New("contacts: not found")
	ErrInvalidArgument = errors.New("contacts: invalid argument")
	ErrDuplicateNumber = errors.New("contacts: number already exists")
)

type Service struct {
	repo Repository
	// clock is injectable for deterministic tests.
	clock func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, clock: time.Now}
}

type CreateRequest struct {
	Number          string      `json:"number"`
	SecondaryNumber string      `json:"secondaryNumber"`
	Name            string      `json:"name"`
	CompanyName     string      `json:"companyName"`
	Email           string      `json:"email"`
	DealValue       float64     `json:"dealValue"`
	LeadScore       int         `json:"leadScore"`
	Disposition     Disposition `json:"disposition"`
	Address         string      `json:"address"`
	Extra           string      `json:"extra"`
	Remarks         string      `json:"remarks"`
	Note            string      `json:"note"`
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (Contact, error) {
	if req.Number == "" || req.Name == "" {
		return Contact{}, ErrInvalidArgument
	}
	if req.Disposition != "" && !ValidDisposition(req.Disposition) {
		return Contact{}, ErrInvalidArgument
	}

	exists, err := s.repo.NumberExists(ctx, req.Number)
	if err != nil {
		return Contact{}, err
	}
	if exists {
		return Contact{}, ErrDuplicateNumber
	}

	c := Contact{
		ID:              uuid.NewString(),
		Number:          req.Number,
		SecondaryNumber: req.SecondaryNumber,
		Name:            req.Name,
		CompanyName:     req.CompanyName,
		Email:           req.Email,
		DealValue:       req.DealValue,
		LeadScore:       req.LeadScore,
		Disposition:     req.Disposition,
		Address:         req.Address,
		Extra:           req.Extra,
		Remarks:         req.Remarks,
		Note:            req.Note,
		CreatedOn:       s.clock().UTC(),
		Status:          StatusPending,
	}
	if c.Disposition == "" {
		c.Disposition = DispositionNew
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return Contact{}, err
	}
	return c, nil
}

func (s *Service) GetAll(ctx context.Context) ([]Contact, error) {
	return s.repo.List(ctx)
}

// GetByList returns the contacts of one list, or every contact when listID
// is empty. Mirrors the dashboard's fetchAllListContacts query behavior.
func (s *Service) GetByList(ctx context.Context, listID string) ([]Contact, error) {
	if listID == "" {
		return s.repo.List(ctx)
	}
	return s.repo.ListByList(ctx, listID)
}
