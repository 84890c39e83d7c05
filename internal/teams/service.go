package teams

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound        = errors.New("teams: not found")
	ErrInvalidArgument = errors.New("teams: invalid argument")
	ErrDuplicateName   = errors.New("teams: name already exists")
)

// ListCascade removes the lists a team owns, contacts included, when the
// team goes away.
type ListCascade interface {
	DeleteByTeam(ctx context.Context, teamID string) error
}

type Service struct {
	repo  Repository
	lists ListCascade
	clock func() time.Time
}

func NewService(repo Repository, lists ListCascade) *Service {
	return &Service{repo: repo, lists: lists, clock: time.Now}
}

func (s *Service) Create(ctx context.Context, name, accountID string) (Team, error) {
	name = strings.TrimSpace(name)
	if name == "" || accountID == "" {
		return Team{}, ErrInvalidArgument
	}

	if _, ok, err := s.repo.GetByName(ctx, name); err != nil {
		return Team{}, err
	} else if ok {
		return Team{}, ErrDuplicateName
	}

	now := s.clock().UTC()
	t := Team{
		ID:        uuid.NewString(),
		Name:      name,
		AccountID: accountID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return Team{}, err
	}
	return t, nil
}

func (s *Service) GetByAccount(ctx context.Context, accountID string) ([]Team, error) {
	if accountID == "" {
		return nil, ErrInvalidArgument
	}
	return s.repo.ListByAccount(ctx, accountID)
}

// Delete removes the team and every list it owns, contacts included.
func (s *Service) Delete(ctx context.Context, id string) error {
	_, ok, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	if err := s.lists.DeleteByTeam(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// Rename rejects a name collision unless the colliding team is the one
// being renamed.
func (s *Service) Rename(ctx context.Context, id, name string) (Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Team{}, ErrInvalidArgument
	}

	t, ok, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Team{}, err
	}
	if !ok {
		return Team{}, ErrNotFound
	}

	if existing, ok, err := s.repo.GetByName(ctx, name); err != nil {
		return Team{}, err
	} else if ok && existing.ID != id {
		return Team{}, ErrDuplicateName
	}

	t.Name = name
	t.UpdatedAt = s.clock().UTC()
	if err := s.repo.Update(ctx, t); err != nil {
		return Team{}, err
	}
	return t, nil
}

// TeamExists lets other packages validate team references without taking a
// dependency on this package's repository.
func (s *Service) TeamExists(ctx context.Context, id string) (bool, error) {
	_, ok, err := s.repo.GetByID(ctx, id)
	return ok, err
}

// TeamNames resolves the display names for a set of team ids.
func (s *Service) TeamNames(ctx context.Context, ids []string) (map[string]string, error) {
	return s.repo.NamesByIDs(ctx, ids)
}
