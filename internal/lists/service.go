package lists

import (
	"context"
	"errors"
	"strings"
	"time"

	"dialdesk/internal/contacts"

	"github.com/google/uuid"
)

var (
	ErrNotFound        = errors.New("lists: not found")
	ErrTeamNotFound    = errors.New("lists: team not found")
	ErrMemberNotFound  = errors.New("lists: member not found")
	ErrInvalidArgument = errors.New("lists: invalid argument")
	ErrDuplicateName   = errors.New("lists: name already exists")
	ErrEmptyList       = errors.New("lists: no contacts in the list")
)

// TeamDirectory answers existence checks without importing the teams package.
type TeamDirectory interface {
	TeamExists(ctx context.Context, id string) (bool, error)
}

// MemberDirectory answers existence checks without importing the members package.
type MemberDirectory interface {
	MemberExists(ctx context.Context, id string) (bool, error)
}

// ContactCounter reports how many contacts a list holds.
type ContactCounter interface {
	CountByList(ctx context.Context, listID string) (int, error)
}

type Service struct {
	repo     Repository
	teams    TeamDirectory
	members  MemberDirectory
	contacts ContactCounter
	clock    func() time.Time
}

func NewService(repo Repository, teams TeamDirectory, members MemberDirectory, counter ContactCounter) *Service {
	return &Service{repo: repo, teams: teams, members: members, contacts: counter, clock: time.Now}
}

func (s *Service) Create(ctx context.Context, name, teamID string) (List, error) {
	name = strings.TrimSpace(name)
	if name == "" || teamID == "" {
		return List{}, ErrInvalidArgument
	}

	if _, ok, err := s.repo.GetByName(ctx, name); err != nil {
		return List{}, err
	} else if ok {
		return List{}, ErrDuplicateName
	}

	ok, err := s.teams.TeamExists(ctx, teamID)
	if err != nil {
		return List{}, err
	}
	if !ok {
		return List{}, ErrTeamNotFound
	}

	now := s.clock().UTC()
	l := List{
		ID:        uuid.NewString(),
		Name:      name,
		TeamID:    teamID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, l); err != nil {
		return List{}, err
	}
	return l, nil
}

func (s *Service) GetAll(ctx context.Context) ([]List, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (List, error) {
	l, ok, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return List{}, err
	}
	if !ok {
		return List{}, ErrNotFound
	}
	return l, nil
}

func (s *Service) GetByTeam(ctx context.Context, teamID string) ([]List, error) {
	if teamID == "" {
		return nil, ErrInvalidArgument
	}
	ok, err := s.teams.TeamExists(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrTeamNotFound
	}
	return s.repo.ListByTeam(ctx, teamID)
}

// Rename updates the list name. A collision is rejected unless the colliding
// list is the one being renamed.
func (s *Service) Rename(ctx context.Context, id, name string) (List, error) {
	l, ok, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return List{}, err
	}
	if !ok {
		return List{}, ErrNotFound
	}

	name = strings.TrimSpace(name)
	if name != "" {
		if existing, ok, err := s.repo.GetByName(ctx, name); err != nil {
			return List{}, err
		} else if ok && existing.ID != id {
			return List{}, ErrDuplicateName
		}
		l.Name = name
	}
	l.UpdatedAt = s.clock().UTC()

	if err := s.repo.Update(ctx, l); err != nil {
		return List{}, err
	}
	return l, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	_, ok, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return s.repo.DeleteCascade(ctx, id)
}

// DeleteByTeam removes every list the team owns together with the contacts
// in them. Runs when a team is deleted so no list keeps a dead team id.
func (s *Service) DeleteByTeam(ctx context.Context, teamID string) error {
	if teamID == "" {
		return ErrInvalidArgument
	}
	return s.repo.DeleteByTeam(ctx, teamID)
}

// Empty deletes every contact in the list but keeps the list itself.
func (s *Service) Empty(ctx context.Context, id string) (List, error) {
	l, ok, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return List{}, err
	}
	if !ok {
		return List{}, ErrNotFound
	}
	if err := s.repo.Empty(ctx, id); err != nil {
		return List{}, err
	}
	return l, nil
}

// Assign points the list and every contact in it at one member.
// Last writer wins: a prior assignee is overwritten without confirmation.
func (s *Service) Assign(ctx context.Context, memberID, listID string) (int, error) {
	if memberID == "" || listID == "" {
		return 0, ErrInvalidArgument
	}

	ok, err := s.members.MemberExists(ctx, memberID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrMemberNotFound
	}

	if _, ok, err := s.repo.GetByID(ctx, listID); err != nil {
		return 0, err
	} else if !ok {
		return 0, ErrNotFound
	}

	n, err := s.contacts.CountByList(ctx, listID)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, ErrEmptyList
	}

	if err := s.repo.Assign(ctx, listID, memberID); err != nil {
		return 0, err
	}
	return n, nil
}

// Unassign clears the assignee on the list and its contacts. The memberID is
// required by the API contract but deliberately not matched against the
// current assignee; any authorized caller can force-clear.
func (s *Service) Unassign(ctx context.Context, listID, memberID string) error {
	if listID == "" || memberID == "" {
		return ErrInvalidArgument
	}
	return s.repo.Unassign(ctx, listID)
}

// ClearAssignmentsFor releases every list and contact assigned to the
// member. Runs before a member is deleted so nothing keeps pointing at a
// removed member id.
func (s *Service) ClearAssignmentsFor(ctx context.Context, memberID string) error {
	if memberID == "" {
		return ErrInvalidArgument
	}
	return s.repo.ClearAssignee(ctx, memberID)
}

// ClearAllAssignments releases every assignment. Runs when the whole
// member directory is wiped.
func (s *Service) ClearAllAssignments(ctx context.Context) error {
	return s.repo.ClearAllAssignees(ctx)
}

// GetListInfo implements contacts.ListSource for the export path.
func (s *Service) GetListInfo(ctx context.Context, id string) (contacts.ListInfo, bool, error) {
	l, ok, err := s.repo.GetByID(ctx, id)
	if err != nil || !ok {
		return contacts.ListInfo{}, ok, err
	}
	return contacts.ListInfo{ID: l.ID, Name: l.Name}, true, nil
}

// ListsAssignedTo returns the lists currently assigned to a member.
func (s *Service) ListsAssignedTo(ctx context.Context, memberID string) ([]List, error) {
	return s.repo.ListAssignedTo(ctx, memberID)
}

// AssignedListNames maps member ids to the names of their assigned lists.
// Used to decorate the member directory responses.
func (s *Service) AssignedListNames(ctx context.Context, memberIDs []string) (map[string][]string, error) {
	out := make(map[string][]string, len(memberIDs))
	for _, id := range memberIDs {
		ls, err := s.repo.ListAssignedTo(ctx, id)
		if err != nil {
			return nil, err
		}
		names := make([]string, 0, len(ls))
		for _, l := range ls {
			names = append(names, l.Name)
		}
		out[id] = names
	}
	return out, nil
}
