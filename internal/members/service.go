package members

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"dialdesk/internal/lists"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrNotFound        = errors.New("members: not found")
	ErrTeamNotFound    = errors.New("members: team not found")
	ErrInvalidArgument = errors.New("members: invalid argument")
	ErrDuplicateEmail  = errors.New("members: email already exists")
	ErrDuplicateLogin  = errors.New("members: login id already exists")
)

const bcryptCost = 10

// TeamDirectory is the slice of the teams package this service depends on.
type TeamDirectory interface {
	TeamExists(ctx context.Context, id string) (bool, error)
	TeamNames(ctx context.Context, ids []string) (map[string]string, error)
}

// ListSource resolves the lists currently assigned to members and
// releases assignments when members go away.
type ListSource interface {
	ListsAssignedTo(ctx context.Context, memberID string) ([]lists.List, error)
	AssignedListNames(ctx context.Context, memberIDs []string) (map[string][]string, error)
	ClearAssignmentsFor(ctx context.Context, memberID string) error
	ClearAllAssignments(ctx context.Context) error
}

type Service struct {
	repo     Repository
	teams    TeamDirectory
	listSrc  ListSource
	clock    func() time.Time
	hashCost int
}

func NewService(repo Repository, teams TeamDirectory, listSrc ListSource) *Service {
	return &Service{repo: repo, teams: teams, listSrc: listSrc, clock: time.Now, hashCost: bcryptCost}
}

// TeamList accepts either a JSON string or an array of strings; the mobile
// app sends a bare string when a member joins a single team.
type TeamList []string

func (t *TeamList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*t = TeamList{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return errors.New("team must be a string or an array of strings")
	}
	*t = TeamList(many)
	return nil
}

type CreateRequest struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	LoginID  string   `json:"userId"`
	Password string   `json:"password"`
	Role     Role     `json:"role"`
	Team     TeamList `json:"team"`
	Phone    string   `json:"phone"`
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (Member, error) {
	if req.Name == "" || req.Email == "" || req.LoginID == "" || req.Password == "" || req.Phone == "" {
		return Member{}, ErrInvalidArgument
	}
	if !ValidRole(req.Role) {
		return Member{}, ErrInvalidArgument
	}
	if len(req.Team) == 0 {
		return Member{}, ErrInvalidArgument
	}

	if _, ok, err := s.repo.GetByEmail(ctx, req.Email); err != nil {
		return Member{}, err
	} else if ok {
		return Member{}, ErrDuplicateEmail
	}
	if _, ok, err := s.repo.GetByLoginID(ctx, req.LoginID); err != nil {
		return Member{}, err
	} else if ok {
		return Member{}, ErrDuplicateLogin
	}

	for _, teamID := range req.Team {
		ok, err := s.teams.TeamExists(ctx, teamID)
		if err != nil {
			return Member{}, err
		}
		if !ok {
			return Member{}, fmt.Errorf("%w: %s", ErrTeamNotFound, teamID)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.hashCost)
	if err != nil {
		return Member{}, err
	}

	now := s.clock().UTC()
	m := Member{
		ID:           uuid.NewString(),
		Name:         req.Name,
		LoginID:      req.LoginID,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
		TeamIDs:      req.Team,
		Phone:        req.Phone,
		IsLoggedIn:   false,
		LastActivity: now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return Member{}, err
	}
	return m, nil
}

// GetAll returns the member directory decorated with team names and the
// names of the lists assigned to each member.
func (s *Service) GetAll(ctx context.Context) ([]MemberView, error) {
	ms, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(ms) == 0 {
		return nil, ErrNotFound
	}

	memberIDs := make([]string, 0, len(ms))
	teamIDSet := map[string]struct{}{}
	for _, m := range ms {
		memberIDs = append(memberIDs, m.ID)
		for _, id := range m.TeamIDs {
			teamIDSet[id] = struct{}{}
		}
	}
	teamIDs := make([]string, 0, len(teamIDSet))
	for id := range teamIDSet {
		teamIDs = append(teamIDs, id)
	}

	teamNames, err := s.teams.TeamNames(ctx, teamIDs)
	if err != nil {
		return nil, err
	}
	listNames, err := s.listSrc.AssignedListNames(ctx, memberIDs)
	if err != nil {
		return nil, err
	}

	views := make([]MemberView, 0, len(ms))
	for _, m := range ms {
		names := make([]string, 0, len(m.TeamIDs))
		for _, id := range m.TeamIDs {
			if n, ok := teamNames[id]; ok {
				names = append(names, n)
			}
		}
		views = append(views, MemberView{
			ID:           m.ID,
			Name:         m.Name,
			LoginID:      m.LoginID,
			Email:        m.Email,
			Role:         m.Role,
			Team:         names,
			Lists:        listNames[m.ID],
			Phone:        m.Phone,
			IsLoggedIn:   m.IsLoggedIn,
			LastActivity: m.LastActivity,
			CreatedAt:    m.CreatedAt,
			UpdatedAt:    m.UpdatedAt,
		})
	}
	return views, nil
}

// ChangePassword rehashes the password of the member with the given login id.
func (s *Service) ChangePassword(ctx context.Context, loginID, newPassword string) error {
	if loginID == "" || newPassword == "" {
		return ErrInvalidArgument
	}
	m, ok, err := s.repo.GetByLoginID(ctx, loginID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.hashCost)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(ctx, m.ID, string(hash))
}

// Delete removes a member by login id, pulls them from every team roster
// and releases the lists and contacts assigned to them.
func (s *Service) Delete(ctx context.Context, loginID string) error {
	m, ok, err := s.repo.GetByLoginID(ctx, loginID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	if err := s.listSrc.ClearAssignmentsFor(ctx, m.ID); err != nil {
		return err
	}
	_, _, err = s.repo.DeleteByLoginID(ctx, loginID)
	return err
}

// DeleteAll wipes the member directory. Every list and contact assignment
// is released first so no record keeps a dead member id.
func (s *Service) DeleteAll(ctx context.Context) (int, error) {
	if err := s.listSrc.ClearAllAssignments(ctx); err != nil {
		return 0, err
	}
	return s.repo.DeleteAll(ctx)
}

type UpdateRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

func (s *Service) UpdateDetails(ctx context.Context, memberID string, req UpdateRequest) (Member, error) {
	m, ok, err := s.repo.GetByID(ctx, memberID)
	if err != nil {
		return Member{}, err
	}
	if !ok {
		return Member{}, ErrNotFound
	}

	if req.Name != "" {
		m.Name = req.Name
	}
	if req.Phone != "" {
		m.Phone = req.Phone
	}
	m.UpdatedAt = s.clock().UTC()

	if err := s.repo.Update(ctx, m); err != nil {
		return Member{}, err
	}
	return m, nil
}

// SetLoginStatus flips the mobile-app login flag and bumps last activity.
func (s *Service) SetLoginStatus(ctx context.Context, memberID string, isLoggedIn bool) (Member, error) {
	m, ok, err := s.repo.GetByID(ctx, memberID)
	if err != nil {
		return Member{}, err
	}
	if !ok {
		return Member{}, ErrNotFound
	}

	m.IsLoggedIn = isLoggedIn
	m.LastActivity = s.clock().UTC()
	m.UpdatedAt = m.LastActivity

	if err := s.repo.Update(ctx, m); err != nil {
		return Member{}, err
	}
	return m, nil
}

// GetListsByMember returns the lists currently assigned to the member.
func (s *Service) GetListsByMember(ctx context.Context, memberID string) ([]lists.List, error) {
	_, ok, err := s.repo.GetByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}
	return s.listSrc.ListsAssignedTo(ctx, memberID)
}

func (s *Service) GetByTeam(ctx context.Context, teamID string) ([]Member, error) {
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

// MemberExists implements the existence check the list manager depends on.
func (s *Service) MemberExists(ctx context.Context, id string) (bool, error) {
	_, ok, err := s.repo.GetByID(ctx, id)
	return ok, err
}
