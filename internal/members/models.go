package members

import "time"

// Role is the function an agent member has inside a team.
type Role string

const (
	RoleTeamManager Role = "Team Manager"
	RoleSubManager  Role = "Sub Manager"
	RoleAgent       Role = "Agent"
)

func ValidRole(r Role) bool {
	switch r {
	case RoleTeamManager, RoleSubManager, RoleAgent:
		return true
	default:
		return false
	}
}

// Member is an agent account. LoginID and Email are globally unique.
// A member can belong to several teams; the roster lives in team_members.
// PasswordHash never crosses the API boundary.
type Member struct {
	ID           string    `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	LoginID      string    `json:"userId" db:"login_id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         Role      `json:"role" db:"role"`
	TeamIDs      []string  `json:"team"`
	Phone        string    `json:"phone" db:"phone"`
	IsLoggedIn   bool      `json:"isLoggedIn" db:"is_logged_in"`
	LastActivity time.Time `json:"lastActivity" db:"last_activity"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// MemberView is the directory row the dashboard renders: the member plus
// team and assigned-list names instead of ids.
type MemberView struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	LoginID      string    `json:"userId"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	Team         []string  `json:"team"`
	Lists        []string  `json:"lists"`
	Phone        string    `json:"phone"`
	IsLoggedIn   bool      `json:"isLoggedIn"`
	LastActivity time.Time `json:"lastActivity"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
