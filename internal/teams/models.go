package teams

import "time"

// Team is owned by one company account. Name is globally unique.
// Member roster lives in the team_members join table; see internal/members.
type Team struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	AccountID string    `json:"userId" db:"account_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
