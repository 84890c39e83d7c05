package lists

import "time"

// List is a named container of contacts within a team.
//
// Invariants:
// - Name is globally unique.
// - At most one assigned member at a time (AssignedTo empty when unset).
// - Deleting or emptying a list leaves no contact referencing it.
type List struct {
	ID         string    `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	TeamID     string    `json:"teamId" db:"team_id"`
	AssignedTo string    `json:"assignedTo" db:"assigned_to"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}
