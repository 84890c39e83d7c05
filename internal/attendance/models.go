package attendance

import "time"

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
)

// Record is one member-day attendance row. Day is truncated to UTC
// midnight; there is exactly one row per (member, day).
type Record struct {
	ID        string    `json:"id" db:"id"`
	MemberID  string    `json:"memberId" db:"member_id"`
	Day       time.Time `json:"-" db:"day"`
	Status    Status    `json:"status" db:"status"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// View is the read shape; the day is rendered DD-MM-YYYY for the dashboard.
type View struct {
	ID        string    `json:"id"`
	MemberID  string    `json:"memberId"`
	Date      string    `json:"date"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
