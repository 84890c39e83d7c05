package calls

import "time"

// CallResponse is one dial outcome reported by the mobile dialer. Rows are
// append-only; corrections come in as new responses.
type CallResponse struct {
	ID    string    `json:"id" db:"id"`
	Name  string    `json:"name" db:"name"`
	Phone string    `json:"phone" db:"phone"`
	Date  time.Time `json:"date" db:"date"`
	Time  string    `json:"time" db:"time"`

	// Duration is the call length in seconds; TimeSpent includes wrap-up.
	Duration  int `json:"duration" db:"duration"`
	TimeSpent int `json:"timeSpent" db:"time_spent"`

	Dialer           string `json:"dialer" db:"dialer"`
	CalledReceivedBy string `json:"calledReceivedBy" db:"called_received_by"`
	Disposition      string `json:"disposition" db:"disposition"`
	Remarks          string `json:"remarks" db:"remarks"`
	Notes            string `json:"notes" db:"notes"`

	ListID   string `json:"list" db:"list_id"`
	TeamID   string `json:"team" db:"team_id"`
	MemberID string `json:"memberId" db:"member_id"`

	Template  string `json:"template" db:"template"`
	Recording string `json:"recording" db:"recording"`
}
