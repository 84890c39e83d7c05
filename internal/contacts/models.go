package contacts

import "time"

// Disposition is the outcome label agents put on a lead.
// Keep values stable; the mobile dialer sends them verbatim.
type Disposition string

const (
	DispositionSkip          Disposition = "SKIP"
	DispositionContacted     Disposition = "CONTACTED"
	DispositionQualified     Disposition = "QUALIFIED"
	DispositionNew           Disposition = "NEW"
	DispositionWrongNumber   Disposition = "WRONG NUMBER"
	DispositionInterested    Disposition = "INTERESTED"
	DispositionUnreachable   Disposition = "UNREACHABLE"
	DispositionNotInterested Disposition = "NOT INTERESTED"
)

func ValidDisposition(d Disposition) bool {
	switch d {
	case DispositionSkip, DispositionContacted, DispositionQualified, DispositionNew,
		DispositionWrongNumber, DispositionInterested, DispositionUnreachable, DispositionNotInterested:
		return true
	default:
		return false
	}
}

// Status tracks whether a contact has been worked through yet.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusCompleted Status = "COMPLETED"
	StatusMissed    Status = "MISSED"
)

// Contact is a lead/customer record.
//
// Invariant: Number is globally unique (enforced by a DB unique index; the
// import pipeline additionally de-duplicates per list before inserting).
// AssignedTo and ListID are empty strings when unset.
type Contact struct {
	ID              string      `json:"id" db:"id"`
	Number          string      `json:"number" db:"number"`
	SecondaryNumber string      `json:"secondaryNumber" db:"secondary_number"`
	Name            string      `json:"name" db:"name"`
	CompanyName     string      `json:"companyName" db:"company_name"`
	Email           string      `json:"email" db:"email"`
	DealValue       float64     `json:"dealValue" db:"deal_value"`
	LeadScore       int         `json:"leadScore" db:"lead_score"`
	Disposition     Disposition `json:"disposition" db:"disposition"`
	Address         string      `json:"address" db:"address"`
	Extra           string      `json:"extra" db:"extra"`
	Remarks         string      `json:"remarks" db:"remarks"`
	Note            string      `json:"note" db:"note"`
	CreatedOn       time.Time   `json:"createdOn" db:"created_on"`
	AssignedTo      string      `json:"assignedTo" db:"assigned_to"`
	Status          Status      `json:"status" db:"status"`
	ListID          string      `json:"list" db:"list_id"`
}
