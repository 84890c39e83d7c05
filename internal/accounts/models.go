package accounts

import "time"

// Account is a company signup that owns teams, members and lists.
type Account struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	CompanyName   string    `json:"companyName"`
	ContactNumber string    `json:"contactNumber"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Profile is the account shape returned by auth endpoints; it never carries
// the password hash.
type Profile struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	CompanyName   string    `json:"companyName"`
	ContactNumber string    `json:"contactNumber"`
	Email         string    `json:"email"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (a Account) profile() Profile {
	return Profile{
		ID:            a.ID,
		FirstName:     a.FirstName,
		LastName:      a.LastName,
		CompanyName:   a.CompanyName,
		ContactNumber: a.ContactNumber,
		Email:         a.Email,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}
