package models

import "time"

// Citizen represents a registered portal user. Mobile is the natural
// identity and doubles as the session username.
type Citizen struct {
	ID           string    `db:"id" json:"id"`
	FirstName    string    `db:"first_name" json:"firstName"`
	LastName     string    `db:"last_name" json:"lastName"`
	Mobile       string    `db:"mobile" json:"mobile"`
	Ward         string    `db:"ward" json:"ward"`
	Email        string    `db:"email" json:"email"`
	Address      string    `db:"address" json:"address"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

// FullName joins the first and last name for display.
func (c Citizen) FullName() string {
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

// CitizenFilter captures the admin citizen-roster filters.
type CitizenFilter struct {
	Search string
	Ward   string
	From   *time.Time
	To     *time.Time
}
