package expense

import (
	"strings"
	"time"

	"max.ks1230/expenses-ledger/internal/customerr"
)

type User string

const (
	Nobita  User = "nobita"
	Doremon User = "doremon"
)

var Users = []User{Nobita, Doremon}

func (u User) Valid() bool {
	for _, known := range Users {
		if u == known {
			return true
		}
	}
	return false
}

func ParseUser(s string) (User, error) {
	u := User(strings.TrimSpace(s))
	if !u.Valid() {
		return "", customerr.NewValidation("valid user (%s) is required", usersList())
	}
	return u, nil
}

func usersList() string {
	names := make([]string, 0, len(Users))
	for _, u := range Users {
		names = append(names, string(u))
	}
	return strings.Join(names, " or ")
}

// Record is one expense entry as held by the store and mirrored by clients.
// Amount and Date keep their wire text so malformed values survive decoding
// and are caught by aggregation instead of the JSON layer.
type Record struct {
	ID          string    `json:"id"`
	User        User      `json:"user"`
	Date        Date      `json:"date"`
	Amount      Amount    `json:"amount"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}

// ValidateDraft checks a record before it is sent for creation.
func (r Record) ValidateDraft() error {
	if !r.User.Valid() {
		return customerr.NewValidation("valid user (%s) is required", usersList())
	}
	if r.Amount.IsEmpty() || r.Date.IsEmpty() {
		return customerr.NewValidation("amount and date are required")
	}
	if _, err := r.Amount.Decimal(); err != nil {
		return customerr.NewValidation("amount: %s", err)
	}
	if _, err := r.Date.Day(); err != nil {
		return customerr.NewValidation("date: %s", err)
	}
	return nil
}

// Patch is a partial update. Date and user are not mutable through it.
type Patch struct {
	Amount      *Amount `json:"amount,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (p Patch) Validate() error {
	if p.Amount == nil && p.Description == nil {
		return customerr.NewValidation("nothing to update")
	}
	if p.Amount != nil {
		if _, err := p.Amount.Decimal(); err != nil {
			return customerr.NewValidation("amount: %s", err)
		}
	}
	return nil
}

// Apply returns a copy of r with the patch fields replaced.
func (p Patch) Apply(r Record) Record {
	if p.Amount != nil {
		r.Amount = *p.Amount
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	return r
}
