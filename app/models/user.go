package models

import (
	"errors"
	"time"
)

// Validate checks if the user meets all validation requirements
func (u *User) Validate() error {
	if err := validate.Struct(u); err != nil {
		return err
	}

	if u.CreatedAt.IsZero() {
		return errors.New("created_at cannot be zero")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (u *User) BeforeCreate() {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
}

// Sanitize clears the password hash so the record can be returned
// to a client.
func (u *User) Sanitize() {
	u.Password = ""
}

// Summary returns the denormalized author view of the user.
func (u *User) Summary() *AuthorSummary {
	return &AuthorSummary{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}
