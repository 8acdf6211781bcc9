package models

import (
	"errors"
	"time"
)

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}

	if p.CreatedAt.IsZero() {
		return errors.New("created_at cannot be zero")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (p *Post) BeforeCreate() {
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = p.CreatedAt
	}
}

// BeforeUpdate refreshes the modification timestamp
func (p *Post) BeforeUpdate() {
	p.UpdatedAt = time.Now()
}

// ExpandAuthor attaches the author summary for the given user.
// The summary is response-only; repositories strip it before
// persisting the post.
func (p *Post) ExpandAuthor(u *User) error {
	if u == nil {
		return errors.New("author cannot be nil")
	}

	p.AuthorID = u.ID
	p.Author = &AuthorSummary{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
	return nil
}
