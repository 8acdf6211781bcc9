package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// User represents a registered account that can author posts.
// Password holds the bcrypt hash; Sanitize clears it before the
// record leaves the API.
type User struct {
	ID        int       `json:"_id" validate:"gte=0"`
	Username  string    `json:"username" validate:"required,min=3,max=30"`
	Email     string    `json:"email" validate:"required,email"`
	Password  string    `json:"password,omitempty" validate:"required"`
	CreatedAt time.Time `json:"createdAt"`
}

// Post represents a blog post with an optional attached image.
// AuthorID is the persisted reference; Author is the expanded
// summary resolved at the query boundary and never stored.
type Post struct {
	ID        int            `json:"_id" validate:"gte=0"`
	Title     string         `json:"title" validate:"required,min=3,max=200"`
	Content   string         `json:"content" validate:"required"`
	ImageURL  string         `json:"imageUrl,omitempty"`
	AuthorID  int            `json:"authorId" validate:"required,gt=0"`
	Author    *AuthorSummary `json:"author,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// AuthorSummary is the denormalized author view attached to posts
// in API responses.
type AuthorSummary struct {
	ID       int    `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Page is one page of the post collection, computed per request.
type Page struct {
	Posts       []*Post `json:"posts"`
	TotalPosts  int     `json:"totalPosts"`
	TotalPages  int     `json:"totalPages"`
	CurrentPage int     `json:"currentPage"`
}
