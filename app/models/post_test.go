package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPostValidation(t *testing.T) {
	tests := []struct {
		name    string
		post    *Post
		wantErr bool
	}{
		{
			name: "valid post",
			post: &Post{
				ID:        1,
				Title:     "Valid Title",
				Content:   "This is valid content",
				AuthorID:  1,
				CreatedAt: time.Now(),
			},
			wantErr: false,
		},
		{
			name: "title too short",
			post: &Post{
				ID:        1,
				Title:     "ab",
				Content:   "This is valid content",
				AuthorID:  1,
				CreatedAt: time.Now(),
			},
			wantErr: true,
		},
		{
			name: "missing content",
			post: &Post{
				ID:        1,
				Title:     "Valid Title",
				Content:   "",
				AuthorID:  1,
				CreatedAt: time.Now(),
			},
			wantErr: true,
		},
		{
			name: "missing author",
			post: &Post{
				ID:        1,
				Title:     "Valid Title",
				Content:   "This is valid content",
				CreatedAt: time.Now(),
			},
			wantErr: true,
		},
		{
			name: "zero creation time",
			post: &Post{
				ID:        1,
				Title:     "Valid Title",
				Content:   "This is valid content",
				AuthorID:  1,
				CreatedAt: time.Time{},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.post.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPostBeforeCreate(t *testing.T) {
	t.Run("sets timestamps when zero", func(t *testing.T) {
		post := &Post{Title: "Test", Content: "Content", AuthorID: 1}
		post.BeforeCreate()
		assert.False(t, post.CreatedAt.IsZero())
		assert.Equal(t, post.CreatedAt, post.UpdatedAt)
	})

	t.Run("preserves existing creation time", func(t *testing.T) {
		created := time.Now().Add(-time.Hour)
		post := &Post{Title: "Test", Content: "Content", AuthorID: 1, CreatedAt: created}
		post.BeforeCreate()
		assert.Equal(t, created, post.CreatedAt)
	})
}

func TestPostBeforeUpdate(t *testing.T) {
	created := time.Now().Add(-time.Hour)
	post := &Post{Title: "Test", Content: "Content", AuthorID: 1, CreatedAt: created, UpdatedAt: created}
	post.BeforeUpdate()
	assert.Equal(t, created, post.CreatedAt)
	assert.True(t, post.UpdatedAt.After(created))
}

func TestPostExpandAuthor(t *testing.T) {
	t.Run("attaches summary", func(t *testing.T) {
		user := &User{ID: 7, Username: "alice", Email: "alice@example.com"}
		post := &Post{Title: "Test", Content: "Content"}

		err := post.ExpandAuthor(user)
		assert.NoError(t, err)
		assert.Equal(t, 7, post.AuthorID)
		assert.Equal(t, "alice", post.Author.Username)
		assert.Equal(t, "alice@example.com", post.Author.Email)
	})

	t.Run("nil author", func(t *testing.T) {
		post := &Post{Title: "Test", Content: "Content"}
		err := post.ExpandAuthor(nil)
		assert.Error(t, err)
	})
}
