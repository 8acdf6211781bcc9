package repositories

import "inkwell/app/models"

// UserRepository defines the interface for user data access.
// Create enforces email and username uniqueness at the store
// boundary, email first.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id int) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}

// PostRepository defines the interface for post data access.
// List returns posts ordered by creation time descending, ties
// broken by insertion order; authorID 0 means no filter.
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id int) (*models.Post, error)
	List(authorID, limit, offset int) ([]*models.Post, error)
	Count(authorID int) (int, error)
	Update(post *models.Post) error
	Delete(id int) error
}
