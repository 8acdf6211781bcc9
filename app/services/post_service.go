package services

import (
	"context"
	"fmt"
	"os"

	"inkwell/app/models"
	"inkwell/app/repositories"
)

// DefaultPageSize is used when a listing request carries no limit.
const DefaultPageSize = 6

// PostService answers listing requests with pagination and optional
// author filtering, and enforces authorship for mutations.
type PostService struct {
	posts    repositories.PostRepository
	users    repositories.UserRepository
	uploader MediaUploader
}

// NewPostService creates a new PostService
func NewPostService(posts repositories.PostRepository, users repositories.UserRepository, uploader MediaUploader) *PostService {
	return &PostService{
		posts:    posts,
		users:    users,
		uploader: uploader,
	}
}

// List retrieves one page of posts, newest first. page and limit
// fall back to 1 and DefaultPageSize when non-positive; authorID 0
// means no filter. The filter applies to both the slice and the
// total count.
func (s *PostService) List(page, limit, authorID int) (*models.Page, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}

	total, err := s.posts.Count(authorID)
	if err != nil {
		return nil, err
	}

	posts, err := s.posts.List(authorID, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	if err := s.expandAuthors(posts); err != nil {
		return nil, err
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}

	return &models.Page{
		Posts:       posts,
		TotalPosts:  total,
		TotalPages:  totalPages,
		CurrentPage: page,
	}, nil
}

// Get retrieves a post by ID with its author summary resolved.
func (s *PostService) Get(id int) (*models.Post, error) {
	post, err := s.posts.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.expandAuthors([]*models.Post{post}); err != nil {
		return nil, err
	}
	return post, nil
}

// Create persists a new post for the authenticated author. When an
// upload is staged it is stored before the record is written; an
// upload failure aborts the operation with nothing persisted. The
// staged temp file is removed on every path.
func (s *PostService) Create(ctx context.Context, author *models.User, title, content string, upload *ImageUpload) (*models.Post, error) {
	if upload != nil {
		defer os.Remove(upload.Path)
	}

	post := &models.Post{
		Title:    title,
		Content:  content,
		AuthorID: author.ID,
	}
	post.BeforeCreate()
	if err := post.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPost, err)
	}

	if upload != nil {
		url, err := s.uploader.Upload(ctx, upload.Path, upload.ContentType)
		if err != nil {
			return nil, fmt.Errorf("failed to store image: %v", err)
		}
		post.ImageURL = url
	}

	if err := s.posts.Create(post); err != nil {
		return nil, err
	}

	post.ExpandAuthor(author)
	return post, nil
}

// Update modifies a post after verifying the requester owns it. The
// stored author reference decides ownership; client-supplied author
// fields are never consulted. A replacement image uploads before
// the record changes; the prior image is not reclaimed.
func (s *PostService) Update(ctx context.Context, id int, requester *models.User, title, content string, upload *ImageUpload) (*models.Post, error) {
	if upload != nil {
		defer os.Remove(upload.Path)
	}

	post, err := s.posts.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(post, requester); err != nil {
		return nil, err
	}

	post.Title = title
	post.Content = content
	if err := post.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPost, err)
	}

	if upload != nil {
		url, err := s.uploader.Upload(ctx, upload.Path, upload.ContentType)
		if err != nil {
			return nil, fmt.Errorf("failed to store image: %v", err)
		}
		post.ImageURL = url
	}

	post.BeforeUpdate()
	if err := s.posts.Update(post); err != nil {
		return nil, err
	}

	post.ExpandAuthor(requester)
	return post, nil
}

// Delete removes a post after verifying the requester owns it.
func (s *PostService) Delete(id int, requester *models.User) error {
	post, err := s.posts.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.authorize(post, requester); err != nil {
		return err
	}

	return s.posts.Delete(id)
}

// authorize checks ownership against the stored author reference.
func (s *PostService) authorize(post *models.Post, requester *models.User) error {
	if post.AuthorID != requester.ID {
		return ErrForbidden
	}
	return nil
}

// expandAuthors resolves author summaries for a batch of posts,
// loading each distinct author once. A post whose author no longer
// exists keeps a nil summary.
func (s *PostService) expandAuthors(posts []*models.Post) error {
	authors := make(map[int]*models.User)
	for _, post := range posts {
		author, seen := authors[post.AuthorID]
		if !seen {
			var err error
			author, err = s.users.GetByID(post.AuthorID)
			if err == repositories.ErrNotFound {
				author = nil
			} else if err != nil {
				return fmt.Errorf("failed to resolve author %d: %v", post.AuthorID, err)
			}
			authors[post.AuthorID] = author
		}
		if author != nil {
			post.Author = author.Summary()
		}
	}
	return nil
}
