package controllers

import (
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"inkwell/app/middleware"
	"inkwell/app/models"
	"inkwell/app/repositories"
	"inkwell/app/services"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// PostController handles HTTP requests for blog posts
type PostController struct {
	posts *services.PostService
	users repositories.UserRepository
}

// NewPostController creates a new PostController
func NewPostController(posts *services.PostService, users repositories.UserRepository) *PostController {
	return &PostController{posts: posts, users: users}
}

// Index handles the paginated, optionally author-filtered listing
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	page := intQuery(r, "page")
	limit := intQuery(r, "limit")

	authorID := 0
	if authorStr := r.URL.Query().Get("author"); authorStr != "" {
		id, err := strconv.Atoi(authorStr)
		if err != nil {
			sendError(w, http.StatusBadRequest, "Invalid author id")
			return
		}
		authorID = id
	}

	result, err := pc.posts.List(page, limit, authorID)
	if err != nil {
		logrus.WithError(err).Error("failed to list posts")
		sendError(w, http.StatusInternalServerError, "Failed to fetch posts")
		return
	}

	sendJSON(w, http.StatusOK, result)
}

// Show handles displaying a single post
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		sendError(w, http.StatusNotFound, "Post not found")
		return
	}

	post, err := pc.posts.Get(id)
	if err == repositories.ErrNotFound {
		sendError(w, http.StatusNotFound, "Post not found")
		return
	}
	if err != nil {
		logrus.WithError(err).Error("failed to load post")
		sendError(w, http.StatusInternalServerError, "Failed to fetch post")
		return
	}

	sendJSON(w, http.StatusOK, post)
}

// Create handles creating a new post from a multipart form
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	requester, ok := pc.requester(w, r)
	if !ok {
		return
	}

	title, content, upload, ok := pc.parsePostForm(w, r)
	if !ok {
		return
	}

	post, err := pc.posts.Create(r.Context(), requester, title, content, upload)
	if err != nil {
		pc.sendPostError(w, err, "Failed to create post")
		return
	}

	sendJSON(w, http.StatusCreated, post)
}

// Update handles editing an existing post
func (pc *PostController) Update(w http.ResponseWriter, r *http.Request) {
	requester, ok := pc.requester(w, r)
	if !ok {
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		sendError(w, http.StatusNotFound, "Post not found")
		return
	}

	title, content, upload, ok := pc.parsePostForm(w, r)
	if !ok {
		return
	}

	post, err := pc.posts.Update(r.Context(), id, requester, title, content, upload)
	if err != nil {
		pc.sendPostError(w, err, "Failed to update post")
		return
	}

	sendJSON(w, http.StatusOK, post)
}

// Delete handles deleting a post
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	requester, ok := pc.requester(w, r)
	if !ok {
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		sendError(w, http.StatusNotFound, "Post not found")
		return
	}

	if err := pc.posts.Delete(id, requester); err != nil {
		pc.sendPostError(w, err, "Failed to delete post")
		return
	}

	sendJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// requester resolves the authenticated user placed in the request
// context by the auth middleware.
func (pc *PostController) requester(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	userID, ok := middleware.UserID(r)
	if !ok {
		sendError(w, http.StatusUnauthorized, "Authorization token required")
		return nil, false
	}

	user, err := pc.users.GetByID(userID)
	if err != nil {
		sendError(w, http.StatusUnauthorized, "Unknown user")
		return nil, false
	}
	return user, true
}

// parsePostForm reads title, content and the optional image from a
// multipart form. The image is staged to a temp file owned by the
// service operation that receives it; on a validation failure the
// file is removed here.
func (pc *PostController) parsePostForm(w http.ResponseWriter, r *http.Request) (string, string, *services.ImageUpload, bool) {
	if err := r.ParseMultipartForm(services.MaxImageSize); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid multipart form")
		return "", "", nil, false
	}

	title := r.FormValue("title")
	content := r.FormValue("content")

	file, header, err := r.FormFile("image")
	if err == http.ErrMissingFile {
		return title, content, nil, true
	}
	if err != nil {
		sendError(w, http.StatusBadRequest, "Invalid image upload")
		return "", "", nil, false
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		sendError(w, http.StatusBadRequest, services.ErrNotImage.Error())
		return "", "", nil, false
	}
	if header.Size > services.MaxImageSize {
		sendError(w, http.StatusBadRequest, services.ErrImageTooLarge.Error())
		return "", "", nil, false
	}

	tmp, err := os.CreateTemp("", "inkwell-upload-*"+filepath.Ext(header.Filename))
	if err != nil {
		sendError(w, http.StatusInternalServerError, "Failed to stage upload")
		return "", "", nil, false
	}
	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		sendError(w, http.StatusInternalServerError, "Failed to stage upload")
		return "", "", nil, false
	}
	tmp.Close()

	upload := &services.ImageUpload{Path: tmp.Name(), ContentType: contentType}
	if err := upload.Valid(); err != nil {
		os.Remove(tmp.Name())
		sendError(w, http.StatusBadRequest, err.Error())
		return "", "", nil, false
	}

	return title, content, upload, true
}

// sendPostError maps service errors onto status codes
func (pc *PostController) sendPostError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		sendError(w, http.StatusNotFound, "Post not found")
	case errors.Is(err, services.ErrForbidden):
		sendError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrInvalidPost):
		sendError(w, http.StatusBadRequest, err.Error())
	default:
		logrus.WithError(err).Error(fallback)
		sendError(w, http.StatusInternalServerError, fallback)
	}
}

func intQuery(r *http.Request, name string) int {
	value, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}
	return value
}
