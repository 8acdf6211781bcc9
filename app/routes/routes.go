package routes

import (
	"net/http"

	"inkwell/app/controllers"
	"inkwell/app/middleware"
	"inkwell/app/repositories"
	"inkwell/app/services"

	"github.com/gorilla/mux"
)

// Options carries the collaborators the router needs.
type Options struct {
	Users    repositories.UserRepository
	Posts    repositories.PostRepository
	Auth     *services.AuthService
	Uploader services.MediaUploader

	// UploadDir, when non-empty, is served at /uploads/ for locally
	// stored images. Leave empty when a remote uploader is configured.
	UploadDir string
}

// SetupRoutes defines the application's routes and returns a router.
func SetupRoutes(opts Options) *mux.Router {
	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	postService := services.NewPostService(opts.Posts, opts.Users, opts.Uploader)
	authController := controllers.NewAuthController(opts.Auth)
	postController := controllers.NewPostController(postService, opts.Users)

	api := router.PathPrefix("/api").Subrouter()

	// Auth endpoints
	api.HandleFunc("/signup", authController.Signup).Methods("POST")
	api.HandleFunc("/login", authController.Login).Methods("POST")

	// Public post endpoints
	api.HandleFunc("/posts", postController.Index).Methods("GET")
	api.HandleFunc("/posts/{id:[0-9]+}", postController.Show).Methods("GET")

	// Post endpoints requiring a bearer token
	protected := api.NewRoute().Subrouter()
	protected.Use(middleware.RequireAuth(opts.Auth))
	protected.HandleFunc("/posts", postController.Create).Methods("POST")
	protected.HandleFunc("/posts/{id:[0-9]+}", postController.Update).Methods("PUT")
	protected.HandleFunc("/posts/{id:[0-9]+}", postController.Delete).Methods("DELETE")

	if opts.UploadDir != "" {
		router.PathPrefix("/uploads/").Handler(
			http.StripPrefix("/uploads/", http.FileServer(http.Dir(opts.UploadDir))))
	}

	return router
}

// StartServer starts the HTTP server on the specified address with the given router.
func StartServer(addr string, router http.Handler) error {
	return http.ListenAndServe(addr, router)
}
