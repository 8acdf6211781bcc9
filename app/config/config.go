package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the server needs from the environment.
type Config struct {
	Addr                string
	DBPath              string
	JWTSecret           string
	UploadDir           string
	FirebaseCredentials string
	StorageBucket       string
}

// Load reads configuration from the environment, after loading a .env
// file if one is present. Missing optional values fall back to defaults;
// the JWT secret has no safe default and must be set for production use.
func Load() *Config {
	// A missing .env file is fine; real environments set vars directly.
	_ = godotenv.Load()

	return &Config{
		Addr:                getenv("INKWELL_ADDR", ":8080"),
		DBPath:              getenv("INKWELL_DB_PATH", "inkwell.db"),
		JWTSecret:           getenv("INKWELL_JWT_SECRET", "development-secret"),
		UploadDir:           getenv("INKWELL_UPLOAD_DIR", "uploads"),
		FirebaseCredentials: os.Getenv("FIREBASE_CREDENTIALS_PATH"),
		StorageBucket:       os.Getenv("INKWELL_STORAGE_BUCKET"),
	}
}

// UseFirebase reports whether uploads should go to Cloud Storage
// instead of the local upload directory.
func (c *Config) UseFirebase() bool {
	return c.FirebaseCredentials != "" && c.StorageBucket != ""
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
