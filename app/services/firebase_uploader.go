package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	firebase "firebase.google.com/go/v4"
	"github.com/google/uuid"
	"google.golang.org/api/option"

	"cloud.google.com/go/storage"
)

// FirebaseUploader stores post images in a Firebase Storage bucket
// and returns their public URLs.
type FirebaseUploader struct {
	bucket     *storage.BucketHandle
	bucketName string
}

// NewFirebaseUploader initializes the Firebase app and resolves the
// default bucket.
func NewFirebaseUploader(ctx context.Context, credentialsPath, bucketName string) (*FirebaseUploader, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, &firebase.Config{StorageBucket: bucketName}, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to init Firebase app: %v", err)
	}

	client, err := app.Storage(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get storage client: %v", err)
	}

	bucket, err := client.DefaultBucket()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve bucket: %v", err)
	}

	return &FirebaseUploader{bucket: bucket, bucketName: bucketName}, nil
}

// Upload writes the staged file to the bucket under posts/ with a
// random object name and returns the object URL.
func (f *FirebaseUploader) Upload(ctx context.Context, localPath, contentType string) (string, error) {
	src, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %v", err)
	}
	defer src.Close()

	name := "posts/" + uuid.New().String() + filepath.Ext(localPath)
	w := f.bucket.Object(name).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, src); err != nil {
		w.Close()
		return "", fmt.Errorf("failed to write object: %v", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize object: %v", err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", f.bucketName, name), nil
}
