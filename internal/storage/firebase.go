package storage

import (
	"context"
	"fmt"
	"io"

	gcs "cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	"concrental-backend/internal/logger"
)

// FirebaseStorage stores objects in a Firebase (Cloud Storage) bucket and
// returns public download URLs.
type FirebaseStorage struct {
	bucket     *gcs.BucketHandle
	bucketName string
}

func NewFirebaseStorage(ctx context.Context, bucketName, credentialsFile string) (*FirebaseStorage, error) {
	app, err := firebase.NewApp(ctx,
		&firebase.Config{StorageBucket: bucketName},
		option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}
	client, err := app.Storage(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase storage client: %w", err)
	}
	bucket, err := client.DefaultBucket()
	if err != nil {
		return nil, fmt.Errorf("failed to open storage bucket: %w", err)
	}
	return &FirebaseStorage{bucket: bucket, bucketName: bucketName}, nil
}

func (s *FirebaseStorage) Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	logger.ExternalServiceCall("firebase-storage", "upload", "key", key)

	w := s.bucket.Object(key).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		logger.ExternalServiceResult("firebase-storage", "upload", err, "key", key)
		return "", fmt.Errorf("failed to upload object %q: %w", key, err)
	}
	if err := w.Close(); err != nil {
		logger.ExternalServiceResult("firebase-storage", "upload", err, "key", key)
		return "", fmt.Errorf("failed to finalize object %q: %w", key, err)
	}

	logger.ExternalServiceResult("firebase-storage", "upload", nil, "key", key)
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucketName, key), nil
}

func (s *FirebaseStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Object(key).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete object %q: %w", key, err)
	}
	return nil
}
