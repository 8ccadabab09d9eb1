package storage

import (
	"context"
	"io"
)

// BlobStorage persists uploaded documents (customer ID files, signed
// contracts) and returns a stable URL for the stored object.
type BlobStorage interface {
	Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
}

// Config selects and parameterizes the storage backend.
type Config struct {
	Type            string `yaml:"type"`             // "local" or "firebase"
	LocalDir        string `yaml:"local_dir"`        // directory for local storage
	BaseURL         string `yaml:"base_url"`         // server base URL for local object URLs
	Bucket          string `yaml:"bucket"`           // firebase storage bucket
	CredentialsFile string `yaml:"credentials_file"` // firebase service account file
}
