package storage

import "context"

// ObjectStorage is the port profile image uploads go through. An S3-style
// backend satisfies the same interface; this repo ships a local-disk
// implementation.
type ObjectStorage interface {
	// Put stores the object under key and returns its public URL.
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)
}
