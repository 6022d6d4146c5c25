package service

import (
	"context"
	"io"

	"showcase/internal/domain/entity"
)

// MediaStore uploads binaries to the remote asset store.
type MediaStore interface {
	// Upload stores the local file under folder and returns its reference.
	// The caller keeps ownership of localPath and removes it afterwards.
	Upload(ctx context.Context, localPath, folder, contentType string) (*entity.AssetReference, error)

	// Delete removes the object behind a deletion handle. Missing objects are not an error.
	Delete(ctx context.Context, deletionHandle string) error
}

// MediaObject is an open stored asset.
type MediaObject struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
}

// MediaReader streams stored assets back, for buckets that are not publicly served.
type MediaReader interface {
	Open(ctx context.Context, deletionHandle string) (*MediaObject, error)
}
