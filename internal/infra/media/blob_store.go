// Package media stores uploaded assets in a gocloud.dev blob bucket.
package media

import (
	"context"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"showcase/config"
	"showcase/internal/domain/entity"
	domainerrors "showcase/internal/domain/errors"
	"showcase/internal/domain/service"
	"showcase/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/azureblob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
	"gocloud.dev/gcerrors"
)

// Params defines the dependencies of the blob store
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Result exposes the store under both of its interfaces.
type Result struct {
	fx.Out

	Store  service.MediaStore
	Reader service.MediaReader
}

// blobStore keys objects as {rootFolder}/{folder}/{uuid}{ext}; the key doubles as the deletion handle.
type blobStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
	rootFolder    string
	logger        *slog.Logger
}

// New opens the configured bucket URL and closes the bucket on stop.
func New(params Params) (Result, error) {
	cfg := params.Config.Media
	if cfg == nil || cfg.BucketURL == "" {
		return Result{}, errors.New("media.bucketUrl is required")
	}

	bucket, err := blob.OpenBucket(context.Background(), cfg.BucketURL)
	if err != nil {
		return Result{}, errors.Wrapf(err, "failed to open media bucket %s", redactURL(cfg.BucketURL))
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	params.Logger.Info("Media bucket opened", slog.String("bucket", redactURL(cfg.BucketURL)))

	store := newBlobStore(bucket, cfg.PublicBaseURL, cfg.RootFolder, params.Logger)

	return Result{Store: store, Reader: store}, nil
}

func newBlobStore(bucket *blob.Bucket, publicBaseURL, rootFolder string, logger *slog.Logger) *blobStore {
	return &blobStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		rootFolder:    strings.Trim(rootFolder, "/"),
		logger:        logger,
	}
}

func (s *blobStore) Upload(ctx context.Context, localPath, folder, contentType string) (*entity.AssetReference, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return nil, domainerrors.ErrUploadFailed.WithDetails(err.Error())
	}
	defer f.Close()

	id := uuid.New()
	key := path.Join(s.rootFolder, folder, id.String()+strings.ToLower(filepath.Ext(localPath)))

	if err := s.bucket.Upload(ctx, key, f, &blob.WriterOptions{ContentType: contentType}); err != nil {
		return nil, errors.Wrap(domainerrors.ErrUploadFailed.WithDetails(err.Error()), key)
	}

	return &entity.AssetReference{
		ID:             id,
		URL:            s.publicURL(key),
		DeletionHandle: key,
	}, nil
}

func (s *blobStore) Delete(ctx context.Context, deletionHandle string) error {
	if deletionHandle == "" {
		return nil
	}

	if err := s.bucket.Delete(ctx, deletionHandle); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrap(domainerrors.ErrDeleteFailed.WithDetails(err.Error()), deletionHandle)
	}

	return nil
}

// ownsKey reports whether key lies under the root folder. Without a root
// nothing is served, since every key in the bucket would match.
func (s *blobStore) ownsKey(key string) bool {
	if s.rootFolder == "" || strings.Contains(key, "..") {
		return false
	}

	return strings.HasPrefix(key, s.rootFolder+"/")
}

func (s *blobStore) Open(ctx context.Context, deletionHandle string) (*service.MediaObject, error) {
	if !s.ownsKey(deletionHandle) {
		return nil, domainerrors.ErrImageNotFound
	}

	r, err := s.bucket.NewReader(ctx, deletionHandle, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, domainerrors.ErrImageNotFound
		}

		return nil, errors.Wrap(err, "failed to open media object")
	}

	return &service.MediaObject{
		Body:        r,
		ContentType: r.ContentType(),
		Size:        r.Size(),
	}, nil
}

func (s *blobStore) publicURL(key string) string {
	if s.publicBaseURL == "" {
		return "/" + key
	}

	return s.publicBaseURL + "/" + key
}

// redactURL drops the query string, which may carry credentials.
func redactURL(raw string) string {
	if i := strings.IndexByte(raw, '?'); i >= 0 {
		return raw[:i]
	}

	return raw
}
