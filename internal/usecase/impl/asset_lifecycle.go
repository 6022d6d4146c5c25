package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "showcase/internal/delivery/context"
	"showcase/internal/domain/constants"
	"showcase/internal/domain/entity"
	domainerrors "showcase/internal/domain/errors"
	"showcase/internal/domain/service"
	"showcase/internal/errors"
	"showcase/internal/usecase"

	"github.com/google/uuid"
)

const catalogKindsHint = "catalog must be one of pdf, doc, docx, ppt, pptx, xls, xlsx"

// assetLifecycle keeps records and their remote binaries in step. It mutates
// the record in memory; callers persist it and then release what it returns.
type assetLifecycle struct {
	store  service.MediaStore
	logger *slog.Logger
	now    func() time.Time
}

func newAssetLifecycle(store service.MediaStore, logger *slog.Logger) *assetLifecycle {
	return &assetLifecycle{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

func (a *assetLifecycle) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, a.logger)
}

// upload stores a staged file and makes sure the reference carries an id.
func (a *assetLifecycle) upload(ctx context.Context, file *usecase.UploadedFile, folder string) (*entity.AssetReference, error) {
	ref, err := a.store.Upload(ctx, file.Path, folder, file.ContentType)
	if err != nil {
		return nil, err
	}
	if ref.ID == uuid.Nil {
		ref.ID = uuid.New()
	}

	return ref, nil
}

// addImages uploads each file on its own. A failed file is reported and
// skipped; the rest still land on the item.
func (a *assetLifecycle) addImages(ctx context.Context, item *entity.Item, files []*usecase.UploadedFile, folder string) []usecase.FileFailure {
	var failures []usecase.FileFailure
	refs := make([]entity.AssetReference, 0, len(files))

	for _, file := range files {
		ref, err := a.upload(ctx, file, folder)
		if err != nil {
			a.log(ctx).Warn("Image upload failed",
				slog.String("kind", string(item.Kind)),
				slog.String("file", file.OriginalName),
				slog.Any("error", err))
			failures = append(failures, usecase.FileFailure{FileName: file.OriginalName, Reason: failureReason(err)})

			continue
		}
		refs = append(refs, *ref)
	}

	item.AppendImages(refs...)

	return failures
}

// removeImage detaches an image and returns its deletion handle.
func (a *assetLifecycle) removeImage(item *entity.Item, imageID uuid.UUID) (string, error) {
	removed, ok := item.RemoveImage(imageID)
	if !ok {
		return "", domainerrors.ErrImageNotFound
	}

	return removed.DeletionHandle, nil
}

func (a *assetLifecycle) setMainImage(item *entity.Item, imageID uuid.UUID) error {
	if !item.SetMainImage(imageID) {
		return domainerrors.ErrImageNotFound
	}

	return nil
}

// validateCatalog checks the document extension. It runs before any upload.
func validateCatalog(file *usecase.UploadedFile) (entity.CatalogKind, error) {
	if file == nil {
		return "", domainerrors.ErrValidationFailed.WithDetails("please upload a catalog file")
	}

	kind, ok := entity.CatalogKindFromFileName(file.OriginalName)
	if !ok {
		return "", domainerrors.ErrInvalidFileType.WithDetails(catalogKindsHint)
	}

	return kind, nil
}

// setCatalog uploads the document and attaches it. The handle of the replaced
// catalog, if any, is returned for release after the item is saved.
func (a *assetLifecycle) setCatalog(ctx context.Context, item *entity.Item, file *usecase.UploadedFile) (string, error) {
	kind, err := validateCatalog(file)
	if err != nil {
		return "", err
	}

	ref, err := a.upload(ctx, file, constants.FolderCatalogs)
	if err != nil {
		return "", err
	}

	previous := item.AttachCatalog(&entity.CatalogAsset{
		AssetReference:   *ref,
		FileKind:         kind,
		OriginalFileName: file.OriginalName,
		UploadedAt:       a.now().UTC(),
	})
	if previous == nil {
		return "", nil
	}

	return previous.DeletionHandle, nil
}

// deleteCatalog detaches the catalog and returns its handle.
func (a *assetLifecycle) deleteCatalog(item *entity.Item) (string, error) {
	previous := item.DetachCatalog()
	if previous == nil {
		return "", domainerrors.ErrNoCatalog
	}

	return previous.DeletionHandle, nil
}

// release deletes every handle best-effort and returns one outcome per handle.
// Empty handles are skipped.
func (a *assetLifecycle) release(ctx context.Context, handles ...string) []usecase.DeleteOutcome {
	outcomes := make([]usecase.DeleteOutcome, 0, len(handles))
	for _, handle := range handles {
		if handle == "" {
			continue
		}

		err := a.store.Delete(ctx, handle)
		if err != nil {
			a.log(ctx).Warn("Remote asset delete failed", slog.String("handle", handle), slog.Any("error", err))
		}
		outcomes = append(outcomes, usecase.DeleteOutcome{Handle: handle, Err: err})
	}

	return outcomes
}

func failureReason(err error) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Details() != "" {
			return appErr.Message() + ": " + appErr.Details()
		}

		return appErr.Message()
	}

	return err.Error()
}
