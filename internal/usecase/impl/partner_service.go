package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "showcase/internal/delivery/context"
	"showcase/internal/domain/constants"
	"showcase/internal/domain/entity"
	domainerrors "showcase/internal/domain/errors"
	"showcase/internal/domain/repository"
	"showcase/internal/domain/service"
	"showcase/internal/errors"
	"showcase/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type partnerService struct {
	repo   repository.PartnerRepository
	assets *assetLifecycle
	logger *slog.Logger
}

type PartnerServiceParams struct {
	fx.In

	Repo   repository.PartnerRepository
	Store  service.MediaStore
	Logger *slog.Logger
}

func NewPartnerService(params PartnerServiceParams) usecase.PartnerUsecase {
	return &partnerService{
		repo:   params.Repo,
		assets: newAssetLifecycle(params.Store, params.Logger),
		logger: params.Logger,
	}
}

func (srv *partnerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *partnerService) List(ctx context.Context) ([]*entity.Partner, error) {
	return srv.repo.List(ctx)
}

func (srv *partnerService) Get(ctx context.Context, id uuid.UUID) (*entity.Partner, error) {
	partner, err := srv.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrPartnerNotFound) {
		return nil, domainerrors.ErrPartnerNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find partner")
	}

	return partner, nil
}

func (srv *partnerService) Create(ctx context.Context, input *usecase.PartnerInput, logo *usecase.UploadedFile) (*entity.Partner, error) {
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}
	if logo == nil {
		return nil, domainerrors.ErrLogoRequired
	}

	ref, err := srv.assets.upload(ctx, logo, constants.FolderPartners)
	if err != nil {
		return nil, errors.Wrap(err, "failed to upload partner logo")
	}
	if ref.DisplayMetadata == "" {
		ref.DisplayMetadata = strings.TrimSpace(input.Name)
	}

	partner := &entity.Partner{
		ID:            uuid.New(),
		Name:          strings.TrimSpace(input.Name),
		LocalizedName: input.LocalizedName,
		Description:   input.Description,
		Website:       input.Website,
		Logo:          *ref,
	}

	if err := srv.repo.Create(ctx, partner); err != nil {
		srv.assets.release(ctx, ref.DeletionHandle)

		return nil, errors.Wrap(err, "failed to create partner")
	}

	srv.log(ctx).Info("Partner created", slog.String("id", partner.ID.String()))

	return partner, nil
}

// Update keeps empty fields. A new logo replaces the old one, which is
// released once the record is saved.
func (srv *partnerService) Update(ctx context.Context, id uuid.UUID, input *usecase.PartnerInput, logo *usecase.UploadedFile) (*entity.Partner, error) {
	partner, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input != nil {
		if v := strings.TrimSpace(input.Name); v != "" {
			partner.Name = v
		}
		if input.LocalizedName != "" {
			partner.LocalizedName = input.LocalizedName
		}
		if input.Description != "" {
			partner.Description = input.Description
		}
		if input.Website != "" {
			partner.Website = input.Website
		}
	}

	var superseded string
	if logo != nil {
		ref, err := srv.assets.upload(ctx, logo, constants.FolderPartners)
		if err != nil {
			return nil, errors.Wrap(err, "failed to upload partner logo")
		}
		if ref.DisplayMetadata == "" {
			ref.DisplayMetadata = partner.Name
		}
		superseded = partner.Logo.DeletionHandle
		partner.Logo = *ref
	}

	err = srv.repo.Update(ctx, partner)
	if errors.Is(err, repository.ErrPartnerNotFound) {
		err = domainerrors.ErrPartnerNotFound
	}
	if err != nil {
		if logo != nil {
			srv.assets.release(ctx, partner.Logo.DeletionHandle)
		}

		return nil, errors.Wrap(err, "failed to update partner")
	}

	srv.assets.release(ctx, superseded)

	return partner, nil
}

func (srv *partnerService) Delete(ctx context.Context, id uuid.UUID) error {
	partner, err := srv.Get(ctx, id)
	if err != nil {
		return err
	}

	srv.assets.release(ctx, partner.Logo.DeletionHandle)

	err = srv.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrPartnerNotFound) {
		return domainerrors.ErrPartnerNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to delete partner")
	}

	srv.log(ctx).Info("Partner deleted", slog.String("id", id.String()))

	return nil
}
