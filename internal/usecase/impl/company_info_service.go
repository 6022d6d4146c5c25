package impl

import (
	"context"
	"log/slog"

	deliverycontext "showcase/internal/delivery/context"
	"showcase/internal/domain/constants"
	"showcase/internal/domain/entity"
	domainerrors "showcase/internal/domain/errors"
	"showcase/internal/domain/repository"
	"showcase/internal/domain/service"
	"showcase/internal/errors"
	"showcase/internal/usecase"

	"go.uber.org/fx"
)

// companyInfoService owns the singleton company record.
type companyInfoService struct {
	repo   repository.CompanyInfoRepository
	qrcode service.QRCodeService
	assets *assetLifecycle
	logger *slog.Logger
}

type CompanyInfoServiceParams struct {
	fx.In

	Repo   repository.CompanyInfoRepository
	QRCode service.QRCodeService
	Store  service.MediaStore
	Logger *slog.Logger
}

func NewCompanyInfoService(params CompanyInfoServiceParams) usecase.CompanyInfoUsecase {
	return &companyInfoService{
		repo:   params.Repo,
		qrcode: params.QRCode,
		assets: newAssetLifecycle(params.Store, params.Logger),
		logger: params.Logger,
	}
}

func (srv *companyInfoService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *companyInfoService) Get(ctx context.Context) (*entity.CompanyInfo, error) {
	return srv.getOrCreate(ctx)
}

// getOrCreate never produces a second record: losing the create race turns
// into a fresh read of the winner.
func (srv *companyInfoService) getOrCreate(ctx context.Context) (*entity.CompanyInfo, error) {
	info, err := srv.repo.Get(ctx)
	if err == nil {
		return info, nil
	}
	if !errors.Is(err, repository.ErrCompanyInfoNotFound) {
		return nil, errors.Wrap(err, "failed to get company info")
	}

	info = entity.NewDefaultCompanyInfo()
	err = srv.repo.Create(ctx, info)
	if errors.Is(err, repository.ErrCompanyInfoExists) {
		info, err = srv.repo.Get(ctx)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to create company info")
	}

	srv.log(ctx).Info("Company info initialized with defaults")

	return info, nil
}

func (srv *companyInfoService) Update(ctx context.Context, patch *usecase.CompanyInfoPatch) (*entity.CompanyInfo, error) {
	if patch == nil {
		return nil, domainerrors.ErrEmptyPayload
	}

	info, err := srv.getOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	applyCompanyInfoPatch(info, patch)
	info.RefreshFullAddress()

	if err := srv.repo.Update(ctx, info); err != nil {
		return nil, errors.Wrap(err, "failed to update company info")
	}

	return info, nil
}

func (srv *companyInfoService) UpdateLogo(ctx context.Context, logo *usecase.UploadedFile) (*entity.CompanyInfo, error) {
	if logo == nil {
		return nil, domainerrors.ErrLogoRequired
	}

	info, err := srv.getOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	ref, err := srv.assets.upload(ctx, logo, constants.FolderCompany)
	if err != nil {
		return nil, errors.Wrap(err, "failed to upload company logo")
	}
	if info.Logo != nil && ref.DisplayMetadata == "" {
		ref.DisplayMetadata = info.Logo.DisplayMetadata
	}

	previous := info.SetLogo(*ref)
	info.RefreshFullAddress()

	if err := srv.repo.Update(ctx, info); err != nil {
		srv.assets.release(ctx, ref.DeletionHandle)

		return nil, errors.Wrap(err, "failed to update company logo")
	}

	if previous != nil {
		srv.assets.release(ctx, previous.DeletionHandle)
	}

	return info, nil
}

func (srv *companyInfoService) ContactCard(ctx context.Context) ([]byte, error) {
	info, err := srv.getOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcode.GenerateContactCard(info)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render contact card")
	}

	return png, nil
}

// applyCompanyInfoPatch copies every non-empty leaf of patch onto info.
func applyCompanyInfoPatch(info *entity.CompanyInfo, patch *usecase.CompanyInfoPatch) {
	if a := patch.Address; a != nil {
		setIfNotEmpty(&info.Address.Street, a.Street)
		setIfNotEmpty(&info.Address.Suite, a.Suite)
		setIfNotEmpty(&info.Address.City, a.City)
		setIfNotEmpty(&info.Address.Country, a.Country)
	}
	if p := patch.Phone; p != nil {
		setIfNotEmpty(&info.Phone.Main, p.Main)
		setIfNotEmpty(&info.Phone.Support, p.Support)
	}
	if e := patch.Email; e != nil {
		setIfNotEmpty(&info.Email.General, e.General)
		setIfNotEmpty(&info.Email.Sales, e.Sales)
		setIfNotEmpty(&info.Email.Support, e.Support)
	}
	if h := patch.BusinessHours; h != nil {
		setIfNotEmpty(&info.BusinessHours.Weekdays, h.Weekdays)
		setIfNotEmpty(&info.BusinessHours.Weekend, h.Weekend)
	}
	if s := patch.SocialMedia; s != nil {
		setIfNotEmpty(&info.SocialMedia.Facebook, s.Facebook)
		setIfNotEmpty(&info.SocialMedia.Twitter, s.Twitter)
		setIfNotEmpty(&info.SocialMedia.Instagram, s.Instagram)
		setIfNotEmpty(&info.SocialMedia.LinkedIn, s.LinkedIn)
	}
	setIfNotEmpty(&info.ThemeColor, patch.ThemeColor)
	if info.Logo != nil {
		setIfNotEmpty(&info.Logo.DisplayMetadata, patch.LogoAltText)
	}
}

func setIfNotEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
