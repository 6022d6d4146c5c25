package handler

import (
	"log/slog"
	"net/http"

	"showcase/internal/delivery/api/response"
	"showcase/internal/delivery/api/upload"
	"showcase/internal/delivery/api/validator"
	"showcase/internal/domain/constants"
	domainerrors "showcase/internal/domain/errors"
	"showcase/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CompanyInfoHandlerParams holds dependencies for CompanyInfoHandler, injected by Fx.
type CompanyInfoHandlerParams struct {
	fx.In

	CompanyInfoUC usecase.CompanyInfoUsecase
	Stager        *upload.Stager
	Logger        *slog.Logger
}

type CompanyInfoHandler struct {
	companyInfoUC usecase.CompanyInfoUsecase
	stager        *upload.Stager
	logger        *slog.Logger
}

func NewCompanyInfoHandler(params CompanyInfoHandlerParams) *CompanyInfoHandler {
	return &CompanyInfoHandler{
		companyInfoUC: params.CompanyInfoUC,
		stager:        params.Stager,
		logger:        params.Logger,
	}
}

func (h *CompanyInfoHandler) Get(c echo.Context) error {
	info, err := h.companyInfoUC.Get(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCompanyInfoView(info))
}

// Update applies a partial JSON document; omitted or empty fields keep their value.
func (h *CompanyInfoHandler) Update(c echo.Context) error {
	var patch usecase.CompanyInfoPatch
	if err := c.Bind(&patch); err != nil {
		return response.BindingError(c, "Invalid company info input")
	}

	if err := c.Validate(&patch); err != nil {
		return response.BadRequestWithDetails(c, domainerrors.ErrValidationFailed.ErrorCode(),
			domainerrors.ErrValidationFailed.Message(), validator.FieldErrors(err))
	}

	info, err := h.companyInfoUC.Update(c.Request().Context(), &patch)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCompanyInfoView(info))
}

func (h *CompanyInfoHandler) UpdateLogo(c echo.Context) error {
	batch, err := h.stager.Begin(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer batch.Cleanup()

	logo, err := batch.Image(constants.FieldLogo, constants.FieldImages)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	info, err := h.companyInfoUC.UpdateLogo(c.Request().Context(), logo)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCompanyInfoView(info))
}

// QRCode serves the company contact card as a PNG.
func (h *CompanyInfoHandler) QRCode(c echo.Context) error {
	png, err := h.companyInfoUC.ContactCard(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Cache-Control", "no-cache")

	return c.Blob(http.StatusOK, "image/png", png)
}
