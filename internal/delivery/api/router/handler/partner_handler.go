package handler

import (
	"log/slog"
	"net/http"

	"showcase/internal/delivery/api/response"
	"showcase/internal/delivery/api/upload"
	"showcase/internal/domain/constants"
	"showcase/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PartnerHandlerParams holds dependencies for PartnerHandler, injected by Fx.
type PartnerHandlerParams struct {
	fx.In

	PartnerUC usecase.PartnerUsecase
	Stager    *upload.Stager
	Logger    *slog.Logger
}

type PartnerHandler struct {
	partnerUC usecase.PartnerUsecase
	stager    *upload.Stager
	logger    *slog.Logger
}

func NewPartnerHandler(params PartnerHandlerParams) *PartnerHandler {
	return &PartnerHandler{
		partnerUC: params.PartnerUC,
		stager:    params.Stager,
		logger:    params.Logger,
	}
}

func (h *PartnerHandler) List(c echo.Context) error {
	partners, err := h.partnerUC.List(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	views := make([]PartnerView, 0, len(partners))
	for _, p := range partners {
		views = append(views, newPartnerView(p))
	}

	return response.Success(c, http.StatusOK, views)
}

func (h *PartnerHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID(c, "partner")
	}

	partner, err := h.partnerUC.Get(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPartnerView(partner))
}

// Create takes the logo from "logo", or from "images" as older admin forms send it.
func (h *PartnerHandler) Create(c echo.Context) error {
	batch, err := h.stager.Begin(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer batch.Cleanup()

	logo, err := batch.Image(constants.FieldLogo, constants.FieldImages)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	partner, err := h.partnerUC.Create(c.Request().Context(), partnerInputFrom(batch), logo)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newPartnerView(partner))
}

func (h *PartnerHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID(c, "partner")
	}

	batch, err := h.stager.Begin(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer batch.Cleanup()

	logo, err := batch.Image(constants.FieldLogo, constants.FieldImages)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	partner, err := h.partnerUC.Update(c.Request().Context(), id, partnerInputFrom(batch), logo)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPartnerView(partner))
}

func (h *PartnerHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID(c, "partner")
	}

	if err := h.partnerUC.Delete(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Partner removed")
}

func partnerInputFrom(batch *upload.Batch) *usecase.PartnerInput {
	return &usecase.PartnerInput{
		Name:          batch.Value("name"),
		LocalizedName: batch.Value("nameAr"),
		Description:   batch.Value("description"),
		Website:       batch.Value("website"),
	}
}
