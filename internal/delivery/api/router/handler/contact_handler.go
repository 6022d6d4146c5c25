package handler

import (
	"log/slog"
	"net/http"

	"showcase/internal/delivery/api/response"
	"showcase/internal/delivery/api/validator"
	domainerrors "showcase/internal/domain/errors"
	"showcase/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ContactHandlerParams holds dependencies for ContactHandler, injected by Fx.
type ContactHandlerParams struct {
	fx.In

	ContactUC usecase.ContactUsecase
	Logger    *slog.Logger
}

type ContactHandler struct {
	contactUC usecase.ContactUsecase
	logger    *slog.Logger
}

func NewContactHandler(params ContactHandlerParams) *ContactHandler {
	return &ContactHandler{
		contactUC: params.ContactUC,
		logger:    params.Logger,
	}
}

// SubmitContactRequest is the public contact form.
type SubmitContactRequest struct {
	Name    string `json:"name" form:"name" validate:"required"`
	Email   string `json:"email" form:"email" validate:"required,email"`
	Phone   string `json:"phone" form:"phone" validate:"required"`
	Message string `json:"message" form:"message" validate:"required"`
}

func (h *ContactHandler) Submit(c echo.Context) error {
	var req SubmitContactRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid contact input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, domainerrors.ErrValidationFailed.ErrorCode(),
			"Please fill all required fields", validator.FieldErrors(err))
	}

	contact, err := h.contactUC.Submit(c.Request().Context(), &usecase.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newContactView(contact))
}

// List returns messages newest first.
func (h *ContactHandler) List(c echo.Context) error {
	contacts, err := h.contactUC.List(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	views := make([]ContactView, 0, len(contacts))
	for _, ct := range contacts {
		views = append(views, newContactView(ct))
	}

	return response.Success(c, http.StatusOK, views)
}

func (h *ContactHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID(c, "contact")
	}

	contact, err := h.contactUC.Get(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newContactView(contact))
}

func (h *ContactHandler) MarkRead(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID(c, "contact")
	}

	contact, err := h.contactUC.MarkRead(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newContactView(contact))
}

func (h *ContactHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID(c, "contact")
	}

	if err := h.contactUC.Delete(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Contact message removed")
}
