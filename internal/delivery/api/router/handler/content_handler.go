package handler

import (
	"log/slog"
	"net/http"

	"showcase/internal/delivery/api/response"
	"showcase/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ContentHandlerParams holds dependencies for ContentHandler, injected by Fx.
type ContentHandlerParams struct {
	fx.In

	ContentUC usecase.ContentUsecase
	Logger    *slog.Logger
}

type ContentHandler struct {
	contentUC usecase.ContentUsecase
	logger    *slog.Logger
}

func NewContentHandler(params ContentHandlerParams) *ContentHandler {
	return &ContentHandler{
		contentUC: params.ContentUC,
		logger:    params.Logger,
	}
}

// Get returns the block data for :type in ?lang (EN when absent).
func (h *ContentHandler) Get(c echo.Context) error {
	content, err := h.contentUC.Resolve(c.Request().Context(), c.Param("type"), c.QueryParam("lang"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, content.Data)
}

// Update stores the request body verbatim as the block data.
func (h *ContentHandler) Update(c echo.Context) error {
	var data map[string]any
	if err := (&echo.DefaultBinder{}).BindBody(c, &data); err != nil {
		return response.BindingError(c, "Content body must be a JSON object")
	}

	content, err := h.contentUC.Update(c.Request().Context(), c.Param("type"), c.QueryParam("lang"), data)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, content.Data)
}

type initResponse struct {
	Results []usecase.ContentInitResult `json:"results"`
}

// Initialize seeds every content block that is missing.
func (h *ContentHandler) Initialize(c echo.Context) error {
	results := h.contentUC.Initialize(c.Request().Context())

	return response.Success(c, http.StatusOK, initResponse{Results: results})
}
