package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"showcase/internal/delivery/api/response"
	"showcase/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MediaHandlerParams holds dependencies for MediaHandler, injected by Fx.
type MediaHandlerParams struct {
	fx.In

	Reader service.MediaReader
	Logger *slog.Logger
}

// MediaHandler streams stored assets for buckets that are not served publicly.
type MediaHandler struct {
	reader service.MediaReader
	logger *slog.Logger
}

func NewMediaHandler(params MediaHandlerParams) *MediaHandler {
	return &MediaHandler{
		reader: params.Reader,
		logger: params.Logger,
	}
}

// Serve streams the object whose key follows /media/.
func (h *MediaHandler) Serve(c echo.Context) error {
	obj, err := h.reader.Open(c.Request().Context(), c.Param("*"))
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer obj.Body.Close()

	contentType := obj.ContentType
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}

	header := c.Response().Header()
	header.Set(echo.HeaderContentLength, strconv.FormatInt(obj.Size, 10))
	header.Set("Cache-Control", "public, max-age=86400")

	return c.Stream(http.StatusOK, contentType, obj.Body)
}
