package handler

import (
	"showcase/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

const codeInvalidID = "INVALID_ID"

func invalidID(c echo.Context, label string) error {
	return response.BadRequest(c, codeInvalidID, "Invalid "+label+" ID")
}
