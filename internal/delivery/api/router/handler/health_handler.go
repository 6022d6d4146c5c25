package handler

import (
	"net/http"

	"showcase/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

type healthStatus struct {
	Status string `json:"status"`
}

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, healthStatus{Status: "ok"})
}
