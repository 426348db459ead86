package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	authsvc "github.com/Rextro-Exhibition-2025/Crowd-Handling-Backend/service/auth"
)

type Controller struct {
	Svc authsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

type LoginReq struct {
	Password string `json:"password" validate:"required"`
}

// POST /api/auth/login
func (h *Controller) Login(c echo.Context) error {
	var req LoginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Please provide password"})
	}
	tok, err := h.Svc.Login(c.Request().Context(), req.Password)
	if err != nil {
		if errors.Is(err, authsvc.ErrInvalidCreds) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "invalid credentials"})
		}
		h.Log.Error("login error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Server Error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"token": tok}})
}
