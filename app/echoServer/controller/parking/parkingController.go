package parking

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Rextro-Exhibition-2025/Crowd-Handling-Backend/model"
	parkingsvc "github.com/Rextro-Exhibition-2025/Crowd-Handling-Backend/service/parking"
)

type Controller struct {
	Svc parkingsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// GET /api/parkings
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		return h.writeErr(c, "parking list", err)
	}
	if rows == nil {
		rows = []model.Parking{}
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "count": len(rows), "data": rows})
}

// GET /api/parkings/stats
func (h *Controller) Stats(c echo.Context) error {
	s, err := h.Svc.Stats(c.Request().Context())
	if err != nil {
		return h.writeErr(c, "parking stats", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": s})
}

// GET /api/parkings/:id
func (h *Controller) Detail(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid id"})
	}
	row, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		return h.writeErr(c, "parking detail", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": row})
}

// POST /api/parkings
func (h *Controller) Create(c echo.Context) error {
	var req CreateParkingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"message": "Please provide name, totalSlots, and availableSlots",
		})
	}
	row, err := h.Svc.Create(c.Request().Context(), req.Name, *req.TotalSlots, *req.AvailableSlots)
	if err != nil {
		return h.writeErr(c, "parking create", err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"message": "Parking created successfully",
		"data":    row,
	})
}

// PUT /api/parkings/:id
func (h *Controller) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid id"})
	}
	var req UpdateParkingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid json"})
	}
	row, err := h.Svc.Update(c.Request().Context(), id, parkingsvc.UpdateInput{
		TotalSlots:     req.TotalSlots,
		AvailableSlots: req.AvailableSlots,
	})
	if err != nil {
		return h.writeErr(c, "parking update", err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Parking updated successfully",
		"data":    row,
	})
}

// DELETE /api/parkings/:id
func (h *Controller) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid id"})
	}
	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		return h.writeErr(c, "parking delete", err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Parking deleted successfully",
		"data":    echo.Map{},
	})
}

// PATCH /api/parkings/:id/availability
func (h *Controller) UpdateAvailability(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid id"})
	}
	var req AvailabilityReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid json"})
	}
	row, err := h.Svc.SetAvailability(c.Request().Context(), id, parkingsvc.AvailabilityInput{
		AvailableSlots: req.AvailableSlots,
		IsAvailable:    req.IsAvailable,
	})
	if err != nil {
		return h.writeErr(c, "parking availability", err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Availability updated successfully",
		"data":    row,
	})
}

// writeErr maps service errors onto the response envelope. Anything the
// taxonomy does not name is a 500 with the raw detail attached.
func (h *Controller) writeErr(c echo.Context, op string, err error) error {
	var ve *parkingsvc.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": ve.Reason})
	case errors.Is(err, parkingsvc.ErrDuplicateName):
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Parking with this name already exists"})
	case errors.Is(err, parkingsvc.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"success": false, "message": "Parking not found"})
	default:
		h.Log.Error(op+" error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false,
			"message": "Server Error",
			"error":   err.Error(),
		})
	}
}
