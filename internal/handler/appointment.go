package handler

import (
	"errors"
	"net/http"

	"beauty-parlour-api/internal/dto"
	"beauty-parlour-api/internal/service"

	"github.com/labstack/echo/v4"
)

type AppointmentHandler struct {
	appointmentService service.AppointmentService
}

func NewAppointmentHandler(appointmentService service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentService: appointmentService,
	}
}

func (h *AppointmentHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.AppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	appointment, err := h.appointmentService.Create(ctx, &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidAppointment) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return err
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":     "Appointment request submitted successfully",
		"appointment": appointment,
	})
}

func (h *AppointmentHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	appointments, err := h.appointmentService.List(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"appointments": appointments,
	})
}
