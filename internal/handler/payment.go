package handler

import (
	"errors"
	"net/http"

	"beauty-parlour-api/internal/dto"
	"beauty-parlour-api/internal/middleware"
	"beauty-parlour-api/internal/plan"
	"beauty-parlour-api/internal/service"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type PaymentHandler struct {
	paymentService service.PaymentService
}

func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

func (h *PaymentHandler) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	resp, err := h.paymentService.CreateOrder(ctx, req.Plan)
	if err != nil {
		if errors.Is(err, plan.ErrInvalidPlan) {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid plan selected")
		}
		return err
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *PaymentHandler) VerifyPayment(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	var req dto.VerifyPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	// Reject malformed callbacks before any verification or ledger work.
	if req.OrderID == "" || req.PaymentID == "" || req.Signature == "" || req.Plan == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "order id, payment id, signature and plan are required")
	}

	sub, err := h.paymentService.VerifyPayment(ctx, userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, plan.ErrInvalidPlan):
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid plan selected")
		case errors.Is(err, service.ErrInvalidSignature):
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid payment signature")
		case errors.Is(err, gorm.ErrRecordNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return err
	}

	return c.JSON(http.StatusOK, &dto.VerifyPaymentResponse{
		Message:      "Payment verified successfully",
		Subscription: *sub,
	})
}
