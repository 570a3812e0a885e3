package handler

import (
	"errors"
	"net/http"

	"beauty-parlour-api/internal/middleware"
	"beauty-parlour-api/internal/service"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CourseHandler struct {
	userService service.UserService
}

func NewCourseHandler(userService service.UserService) *CourseHandler {
	return &CourseHandler{
		userService: userService,
	}
}

func (h *CourseHandler) MyCourse(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	info, err := h.userService.GetCourseInfo(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return err
	}

	return c.JSON(http.StatusOK, info)
}
