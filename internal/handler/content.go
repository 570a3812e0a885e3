package handler

import (
	"errors"
	"net/http"

	"beauty-parlour-api/internal/dto"
	"beauty-parlour-api/internal/service"

	"github.com/labstack/echo/v4"
)

type ContentHandler struct {
	contentService service.ContentService
}

func NewContentHandler(contentService service.ContentService) *ContentHandler {
	return &ContentHandler{
		contentService: contentService,
	}
}

func (h *ContentHandler) GetBooks(c echo.Context) error {
	ctx := c.Request().Context()

	books, err := h.contentService.ListBooks(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"books": books,
	})
}

func (h *ContentHandler) GetTutorials(c echo.Context) error {
	ctx := c.Request().Context()

	tutorials, err := h.contentService.ListTutorials(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"tutorials": tutorials,
	})
}

func (h *ContentHandler) Add(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreateContentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	content, err := h.contentService.Add(ctx, &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidContent) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return err
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Content added successfully",
		"content": content,
	})
}
