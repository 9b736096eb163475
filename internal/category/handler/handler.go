package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/storely/storefront-service/internal/category"
)

type Handler struct {
	uc     category.UseCase
	logger *zap.Logger
}

func NewHandler(uc category.UseCase, log *zap.Logger) *Handler {
	return &Handler{uc: uc, logger: log}
}

func (h *Handler) Register(g *echo.Group) {
	g.GET("/categories", h.listCategories)
	g.GET("/categories/names", h.listCategoryNames)
}

func (h *Handler) listCategories(c echo.Context) error {
	categories, _ := h.uc.ListCategories(c.Request().Context())
	return c.JSON(http.StatusOK, echo.Map{"categories": categories})
}

func (h *Handler) listCategoryNames(c echo.Context) error {
	names, _ := h.uc.ListDistinctCategories(c.Request().Context())
	return c.JSON(http.StatusOK, echo.Map{"categories": names})
}
