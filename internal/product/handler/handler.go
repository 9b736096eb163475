package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/storely/storefront-service/internal/httpserver/response"
	"github.com/storely/storefront-service/internal/product"
	"github.com/storely/storefront-service/internal/product/dto"
)

// Handler serves the customer-facing catalog API. All reads fail open: a
// broken store renders as an empty shelf, never an error page.
type Handler struct {
	uc     product.UseCase
	logger *zap.Logger
}

func NewHandler(uc product.UseCase, log *zap.Logger) *Handler {
	return &Handler{uc: uc, logger: log}
}

func (h *Handler) Register(g *echo.Group) {
	g.GET("/products", h.listProducts)
	g.GET("/products/:id", h.getProduct)
	g.GET("/products/:id/related", h.listRelated)
}

func (h *Handler) listProducts(c echo.Context) error {
	filters := &dto.ProductFilters{
		Search:   strings.TrimSpace(c.QueryParam("search")),
		Category: strings.TrimSpace(c.QueryParam("category")),
		Sort:     c.QueryParam("sort"),
	}

	products, _ := h.uc.ListProducts(c.Request().Context(), filters)
	return c.JSON(http.StatusOK, echo.Map{"products": products})
}

func (h *Handler) getProduct(c echo.Context) error {
	p, err := h.uc.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		// GetProduct only returns ErrNotFound; store failures already
		// degraded inside the usecase.
		return response.Fail(c, http.StatusNotFound, "Product not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"product": p})
}

func (h *Handler) listRelated(c echo.Context) error {
	ctx := c.Request().Context()

	p, err := h.uc.GetProduct(ctx, c.Param("id"))
	if err != nil {
		return response.Fail(c, http.StatusNotFound, "Product not found")
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 24 {
			limit = n
		}
	}

	category := ""
	if p.Category != nil {
		category = *p.Category
	}

	related, _ := h.uc.GetRelatedProducts(ctx, category, p.ID, limit)
	return c.JSON(http.StatusOK, echo.Map{"products": related})
}
