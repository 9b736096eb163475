package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/storely/storefront-service/internal/httpserver/response"
	"github.com/storely/storefront-service/internal/product"
	"github.com/storely/storefront-service/internal/product/dto"
)

// AdminHandler serves the authenticated inventory CRUD API. Unlike the
// storefront reads, store failures here surface as 500s so the operator
// sees them.
type AdminHandler struct {
	uc     product.UseCase
	logger *zap.Logger
}

func NewAdminHandler(uc product.UseCase, log *zap.Logger) *AdminHandler {
	return &AdminHandler{uc: uc, logger: log}
}

func (h *AdminHandler) Register(g *echo.Group) {
	g.GET("/products", h.listProducts)
	g.GET("/stats", h.stats)
	g.POST("/products", h.createProduct)
	g.PATCH("/products/:id", h.updateProduct)
	g.DELETE("/products/:id", h.deleteProduct)
}

func (h *AdminHandler) listProducts(c echo.Context) error {
	products, err := h.uc.ListAllProducts(c.Request().Context())
	if err != nil {
		return response.Fail(c, http.StatusInternalServerError, "Failed to fetch products")
	}
	return c.JSON(http.StatusOK, echo.Map{"products": products})
}

func (h *AdminHandler) stats(c echo.Context) error {
	stats, err := h.uc.CatalogStats(c.Request().Context())
	if err != nil {
		return response.Fail(c, http.StatusInternalServerError, "Failed to fetch stats")
	}
	return c.JSON(http.StatusOK, echo.Map{"stats": stats})
}

func (h *AdminHandler) createProduct(c echo.Context) error {
	var input dto.CreateProductInput
	if err := c.Bind(&input); err != nil {
		return response.Fail(c, http.StatusBadRequest, "Unable to parse product")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	p, err := h.uc.CreateProduct(c.Request().Context(), &input)
	if err != nil {
		if product.IsValidationError(err) {
			return response.Fail(c, http.StatusBadRequest, err.Error())
		}
		return response.Fail(c, http.StatusInternalServerError, "Failed to add product")
	}
	return c.JSON(http.StatusOK, echo.Map{"product": p})
}

func (h *AdminHandler) updateProduct(c echo.Context) error {
	var fields dto.UpdateFields
	if err := c.Bind(&fields); err != nil {
		return response.Fail(c, http.StatusBadRequest, "Unable to parse product")
	}

	p, err := h.uc.UpdateProduct(c.Request().Context(), c.Param("id"), fields)
	if err != nil {
		if product.IsValidationError(err) {
			return response.Fail(c, http.StatusBadRequest, err.Error())
		}
		if errors.Is(err, product.ErrNotFound) {
			return response.Fail(c, http.StatusNotFound, "Product not found")
		}
		return response.Fail(c, http.StatusInternalServerError, "Failed to update product")
	}
	return c.JSON(http.StatusOK, echo.Map{"product": p})
}

func (h *AdminHandler) deleteProduct(c echo.Context) error {
	if err := h.uc.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return response.Fail(c, http.StatusInternalServerError, "Failed to delete product")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
