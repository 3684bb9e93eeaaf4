package handler

import (
	"net/http"

	"sellbase/internal/delivery/http/response"
	"sellbase/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type createProductRequest struct {
	Name       string    `json:"name" validate:"required"`
	Price      float64   `json:"price" validate:"gte=0"`
	Quantity   int       `json:"quantity" validate:"gte=0"`
	Image      string    `json:"image"`
	CategoryID uuid.UUID `json:"categoryId" validate:"required"`
}

type updateProductRequest struct {
	Name       *string    `json:"name" validate:"omitempty,min=1"`
	Price      *float64   `json:"price" validate:"omitempty,gte=0"`
	Quantity   *int       `json:"quantity" validate:"omitempty,gte=0"`
	Image      *string    `json:"image"`
	CategoryID *uuid.UUID `json:"categoryId"`
}

// ProductHandler holds dependencies for product CRUD handlers.
type ProductHandler struct {
	uc usecase.ProductUsecase
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List returns all products belonging to the caller.
func (h *ProductHandler) List(c echo.Context) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	products, err := h.uc.ListProducts(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Data(c, http.StatusOK, products)
}

// Get returns one product belonging to the caller.
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	product, err := h.uc.GetProduct(c.Request().Context(), id, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Data(c, http.StatusOK, product)
}

// Create records a new product for the caller. The referenced category must
// belong to the caller as well.
func (h *ProductHandler) Create(c echo.Context) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), userID, usecase.CreateProductInput{
		Name:       req.Name,
		Price:      req.Price,
		Quantity:   req.Quantity,
		Image:      req.Image,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Data(c, http.StatusCreated, product)
}

// Update applies a partial update to one of the caller's products.
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), id, userID, usecase.UpdateProductInput{
		Name:       req.Name,
		Price:      req.Price,
		Quantity:   req.Quantity,
		Image:      req.Image,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Data(c, http.StatusOK, product)
}

// Delete removes one of the caller's products.
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), id, userID); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
