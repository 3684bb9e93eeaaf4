package handler

import (
	"net/http"

	"sellbase/internal/delivery/http/response"
	"sellbase/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type createCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

type updateCategoryRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1"`
}

// ProductCategoryHandler holds dependencies for category CRUD handlers.
type ProductCategoryHandler struct {
	uc usecase.ProductCategoryUsecase
}

// NewProductCategoryHandler is the constructor for ProductCategoryHandler, injected by Fx.
func NewProductCategoryHandler(uc usecase.ProductCategoryUsecase) *ProductCategoryHandler {
	return &ProductCategoryHandler{uc: uc}
}

// List returns all product categories belonging to the caller.
func (h *ProductCategoryHandler) List(c echo.Context) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	categories, err := h.uc.ListCategories(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Data(c, http.StatusOK, categories)
}

// Get returns one product category belonging to the caller.
func (h *ProductCategoryHandler) Get(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	category, err := h.uc.GetCategory(c.Request().Context(), id, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Data(c, http.StatusOK, category)
}

// Create records a new product category for the caller.
func (h *ProductCategoryHandler) Create(c echo.Context) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	category, err := h.uc.CreateCategory(c.Request().Context(), userID, usecase.CreateCategoryInput{
		Name: req.Name,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Data(c, http.StatusCreated, category)
}

// Update renames one of the caller's product categories.
func (h *ProductCategoryHandler) Update(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	var req updateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	category, err := h.uc.UpdateCategory(c.Request().Context(), id, userID, usecase.UpdateCategoryInput{
		Name: req.Name,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Data(c, http.StatusOK, category)
}

// Delete removes one of the caller's product categories.
func (h *ProductCategoryHandler) Delete(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteCategory(c.Request().Context(), id, userID); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
