package handler

import (
	"net/http"

	"sellbase/internal/delivery/http/response"
	"sellbase/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type saleItemRequest struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  int       `json:"quantity" validate:"gte=1"`
}

type createSaleRequest struct {
	Rating     float64           `json:"rating" validate:"gte=0,lte=5"`
	Total      float64           `json:"total" validate:"gte=0"`
	CustomerID uuid.UUID         `json:"customerId" validate:"required"`
	Items      []saleItemRequest `json:"products" validate:"required,min=1,dive"`
}

type updateSaleRequest struct {
	Rating     *float64          `json:"rating" validate:"omitempty,gte=0,lte=5"`
	Total      *float64          `json:"total" validate:"omitempty,gte=0"`
	CustomerID *uuid.UUID        `json:"customerId"`
	Items      []saleItemRequest `json:"products" validate:"omitempty,min=1,dive"`
}

func toSaleItemInputs(items []saleItemRequest) []usecase.SaleItemInput {
	if items == nil {
		return nil
	}

	inputs := make([]usecase.SaleItemInput, 0, len(items))
	for _, item := range items {
		inputs = append(inputs, usecase.SaleItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	return inputs
}

// SaleHandler holds dependencies for sale CRUD handlers.
type SaleHandler struct {
	uc usecase.SaleUsecase
}

// NewSaleHandler is the constructor for SaleHandler, injected by Fx.
func NewSaleHandler(uc usecase.SaleUsecase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// List returns all sales belonging to the caller, with customer and product
// summaries attached.
func (h *SaleHandler) List(c echo.Context) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	sales, err := h.uc.ListSales(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Data(c, http.StatusOK, sales)
}

// Get returns one sale belonging to the caller.
func (h *SaleHandler) Get(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	sale, err := h.uc.GetSale(c.Request().Context(), id, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Data(c, http.StatusOK, sale)
}

// Create records a new sale with its line items for the caller. The customer
// and every referenced product must belong to the caller.
func (h *SaleHandler) Create(c echo.Context) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	var req createSaleRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	sale, err := h.uc.CreateSale(c.Request().Context(), userID, usecase.CreateSaleInput{
		Rating:     req.Rating,
		Total:      req.Total,
		CustomerID: req.CustomerID,
		Items:      toSaleItemInputs(req.Items),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Data(c, http.StatusCreated, sale)
}

// Update applies a partial update to one of the caller's sales. A products
// list, when present, replaces the stored line items wholesale.
func (h *SaleHandler) Update(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	var req updateSaleRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	sale, err := h.uc.UpdateSale(c.Request().Context(), id, userID, usecase.UpdateSaleInput{
		Rating:     req.Rating,
		Total:      req.Total,
		CustomerID: req.CustomerID,
		Items:      toSaleItemInputs(req.Items),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Data(c, http.StatusOK, sale)
}

// Delete removes one of the caller's sales.
func (h *SaleHandler) Delete(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteSale(c.Request().Context(), id, userID); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
