package handler

import (
	"net/http"

	"sellbase/internal/delivery/http/response"
	"sellbase/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type addressRequest struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	Zip     string `json:"zip"`
}

type createCustomerRequest struct {
	Name    string          `json:"name" validate:"required"`
	Email   string          `json:"email" validate:"required,email"`
	Phone   string          `json:"phone" validate:"required"`
	Notes   string          `json:"notes"`
	Address *addressRequest `json:"address"`
	Status  string          `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

type updateCustomerRequest struct {
	Name    *string         `json:"name" validate:"omitempty,min=1"`
	Email   *string         `json:"email" validate:"omitempty,email"`
	Phone   *string         `json:"phone" validate:"omitempty,min=1"`
	Notes   *string         `json:"notes"`
	Address *addressRequest `json:"address"`
	Status  *string         `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

func (r *addressRequest) toInput() *usecase.AddressInput {
	if r == nil {
		return nil
	}

	return &usecase.AddressInput{
		Street:  r.Street,
		City:    r.City,
		State:   r.State,
		Country: r.Country,
		Zip:     r.Zip,
	}
}

// CustomerHandler holds dependencies for customer CRUD handlers.
type CustomerHandler struct {
	uc usecase.CustomerUsecase
}

// NewCustomerHandler is the constructor for CustomerHandler, injected by Fx.
func NewCustomerHandler(uc usecase.CustomerUsecase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// List returns all customers belonging to the caller.
func (h *CustomerHandler) List(c echo.Context) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	customers, err := h.uc.ListCustomers(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Data(c, http.StatusOK, customers)
}

// Get returns one customer belonging to the caller.
func (h *CustomerHandler) Get(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	customer, err := h.uc.GetCustomer(c.Request().Context(), id, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Data(c, http.StatusOK, customer)
}

// Create records a new customer for the caller.
func (h *CustomerHandler) Create(c echo.Context) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	var req createCustomerRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	customer, err := h.uc.CreateCustomer(c.Request().Context(), userID, usecase.CreateCustomerInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Notes:   req.Notes,
		Address: req.Address.toInput(),
		Status:  req.Status,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Data(c, http.StatusCreated, customer)
}

// Update applies a partial update to one of the caller's customers.
func (h *CustomerHandler) Update(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	var req updateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	customer, err := h.uc.UpdateCustomer(c.Request().Context(), id, userID, usecase.UpdateCustomerInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Notes:   req.Notes,
		Address: req.Address.toInput(),
		Status:  req.Status,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Data(c, http.StatusOK, customer)
}

// Delete removes one of the caller's customers.
func (h *CustomerHandler) Delete(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteCustomer(c.Request().Context(), id, userID); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
