package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"sellbase/internal/domain/entity"
	domainerrors "sellbase/internal/domain/errors"
	mockUC "sellbase/internal/mocks/usecase"
	"sellbase/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCustomerTestServer(t *testing.T, userID uuid.UUID) (*mockUC.MockCustomerUsecase, *echo.Echo) {
	t.Helper()

	uc := mockUC.NewMockCustomerUsecase(t)
	h := NewCustomerHandler(uc)

	e := newTestEcho(t)
	group := e.Group("/customer", asUser(userID))
	group.GET("", h.List)
	group.POST("", h.Create)
	group.GET("/:id", h.Get)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)

	return uc, e
}

func TestCustomerHandler_List_EmptyForFreshUser(t *testing.T) {
	userID := uuid.New()
	uc, e := newCustomerTestServer(t, userID)

	uc.EXPECT().ListCustomers(mock.Anything, userID).Return([]*entity.Customer{}, nil)

	rec := doJSON(e, http.MethodGet, "/customer", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":[]}`, rec.Body.String())
}

func TestCustomerHandler_Get_MalformedID(t *testing.T) {
	userID := uuid.New()
	_, e := newCustomerTestServer(t, userID)

	rec := doJSON(e, http.MethodGet, "/customer/not-a-uuid", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `[{"message":"id must be a valid UUID","path":"id"}]`, rec.Body.String())
}

func TestCustomerHandler_Get_NotFound(t *testing.T) {
	userID := uuid.New()
	uc, e := newCustomerTestServer(t, userID)

	customerID := uuid.New()
	uc.EXPECT().GetCustomer(mock.Anything, customerID, userID).
		Return(nil, domainerrors.ErrCustomerNotFound)

	rec := doJSON(e, http.MethodGet, "/customer/"+customerID.String(), "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":{"message":"customer not found"}}`, rec.Body.String())
}

func TestCustomerHandler_Create_Success(t *testing.T) {
	userID := uuid.New()
	uc, e := newCustomerTestServer(t, userID)

	created := &entity.Customer{
		ID:     uuid.New(),
		Name:   "Bruno",
		Email:  "bruno@x.com",
		Phone:  "11999990000",
		Status: entity.CustomerStatusActive,
		UserID: userID,
	}
	uc.EXPECT().CreateCustomer(mock.Anything, userID, usecase.CreateCustomerInput{
		Name:  "Bruno",
		Email: "bruno@x.com",
		Phone: "11999990000",
		Address: &usecase.AddressInput{
			Street: "Rua A",
			City:   "Sao Paulo",
			Zip:    "01000-000",
		},
	}).Return(created, nil)

	rec := doJSON(e, http.MethodPost, "/customer",
		`{"name":"Bruno","email":"bruno@x.com","phone":"11999990000","address":{"street":"Rua A","city":"Sao Paulo","zip":"01000-000"}}`)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Bruno", data["name"])
	assert.Equal(t, "ACTIVE", data["status"])
}

func TestCustomerHandler_Create_RejectsUnknownStatus(t *testing.T) {
	userID := uuid.New()
	uc, e := newCustomerTestServer(t, userID)

	rec := doJSON(e, http.MethodPost, "/customer",
		`{"name":"Bruno","email":"bruno@x.com","phone":"11999990000","status":"PAUSED"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"path":"status"`)
	uc.AssertNotCalled(t, "CreateCustomer")
}

func TestCustomerHandler_Update_PartialPayload(t *testing.T) {
	userID := uuid.New()
	uc, e := newCustomerTestServer(t, userID)

	customerID := uuid.New()
	phone := "11888880000"
	updated := &entity.Customer{ID: customerID, Name: "Bruno", Phone: phone, UserID: userID}

	uc.EXPECT().UpdateCustomer(mock.Anything, customerID, userID, usecase.UpdateCustomerInput{
		Phone: &phone,
	}).Return(updated, nil)

	rec := doJSON(e, http.MethodPut, "/customer/"+customerID.String(),
		`{"phone":"11888880000"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCustomerHandler_Delete_Success(t *testing.T) {
	userID := uuid.New()
	uc, e := newCustomerTestServer(t, userID)

	customerID := uuid.New()
	uc.EXPECT().DeleteCustomer(mock.Anything, customerID, userID).Return(nil)

	rec := doJSON(e, http.MethodDelete, "/customer/"+customerID.String(), "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
}
