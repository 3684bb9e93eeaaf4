package handler

import (
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
)

func newProductTestServer(t *testing.T, userID uuid.UUID) (*mockUC.MockProductUsecase, *echo.Echo) {
	t.Helper()

	uc := mockUC.NewMockProductUsecase(t)
	h := NewProductHandler(uc)

	e := newTestEcho(t)
	group := e.Group("/product", asUser(userID))
	group.GET("", h.List)
	group.POST("", h.Create)
	group.GET("/:id", h.Get)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)

	return uc, e
}

func TestProductHandler_Create_Success(t *testing.T) {
	userID := uuid.New()
	uc, e := newProductTestServer(t, userID)

	categoryID := uuid.New()
	created := &entity.Product{
		ID:         uuid.New(),
		Name:       "Keyboard",
		Price:      100,
		Quantity:   5,
		CategoryID: categoryID,
		UserID:     userID,
	}
	uc.EXPECT().CreateProduct(mock.Anything, userID, usecase.CreateProductInput{
		Name:       "Keyboard",
		Price:      100,
		Quantity:   5,
		CategoryID: categoryID,
	}).Return(created, nil)

	rec := doJSON(e, http.MethodPost, "/product",
		`{"name":"Keyboard","price":100,"quantity":5,"categoryId":"`+categoryID.String()+`"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestProductHandler_Create_NegativePrice(t *testing.T) {
	userID := uuid.New()
	uc, e := newProductTestServer(t, userID)

	rec := doJSON(e, http.MethodPost, "/product",
		`{"name":"Keyboard","price":-1,"quantity":5,"categoryId":"`+uuid.NewString()+`"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"path":"price"`)
	uc.AssertNotCalled(t, "CreateProduct")
}

func TestProductHandler_Create_ForeignCategory(t *testing.T) {
	userID := uuid.New()
	uc, e := newProductTestServer(t, userID)

	uc.EXPECT().CreateProduct(mock.Anything, userID, mock.Anything).
		Return(nil, domainerrors.ErrCategoryNotFound)

	rec := doJSON(e, http.MethodPost, "/product",
		`{"name":"Keyboard","price":100,"quantity":5,"categoryId":"`+uuid.NewString()+`"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":{"message":"product category not found"}}`, rec.Body.String())
}

func TestProductHandler_Update_PriceOnlyLeavesQuantityAlone(t *testing.T) {
	userID := uuid.New()
	uc, e := newProductTestServer(t, userID)

	productID := uuid.New()
	price := 50.0
	updated := &entity.Product{ID: productID, Name: "Keyboard", Price: 50, Quantity: 5, UserID: userID}

	uc.EXPECT().UpdateProduct(mock.Anything, productID, userID, usecase.UpdateProductInput{
		Price: &price,
	}).Return(updated, nil)

	rec := doJSON(e, http.MethodPut, "/product/"+productID.String(), `{"price":50}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"price":50`)
	assert.Contains(t, rec.Body.String(), `"quantity":5`)
}

func TestProductHandler_List_Success(t *testing.T) {
	userID := uuid.New()
	uc, e := newProductTestServer(t, userID)

	uc.EXPECT().ListProducts(mock.Anything, userID).Return([]*entity.Product{
		{ID: uuid.New(), Name: "Keyboard", UserID: userID},
		{ID: uuid.New(), Name: "Mouse", UserID: userID},
	}, nil)

	rec := doJSON(e, http.MethodGet, "/product", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Keyboard")
	assert.Contains(t, rec.Body.String(), "Mouse")
}
