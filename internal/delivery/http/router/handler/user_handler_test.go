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

func newUserTestServer(t *testing.T, userID uuid.UUID) (*mockUC.MockUserUsecase, *echo.Echo) {
	t.Helper()

	uc := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(uc)

	e := newTestEcho(t)
	group := e.Group("/user", asUser(userID))
	group.GET("/:id", h.Get)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)

	return uc, e
}

func TestUserHandler_Get_Self(t *testing.T) {
	userID := uuid.New()
	uc, e := newUserTestServer(t, userID)

	uc.EXPECT().GetUser(mock.Anything, userID, userID).
		Return(&entity.User{ID: userID, Name: "Ana", Email: "ana@x.com"}, nil)

	rec := doJSON(e, http.MethodGet, "/user/"+userID.String(), "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Ana"`)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestUserHandler_Get_OtherAccountReadsAsMissing(t *testing.T) {
	userID := uuid.New()
	uc, e := newUserTestServer(t, userID)

	otherID := uuid.New()
	uc.EXPECT().GetUser(mock.Anything, otherID, userID).
		Return(nil, domainerrors.ErrUserNotFound)

	rec := doJSON(e, http.MethodGet, "/user/"+otherID.String(), "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":{"message":"user not found"}}`, rec.Body.String())
}

func TestUserHandler_Update_NameOnly(t *testing.T) {
	userID := uuid.New()
	uc, e := newUserTestServer(t, userID)

	name := "Ana Maria"
	uc.EXPECT().UpdateUser(mock.Anything, userID, userID, usecase.UpdateUserInput{
		Name: &name,
	}).Return(&entity.User{ID: userID, Name: name, Email: "ana@x.com"}, nil)

	rec := doJSON(e, http.MethodPut, "/user/"+userID.String(), `{"name":"Ana Maria"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Ana Maria"`)
}

func TestUserHandler_Delete_Self(t *testing.T) {
	userID := uuid.New()
	uc, e := newUserTestServer(t, userID)

	uc.EXPECT().DeleteUser(mock.Anything, userID, userID).Return(nil)

	rec := doJSON(e, http.MethodDelete, "/user/"+userID.String(), "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
}

func TestUserHandler_RequiresAuthentication(t *testing.T) {
	uc := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(uc)

	e := newTestEcho(t)
	e.GET("/user/:id", h.Get)

	rec := doJSON(e, http.MethodGet, "/user/"+uuid.NewString(), "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":{"message":"request is not authorized"}}`, rec.Body.String())
}
