package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"sellbase/internal/domain/entity"
	domainerrors "sellbase/internal/domain/errors"
	mockUC "sellbase/internal/mocks/usecase"
	"sellbase/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Register_Success(t *testing.T) {
	uc := mockUC.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc)

	e := newTestEcho(t)
	e.POST("/auth/register", h.Register)

	registered := &entity.User{
		ID:        uuid.New(),
		Name:      "Ana",
		Email:     "ana@x.com",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	uc.EXPECT().Register(mock.Anything, usecase.RegisterInput{
		Name:     "Ana",
		Email:    "ana@x.com",
		Password: "12345678",
	}).Return(&usecase.RegisterOutput{User: registered}, nil)

	rec := doJSON(e, http.MethodPost, "/auth/register",
		`{"name":"Ana","email":"ana@x.com","password":"12345678","confirmPassword":"12345678"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, registered.ID.String(), data["id"])
	assert.Equal(t, "Ana", data["name"])
	assert.Equal(t, "ana@x.com", data["email"])
	assert.NotContains(t, data, "password")
}

func TestAuthHandler_Register_PasswordMismatch(t *testing.T) {
	uc := mockUC.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc)

	e := newTestEcho(t)
	e.POST("/auth/register", h.Register)

	rec := doJSON(e, http.MethodPost, "/auth/register",
		`{"name":"Ana","email":"ana@x.com","password":"12345678","confirmPassword":"nope1234"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `[{"message":"passwords do not match","path":"confirmPassword"}]`, rec.Body.String())
}

func TestAuthHandler_Register_PasswordTooShort(t *testing.T) {
	uc := mockUC.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc)

	e := newTestEcho(t)
	e.POST("/auth/register", h.Register)

	rec := doJSON(e, http.MethodPost, "/auth/register",
		`{"name":"Ana","email":"ana@x.com","password":"1234567","confirmPassword":"1234567"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `[{"message":"password must be at least 8 characters long","path":"password"}]`, rec.Body.String())
	uc.AssertNotCalled(t, "Register")
}

func TestAuthHandler_Login_PasswordTooShort(t *testing.T) {
	uc := mockUC.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc)

	e := newTestEcho(t)
	e.POST("/auth/login", h.Login)

	rec := doJSON(e, http.MethodPost, "/auth/login",
		`{"email":"ana@x.com","password":"1234567"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"path":"password"`)
	uc.AssertNotCalled(t, "Login")
}

func TestAuthHandler_Register_MissingFieldNeverReachesUsecase(t *testing.T) {
	uc := mockUC.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc)

	e := newTestEcho(t)
	e.POST("/auth/register", h.Register)

	rec := doJSON(e, http.MethodPost, "/auth/register",
		`{"name":"Ana","password":"12345678","confirmPassword":"12345678"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"path":"email"`)
	uc.AssertNotCalled(t, "Register")
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	uc := mockUC.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc)

	e := newTestEcho(t)
	e.POST("/auth/register", h.Register)

	uc.EXPECT().Register(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrUserAlreadyExists)

	rec := doJSON(e, http.MethodPost, "/auth/register",
		`{"name":"Ana","email":"ana@x.com","password":"12345678","confirmPassword":"12345678"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":{"message":"email is already registered"}}`, rec.Body.String())
}

func TestAuthHandler_Login_Success(t *testing.T) {
	uc := mockUC.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc)

	e := newTestEcho(t)
	e.POST("/auth/login", h.Login)

	uc.EXPECT().Login(mock.Anything, usecase.LoginInput{
		Email:    "ana@x.com",
		Password: "12345678",
	}).Return(&usecase.TokenOutput{Token: "signed.jwt.token"}, nil)

	rec := doJSON(e, http.MethodPost, "/auth/login",
		`{"email":"ana@x.com","password":"12345678"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"token":"signed.jwt.token"}`, rec.Body.String())
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	uc := mockUC.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc)

	e := newTestEcho(t)
	e.POST("/auth/login", h.Login)

	uc.EXPECT().Login(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInvalidCredentials)

	rec := doJSON(e, http.MethodPost, "/auth/login",
		`{"email":"ana@x.com","password":"wrong-pass"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":{"message":"invalid email or password"}}`, rec.Body.String())
}

func TestAuthHandler_GoogleAuth_Success(t *testing.T) {
	uc := mockUC.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc)

	e := newTestEcho(t)
	e.POST("/auth/register/google-auth", h.GoogleAuth)

	uc.EXPECT().GoogleAuth(mock.Anything, usecase.GoogleAuthInput{Code: "oauth-code"}).
		Return(&usecase.TokenOutput{Token: "signed.jwt.token"}, nil)

	rec := doJSON(e, http.MethodPost, "/auth/register/google-auth", `{"code":"oauth-code"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"token":"signed.jwt.token"}`, rec.Body.String())
}

func TestAuthHandler_GoogleAuth_MissingCode(t *testing.T) {
	uc := mockUC.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc)

	e := newTestEcho(t)
	e.POST("/auth/register/google-auth", h.GoogleAuth)

	rec := doJSON(e, http.MethodPost, "/auth/register/google-auth", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `[{"message":"code is required","path":"code"}]`, rec.Body.String())
}
