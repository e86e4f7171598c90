package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"shawarma-shop/models"
	"shawarma-shop/services"
)

type fakeAuthAPI struct {
	resp *models.AuthResponse
	err  error
}

func (f *fakeAuthAPI) Register(_ context.Context, _ models.RegisterRequest) (*models.AuthResponse, error) {
	return f.resp, f.err
}

func (f *fakeAuthAPI) Login(_ context.Context, _ models.LoginRequest) (*models.AuthResponse, error) {
	return f.resp, f.err
}

func authRouter(api *fakeAuthAPI) *gin.Engine {
	ctrl := NewAuthController(api)
	r := gin.New()
	r.POST("/auth/register", ctrl.Register)
	r.POST("/auth/login", ctrl.Login)
	return r
}

func TestRegisterSuccess(t *testing.T) {
	api := &fakeAuthAPI{resp: &models.AuthResponse{Token: "signed-token"}}
	w, body := doJSON(t, authRouter(api), http.MethodPost, "/auth/register", models.RegisterRequest{
		Email:    "admin@shawarma.shop",
		Password: "hunter22",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "signed-token", data["token"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	api := &fakeAuthAPI{err: services.ErrEmailTaken}
	w, _ := doJSON(t, authRouter(api), http.MethodPost, "/auth/register", models.RegisterRequest{
		Email:    "admin@shawarma.shop",
		Password: "hunter22",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	api := &fakeAuthAPI{resp: &models.AuthResponse{}}
	w, _ := doJSON(t, authRouter(api), http.MethodPost, "/auth/register", models.RegisterRequest{
		Email:    "admin@shawarma.shop",
		Password: "abc",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginInvalidCredentials(t *testing.T) {
	api := &fakeAuthAPI{err: services.ErrInvalidCredentials}
	w, _ := doJSON(t, authRouter(api), http.MethodPost, "/auth/login", models.LoginRequest{
		Email:    "admin@shawarma.shop",
		Password: "wrong-pass",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
