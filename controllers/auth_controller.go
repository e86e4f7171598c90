package controllers

import (
	"context"
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"shawarma-shop/models"
	"shawarma-shop/services"
)

type AuthAPI interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
}

type AuthController struct {
	auth AuthAPI
}

func NewAuthController(auth AuthAPI) *AuthController {
	return &AuthController{auth: auth}
}

// @Summary Register new user
// @Description Register an account and receive a signed session token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Register Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	resp, err := ctrl.auth.Register(c.Request.Context(), req)
	if err != nil {
		if services.IsValidation(err) {
			c.JSON(400, gin.H{"success": false, "message": err.Error()})
			return
		}
		log.Println("Registration failed:", err)
		c.JSON(500, gin.H{"success": false, "message": "Registration failed"})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Registration successful", "data": resp})
}

// @Summary User login
// @Description Login with email and password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	resp, err := ctrl.auth.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(401, gin.H{"success": false, "message": "Invalid credentials"})
			return
		}
		log.Println("Login failed:", err)
		c.JSON(500, gin.H{"success": false, "message": "Login failed"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Login successful", "data": resp})
}
