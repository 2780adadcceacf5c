package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ahmedkhaled2030/bedir-group/internal/config"
	"github.com/ahmedkhaled2030/bedir-group/internal/models"
	"github.com/ahmedkhaled2030/bedir-group/internal/tokens"
	"github.com/ahmedkhaled2030/bedir-group/internal/users"
	"github.com/ahmedkhaled2030/bedir-group/pkg/middleware"
)

// AuthHandler serves registration, login and the profile endpoint.
type AuthHandler struct {
	cfg      *config.Config
	usersSvc *users.Service
}

func NewAuthHandler(cfg *config.Config, u *users.Service) *AuthHandler {
	return &AuthHandler{cfg: cfg, usersSvc: u}
}

// Register routes under /auth
func (h *AuthHandler) Register(rg *gin.RouterGroup, authn gin.HandlerFunc) {
	a := rg.Group("/auth")
	a.POST("/register", h.RegisterUser)
	a.POST("/login", h.Login)
	a.GET("/profile", authn, h.Profile)
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) tokenResponse(c *gin.Context, status int, u *models.User) {
	token, err := tokens.GenerateAccessToken(h.cfg.JWT.Secret, u.ID.Hex(), h.cfg.JWT.AccessTokenTTL)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(status, gin.H{"access_token": token, "token_type": "bearer", "user": u})
}

func (h *AuthHandler) RegisterUser(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u, err := h.usersSvc.Register(c.Request.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		if errors.Is(err, users.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email already registered"})
			return
		}
		internalError(c, err)
		return
	}
	h.tokenResponse(c, http.StatusCreated, u)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u, err := h.usersSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, users.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		internalError(c, err)
		return
	}
	h.tokenResponse(c, http.StatusOK, u)
}

func (h *AuthHandler) Profile(c *gin.Context) {
	c.JSON(http.StatusOK, middleware.CurrentUser(c))
}
