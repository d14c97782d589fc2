package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MiguelSerea/TCC-Espaco-BK-Backend/internal/config"
	"github.com/MiguelSerea/TCC-Espaco-BK-Backend/internal/domain"
	"github.com/MiguelSerea/TCC-Espaco-BK-Backend/internal/http/middleware"
	"github.com/MiguelSerea/TCC-Espaco-BK-Backend/internal/service"
)

// AuthHandler exposes registration, login, logout, and the session check.
type AuthHandler struct {
	Auth   *service.AuthService
	cookie string
	secure bool
}

// NewAuthHandler creates the handler set.
func NewAuthHandler(auth *service.AuthService, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		Auth:   auth,
		cookie: cfg.SessionCookie,
		secure: cfg.Environment != "development",
	}
}

// Register creates an account and opens a session for it.
func (h *AuthHandler) Register(c *gin.Context) {
	var req struct {
		Name            string `json:"name"`
		Email           string `json:"email"`
		Password        string `json:"password"`
		PasswordConfirm string `json:"password_confirm"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	user, token, err := h.Auth.Register(c.Request.Context(), req.Name, req.Email, req.Password, req.PasswordConfirm)
	if err != nil {
		respondServiceError(c, err, "user")
		return
	}

	h.setSessionCookie(c, token)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "user created",
		"user":    user,
		"token":   token,
	})
}

// Login authenticates by email and password. Failures stay generic so the
// response never reveals whether the email exists.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	user, token, err := h.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			respondError(c, http.StatusBadRequest, domain.ErrInvalidCredentials.Error())
			return
		}
		respondServiceError(c, err, "user")
		return
	}

	h.setSessionCookie(c, token)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "login successful",
		"user":    user,
		"token":   token,
	})
}

// Logout clears the session unconditionally.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := middleware.TokenFromRequest(c.Request, h.cookie)
	if err := h.Auth.Logout(c.Request.Context(), token); err != nil {
		respondServiceError(c, err, "session")
		return
	}

	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "logout successful"})
}

// Check reports whether the request carries a live session.
func (h *AuthHandler) Check(c *gin.Context) {
	token := middleware.TokenFromRequest(c.Request, h.cookie)
	user, err := h.Auth.CurrentUser(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, domain.ErrNoSession) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "authenticated": false})
			return
		}
		respondServiceError(c, err, "session")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"authenticated": true,
		"user":          user,
	})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie, token, int(h.Auth.SessionTTL().Seconds()), "/", "", h.secure, true)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie, "", -1, "/", "", h.secure, true)
}
