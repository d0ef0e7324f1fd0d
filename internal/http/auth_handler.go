package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"dashly/internal/repository"
	"dashly/internal/service"
)

// genericAuthFailure es el único mensaje de login fallido que sale al
// cliente: no distinguir "no existe" de "contraseña incorrecta" evita
// enumerar cuentas.
const genericAuthFailure = "could not authenticate"

// AuthHandler mantiene dependencias para endpoints de autenticación.
type AuthHandler struct {
	logger       *zap.Logger
	userServ     *service.UserService
	sessionServ  *service.SessionService
	limiter      service.LoginRateLimiter
	cookieName   string
	cookieSecure bool
}

// NewAuthHandler crea una instancia de AuthHandler con dependencias necesarias.
func NewAuthHandler(logger *zap.Logger, userServ *service.UserService, sessionServ *service.SessionService, limiter service.LoginRateLimiter, cookieName string, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		logger:       logger,
		userServ:     userServ,
		sessionServ:  sessionServ,
		limiter:      limiter,
		cookieName:   cookieName,
		cookieSecure: cookieSecure,
	}
}

// Signup maneja POST /auth/signup.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req struct {
		Email             string `json:"email"`
		Password          string `json:"password"`
		AccountType       string `json:"accountType"`
		CompanyName       string `json:"companyName"`
		NumberOfEmployees int    `json:"numberOfEmployees"`
		DateOfBirth       string `json:"dob"`
		AcceptTerms       bool   `json:"acceptTerms"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid signup request", zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "invalid request body"})
		return
	}

	_, err := h.userServ.SignUp(c.Request.Context(), service.SignupRequest{
		Email:             req.Email,
		Password:          req.Password,
		AccountType:       req.AccountType,
		CompanyName:       req.CompanyName,
		NumberOfEmployees: req.NumberOfEmployees,
		DateOfBirth:       req.DateOfBirth,
		AcceptTerms:       req.AcceptTerms,
	})
	if err != nil {
		var validationErr *service.ValidationError
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"message": validationErr.Message})
		case errors.Is(err, repository.ErrDuplicateEmail):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "user already exists"})
		default:
			h.logger.Error("signup failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "user created successfully"})
}

// Login maneja POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid login request", zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"message": genericAuthFailure})
		return
	}

	if h.limiter != nil && !h.limiter.Allow(req.Email) {
		c.JSON(http.StatusTooManyRequests, gin.H{"message": "too many login attempts"})
		return
	}

	user, err := h.userServ.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoSuchUser), errors.Is(err, service.ErrInvalidPassword):
			// El motivo real queda solo en los logs del servidor.
			h.logger.Warn("login rejected", zap.Error(err))
			c.JSON(http.StatusUnauthorized, gin.H{"message": genericAuthFailure})
		default:
			h.logger.Error("login failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		}
		return
	}

	token, err := h.sessionServ.Issue(user)
	if err != nil {
		h.logger.Error("session issue failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, token, int(h.sessionServ.TTL().Seconds()), "/", "", h.cookieSecure, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged in"})
}

// Session maneja GET /auth/session. Es el endpoint que consulta un
// guard de vista protegida para resolver la sesión vigente.
func (h *AuthHandler) Session(c *gin.Context) {
	token := extractSessionToken(c, h.cookieName)
	claims, err := h.sessionServ.DecodeClaims(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": genericAuthFailure})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": claims.UserID, "email": claims.Email})
}
