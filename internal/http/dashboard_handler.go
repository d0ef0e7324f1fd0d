package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DashboardHandler sirve contenido protegido por sesión.
type DashboardHandler struct {
	logger *zap.Logger
}

func NewDashboardHandler(logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{logger: logger}
}

// Overview maneja GET /dashboard. La identidad sale del token de
// sesión, sin vuelta al repositorio.
func (h *DashboardHandler) Overview(c *gin.Context) {
	claims, ok := GetSessionClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": genericAuthFailure})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":    claims.UserID,
		"email": claims.Email,
	})
}
