package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"dashly/internal/service"
)

const sessionClaimsKey = "session_claims"

// SessionAuthMiddleware valida el token de sesión y guarda los claims
// en el contexto. Acepta cookie de sesión o header Authorization.
func SessionAuthMiddleware(sessionSvc *service.SessionService, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sessionSvc == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
			c.Abort()
			return
		}

		token := extractSessionToken(c, cookieName)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": genericAuthFailure})
			c.Abort()
			return
		}

		claims, err := sessionSvc.DecodeClaims(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": genericAuthFailure})
			c.Abort()
			return
		}

		c.Set(sessionClaimsKey, claims)
		c.Next()
	}
}

// GetSessionClaims obtiene los claims de sesión desde el contexto.
func GetSessionClaims(c *gin.Context) (service.Claims, bool) {
	val, ok := c.Get(sessionClaimsKey)
	if !ok {
		return service.Claims{}, false
	}
	claims, ok := val.(service.Claims)
	return claims, ok
}

func extractSessionToken(c *gin.Context, cookieName string) string {
	if cookieName != "" {
		if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
			return cookie
		}
	}
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
		return ""
	}
	return strings.TrimSpace(header[len("Bearer "):])
}
