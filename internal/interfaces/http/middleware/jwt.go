package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/petalia/backend/internal/infrastructure/auth"
	"github.com/petalia/backend/internal/interfaces/http/dto"
)

// Context keys set by the auth middlewares
const (
	UserIDKey     = "auth_user_id"
	UserRoleKey   = "auth_user_role"
	PanelIDKey    = "auth_panel_id"
	SupplierIDKey = "auth_supplier_id"

	authHeaderKey = "Authorization"
	bearerPrefix  = "Bearer "
)

// UserAuth validates the Bearer token as a back-office operator token
func UserAuth(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extractBearer(c)
		if !ok {
			abortUnauthorized(c, "Credenciais de acesso ausentes")
			return
		}

		claims, err := jwtService.ValidateUserToken(token)
		if err != nil {
			abortUnauthorized(c, "Token inválido ou expirado")
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(UserRoleKey, claims.Role)
		c.Next()
	}
}

// RequireRole allows only operators carrying one of the given roles.
// Must run after UserAuth.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(UserRoleKey)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden,
			dto.NewErrorResponse(dto.ErrCodeForbidden, "Acesso restrito a administradores"))
	}
}

// PanelAuth validates the Bearer token as a panel-scoped supplier link and
// checks it opens the panel named in the route. A token minted for one panel
// never authorizes actions on another.
func PanelAuth(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extractBearer(c)
		if !ok {
			// Supplier links carry the token as a query parameter so they
			// work when opened straight from a chat message.
			token = c.Query("token")
			if token == "" {
				abortUnauthorized(c, "Link de acesso ausente")
				return
			}
		}

		claims, err := jwtService.ValidatePanelToken(token)
		if err != nil {
			abortUnauthorized(c, "Link inválido ou expirado")
			return
		}

		if claims.PanelID != c.Param("id") {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse(dto.ErrCodeForbidden, "Este link não dá acesso a este painel"))
			return
		}

		c.Set(PanelIDKey, claims.PanelID)
		c.Set(SupplierIDKey, claims.SupplierID)
		c.Next()
	}
}

func extractBearer(c *gin.Context) (string, bool) {
	header := c.GetHeader(authHeaderKey)
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}
	token := strings.TrimPrefix(header, bearerPrefix)
	return token, token != ""
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponse(dto.ErrCodeUnauthorized, message))
}
