package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petalia/backend/internal/infrastructure/auth"
	"github.com/petalia/backend/internal/infrastructure/config"
)

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:              "test-secret-key-with-enough-length",
		AccessTokenDuration: time.Hour,
		PanelTokenDuration:  time.Hour,
		Issuer:              "petalia-test",
	})
}

func TestUserAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwtService := newTestJWTService()

	newRouter := func() *gin.Engine {
		r := gin.New()
		r.GET("/protected", UserAuth(jwtService), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"user_id": c.GetString(UserIDKey)})
		})
		return r
	}

	t.Run("accepts a valid operator token", func(t *testing.T) {
		userID := uuid.New()
		token, _, err := jwtService.IssueUserToken(userID, "ADMIN")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		newRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), userID.String())
	})

	t.Run("rejects missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		newRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects a panel token on operator routes", func(t *testing.T) {
		token, _, err := jwtService.IssuePanelToken(uuid.New(), uuid.New())
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		newRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwtService := newTestJWTService()

	r := gin.New()
	r.POST("/admin", UserAuth(jwtService), RequireRole("ADMIN"), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	t.Run("allows the named role", func(t *testing.T) {
		token, _, err := jwtService.IssueUserToken(uuid.New(), "ADMIN")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("rejects other roles", func(t *testing.T) {
		token, _, err := jwtService.IssueUserToken(uuid.New(), "OPERATOR")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestPanelAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwtService := newTestJWTService()

	r := gin.New()
	r.POST("/panel/:id/approve", PanelAuth(jwtService), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"supplier_id": c.GetString(SupplierIDKey)})
	})

	panelID := uuid.New()
	supplierID := uuid.New()

	t.Run("accepts the matching panel token", func(t *testing.T) {
		token, _, err := jwtService.IssuePanelToken(panelID, supplierID)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/panel/"+panelID.String()+"/approve", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), supplierID.String())
	})

	t.Run("accepts the token as a query parameter", func(t *testing.T) {
		token, _, err := jwtService.IssuePanelToken(panelID, supplierID)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/panel/"+panelID.String()+"/approve?token="+token, nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects a token minted for another panel", func(t *testing.T) {
		token, _, err := jwtService.IssuePanelToken(uuid.New(), supplierID)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/panel/"+panelID.String()+"/approve", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("rejects an operator token on panel routes", func(t *testing.T) {
		token, _, err := jwtService.IssueUserToken(uuid.New(), "ADMIN")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/panel/"+panelID.String()+"/approve", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
