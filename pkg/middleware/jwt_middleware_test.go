package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"sharix/internal/models/db_models"
	"sharix/pkg/utils"
)

func newGatedRouter(allowed ...db_models.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/gated", JWTAuthMiddleware(), RequireRoles(allowed...), func(c *gin.Context) {
		id, _ := CallerID(c)
		c.JSON(http.StatusOK, gin.H{"caller": id})
	})
	return r
}

func requestWithToken(t *testing.T, r *gin.Engine, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/gated", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRoleGating(t *testing.T) {
	t.Setenv("JWT_SECRET", "middleware-test-secret")

	managerToken, err := utils.CreateToken(uuid.New(), string(db_models.RoleManager))
	require.NoError(t, err)
	memberToken, err := utils.CreateToken(uuid.New(), string(db_models.RoleMember))
	require.NoError(t, err)

	t.Run("allowed role passes through", func(t *testing.T) {
		w := requestWithToken(t, newGatedRouter(db_models.RoleManager), managerToken)
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("disallowed role is forbidden", func(t *testing.T) {
		w := requestWithToken(t, newGatedRouter(db_models.RoleManager), memberToken)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("empty role set admits any authenticated caller", func(t *testing.T) {
		w := requestWithToken(t, newGatedRouter(), memberToken)
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing header", func(t *testing.T) {
		w := requestWithToken(t, newGatedRouter(), "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		w := requestWithToken(t, newGatedRouter(), "not.a.jwt")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token minted with a different key", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "some-other-secret")
		foreign, err := utils.CreateToken(uuid.New(), string(db_models.RoleManager))
		require.NoError(t, err)

		t.Setenv("JWT_SECRET", "middleware-test-secret")
		w := requestWithToken(t, newGatedRouter(), foreign)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown role claim is rejected", func(t *testing.T) {
		badRole, err := utils.CreateToken(uuid.New(), "superuser")
		require.NoError(t, err)

		w := requestWithToken(t, newGatedRouter(), badRole)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestCallerIDEchoesTokenSubject(t *testing.T) {
	t.Setenv("JWT_SECRET", "middleware-test-secret")

	callerID := uuid.New()
	token, err := utils.CreateToken(callerID, string(db_models.RoleBoard))
	require.NoError(t, err)

	w := requestWithToken(t, newGatedRouter(), token)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), callerID.String())
}
