package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personnel/internal/i18n"
	"personnel/internal/middleware"
	"personnel/internal/model"
	"personnel/internal/service"
	"personnel/pkg/response"
)

const secret = "middleware-secret"

type rolePerms struct {
	byRole map[string][]string
	err    error
	calls  atomic.Int32
}

func (p *rolePerms) GetPermissionsByRoleName(_ context.Context, role string) ([]string, error) {
	p.calls.Add(1)
	if p.err != nil {
		return nil, p.err
	}
	return p.byRole[role], nil
}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newRouter(t *testing.T, perms *rolePerms) (*gin.Engine, *middleware.Authenticator) {
	t.Helper()

	tr := i18n.New()
	auth := middleware.NewAuthenticator(middleware.AuthConfig{Secret: secret}, perms, tr)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Localize(tr))
	r.GET("/me", auth.RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user":   middleware.CurrentUserID(c),
			"role":   middleware.CurrentRole(c),
			"locale": middleware.Locale(c),
		})
	})
	r.POST("/rules", auth.RequirePermission(model.PermPayrollRulesWrite), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r, auth
}

func bearer(t *testing.T, role, locale string) string {
	t.Helper()

	token, err := service.IssueAccessToken(secret, uuid.NewString(), role, locale, time.Hour, time.Now())
	require.NoError(t, err)
	return "Bearer " + token
}

func decode(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var res response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return res
}

func TestRequireAuth(t *testing.T) {
	t.Parallel()

	r, _ := newRouter(t, &rolePerms{})

	t.Run("missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

		require.Equal(t, http.StatusUnauthorized, w.Code)
		res := decode(t, w)
		assert.Equal(t, response.StatusError, res.Status)
		assert.Equal(t, "Authentication required", res.Error)
		assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))
	})

	t.Run("translated rejection", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		req.Header.Set("Accept-Language", "ru-RU,ru;q=0.9")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Требуется авторизация", decode(t, w).Error)
	})

	t.Run("token locale applies without header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", bearer(t, model.RoleViewer, model.LocaleRussian))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, model.RoleViewer, body["role"])
		assert.Equal(t, model.LocaleRussian, body["locale"])
		assert.NotEmpty(t, body["user"])
	})

	t.Run("header beats token locale", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", bearer(t, model.RoleViewer, model.LocaleRussian))
		req.Header.Set("Accept-Language", "en-US")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, model.LocaleEnglish, body["locale"])
	})
}

func TestRequirePermission(t *testing.T) {
	t.Parallel()

	perms := &rolePerms{byRole: map[string][]string{
		model.RoleAccountant: {model.PermPayrollRulesRead, model.PermPayrollRulesWrite},
		model.RoleViewer:     {model.PermPayrollRulesRead},
	}}
	r, auth := newRouter(t, perms)

	post := func(role string) int {
		req := httptest.NewRequest(http.MethodPost, "/rules", nil)
		req.Header.Set("Authorization", bearer(t, role, ""))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusNoContent, post(model.RoleAccountant))
	assert.Equal(t, http.StatusForbidden, post(model.RoleViewer))

	// second lookup per role is served from the cache
	assert.Equal(t, http.StatusNoContent, post(model.RoleAccountant))
	assert.EqualValues(t, 2, perms.calls.Load())

	auth.ClearPermissionCache(model.RoleAccountant)
	assert.Equal(t, http.StatusNoContent, post(model.RoleAccountant))
	assert.EqualValues(t, 3, perms.calls.Load())

	ok, err := auth.HasPermission(context.Background(), model.RoleViewer, model.PermPayrollRulesWrite)
	require.NoError(t, err)
	assert.False(t, ok)

	codes, err := auth.Permissions(context.Background(), model.RoleAccountant)
	require.NoError(t, err)
	assert.Equal(t, []string{model.PermPayrollRulesRead, model.PermPayrollRulesWrite}, codes)
}

func TestRequirePermission_SourceFailure(t *testing.T) {
	t.Parallel()

	r, _ := newRouter(t, &rolePerms{err: errors.New("db down")})

	req := httptest.NewRequest(http.MethodPost, "/rules", nil)
	req.Header.Set("Authorization", bearer(t, model.RoleAdmin, ""))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", decode(t, w).Error)
}
