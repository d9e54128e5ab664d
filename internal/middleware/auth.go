package middleware

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"personnel/internal/i18n"
	"personnel/internal/service"
	"personnel/pkg/logger"
	"personnel/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserID   = "userID"
	ctxUserRole = "userRole"

	accessCookie  = "access_token"
	refreshCookie = "refresh_token"
)

// PermissionSource resolves the permission codes granted to a role.
type PermissionSource interface {
	GetPermissionsByRoleName(ctx context.Context, roleName string) ([]string, error)
}

type AuthConfig struct {
	Secret          string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	SecureCookies   bool
	PermissionTTL   time.Duration
}

// permCacheEntry stores cached permission codes for a role with TTL
type permCacheEntry struct {
	codes     map[string]struct{}
	expiresAt time.Time
}

// Authenticator validates access tokens and checks role permissions.
type Authenticator struct {
	cfg   AuthConfig
	perms PermissionSource
	tr    *i18n.Translator
	cache sync.Map // roleName -> permCacheEntry
	now   func() time.Time
}

func NewAuthenticator(cfg AuthConfig, perms PermissionSource, tr *i18n.Translator) *Authenticator {
	if cfg.PermissionTTL <= 0 {
		cfg.PermissionTTL = 5 * time.Minute
	}
	return &Authenticator{cfg: cfg, perms: perms, tr: tr, now: time.Now}
}

// Authenticate parses a raw access token.
func (a *Authenticator) Authenticate(tokenString string) (*service.AccessClaims, error) {
	if tokenString == "" {
		return nil, errors.New("missing token")
	}
	return service.ParseAccessToken(a.cfg.Secret, tokenString)
}

// RequireAuth accepts any valid access token.
func (a *Authenticator) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !a.authenticate(c) {
			return
		}
		c.Next()
	}
}

// RequirePermission requires a valid token whose role carries every listed permission.
func (a *Authenticator) RequirePermission(requiredPerms ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !a.authenticate(c) {
			return
		}

		granted, err := a.permissionsForRole(c.Request.Context(), CurrentRole(c))
		if err != nil {
			a.abort(c, http.StatusInternalServerError, i18n.KeyInternal)
			return
		}

		for _, required := range requiredPerms {
			if _, ok := granted[required]; !ok {
				a.abort(c, http.StatusForbidden, i18n.KeyForbidden)
				return
			}
		}

		c.Next()
	}
}

// HasPermission reports whether role is granted perm.
func (a *Authenticator) HasPermission(ctx context.Context, role, perm string) (bool, error) {
	granted, err := a.permissionsForRole(ctx, role)
	if err != nil {
		return false, err
	}
	_, ok := granted[perm]
	return ok, nil
}

// Permissions lists the codes granted to role in sorted order.
func (a *Authenticator) Permissions(ctx context.Context, role string) ([]string, error) {
	granted, err := a.permissionsForRole(ctx, role)
	if err != nil {
		return nil, err
	}
	codes := make([]string, 0, len(granted))
	for code := range granted {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes, nil
}

// ClearPermissionCache removes cached permissions for a specific role (or all roles if empty)
func (a *Authenticator) ClearPermissionCache(roleName string) {
	if roleName != "" {
		a.cache.Delete(roleName)
		return
	}
	a.cache.Range(func(key, _ any) bool {
		a.cache.Delete(key)
		return true
	})
}

// SetTokenCookies sets access_token and refresh_token as HttpOnly cookies
func (a *Authenticator) SetTokenCookies(c *gin.Context, accessToken, refreshToken string) {
	a.setSameSite(c)
	c.SetCookie(accessCookie, accessToken, int(a.cfg.AccessTokenTTL.Seconds()), "/", "", a.cfg.SecureCookies, true)
	c.SetCookie(refreshCookie, refreshToken, int(a.cfg.RefreshTokenTTL.Seconds()), "/", "", a.cfg.SecureCookies, true)
}

// ClearTokenCookies removes access_token and refresh_token cookies
func (a *Authenticator) ClearTokenCookies(c *gin.Context) {
	a.setSameSite(c)
	c.SetCookie(accessCookie, "", -1, "/", "", a.cfg.SecureCookies, true)
	c.SetCookie(refreshCookie, "", -1, "/", "", a.cfg.SecureCookies, true)
}

// RefreshTokenFromCookie returns the refresh token cookie, or "" when absent.
func RefreshTokenFromCookie(c *gin.Context) string {
	v, _ := c.Cookie(refreshCookie)
	return v
}

// CurrentUserID is the subject of the verified token, "" for anonymous requests.
func CurrentUserID(c *gin.Context) string {
	return c.GetString(ctxUserID)
}

func CurrentRole(c *gin.Context) string {
	return c.GetString(ctxUserRole)
}

func (a *Authenticator) setSameSite(c *gin.Context) {
	// cross-origin frontends need None, which browsers only accept with Secure
	if a.cfg.SecureCookies {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
}

func (a *Authenticator) authenticate(c *gin.Context) bool {
	tokenString, ok := extractToken(c)
	if !ok {
		a.abort(c, http.StatusUnauthorized, i18n.KeyUnauthorized)
		return false
	}

	claims, err := a.Authenticate(tokenString)
	if err != nil {
		a.abort(c, http.StatusUnauthorized, i18n.KeyUnauthorized)
		return false
	}

	c.Set(ctxUserID, claims.Subject)
	c.Set(ctxUserRole, claims.Role)
	if !hasExplicitLocale(c) && claims.Locale != "" {
		c.Set(ctxLocale, claims.Locale)
	}
	c.Request = c.Request.WithContext(logger.SetUserID(c.Request.Context(), claims.Subject))
	return true
}

// extractToken tries the cookie first, then the Authorization header.
func extractToken(c *gin.Context) (string, bool) {
	if tokenString, err := c.Cookie(accessCookie); err == nil && tokenString != "" {
		return tokenString, true
	}

	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func (a *Authenticator) permissionsForRole(ctx context.Context, roleName string) (map[string]struct{}, error) {
	if entry, ok := a.cache.Load(roleName); ok {
		cached := entry.(permCacheEntry)
		if a.now().Before(cached.expiresAt) {
			return cached.codes, nil
		}
	}

	codes, err := a.perms.GetPermissionsByRoleName(ctx, roleName)
	if err != nil {
		return nil, err
	}

	set := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		set[code] = struct{}{}
	}
	a.cache.Store(roleName, permCacheEntry{codes: set, expiresAt: a.now().Add(a.cfg.PermissionTTL)})
	return set, nil
}

func (a *Authenticator) abort(c *gin.Context, status int, key string) {
	c.AbortWithStatusJSON(status, response.Error(status, a.tr.T(Locale(c), key)))
}
