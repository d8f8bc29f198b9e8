package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/primebox/storefront/config"
	"github.com/primebox/storefront/internal/constants"
	"github.com/primebox/storefront/internal/model"
	"github.com/primebox/storefront/internal/service"
	"github.com/primebox/storefront/pkg/logger"
	"go.uber.org/zap"
)

// SessionVerifier runs the authoritative session check against the
// store. *service.UserService satisfies it.
type SessionVerifier interface {
	VerifySession(ctx context.Context, claims *service.SessionClaims) (*model.User, error)
}

// SessionMiddleware gates the prime-panel behind the session cookie.
// Gate runs the cheap signature+expiry check and the role redirect on
// every panel request; RequireAccount adds the store-backed token
// version and active-flag check before anything sensitive runs.
type SessionMiddleware struct {
	sessions *service.SessionService
	verifier SessionVerifier
	cookie   config.SessionConfig
}

func NewSessionMiddleware(sessions *service.SessionService, verifier SessionVerifier, cookie config.SessionConfig) *SessionMiddleware {
	return &SessionMiddleware{
		sessions: sessions,
		verifier: verifier,
		cookie:   cookie,
	}
}

func (m *SessionMiddleware) clearCookie(c *gin.Context) {
	c.SetCookie(m.cookie.CookieName, "", -1, "/", m.cookie.CookieDomain, m.cookie.CookieSecure, true)
}

func (m *SessionMiddleware) unauthorized(c *gin.Context) {
	m.clearCookie(c)
	c.JSON(http.StatusUnauthorized, gin.H{
		"message": constants.MsgUnauthorized,
	})
	c.Abort()
}

// restrictedPath reports whether the request path is reachable by
// ADMIN only.
func restrictedPath(path string) bool {
	for _, prefix := range constants.RestrictedPanelPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// Gate verifies the session cookie's signature and expiry without
// touching the database, and applies the role policy: a SALES session
// requesting a restricted area is redirected to the default permitted
// page rather than shown an error.
func (m *SessionMiddleware) Gate() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(m.cookie.CookieName)
		if err != nil || tokenString == "" {
			logger.GetLogger().Debug("Missing session cookie",
				zap.String("path", c.Request.URL.Path))
			m.unauthorized(c)
			return
		}

		claims, err := m.sessions.Verify(tokenString)
		if err != nil {
			logger.GetLogger().Warn("Invalid or expired session token",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err))
			m.unauthorized(c)
			return
		}

		if claims.Role != model.RoleAdmin && restrictedPath(c.Request.URL.Path) {
			logger.GetLogger().Info("Restricted area redirect",
				zap.Uint("user_id", claims.UserID),
				zap.String("role", string(claims.Role)),
				zap.String("path", c.Request.URL.Path))
			c.Redirect(http.StatusSeeOther, constants.PanelDefaultPath)
			c.Abort()
			return
		}

		c.Set(constants.CtxKeySession, claims)
		c.Set(constants.CtxKeyUserID, claims.UserID)
		c.Set(constants.CtxKeyEmail, claims.Email)
		c.Set(constants.CtxKeyRole, string(claims.Role))

		c.Next()
	}
}

// RequireAccount is the authoritative check: it loads the stored user
// through the verifier and rejects revoked token versions and disabled
// accounts. It assumes Gate already ran.
func (m *SessionMiddleware) RequireAccount() gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get(constants.CtxKeySession)
		if !exists {
			m.unauthorized(c)
			return
		}

		claims, ok := value.(*service.SessionClaims)
		if !ok {
			m.unauthorized(c)
			return
		}

		user, err := m.verifier.VerifySession(c.Request.Context(), claims)
		if err != nil {
			logger.GetLogger().Warn("Authoritative session check failed",
				zap.Uint("user_id", claims.UserID),
				zap.Error(err))
			m.unauthorized(c)
			return
		}

		c.Set(constants.CtxKeyAccount, user)

		c.Next()
	}
}

// CurrentUser returns the account loaded by RequireAccount.
func CurrentUser(c *gin.Context) (*model.User, bool) {
	value, exists := c.Get(constants.CtxKeyAccount)
	if !exists {
		return nil, false
	}
	user, ok := value.(*model.User)
	return user, ok
}

// CurrentClaims returns the session claims set by Gate.
func CurrentClaims(c *gin.Context) (*service.SessionClaims, bool) {
	value, exists := c.Get(constants.CtxKeySession)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*service.SessionClaims)
	return claims, ok
}
