package auth

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/amirulafiq/kerjago/internal/dtos"
	"github.com/amirulafiq/kerjago/internal/models"
)

const (
	ctxUserID = "auth.userID"
	ctxEmail  = "auth.email"
)

// UserStore materializes the local user row for a verified session.
type UserStore interface {
	EnsureUser(ctx context.Context, id, email, name string) (*models.User, error)
}

type cacheEntry struct {
	at   time.Time
	user *models.User
}

// Middleware verifies the session on every request and caches the
// local user row per user id with a fixed freshness window, so the
// store is not hit on every request. Two concurrent misses for the
// same key may both repopulate the entry; the value is derived
// deterministically from the same upstream source, so that is fine.
type Middleware struct {
	verifier SessionVerifier
	users    UserStore
	ttl      time.Duration
	logger   *zap.Logger

	mu    sync.Mutex
	cache map[string]cacheEntry

	publicPaths map[string]bool
}

func NewMiddleware(verifier SessionVerifier, users UserStore, ttl time.Duration, logger *zap.Logger) *Middleware {
	return &Middleware{
		verifier: verifier,
		users:    users,
		ttl:      ttl,
		logger:   logger,
		cache:    make(map[string]cacheEntry),
		publicPaths: map[string]bool{
			"/health": true,
		},
	}
}

// Handler is the gin middleware. Unauthenticated requests get 401,
// non-employer sessions get 403.
func (m *Middleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.publicPaths[c.Request.URL.Path] {
			c.Next()
			return
		}

		token := bearerToken(c.Request)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dtos.ErrorResponse{Error: "Unauthorized"})
			return
		}

		sess, err := m.verifier.Verify(c.Request.Context(), token)
		if err != nil {
			m.logger.Error("Authentication error", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, dtos.ErrorResponse{Error: "Unauthorized"})
			return
		}

		if !sess.IsEmployer {
			c.AbortWithStatusJSON(http.StatusForbidden, dtos.ErrorResponse{Error: "Access denied"})
			return
		}

		if _, err := m.localUser(c.Request.Context(), sess); err != nil {
			m.logger.Error("Failed to load user", zap.String("user_id", sess.UserID), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, dtos.ErrorResponse{Error: "Failed to load user", Message: err.Error()})
			return
		}

		SetSession(c, sess.UserID, sess.Email)
		c.Next()
	}
}

// localUser returns the cached user row, refreshing it from the store
// once the freshness window has passed.
func (m *Middleware) localUser(ctx context.Context, sess *Session) (*models.User, error) {
	m.mu.Lock()
	entry, ok := m.cache[sess.UserID]
	m.mu.Unlock()

	if ok && time.Since(entry.at) < m.ttl {
		return entry.user, nil
	}

	user, err := m.users.EnsureUser(ctx, sess.UserID, sess.Email, sess.Name)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.cache[sess.UserID] = cacheEntry{at: time.Now(), user: user}
	m.mu.Unlock()
	return user, nil
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	// Browser clients carry the session in a cookie instead.
	if cookie, err := r.Cookie("__session"); err == nil {
		return cookie.Value
	}
	return ""
}

// SetSession attaches the verified identity to the request context.
func SetSession(c *gin.Context, userID, email string) {
	c.Set(ctxUserID, userID)
	c.Set(ctxEmail, email)
}

// UserID reads the authenticated user id off the request context.
func UserID(c *gin.Context) string {
	return c.GetString(ctxUserID)
}

// Email reads the authenticated user's email off the request context.
func Email(c *gin.Context) string {
	return c.GetString(ctxEmail)
}
