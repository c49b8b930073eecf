// Package session manages server-side cookie sessions.
//
// Sessions are persisted in the "sessions" table via scs/postgresstore so
// they survive restarts and are shared across instances. The core reads and
// writes exactly three fields: authenticated, user_id, and role. The session
// token is regenerated on every login to prevent session fixation.
package session

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/alexedwards/scs/postgresstore"
	"github.com/alexedwards/scs/v2"
	"github.com/flashdeck/flashdeck/internal/config"
	"github.com/flashdeck/flashdeck/internal/logger"
	"github.com/flashdeck/flashdeck/models"
)

// Session field names. Kept stable; existing session rows reference them.
const (
	authenticatedKey = "authenticated"
	userIDKey        = "user_id"
	roleKey          = "role"
)

// Manager wraps *scs.SessionManager with the small typed API the handlers
// use. The embedded manager's LoadAndSave middleware must be installed ahead
// of every route that touches the session.
type Manager struct {
	*scs.SessionManager
}

// NewManager constructs a postgres-backed session manager.
//
// The cookie is HttpOnly and SameSite=Strict; the Secure flag and idle
// lifetime come from configuration.
func NewManager(db *sql.DB, cfg config.Session, log *logger.Logger) *Manager {
	sm := scs.New()
	sm.Store = postgresstore.New(db)
	sm.Lifetime = cfg.Lifetime
	sm.Cookie.HttpOnly = true
	sm.Cookie.Secure = cfg.SecureCookies
	sm.Cookie.SameSite = http.SameSiteStrictMode

	log.Info().Dur("lifetime", cfg.Lifetime).Bool("secure_cookies", cfg.SecureCookies).Msg("session manager created")

	return &Manager{SessionManager: sm}
}

// NewMemoryManager constructs a session manager backed by scs's in-memory
// store. Used in tests; not suitable for production.
func NewMemoryManager() *Manager {
	return &Manager{SessionManager: scs.New()}
}

// LoginAs marks the current session authenticated for the given user.
//
// The session token is regenerated first (invalidating the old identifier)
// so that an identifier fixed before authentication never survives login.
func (m *Manager) LoginAs(ctx context.Context, userID int64, role string) error {
	if err := m.RenewToken(ctx); err != nil {
		return err
	}

	m.Put(ctx, authenticatedKey, true)
	m.Put(ctx, userIDKey, userID)
	m.Put(ctx, roleKey, role)

	return nil
}

// IsAuthenticated reports whether the current session has completed a login.
func (m *Manager) IsAuthenticated(ctx context.Context) bool {
	return m.GetBool(ctx, authenticatedKey)
}

// UserID returns the user id bound to the current session, with ok=false
// for anonymous sessions.
func (m *Manager) UserID(ctx context.Context) (int64, bool) {
	if !m.Exists(ctx, userIDKey) {
		return 0, false
	}

	return m.GetInt64(ctx, userIDKey), true
}

// Role returns the role bound to the current session. Anonymous sessions
// resolve to the literal role "public"; this is a derived view, never
// persisted.
func (m *Manager) Role(ctx context.Context) string {
	if !m.Exists(ctx, roleKey) {
		return models.RolePublic
	}

	return m.GetString(ctx, roleKey)
}
