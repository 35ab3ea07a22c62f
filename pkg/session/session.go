package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/nmc-egov/civic-portal-api/pkg/config"
)

// ErrNoSession is returned when no session cookie is present or the stored
// session has expired.
var ErrNoSession = errors.New("no active session")

const keyPrefix = "session:"

// Data is the server-side session state. A citizen session carries Username
// (the citizen's mobile number); an admin session carries AdminUsername,
// IsAdmin and the last login timestamp.
type Data struct {
	Username      string    `json:"username,omitempty"`
	AdminUsername string    `json:"admin_username,omitempty"`
	IsAdmin       bool      `json:"is_admin,omitempty"`
	LastLogin     time.Time `json:"last_login,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type redisClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Manager stores sessions in Redis keyed by a random session ID delivered to
// the client in an httpOnly cookie.
type Manager struct {
	client     redisClient
	cookieName string
	ttl        time.Duration
	secure     bool
}

// NewManager builds a session manager from configuration.
func NewManager(client redisClient, cfg config.SessionConfig) *Manager {
	cookieName := cfg.CookieName
	if cookieName == "" {
		cookieName = "portal_sid"
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Manager{client: client, cookieName: cookieName, ttl: ttl, secure: cfg.CookieSecure}
}

// CookieName exposes the configured cookie name.
func (m *Manager) CookieName() string {
	return m.cookieName
}

// Create persists a new session and sets the session cookie on the response.
func (m *Manager) Create(c *gin.Context, data Data) (string, error) {
	data.CreatedAt = time.Now().UTC()
	payload, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("marshal session: %w", err)
	}

	sid := uuid.NewString()
	ctx := c.Request.Context()
	if err := m.client.Set(ctx, keyPrefix+sid, payload, m.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}

	c.SetCookie(m.cookieName, sid, int(m.ttl.Seconds()), "/", "", m.secure, true)
	return sid, nil
}

// Get loads the session referenced by the request's cookie.
func (m *Manager) Get(c *gin.Context) (*Data, error) {
	sid, err := c.Cookie(m.cookieName)
	if err != nil || sid == "" {
		return nil, ErrNoSession
	}

	raw, err := m.client.Get(c.Request.Context(), keyPrefix+sid).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	var data Data
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &data, nil
}

// Destroy removes the stored session and expires the cookie. It is a no-op
// when the request carries no session cookie.
func (m *Manager) Destroy(c *gin.Context) error {
	sid, err := c.Cookie(m.cookieName)
	if err != nil || sid == "" {
		return nil
	}

	if err := m.client.Del(c.Request.Context(), keyPrefix+sid).Err(); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}

	c.SetCookie(m.cookieName, "", -1, "/", "", m.secure, true)
	return nil
}
