package session

import (
	"time"

	"github.com/fintrack/ledger-service/internal/config"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	DefaultCookieName = "sessionId"
	DefaultTTL        = 7 * 24 * time.Hour
)

// Resolver reads and mints the opaque session token carried by the
// session cookie. Resolve never writes the response itself: when it
// mints a token the caller decides whether to apply SetCookie.
type Resolver struct {
	cookieName string
	ttl        time.Duration
}

func NewResolver(cfg *config.Config) *Resolver {
	name := cfg.Session.CookieName
	if name == "" {
		name = DefaultCookieName
	}

	ttl := time.Duration(cfg.Session.TTLDays) * 24 * time.Hour
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Resolver{cookieName: name, ttl: ttl}
}

func (r *Resolver) CookieName() string {
	return r.cookieName
}

// FromRequest returns the inbound session token, if any.
func (r *Resolver) FromRequest(c *fiber.Ctx) (string, bool) {
	id := c.Cookies(r.cookieName)
	return id, id != ""
}

// Resolve returns the inbound token as-is, or a freshly minted one
// with minted == true.
func (r *Resolver) Resolve(c *fiber.Ctx) (id string, minted bool) {
	if id, ok := r.FromRequest(c); ok {
		return id, false
	}
	return uuid.NewString(), true
}

// SetCookie instructs the response to carry the token on future
// requests, path-scoped to the whole service.
func (r *Resolver) SetCookie(c *fiber.Ctx, id string) {
	c.Cookie(&fiber.Cookie{
		Name:     r.cookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(r.ttl.Seconds()),
		HTTPOnly: true,
	})
}
