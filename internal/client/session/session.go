// Package session owns the client's authentication state: the persisted
// credential token and the user identity derived from it. The two always
// change together — there is no way to end up with a user but no token or
// vice versa.
package session

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/splits-cli/internal/client/token"
	"github.com/dmitrijs2005/splits-cli/internal/logging"
)

// Controller is the process-wide session state machine. It is safe for
// concurrent use: a forced logout arriving from the transport layer while a
// login is in flight resolves to whichever transition ran last.
type Controller struct {
	store  Store
	logger logging.Logger

	mu   sync.Mutex
	user *token.User
}

func NewController(store Store, logger logging.Logger) *Controller {
	return &Controller{store: store, logger: logger.With("component", "session")}
}

// Initialize restores the session from the persisted store. An absent token
// leaves the session unauthenticated; an expired one is cleared via
// ForceLogout; a live one derives the user identity.
func (c *Controller) Initialize(ctx context.Context) error {
	tok, err := c.store.Token(ctx)
	if err != nil {
		return err
	}
	if tok == "" {
		return nil
	}
	if token.IsExpired(tok) {
		return c.ForceLogout(ctx)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.user = token.UserFromToken(tok)
	return nil
}

// Login persists the backend-issued token and derives the user from it.
// Expiry is deliberately not checked here: the token was just issued and is
// trusted at the moment of issuance.
func (c *Controller) Login(ctx context.Context, tok string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.store.Save(ctx, tok); err != nil {
		return err
	}
	c.user = token.UserFromToken(tok)
	return nil
}

// Logout clears the persisted token and the derived user. Idempotent.
func (c *Controller) Logout(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.store.Clear(ctx); err != nil {
		return err
	}
	c.user = nil
	return nil
}

// ForceLogout is Logout triggered by an observed authorization failure
// rather than a user action. It may fire at any time, including mid-request
// from an unrelated call; a 401 on a stale in-flight request still clears
// the current session (fail-closed).
func (c *Controller) ForceLogout(ctx context.Context) error {
	c.logger.Warn(ctx, "session expired, signing out")
	return c.Logout(ctx)
}

// User returns the identity derived from the current token, or nil when
// unauthenticated.
func (c *Controller) User() *token.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.user
}

// IsAuthenticated reports whether a user is currently signed in.
func (c *Controller) IsAuthenticated() bool {
	return c.User() != nil
}

// CurrentToken reads the persisted token. It satisfies the transport's
// TokenSource so every outgoing request sees the latest persisted value.
func (c *Controller) CurrentToken(ctx context.Context) (string, error) {
	return c.store.Token(ctx)
}
