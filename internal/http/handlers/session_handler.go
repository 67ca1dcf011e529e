// Session HTTP handlers.
//
// This file exposes the authentication endpoints:
//   - POST   /session    (log in)
//   - DELETE /session    (log out)
//   - GET    /session    (current session state)
//   - POST   /register   (create an account)
//
// Logging in exchanges credentials for a bearer token and identity, stores
// both, and primes the cart quantity badge. Logging out clears all of it in
// one synchronous step; by the time the response is written the badge reads
// zero.
package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/duckshop/go-storefront/internal/domain"
	"github.com/duckshop/go-storefront/internal/shop"
)

//
// Service contracts (context-aware)
//

// AuthClient defines the remote authentication calls consumed by the session
// handlers. Satisfied by *shop.Client; tests provide fakes.
type AuthClient interface {
	// Login exchanges credentials for a token and identity.
	Login(ctx context.Context, creds shop.Credentials) (shop.LoginResult, error)
	// Register creates a new account.
	Register(ctx context.Context, reg shop.Registration) error
}

// SessionManager defines the local session lifecycle consumed by HTTP
// handlers. Implementations must be safe for concurrent use.
type SessionManager interface {
	// Login stores the identity and credential as the current session.
	Login(ctx context.Context, user domain.User, token string) error
	// Logout clears the session and runs logout hooks before returning.
	Logout(ctx context.Context)
	// IsAuthenticated reports whether a session is active.
	IsAuthenticated() bool
	// Current returns the active session, zero when logged out.
	Current() domain.Session
}

// CartBadge exposes the cart quantity badge consumed by session views.
type CartBadge interface {
	// Refresh re-fetches the cart and recomputes the badge.
	Refresh(ctx context.Context) (int, error)
	// Badge returns the last computed total quantity.
	Badge() int
}

//
// DTOs
//

// LoginRequest is the JSON payload for logging in.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"duck@example.com"`
	Password string `json:"password" binding:"required,min=1" example:"quack"`
}

// RegisterRequest is the JSON payload for creating an account.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=255" example:"Duck"`
	Email    string `json:"email" binding:"required,email" example:"duck@example.com"`
	Password string `json:"password" binding:"required,min=6" example:"quackquack"`
}

// SessionView describes the current session to the rendering layer.
type SessionView struct {
	Authenticated bool         `json:"authenticated"`
	User          *domain.User `json:"user,omitempty"`
	CartCount     int          `json:"cart_count"`
}

//
// Handler wiring
//

// SessionHandlers groups the authentication endpoints.
type SessionHandlers struct {
	auth     AuthClient
	sessions SessionManager
	cart     CartBadge
}

// NewSessionHandlers constructs session handlers bound to the given
// collaborators.
func NewSessionHandlers(auth AuthClient, sessions SessionManager, cart CartBadge) *SessionHandlers {
	return &SessionHandlers{auth: auth, sessions: sessions, cart: cart}
}

// Login godoc
// @ID          login
// @Summary     Log in
// @Description Exchanges credentials for a session. On success the session is stored and the cart badge is primed.
// @Tags        Session
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.LoginRequest  true  "Credentials"
//
// @Success     201  {object}  handlers.SessionView
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse  "Invalid credentials"
// @Failure     502  {object}  handlers.ErrorResponse  "Shop API unreachable"
// @Router      /session [post]
func (h *SessionHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeValidation, "email and password are required")
		return
	}

	ctx := c.Request.Context()
	res, err := h.auth.Login(ctx, shop.Credentials{
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
	})
	if err != nil {
		failFromError(c, err)
		return
	}

	if err := h.sessions.Login(ctx, res.User, res.Token); err != nil {
		fail(c, http.StatusBadGateway, ErrCodeUpstream, "login response missing token")
		return
	}

	// Prime the badge. A failed refresh does not undo the login; the badge
	// stays at its previous value until the next successful fetch.
	badge, err := h.cart.Refresh(ctx)
	if err != nil {
		badge = h.cart.Badge()
	}

	user := res.User
	ok(c, http.StatusCreated, SessionView{
		Authenticated: true,
		User:          &user,
		CartCount:     badge,
	})
}

// Logout godoc
// @ID          logout
// @Summary     Log out
// @Description Clears the stored session. The cart badge reads zero before this returns.
// @Tags        Session
// @Produce     json
//
// @Success     204  {string}  string  "No Content"
// @Router      /session [delete]
func (h *SessionHandlers) Logout(c *gin.Context) {
	h.sessions.Logout(c.Request.Context())
	noContent(c)
}

// CurrentSession godoc
// @ID          currentSession
// @Summary     Current session state
// @Description Returns the authenticated identity and cart badge, or an anonymous view.
// @Tags        Session
// @Produce     json
//
// @Success     200  {object}  handlers.SessionView
// @Router      /session [get]
func (h *SessionHandlers) CurrentSession(c *gin.Context) {
	sess := h.sessions.Current()
	ok(c, http.StatusOK, SessionView{
		Authenticated: sess.Authenticated(),
		User:          sess.User,
		CartCount:     h.cart.Badge(),
	})
}

// Register godoc
// @ID          register
// @Summary     Create an account
// @Description Registers a new shopper. Does not log in; follow with POST /session.
// @Tags        Session
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.RegisterRequest  true  "Account details"
//
// @Success     204  {string}  string  "No Content"
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     502  {object}  handlers.ErrorResponse  "Shop API unreachable"
// @Router      /register [post]
func (h *SessionHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeValidation, "name, email and password are required")
		return
	}

	if err := h.auth.Register(c.Request.Context(), shop.Registration{
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
	}); err != nil {
		failFromError(c, err)
		return
	}
	noContent(c)
}
