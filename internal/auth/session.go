package auth

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"jobtrail/internal/models"
)

// SessionTTL is how long a login stays valid.
const SessionTTL = 24 * time.Hour

const cookieName = "token"

// Claims defines the session token claims structure.
type Claims struct {
	AccountID string `json:"accountId"`
	Username  string `json:"username"`
	jwt.RegisteredClaims
}

// Identity is the authenticated caller resolved from a session, threaded
// through the request context into handlers.
type Identity struct {
	AccountID string
	Username  string
}

type contextKey string

const identityKey = contextKey("identity")

// FromContext returns the authenticated identity placed by Middleware.
// ok is false for anonymous requests.
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}

// Sessions issues and validates session cookies. It is constructed once in
// main and passed to the router; no package-level key.
type Sessions struct {
	key    []byte
	secure bool
}

// NewSessions creates a session manager signing with key. secure controls
// the cookie Secure flag (on in production).
func NewSessions(key []byte, secure bool) *Sessions {
	return &Sessions{key: key, secure: secure}
}

// Issue creates a new signed session token for an account.
func (s *Sessions) Issue(account models.Account) (string, error) {
	claims := &Claims{
		AccountID: account.ID,
		Username:  account.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(SessionTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.key)
}

// Validate parses and validates a session token string.
func (s *Sessions) Validate(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return s.key, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// SetCookie establishes the session cookie on the response.
func (s *Sessions) SetCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    token,
		Expires:  time.Now().Add(SessionTTL),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
	})
}

// ClearCookie ends the session by expiring the cookie.
func (s *Sessions) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
	})
}

// Middleware creates a middleware for protecting routes. Anonymous or
// invalid-token requests are redirected to the login page.
func (s *Sessions) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}

			claims, err := s.Validate(cookie.Value)
			if err != nil {
				// Stale or tampered cookie: drop it and start over
				s.ClearCookie(w)
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}

			identity := Identity{AccountID: claims.AccountID, Username: claims.Username}
			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
