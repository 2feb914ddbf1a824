package service

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"autobid-server/internal/model"
	"autobid-server/pkg/apierror"
)

// TokenService issues and verifies signed session tokens. It is
// stateless: revocation happens by clearing the client-held cookie, so a
// replayed token stays valid until it expires.
type TokenService struct {
	secret     []byte
	ttl        time.Duration
	production bool
}

func NewTokenService(secret string, ttl time.Duration, production bool) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl, production: production}
}

// Issue signs the identity into a token valid for the session TTL.
func (s *TokenService) Issue(email string) (string, error) {
	now := time.Now().UTC()
	claims := model.SessionClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", apierror.Internal(err)
	}
	return signed, nil
}

// Verify validates signature and expiry and returns the embedded
// identity. Every failure mode collapses to a single 401; callers branch
// on the error, not on callback nesting.
func (s *TokenService) Verify(tokenString string) (*model.SessionClaims, error) {
	if strings.TrimSpace(tokenString) == "" {
		return nil, apierror.Unauthenticated("no session token")
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &model.SessionClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apierror.Unauthenticated("invalid token signing method")
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, apierror.Unauthenticated("invalid or expired session token")
	}

	claims, ok := parsed.Claims.(*model.SessionClaims)
	if !ok || strings.TrimSpace(claims.Email) == "" {
		return nil, apierror.Unauthenticated("invalid session claims")
	}

	return claims, nil
}

// SessionCookie wraps a signed token in the HTTP-only session cookie.
// Production uses Secure + SameSite=None for the cross-site frontend;
// development stays Lax over plain HTTP.
func (s *TokenService) SessionCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     model.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.ttl.Seconds()),
		HttpOnly: true,
		Secure:   s.production,
		SameSite: s.sameSite(),
	}
}

// ClearedSessionCookie logs the client out by expiring the cookie.
func (s *TokenService) ClearedSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     model.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.production,
		SameSite: s.sameSite(),
	}
}

func (s *TokenService) sameSite() http.SameSite {
	if s.production {
		return http.SameSiteNoneMode
	}
	return http.SameSiteLaxMode
}
