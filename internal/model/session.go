package model

import "github.com/golang-jwt/jwt/v5"

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "token"

// SessionClaims is the identity carried inside a signed session token.
// Once a token verifies, the embedded email is trusted as the caller's
// identity for the rest of request handling.
type SessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// SessionRequest is the identity payload posted to /jwt.
type SessionRequest struct {
	Email string `json:"email"`
}
