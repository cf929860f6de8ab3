package models

import "github.com/golang-jwt/jwt/v5"

// Token couples a parsed JWT with its signed string form and the user it
// belongs to. Returned by the auth service on login/register and after
// successful token validation.
type Token struct {
	// Token is the underlying jwt.Token object.
	Token *jwt.Token `json:"-"`

	// SignedString is the compact serialized token as sent to clients.
	SignedString string `json:"token"`

	// UserID is the subject claim extracted from the token.
	UserID string `json:"user_id,omitempty"`
}
