package models

import "github.com/golang-jwt/jwt/v5"

// TokenClaims is the JWT claim set issued at login. On top of the registered
// claims it carries the actor's role names so that the authentication
// middleware can rebuild a Principal without a database round trip.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Roles holds the role names of the subject at token-issuance time.
	Roles []string `json:"roles,omitempty"`
}

// Token couples a parsed JWT with the identity extracted from its claims.
type Token struct {
	*jwt.Token

	// SignedString is the compact serialized form of the token.
	SignedString string

	// UserID is the subject claim of the token.
	UserID string

	// Roles are the role claims of the token, parsed into the closed Role set.
	// Unrecognised role names are dropped during parsing.
	Roles []Role
}

// Principal converts the token identity into an explicit acting principal.
func (t Token) Principal() Principal {
	return Principal{UserID: t.UserID, Roles: t.Roles}
}
