package auth

import "github.com/golang-jwt/jwt/v5"

// AccessTokenPayload captures the data available when minting a JWT.
// The customer email travels in the registered subject claim.
type AccessTokenPayload struct {
	Email string
	JTI   string
}

// AccessTokenClaims represents the typed JWT issued to clients.
type AccessTokenClaims struct {
	jwt.RegisteredClaims
}

// Email returns the subject claim.
func (c *AccessTokenClaims) Email() string {
	if c == nil {
		return ""
	}
	return c.Subject
}
