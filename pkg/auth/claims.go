package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenClaims is the typed JWT issued to the admin client. The
// authenticated username travels in the registered subject claim.
type AccessTokenClaims struct {
	jwt.RegisteredClaims
}

// Username returns the subject claim.
func (c *AccessTokenClaims) Username() string {
	return c.Subject
}
