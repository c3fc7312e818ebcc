package jwt

import (
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
)

const emailClaim = "email"

// Claims are the owner claims carried by a session token.
type Claims struct {
	Subject string
	Email   string
}

func VerifyToken(jwtAuth *jwtauth.JWTAuth, token string) (*Claims, error) {
	t, err := jwtauth.VerifyToken(jwtAuth, token)
	if err != nil {
		return nil, err
	}
	if t.Subject() == "" {
		return nil, fmt.Errorf("token has no subject")
	}
	c := &Claims{Subject: t.Subject()}
	if v, ok := t.Get(emailClaim); ok {
		c.Email, _ = v.(string)
	}
	return c, nil
}

// NewTokenWithClaims creates a JWT valid for ttl carrying c.
func NewTokenWithClaims(jwtAuth *jwtauth.JWTAuth, ttl time.Duration, c Claims) (string, error) {
	claims := map[string]interface{}{
		"exp": time.Now().Add(ttl).Unix(),
	}
	if c.Subject != "" {
		claims["sub"] = c.Subject
	}
	if c.Email != "" {
		claims[emailClaim] = c.Email
	}
	_, ts, err := jwtAuth.Encode(claims)
	if err != nil {
		return ts, err
	}
	return ts, nil
}
