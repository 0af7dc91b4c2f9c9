// Package identity verifies bearer tokens issued by the identity provider
// and exposes the claims the API cares about. The API never issues tokens
// for end users; Issue exists for the seed tool and tests.
package identity

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the authenticated caller extracted from a verified token.
type Identity struct {
	Subject string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// Claims represents the JWT claims carried by provider tokens.
type Claims struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
	jwt.RegisteredClaims
}

// Verifier checks a raw bearer token and returns the caller's identity.
type Verifier interface {
	Verify(tokenString string) (*Identity, error)
}

// JWTVerifier validates HS256 tokens against a shared secret.
type JWTVerifier struct {
	secret []byte
	expiry time.Duration
}

// NewJWTVerifier creates a new JWT verifier.
func NewJWTVerifier(secret string, expiry time.Duration) *JWTVerifier {
	return &JWTVerifier{
		secret: []byte(secret),
		expiry: expiry,
	}
}

// Verify parses and validates a token, returning the caller's identity.
func (v *JWTVerifier) Verify(tokenString string) (*Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return v.secret, nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrSignatureInvalid
	}

	return &Identity{
		Subject: claims.Subject,
		Email:   claims.Email,
		Name:    claims.Name,
		Picture: claims.Picture,
	}, nil
}

// Issue creates a signed token for the given identity. Used by the seed
// tool and by tests.
func (v *JWTVerifier) Issue(id Identity) (string, error) {
	claims := &Claims{
		Email:   id.Email,
		Name:    id.Name,
		Picture: id.Picture,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.Subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(v.expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(v.secret)
}

// Ensure JWTVerifier implements Verifier interface
var _ Verifier = (*JWTVerifier)(nil)
