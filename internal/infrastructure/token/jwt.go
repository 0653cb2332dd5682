package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims are the JWT claims carried by a backend identity token.
type Claims struct {
	Admin bool `json:"admin"`
	jwt.RegisteredClaims
}

// Config holds JWT issuance configuration.
type Config struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

// Issuer signs identity tokens. Used by the backend side; the front end
// only inspects tokens.
type Issuer struct {
	cfg Config
}

// NewIssuer creates a new token issuer.
func NewIssuer(cfg Config) *Issuer {
	return &Issuer{cfg: cfg}
}

// Issue signs an HS256 token for the given username.
func (i *Issuer) Issue(username string, admin bool) (string, error) {
	now := time.Now()
	claims := Claims{
		Admin: admin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.cfg.Issuer,
			Subject:   username,
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.cfg.TTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(i.cfg.Secret))
}

// Verify parses and validates a signed token, returning its claims.
func (i *Issuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return []byte(i.cfg.Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// Inspect parses a token without verifying its signature. The front end
// does not hold the signing secret; it only reads expiry to decide
// whether a held identity is still worth presenting. Trust in the token's
// content is delegated to the backend, which verifies every call.
func Inspect(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// Expired reports whether the token carries an exp claim in the past.
// Malformed tokens are not reported as expired; accept/reject semantics
// stay with the backend.
func Expired(tokenString string, now time.Time) bool {
	claims, err := Inspect(tokenString)
	if err != nil || claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(now)
}
