// Package token issues and verifies the signed bearer tokens used by the API.
// Tokens are stateless HS256 JWTs: there is no server-side session store and
// no revocation list — expiry is the only termination mechanism.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken covers bad signatures, malformed payloads and
	// unexpected signing algorithms.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken is returned for structurally valid tokens whose
	// expiry is in the past.
	ErrExpiredToken = errors.New("token expired")
)

// Claims is the identity a verified token resolves to. The role claim is a
// snapshot taken at issue time; authorization decisions re-check the live
// user record instead of trusting it.
type Claims struct {
	Username string
	Role     string
}

type jwtClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Service signs and verifies bearer tokens with a shared HMAC secret.
type Service struct {
	secret []byte
}

func NewService(secret string) *Service {
	return &Service{secret: []byte(secret)}
}

// Issue creates a signed token for the given subject with an absolute expiry
// of now+ttl. Pure computation — no store access, no side effects.
func (s *Service) Issue(username, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwtClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(s.secret)
}

// Verify decodes and checks signature and expiry. It never consults the user
// store; callers that need the live role must re-fetch the subject themselves.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	claims := &jwtClaims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if !tok.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return &Claims{Username: claims.Subject, Role: claims.Role}, nil
}
