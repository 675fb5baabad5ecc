package jwt

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/hkdf"
)

const sessionKeyInfo = "premium-backend session v1"

var ErrInvalidToken = errors.New("invalid token")

// SessionClaims is the payload of the session cookie.
type SessionClaims struct {
	IsPremium         bool   `json:"is_premium,omitempty"`
	CheckoutSessionID string `json:"checkout_session_id,omitempty"`
	jwt.RegisteredClaims
}

// Signer issues and validates HS256 session tokens.
type Signer struct {
	key    []byte
	maxAge time.Duration
	now    func() time.Time
}

// NewSigner derives the signing key from secret so the raw secret never signs tokens directly.
func NewSigner(secret string, maxAge time.Duration) (*Signer, error) {
	if secret == "" {
		return nil, errors.New("session secret is empty")
	}

	key := make([]byte, 32)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(sessionKeyInfo)), key); err != nil {
		return nil, fmt.Errorf("failed to derive session key: %w", err)
	}

	return &Signer{
		key:    key,
		maxAge: maxAge,
		now:    time.Now,
	}, nil
}

func (s *Signer) MaxAge() time.Duration {
	return s.maxAge
}

func (s *Signer) GenerateToken(claims SessionClaims) (string, error) {
	now := s.now()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.maxAge))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.key)
}

func (s *Signer) ValidateToken(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.key, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
