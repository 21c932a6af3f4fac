package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Service issues and verifies HMAC-signed session tokens. Sessions are
// stateless: everything the server needs is in the signed claims, so a
// forged or altered token fails signature verification.
type Service struct {
	hmac []byte
	ttl  time.Duration
}

func NewService(secret string, ttl time.Duration) *Service {
	return &Service{hmac: []byte(secret), ttl: ttl}
}

type Claims struct {
	Role       string `json:"role"`
	Name       string `json:"name"`
	RollNumber string `json:"roll_number,omitempty"`
	jwt.RegisteredClaims
}

func (s *Service) Issue(id Identity) (string, error) {
	now := time.Now()
	claims := &Claims{
		Role:       id.Role,
		Name:       id.Name,
		RollNumber: id.RollNumber,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.UserID,
			Issuer:    "examhall",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.hmac)
}

// Parse verifies the token and returns the identity it attests. Expired or
// tampered tokens fail; the caller is then anonymous.
func (s *Service) Parse(tokenStr string) (Identity, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return s.hmac, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, ErrInvalidCredentials
	}
	c, ok := token.Claims.(*Claims)
	if !ok {
		return Identity{}, ErrInvalidCredentials
	}
	return Identity{
		UserID:     c.Subject,
		Role:       c.Role,
		Name:       c.Name,
		RollNumber: c.RollNumber,
	}, nil
}

func (s *Service) TTL() time.Duration { return s.ttl }
