package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/parisstyle/PS-SalonService/internal/domain"
)

// ErrBadToken is returned for malformed, expired or mis-signed tokens
var ErrBadToken = errors.New("auth: invalid token")

// HashPassword hashes a plaintext password with bcrypt
func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(b), err
}

// CheckPassword reports whether pw matches the stored bcrypt hash
func CheckPassword(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}

// Claims carried by an access token
type Claims struct {
	UserID    int64  `json:"uid"`
	Role      string `json:"role"`
	StylistID *int64 `json:"stylist_id,omitempty"`
	jwt.RegisteredClaims
}

// MakeToken issues an access token for the principal
func MakeToken(p domain.Principal, secret string, ttl time.Duration) (string, error) {
	c := Claims{
		UserID:    p.UserID,
		Role:      string(p.Role),
		StylistID: p.StylistID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(secret))
}

// ParseToken verifies a token and returns the principal it carries
func ParseToken(raw, secret string) (domain.Principal, error) {
	tok, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (any, error) {
		// block alg confusion
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrBadToken
		}
		return []byte(secret), nil
	})
	if err != nil {
		return domain.Principal{}, ErrBadToken
	}

	c, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return domain.Principal{}, ErrBadToken
	}

	role := domain.Role(c.Role)
	if role != domain.RoleAdmin && role != domain.RoleStylist && role != domain.RoleClient {
		return domain.Principal{}, ErrBadToken
	}

	return domain.Principal{
		UserID:    c.UserID,
		Role:      role,
		StylistID: c.StylistID,
	}, nil
}
