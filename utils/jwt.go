package utils

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	AccessTokenTTL = 8 * time.Hour
	InviteTokenTTL = 7 * 24 * time.Hour
	// refresh tokens carry no expiry
)

var ErrInvalidToken = errors.New("invalid token")

// TokenPayload is the identity carried by access and refresh tokens.
type TokenPayload struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// InvitePayload deliberately excludes role and password: the invited
// account is always created as a general user with no credential set.
type InvitePayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func accessSecret() []byte  { return []byte(os.Getenv("JWT_ACCESS_SECRET")) }
func refreshSecret() []byte { return []byte(os.Getenv("JWT_REFRESH_SECRET")) }
func inviteSecret() []byte  { return []byte(os.Getenv("JWT_INVITE_SECRET")) }

func GenerateAccessToken(id uint, name, email, role string) (string, error) {
	now := time.Now()
	claims := TokenPayload{
		ID: id, Name: name, Email: email, Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(AccessTokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(accessSecret())
}

func GenerateRefreshToken(id uint, name, email, role string) (string, error) {
	claims := TokenPayload{
		ID: id, Name: name, Email: email, Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(refreshSecret())
}

func GenerateInviteToken(name, email string) (string, error) {
	now := time.Now()
	claims := InvitePayload{
		Name: name, Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(InviteTokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(inviteSecret())
}

func VerifyAccessToken(token string) (*TokenPayload, error) {
	return verifyIdentity(token, accessSecret())
}

func VerifyRefreshToken(token string) (*TokenPayload, error) {
	return verifyIdentity(token, refreshSecret())
}

func VerifyInviteToken(token string) (*InvitePayload, error) {
	var claims InvitePayload
	parsed, err := jwt.ParseWithClaims(token, &claims, keyFunc(inviteSecret()))
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}

func verifyIdentity(token string, secret []byte) (*TokenPayload, error) {
	var claims TokenPayload
	parsed, err := jwt.ParseWithClaims(token, &claims, keyFunc(secret))
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}

func keyFunc(secret []byte) jwt.Keyfunc {
	return func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	}
}
