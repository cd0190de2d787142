package security

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the session token payload: the standard claims plus the
// holder's role. The user ID travels in the subject claim
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// Identity is what a verified token asserts about the caller
type Identity struct {
	UserID string
	Role   string
}

// MakeToken mints a signed HS256 session token for a user. Tokens are
// stateless and can't be revoked before ttl elapses
func MakeToken(userID, role string, secret []byte, ttl time.Duration) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
		Role: role,
	})

	return t.SignedString(secret)
}

// VerifyToken checks the signature and expiry of a session token and
// returns the identity it asserts. Side-effect free, safe to call on
// every request
func VerifyToken(tokenStr string, secret []byte) (*Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
		}

		return secret, nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	return &Identity{
		UserID: claims.Subject,
		Role:   claims.Role,
	}, nil
}
