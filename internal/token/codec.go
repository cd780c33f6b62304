package token

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: malformed input,
// wrong signing method, or a signature that does not recompute. Callers
// get no finer distinction.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the token payload. Only the user id is encoded; tokens carry
// no expiry and there is no revocation — possession of a validly signed
// token is the sole authorization proof. Accepted limitation, see DESIGN.md.
type Claims struct {
	jwt.RegisteredClaims
	UserID int `json:"id"`
}

// Codec signs and verifies bearer tokens with a process-wide HMAC secret.
// The secret is injected at construction and never read from globals.
// Verify is pure: no I/O, no mutable state.
type Codec struct {
	secret []byte
}

func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

// Issue signs a token encoding the given user id.
func (c *Codec) Issue(userID int) (string, error) {
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{UserID: userID})
	signed, err := tk.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify recomputes the signature over the embedded payload and returns
// the encoded user id on match.
func (c *Codec) Verify(tokenString string) (int, error) {
	tk, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil {
		return 0, ErrInvalidToken
	}

	claims, ok := tk.Claims.(*Claims)
	if !ok || !tk.Valid {
		return 0, ErrInvalidToken
	}
	return claims.UserID, nil
}
