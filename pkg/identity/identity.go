package identity

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	errorvalues "github.com/mirel/fitcoach/internal/error_values"
)

// Claims carried by tokens the identity provider issues. The engine never
// issues tokens itself, it only verifies them.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

type Verifier struct {
	secret []byte
}

func New(secret string) *Verifier {
	return &Verifier{
		secret: []byte(secret),
	}
}

func (v *Verifier) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, errors.New("token parsing error: " + err.Error())
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errorvalues.ErrInvalidToken
	}
	return claims, nil
}
