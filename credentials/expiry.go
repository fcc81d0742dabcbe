package credentials

import (
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// ExpiryHint reads the exp claim from an unverified JWT. It is for display
// only; a token is valid only once the backend has accepted it.
func ExpiryHint(token string) (time.Time, bool) {
	if token == "" {
		return time.Time{}, false
	}
	claims := jwtlib.MapClaims{}
	if _, _, err := jwtlib.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
