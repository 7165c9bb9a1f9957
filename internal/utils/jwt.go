package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoExpiry is returned by TokenExpiry when the token has no "exp" claim.
var ErrNoExpiry = errors.New("token has no exp claim")

// TokenExpiry reads the "exp" claim of a JWT without verifying its signature.
//
// The result is informational only: the remote authority remains the sole
// judge of token validity. Returns an error when tokenString is not a JWT or
// carries no expiry.
func TokenExpiry(tokenString string) (time.Time, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, err
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, err
	}
	if exp == nil {
		return time.Time{}, ErrNoExpiry
	}

	return exp.Time, nil
}
