package util

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour

	// Cookie carrying the refresh token, named after the upstream API.
	RefreshCookieName = "jwt"
)

func GenerateAccessToken(userID int64, username string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  userID,
		"username": username,
		"exp":      time.Now().Add(AccessTokenTTL).Unix(),
	})
	return token.SignedString([]byte(os.Getenv("ACCESS_TOKEN_SECRET")))
}

func GenerateRefreshToken(userID int64) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(RefreshTokenTTL).Unix(),
	})
	return token.SignedString([]byte(os.Getenv("REFRESH_TOKEN_SECRET")))
}

func ParseAccessToken(tokenString string) (jwt.MapClaims, error) {
	return parseToken(tokenString, os.Getenv("ACCESS_TOKEN_SECRET"))
}

func ParseRefreshToken(tokenString string) (jwt.MapClaims, error) {
	return parseToken(tokenString, os.Getenv("REFRESH_TOKEN_SECRET"))
}

func parseToken(tokenString, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("invalid signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}
