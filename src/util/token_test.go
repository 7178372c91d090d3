package util

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func setSecrets(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "access-secret-for-tests")
	t.Setenv("REFRESH_TOKEN_SECRET", "refresh-secret-for-tests")
}

func TestAccessTokenRoundTrip(t *testing.T) {
	setSecrets(t)

	tokenString, err := GenerateAccessToken(42, "alice")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	claims, err := ParseAccessToken(tokenString)
	if err != nil {
		t.Fatalf("ParseAccessToken: %v", err)
	}
	if got := claims["user_id"].(float64); int64(got) != 42 {
		t.Errorf("user_id = %v, want 42", got)
	}
	if got := claims["username"].(string); got != "alice" {
		t.Errorf("username = %q, want alice", got)
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	setSecrets(t)

	tokenString, err := GenerateRefreshToken(7)
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}

	claims, err := ParseRefreshToken(tokenString)
	if err != nil {
		t.Fatalf("ParseRefreshToken: %v", err)
	}
	if got := claims["user_id"].(float64); int64(got) != 7 {
		t.Errorf("user_id = %v, want 7", got)
	}
}

func TestAccessTokenRejectedByRefreshSecret(t *testing.T) {
	setSecrets(t)

	tokenString, err := GenerateAccessToken(1, "bob")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	if _, err := ParseRefreshToken(tokenString); err == nil {
		t.Error("token signed with the access secret must not verify as a refresh token")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	setSecrets(t)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  int64(1),
		"username": "bob",
		"exp":      time.Now().Add(-time.Minute).Unix(),
	})
	tokenString, err := expired.SignedString([]byte("access-secret-for-tests"))
	if err != nil {
		t.Fatalf("sign expired token: %v", err)
	}

	if _, err := ParseAccessToken(tokenString); err == nil {
		t.Error("expired token must be rejected")
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	setSecrets(t)

	if _, err := ParseAccessToken("not.a.token"); err == nil {
		t.Error("garbage token must be rejected")
	}
}
