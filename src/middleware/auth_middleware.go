package middleware

import (
	"context"
	"net/http"
	"strings"

	"fintrack-server/src/apperr"
	"fintrack-server/src/util"
)

// JWTAuthMiddleware gates the transaction routes. A missing or
// malformed Authorization header is 401; a bearer token that fails
// verification (bad signature, expired) is 403. Valid claims land in
// the request context for the handlers.
func JWTAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			apperr.WriteError(w, apperr.New(apperr.Unauthorized, "Unauthorized request"))
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if tokenString == "" {
			apperr.WriteError(w, apperr.New(apperr.Unauthorized, "Unauthorized request"))
			return
		}

		claims, err := util.ParseAccessToken(tokenString)
		if err != nil {
			apperr.WriteError(w, apperr.New(apperr.Forbidden, "Forbidden"))
			return
		}

		userID, ok := claims["user_id"].(float64)
		if !ok {
			apperr.WriteError(w, apperr.New(apperr.Forbidden, "Forbidden"))
			return
		}
		username, _ := claims["username"].(string)

		ctx := context.WithValue(r.Context(), "user_id", int64(userID))
		ctx = context.WithValue(ctx, "username", username)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
