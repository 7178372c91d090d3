package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"fintrack-server/src/apperr"
	db "fintrack-server/src/db/sql"
	"fintrack-server/src/models"
	"fintrack-server/src/util"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

func Register(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode register request body: %v", err)
			apperr.WriteError(w, apperr.New(apperr.Validation, "invalid request"))
			return
		}

		req.Email = util.NormalizeEmail(req.Email)
		req.Username = strings.TrimSpace(req.Username)

		if req.Email == "" || req.Username == "" || strings.TrimSpace(req.Password) == "" {
			log.Printf("ERROR: Registration rejected, missing fields - Username: %s", req.Username)
			apperr.WriteError(w, apperr.New(apperr.Validation, "All fields are required"))
			return
		}

		if !util.ValidateEmail(req.Email) {
			log.Printf("ERROR: Email validation failed during registration - Email: %s", req.Email)
			apperr.WriteError(w, apperr.New(apperr.Validation, "invalid email format"))
			return
		}

		if !util.ValidateUsername(req.Username) {
			log.Printf("ERROR: Username validation failed during registration - Username: %s", req.Username)
			apperr.WriteError(w, apperr.New(apperr.Validation, "username must be between 3 and 30 characters"))
			return
		}

		if !util.ValidatePassword(req.Password) {
			log.Printf("ERROR: Password validation failed during registration - Username: %s", req.Username)
			apperr.WriteError(w, apperr.New(apperr.Validation, "password must be at least 8 characters"))
			return
		}

		// One lookup matching either unique field
		if _, err := db.GetUserByUsernameOrEmail(r.Context(), pool, req.Username, req.Email); err == nil {
			log.Printf("ERROR: Registration failed, email or username already exists - Email: %s, Username: %s", req.Email, req.Username)
			apperr.WriteError(w, apperr.New(apperr.Duplicate, "User with email or username already exists"))
			return
		} else if !errors.Is(err, db.ErrUserNotFound) {
			log.Printf("ERROR: Failed to check existing user %s: %v", req.Username, err)
			apperr.WriteError(w, apperr.New(apperr.Internal, "Something went wrong while registering the user"))
			return
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("ERROR: Failed to hash password for user %s: %v", req.Username, err)
			apperr.WriteError(w, apperr.New(apperr.Internal, "Something went wrong while registering the user"))
			return
		}

		user, err := db.CreateUser(r.Context(), pool, req, string(hashedPassword))
		if err != nil {
			// Handle duplicate key from a concurrent registration
			if db.IsUniqueViolation(err) {
				log.Printf("ERROR: Registration failed, email or username already exists - Email: %s, Username: %s", req.Email, req.Username)
				apperr.WriteError(w, apperr.New(apperr.Duplicate, "User with email or username already exists"))
				return
			}
			log.Printf("ERROR: Failed to create user %s: %v", req.Username, err)
			apperr.WriteError(w, apperr.New(apperr.Internal, "Something went wrong while registering the user"))
			return
		}

		log.Printf("INFO: Successful registration - User: %s, ID: %d", user.Username, user.ID)

		writeJSON(w, http.StatusCreated, map[string]interface{}{
			"success": true,
			"message": "User registered Successfully",
		})
	}
}

func Login(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode login request body: %v", err)
			apperr.WriteError(w, apperr.New(apperr.Validation, "invalid request"))
			return
		}

		if req.Email == "" || req.Password == "" {
			apperr.WriteError(w, apperr.New(apperr.Validation, "All fields are required"))
			return
		}

		user, err := db.GetUserByEmail(r.Context(), pool, util.NormalizeEmail(req.Email))
		if err != nil {
			log.Printf("ERROR: Failed to find user during login - Email: %s: %v", req.Email, err)
			apperr.WriteError(w, lookupUserError(err, apperr.NotFound, "User does not exist"))
			return
		}

		if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(req.Password)); err != nil {
			log.Printf("ERROR: Invalid password attempt for email %s from IP %s", req.Email, r.RemoteAddr)
			apperr.WriteError(w, apperr.New(apperr.Unauthorized, "Invalid user credentials"))
			return
		}

		accessToken, err := util.GenerateAccessToken(user.ID, user.Username)
		if err != nil {
			log.Printf("ERROR: Failed to generate access token for user %s: %v", user.Username, err)
			apperr.WriteError(w, apperr.New(apperr.Internal, "Something went wrong while generating refresh and access token"))
			return
		}
		refreshToken, err := util.GenerateRefreshToken(user.ID)
		if err != nil {
			log.Printf("ERROR: Failed to generate refresh token for user %s: %v", user.Username, err)
			apperr.WriteError(w, apperr.New(apperr.Internal, "Something went wrong while generating refresh and access token"))
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     util.RefreshCookieName,
			Value:    refreshToken,
			Path:     "/",
			HttpOnly: true,
			MaxAge:   int(util.RefreshTokenTTL.Seconds()),
		})

		log.Printf("INFO: Successful login - User: %s, ID: %d", user.Username, user.ID)

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success":     true,
			"message":     "User logged In Successfully",
			"accessToken": accessToken,
		})
	}
}

func Refresh(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(util.RefreshCookieName)
		if err != nil {
			apperr.WriteError(w, apperr.New(apperr.Unauthorized, "Unauthorized request"))
			return
		}

		claims, err := util.ParseRefreshToken(cookie.Value)
		if err != nil {
			log.Printf("ERROR: Invalid refresh token from IP %s: %v", r.RemoteAddr, err)
			apperr.WriteError(w, apperr.New(apperr.Forbidden, "Forbidden"))
			return
		}

		userID, ok := claims["user_id"].(float64)
		if !ok {
			apperr.WriteError(w, apperr.New(apperr.Forbidden, "Forbidden"))
			return
		}

		user, err := db.GetUserByID(r.Context(), pool, int64(userID))
		if err != nil {
			log.Printf("ERROR: Refresh for unknown user id %d: %v", int64(userID), err)
			apperr.WriteError(w, lookupUserError(err, apperr.Unauthorized, "Invalid Access Token"))
			return
		}

		accessToken, err := util.GenerateAccessToken(user.ID, user.Username)
		if err != nil {
			log.Printf("ERROR: Failed to generate access token for user %s: %v", user.Username, err)
			apperr.WriteError(w, apperr.New(apperr.Internal, "Something went wrong while generating refresh and access token"))
			return
		}

		log.Printf("INFO: Refreshed access token - User: %s, ID: %d", user.Username, user.ID)

		writeJSON(w, http.StatusOK, map[string]string{
			"accessToken": accessToken,
		})
	}
}

// lookupUserError keeps "no such user" distinct from infrastructure
// failures: only ErrUserNotFound gets the caller's kind and message.
func lookupUserError(err error, kind apperr.Kind, message string) *apperr.Error {
	if errors.Is(err, db.ErrUserNotFound) {
		return apperr.New(kind, message)
	}
	return apperr.New(apperr.Internal, "Internal server error")
}

// Logout clears the refresh cookie. Without a cookie it is a no-op
// no-content response, so repeated logouts are harmless.
func Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := r.Cookie(util.RefreshCookieName); err != nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     util.RefreshCookieName,
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			MaxAge:   -1,
		})

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"message": "Cookie cleared",
		})
	}
}
