package api

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/raushankrgupta/tonies-catalog/config"
	"github.com/raushankrgupta/tonies-catalog/utils"
	"golang.org/x/crypto/bcrypt"
)

type contextKey string

const adminEmailKey contextKey = "admin_email"

// LoginRequest represents the payload for admin login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginHandler checks the admin credentials and issues a session token
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Login API]")

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		utils.RespondError(w, &logMessageBuilder, "Email and Password are required", http.StatusBadRequest)
		return
	}

	if config.AdminEmail == "" || config.AdminPasswordHash == "" {
		utils.RespondError(w, &logMessageBuilder, "Admin login is not configured", http.StatusServiceUnavailable)
		return
	}

	if err := checkAdminCredentials(email, req.Password); err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Login rejected: %v", err))
		utils.RespondError(w, nil, "Invalid email or password", http.StatusUnauthorized)
		return
	}

	token, err := utils.GenerateToken(email)
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Failed to generate token: %v", err), http.StatusInternalServerError)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, "Login successful")
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Login successful",
		"token":   token,
	})
}

func checkAdminCredentials(email, password string) error {
	// bcrypt runs for unknown emails too
	hashErr := bcrypt.CompareHashAndPassword([]byte(config.AdminPasswordHash), []byte(password))
	if subtle.ConstantTimeCompare([]byte(email), []byte(config.AdminEmail)) != 1 {
		return errors.New("unknown email")
	}
	if hashErr != nil {
		return errors.New("wrong password")
	}
	return nil
}

// AuthMiddleware rejects requests without a valid admin bearer token
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(tokenString) == "" {
			utils.RespondError(w, nil, "Authorization required", http.StatusUnauthorized)
			return
		}

		email, err := utils.ValidateToken(strings.TrimSpace(tokenString))
		if err != nil {
			fmt.Printf("[Auth] token rejected: %v\n", err)
			utils.RespondError(w, nil, "Invalid or expired token", http.StatusUnauthorized)
			return
		}
		if email != config.AdminEmail {
			utils.RespondError(w, nil, "Forbidden", http.StatusForbidden)
			return
		}

		ctx := context.WithValue(r.Context(), adminEmailKey, email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetAdminFromContext returns the email of the authenticated admin
func GetAdminFromContext(ctx context.Context) (string, error) {
	email, ok := ctx.Value(adminEmailKey).(string)
	if !ok || email == "" {
		return "", errors.New("admin not found in context")
	}
	return email, nil
}

// logAdmin records the acting admin in the request log
func logAdmin(r *http.Request, logMessageBuilder *strings.Builder) {
	email, err := GetAdminFromContext(r.Context())
	if err != nil {
		utils.AddToLogMessage(logMessageBuilder, "Warning: admin not found in context")
		return
	}
	utils.AddToLogMessage(logMessageBuilder, fmt.Sprintf("Admin: %s", email))
}
