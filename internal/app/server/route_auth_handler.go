package server

import (
	"encoding/json"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"netsum/internal/api/dto"
	"netsum/internal/auth"
	"netsum/internal/config"
)

func loginUser(w http.ResponseWriter, r *http.Request) {
	cfg := config.GetConfig()
	if cfg.Auth.PasswordHash == "" {
		writeError(w, "Login is disabled", http.StatusNotFound)
		return
	}

	var credentials dto.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		writeError(w, "Invalid request", http.StatusBadRequest)
		return
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(cfg.Auth.PasswordHash), []byte(credentials.Password)); err != nil {
		writeError(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := auth.GenerateJWT()
	if err != nil {
		writeError(w, "Failed to issue token", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}
