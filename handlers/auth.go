package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"moodlog/store"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

func getJWTSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

type Claims struct {
	UserID int `json:"user_id"`
	jwt.RegisteredClaims
}

type authRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// getUserID reads the id RequireAuth stored in the request context.
func getUserID(r *http.Request) int {
	return r.Context().Value("userID").(int)
}

func Register(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	json.NewDecoder(r.Body).Decode(&req)

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.Password == "" {
		http.Error(w, "Name and password are required", http.StatusBadRequest)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "Could not hash password", http.StatusInternalServerError)
		return
	}

	user, err := store.CreateUser(req.Name, string(hash))
	if errors.Is(err, store.ErrNameTaken) {
		http.Error(w, "An account with this username already exists.", http.StatusConflict)
		return
	}
	if err != nil {
		http.Error(w, "Could not create user", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]any{
		"user_id": user.ID,
		"name":    user.Name,
	})
}

func Login(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	json.NewDecoder(r.Body).Decode(&req)

	req.Name = strings.TrimSpace(req.Name)
	user, err := store.FindUserByName(req.Name)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "No account found with that username.", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Could not look up user", http.StatusInternalServerError)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		http.Error(w, "Incorrect password. Please try again.", http.StatusUnauthorized)
		return
	}

	expiresAt := time.Now().Add(24 * time.Hour)
	claims := Claims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(getJWTSecret())
	if err != nil {
		http.Error(w, "Token generation failed", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]any{
		"user_id": user.ID,
		"name":    user.Name,
		"token":   signed,
	})
}
