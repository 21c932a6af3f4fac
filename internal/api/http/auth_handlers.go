package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/examhall/examhall/internal/auth"
	"github.com/examhall/examhall/internal/exam"
)

type registerReq struct {
	Name       string `json:"name"`
	RollNumber string `json:"roll_number"`
	Password   string `json:"password"`
}

// POST /api/register
func RegisterHandler(store exam.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErrMsg(w, http.StatusBadRequest, "bad json")
			return
		}
		req.Name = strings.TrimSpace(req.Name)
		req.RollNumber = strings.TrimSpace(req.RollNumber)
		if req.Name == "" || req.RollNumber == "" || req.Password == "" {
			writeErrMsg(w, http.StatusBadRequest, "all fields are required")
			return
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
		if err != nil {
			writeError(w, err)
			return
		}
		u, err := store.CreateUser(r.Context(), exam.User{
			Name:         req.Name,
			RollNumber:   req.RollNumber,
			PasswordHash: string(hash),
			Role:         exam.RoleStudent,
			CreatedAt:    time.Now().Unix(),
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{
			"message": "Registration successful! Please login.",
			"user_id": u.ID,
		})
	}
}

type loginReq struct {
	RollNumber string `json:"roll_number"`
	Password   string `json:"password"`
}

// POST /api/login
func LoginHandler(store exam.Store, sessions *auth.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErrMsg(w, http.StatusBadRequest, "bad json")
			return
		}
		req.RollNumber = strings.TrimSpace(req.RollNumber)
		if req.RollNumber == "" || req.Password == "" {
			writeErrMsg(w, http.StatusBadRequest, "roll number and password required")
			return
		}
		u, err := store.UserByRoll(r.Context(), req.RollNumber)
		if err != nil {
			if errors.Is(err, exam.ErrUserNotFound) {
				writeErrMsg(w, http.StatusUnauthorized, "invalid roll number or password")
				return
			}
			writeError(w, err)
			return
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
			writeErrMsg(w, http.StatusUnauthorized, "invalid roll number or password")
			return
		}
		if err := issueSession(w, sessions, auth.Identity{
			UserID:     u.ID,
			Role:       u.Role,
			Name:       u.Name,
			RollNumber: u.RollNumber,
		}); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{
			"message":     "Login successful",
			"role":        u.Role,
			"name":        u.Name,
			"roll_number": u.RollNumber,
		})
	}
}

type adminLoginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /api/admin_login: the administrator is configured, not a users row.
func AdminLoginHandler(sessions *auth.Service, adminUser, adminPassHash string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req adminLoginReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErrMsg(w, http.StatusBadRequest, "bad json")
			return
		}
		if strings.TrimSpace(req.Username) != adminUser ||
			bcrypt.CompareHashAndPassword([]byte(adminPassHash), []byte(req.Password)) != nil {
			writeErrMsg(w, http.StatusUnauthorized, "invalid admin credentials")
			return
		}
		if err := issueSession(w, sessions, auth.Identity{
			UserID: "admin",
			Role:   exam.RoleAdmin,
			Name:   "Administrator",
		}); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "Admin login successful"})
	}
}

// issueSession mints a fresh token and replaces any prior cookie, so a
// re-login never carries earlier session state.
func issueSession(w http.ResponseWriter, sessions *auth.Service, id auth.Identity) error {
	tok, err := sessions.Issue(id)
	if err != nil {
		return err
	}
	auth.SetSessionCookie(w, tok, sessions.TTL())
	w.Header().Set("X-Session-Token", tok)
	return nil
}

// POST /api/logout
func LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		auth.ClearSessionCookie(w)
		writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
	}
}

// GET /api/session reports the current identity, or anonymous.
func SessionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := auth.IdentityFromContext(r.Context())
		writeJSON(w, http.StatusOK, map[string]any{
			"logged_in":   id.UserID != "",
			"user_id":     id.UserID,
			"role":        id.Role,
			"name":        id.Name,
			"roll_number": id.RollNumber,
		})
	}
}
