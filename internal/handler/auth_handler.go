package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"autobid-server/internal/model"
	"autobid-server/internal/service"
	"autobid-server/pkg/apierror"
)

type AuthHandler struct {
	tokens *service.TokenService
}

func NewAuthHandler(tokens *service.TokenService) *AuthHandler {
	return &AuthHandler{tokens: tokens}
}

// CreateSession signs the posted identity into a session cookie.
func (h *AuthHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.SessionRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}

	payload.Email = strings.TrimSpace(payload.Email)
	if payload.Email == "" {
		writeError(w, apierror.New("BAD_REQUEST", "email is required", "email", http.StatusBadRequest))
		return
	}

	token, err := h.tokens.Issue(payload.Email)
	if err != nil {
		writeError(w, err)
		return
	}

	http.SetCookie(w, h.tokens.SessionCookie(token))
	writeJSON(w, http.StatusOK, model.APIResponse{Success: true})
}

// Logout clears the session cookie. The token itself stays valid until
// expiry; the authenticator keeps no revocation list.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.tokens.ClearedSessionCookie())
	writeJSON(w, http.StatusOK, model.APIResponse{Success: true})
}
