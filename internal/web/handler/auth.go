package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/questgate/steamqual/internal/model"
	"github.com/questgate/steamqual/internal/services/auth"
	"github.com/questgate/steamqual/internal/web/middleware"
	"github.com/questgate/steamqual/internal/web/templates"
)

// AuthHandler handles sign-in pages and actions
type AuthHandler struct {
	authService *auth.Service

	// baseURL is the externally visible site root used for the OpenID
	// return_to and realm. Derived from the request when empty.
	baseURL string
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *auth.Service, baseURL string) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		baseURL:     strings.TrimSuffix(baseURL, "/"),
	}
}

// Login sends the visitor to Steam's OpenID endpoint
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if middleware.GetSteamID(r.Context()) != "" {
		// Already signed in
		http.Redirect(w, r, "/check", http.StatusSeeOther)
		return
	}

	realm := h.realm(r)
	loginURL := h.authService.LoginURL(realm+"/authenticate", realm)
	http.Redirect(w, r, loginURL, http.StatusSeeOther)
}

// Authenticate handles the redirect back from Steam
func (h *AuthHandler) Authenticate(w http.ResponseWriter, r *http.Request) {
	claimedID := r.URL.Query().Get("openid.claimed_id")
	if claimedID == "" {
		middleware.SetFlash(w, "error", "Steam sign-in was cancelled")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	session, err := h.authService.CompleteLogin(r.Context(), claimedID)
	if err != nil {
		middleware.SetFlash(w, "error", "Steam sign-in failed")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	h.setSessionCookie(w, session.Token)
	middleware.SetFlash(w, "success", "Signed in as "+string(session.SteamID))
	http.Redirect(w, r, "/check", http.StatusSeeOther)
}

// ManualAuth handles a directly-entered SteamID
func (h *AuthHandler) ManualAuth(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderManualAuthError(w, r, "Invalid form data", "")
		return
	}

	raw := strings.TrimSpace(r.FormValue("steam_id"))
	if raw == "" {
		h.renderManualAuthError(w, r, "A SteamID is required", "")
		return
	}

	session, err := h.authService.ManualLogin(r.Context(), raw)
	if err != nil {
		if errors.Is(err, model.ErrInvalidSteamID) {
			h.renderManualAuthError(w, r, "A SteamID is the 17-digit number from your profile URL", raw)
			return
		}
		h.renderManualAuthError(w, r, "Sign-in failed, please try again", raw)
		return
	}

	h.setSessionCookie(w, session.Token)
	middleware.SetFlash(w, "success", "Checking account "+string(session.SteamID))
	http.Redirect(w, r, "/check", http.StatusSeeOther)
}

// Logout handles logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie("session"); err == nil {
		h.authService.InvalidateSession(r.Context(), cookie.Value)
	}

	// Clear session cookie
	http.SetCookie(w, &http.Cookie{
		Name:     "session",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	middleware.SetFlash(w, "info", "You have been logged out")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) realm(r *http.Request) string {
	if h.baseURL != "" {
		return h.baseURL
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "session",
		Value:    token,
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) renderManualAuthError(w http.ResponseWriter, r *http.Request, errorMsg, steamIDInput string) {
	data := templates.HomeData{
		PageData: templates.PageData{
			Title: "Home",
		},
		SteamIDInput: steamIDInput,
		Error:        errorMsg,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Home(w, data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
