package handlers

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"jobtrail/internal/auth"
	"jobtrail/internal/services"
	"jobtrail/internal/web"
)

// AccountHandler handles registration, login and logout.
type AccountHandler struct {
	service  services.AccountServiceProvider
	sessions *auth.Sessions
	view     *web.Renderer
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(service services.AccountServiceProvider, sessions *auth.Sessions, view *web.Renderer) *AccountHandler {
	return &AccountHandler{service: service, sessions: sessions, view: view}
}

// ShowRegister renders the registration form.
func (h *AccountHandler) ShowRegister(w http.ResponseWriter, r *http.Request) {
	h.view.Render(w, "register", web.PageData{Flash: popFlash(w, r)})
}

// Register handles new account registration and logs the account in.
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	account, err := h.service.Register(r.PostFormValue("username"), r.PostFormValue("password"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDuplicateUsername):
			setFlash(w, "Username already exists")
		case errors.Is(err, services.ErrValidation):
			setFlash(w, "Username and password are required")
		default:
			log.Error().Err(err).Msg("Failed to register account")
			setFlash(w, "There was a problem creating your account")
		}
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}

	token, err := h.sessions.Issue(account)
	if err != nil {
		log.Error().Err(err).Str("account_id", account.ID).Msg("Failed to issue session token")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	h.sessions.SetCookie(w, token)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ShowLogin renders the login form.
func (h *AccountHandler) ShowLogin(w http.ResponseWriter, r *http.Request) {
	h.view.Render(w, "login", web.PageData{Flash: popFlash(w, r)})
}

// Login handles authentication and session establishment.
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	username := r.PostFormValue("username")
	account, err := h.service.Authenticate(username, r.PostFormValue("password"))
	if err != nil {
		if !errors.Is(err, services.ErrInvalidCredentials) {
			log.Error().Err(err).Msg("Authentication lookup failed")
		} else {
			log.Warn().Str("username", username).Msg("Failed authentication attempt")
		}
		setFlash(w, "Invalid username or password")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	token, err := h.sessions.Issue(account)
	if err != nil {
		log.Error().Err(err).Str("account_id", account.ID).Msg("Failed to issue session token")
		setFlash(w, "There was a problem logging you in")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	h.sessions.SetCookie(w, token)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout ends the session.
func (h *AccountHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.ClearCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
