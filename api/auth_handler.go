package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/portfolio-site/backend/auth"
)

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	gate      *auth.Gate
}

func newAuthHandler(gate *auth.Gate) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		gate:      gate,
	}
}

// loginForm renders the login page. An already-authenticated admin is sent
// straight to the dashboard.
func (h authHandler) loginForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if identity := h.gate.Resolve(readSessionCookie(r)); identity != nil {
			http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
			return
		}

		h.responder.RenderPage(w, http.StatusOK, "login.html", pageData{
			Title: "Admin Login",
			Flash: popFlash(w, r),
		})
	}
}

// login authenticates the posted credentials and establishes the session.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			h.responder.RenderPage(w, http.StatusBadRequest, "login.html", pageData{
				Title: "Admin Login",
				Flash: &flashMessage{Category: flashDanger, Message: "Malformed form submission"},
			})
			return
		}

		token, err := h.gate.Login(r.PostFormValue("username"), r.PostFormValue("password"))
		if err != nil {
			h.logger.Warn().Str("remote_addr", r.RemoteAddr).Msg("failed admin login attempt")
			h.responder.RenderPage(w, http.StatusUnauthorized, "login.html", pageData{
				Title: "Admin Login",
				Flash: &flashMessage{Category: flashDanger, Message: "Wrong username or password"},
			})
			return
		}

		setSessionCookie(w, token, auth.DefaultSessionTTL)
		http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
	}
}

// logout ends the session and returns to the login page.
func (h authHandler) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clearSessionCookie(w)
		setFlash(w, flashSuccess, "Logged out successfully")
		http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
	}
}
