package api

import (
	"net/http"
	"net/url"
	"strings"
)

const flashCookieName = "portfolio_flash"

// Flash categories, matching the notice styles the templates know about.
const (
	flashSuccess = "success"
	flashDanger  = "danger"
	flashInfo    = "info"
	flashWarning = "warning"
)

type flashMessage struct {
	Category string
	Message  string
}

// setFlash queues a single-use notice for the next rendered page.
func setFlash(w http.ResponseWriter, category, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    url.QueryEscape(category + "|" + message),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlash reads the pending notice, if any, and clears it so it renders once.
func popFlash(w http.ResponseWriter, r *http.Request) *flashMessage {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	raw, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return nil
	}
	parts := strings.SplitN(raw, "|", 2)
	if len(parts) != 2 {
		return nil
	}
	return &flashMessage{Category: parts[0], Message: parts[1]}
}
