package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/portfolio-site/backend/errs"
)

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

func (r Responder) WriteJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// WriteError answers a JSON error response. Expected errors carry their own
// status code; anything else is logged and answered as a generic 500.
func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr

	if !errors.As(err, &apiErr) {
		r.logger.Error().Msg(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		r.WriteJSON(w, map[string]any{
			"error":  "Internal Server Error",
			"status": "error",
		})
		return
	}

	response := map[string]any{
		"error":  apiErr.Error(),
		"status": "error",
	}
	if apiErr.Cause != nil {
		r.logger.Error().Msg(apiErr.GetFullError())
	}

	w.WriteHeader(apiErr.StatusCode)
	r.WriteJSON(w, response)
}

// WritePageError renders the HTML error page for a failed page request.
func (r Responder) WritePageError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr

	status := http.StatusInternalServerError
	message := "Something went wrong"
	if errors.As(err, &apiErr) {
		status = apiErr.StatusCode
		message = apiErr.Error()
		if apiErr.Cause != nil {
			r.logger.Error().Msg(apiErr.GetFullError())
		}
	} else {
		r.logger.Error().Msg(err.Error())
	}

	r.RenderPage(w, status, "error.html", pageData{
		Title:   "Error",
		Message: message,
	})
}
