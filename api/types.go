package api

import (
	"github.com/portfolio-site/backend/auth"
	"github.com/portfolio-site/backend/models"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	authHandler    authHandler
	projectHandler projectHandler
}

// pageData is the single view model shared by every template.
type pageData struct {
	Title    string
	Message  string
	Flash    *flashMessage
	Identity *auth.Identity
	Project  *models.Project
	Projects []*models.Project
	Total    int64
}

// ProjectCollection is the payload of the JSON listing endpoint.
type ProjectCollection struct {
	Projects []*models.Project `json:"projects"`
	Total    int               `json:"total"`
}
