package api

import (
	"github.com/portfolio-site/backend/auth"
	"github.com/portfolio-site/backend/database"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, gate *auth.Gate) *routeHandlers {
	return &routeHandlers{
		authHandler:    newAuthHandler(gate),
		projectHandler: newProjectHandler(database.ProjectRepo()),
	}
}
