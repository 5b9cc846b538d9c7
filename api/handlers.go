package api

import (
	"github.com/FijacksProp/portfolio/database"
	"github.com/FijacksProp/portfolio/services"
	"github.com/rs/zerolog/log"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	pageHandler    pageHandler
	contactHandler contactHandler
	projectHandler projectHandler
	skillHandler   skillHandler
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, notifier *services.ContactNotifier) *routeHandlers {
	renderer := NewJSONRenderer(log.With().Str("handlerName", "renderer").Logger())

	return &routeHandlers{
		pageHandler:    newPageHandler(renderer, database.ProjectRepo(), database.SkillRepo()),
		contactHandler: newContactHandler(renderer, database.ContactRepo(), notifier),
		projectHandler: newProjectHandler(database.ProjectRepo()),
		skillHandler:   newSkillHandler(database.SkillRepo()),
	}
}
