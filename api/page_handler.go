package api

import (
	"net/http"

	"github.com/FijacksProp/portfolio/database"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Bounded subsets shown on the homepage.
const (
	homeFeaturedLimit = 3
	homeSkillLimit    = 8
)

type pageHandler struct {
	responder   Responder
	logger      zerolog.Logger
	renderer    Renderer
	projectRepo *database.ProjectRepo
	skillRepo   *database.SkillRepo
}

func newPageHandler(renderer Renderer, projectRepo *database.ProjectRepo, skillRepo *database.SkillRepo) pageHandler {
	logger := log.With().Str("handlerName", "pageHandler").Logger()

	return pageHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		renderer:    renderer,
		projectRepo: projectRepo,
		skillRepo:   skillRepo,
	}
}

// home renders the homepage: up to three featured projects and the top eight
// skills. Empty lists are valid.
func (h pageHandler) home() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		featured, err := h.projectRepo.FindFeatured(database.ListOptions{
			Order: database.DefaultProjectOrder,
			Limit: homeFeaturedLimit,
		})
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find featured projects", "projects", err))
			return
		}

		skills, err := h.skillRepo.FindAll(database.ListOptions{
			Order: database.DefaultSkillOrder,
			Limit: homeSkillLimit,
		})
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find skills", "skills", err))
			return
		}

		h.renderer.Render(w, "home", map[string]any{
			"featured_projects": featured,
			"skills":            skills,
		}, popFlashes(w, r))
	}
}

// about renders the about page with every skill in default order.
func (h pageHandler) about() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skills, err := h.skillRepo.FindAll(database.ListOptions{Order: database.DefaultSkillOrder})
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find skills", "skills", err))
			return
		}

		h.renderer.Render(w, "about", map[string]any{
			"skills": skills,
		}, popFlashes(w, r))
	}
}

// projects renders the full project listing in default order.
func (h pageHandler) projects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindAll(database.ListOptions{Order: database.DefaultProjectOrder})
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find projects", "projects", err))
			return
		}

		h.renderer.Render(w, "projects", map[string]any{
			"projects": projects,
		}, popFlashes(w, r))
	}
}
