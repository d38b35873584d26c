package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type projectHandler struct {
	responder Responder
	logger    zerolog.Logger
	projects  *services.ProjectService
}

func newProjectHandler(projects *services.ProjectService) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder: NewResponder(logger),
		logger:    logger,
		projects:  projects,
	}
}

type projectPayload struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	ThumbnailURL *string  `json:"thumbnailUrl"`
	DemoVideoURL *string  `json:"demoVideoUrl"`
	GithubURL    *string  `json:"githubUrl"`
	LiveURL      *string  `json:"liveUrl"`
	Technologies []string `json:"technologies"`
	DisplayOrder *int     `json:"displayOrder"`
	Featured     *bool    `json:"featured"`
}

type projectUpdatePayload struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	ThumbnailURL *string   `json:"thumbnailUrl"`
	DemoVideoURL *string   `json:"demoVideoUrl"`
	GithubURL    *string   `json:"githubUrl"`
	LiveURL      *string   `json:"liveUrl"`
	Technologies *[]string `json:"technologies"`
	DisplayOrder *int      `json:"displayOrder"`
	Featured     *bool     `json:"featured"`
}

// list returns all projects in display order
// @Summary List projects
// @Tags Projects
// @Produce json
// @Success 200 {array} models.Project
// @Router /api/projects [get]
func (h projectHandler) list() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projects.List()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "projects", err))
			return
		}
		h.responder.WriteJSON(w, projects)
	}
}

// listFeatured returns featured projects in display order
func (h projectHandler) listFeatured() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projects.ListFeatured()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "projects", err))
			return
		}
		h.responder.WriteJSON(w, projects)
	}
}

func (h projectHandler) getByID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuidParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projects.GetByID(id)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, project)
	}
}

func (h projectHandler) getBySlug() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		project, err := h.projects.GetBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, project)
	}
}

// create inserts a new project
// @Summary Create project
// @Tags Projects
// @Accept json
// @Produce json
// @Success 201 {object} models.Project
// @Failure 400 {object} ErrorResponse
// @Router /api/projects [post]
func (h projectHandler) create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload projectPayload
		if err := decodeStrict(r, &payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, err)
			return
		}

		in := services.ProjectCreate{
			Title:        payload.Title,
			Description:  payload.Description,
			ThumbnailURL: payload.ThumbnailURL,
			DemoVideoURL: payload.DemoVideoURL,
			GithubURL:    payload.GithubURL,
			LiveURL:      payload.LiveURL,
			Technologies: payload.Technologies,
			DisplayOrder: payload.DisplayOrder,
		}
		if payload.Featured != nil {
			in.Featured = *payload.Featured
		}

		project, err := h.projects.Create(in)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteCreated(w, project)
	}
}

// update applies a partial update to one project
func (h projectHandler) update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuidParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var payload projectUpdatePayload
		if err := decodeStrict(r, &payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projects.Update(id, services.ProjectUpdate{
			Title:        payload.Title,
			Description:  payload.Description,
			ThumbnailURL: payload.ThumbnailURL,
			DemoVideoURL: payload.DemoVideoURL,
			GithubURL:    payload.GithubURL,
			LiveURL:      payload.LiveURL,
			Technologies: payload.Technologies,
			DisplayOrder: payload.DisplayOrder,
			Featured:     payload.Featured,
		})
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, project)
	}
}

func (h projectHandler) delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuidParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.projects.Delete(id); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteNoContent(w)
	}
}

// toggleFeatured flips the featured flag
func (h projectHandler) toggleFeatured() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuidParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projects.ToggleFeatured(id)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, project)
	}
}

// setDisplayOrder assigns an explicit display order via ?order=
func (h projectHandler) setDisplayOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuidParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		order, err := strconv.Atoi(r.URL.Query().Get("order"))
		if err != nil {
			h.responder.WriteError(w, errs.NewInvalidFieldError("order", "must be an integer"))
			return
		}

		if err := h.projects.SetDisplayOrder(id, order); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteNoContent(w)
	}
}
