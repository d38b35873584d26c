package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type userHandler struct {
	responder Responder
	logger    zerolog.Logger
	users     *services.UserService
}

func newUserHandler(users *services.UserService) userHandler {
	logger := log.With().Str("handlerName", "userHandler").Logger()

	return userHandler{
		responder: NewResponder(logger),
		logger:    logger,
		users:     users,
	}
}

type userUpdatePayload struct {
	FullName    *string `json:"fullName"`
	Bio         *string `json:"bio"`
	Email       *string `json:"email"`
	AvatarURL   *string `json:"avatarUrl"`
	GithubURL   *string `json:"githubUrl"`
	LinkedinURL *string `json:"linkedinUrl"`
}

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h userHandler) getByID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuidParam(r, "userID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		user, err := h.users.GetByID(id)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, user)
	}
}

func (h userHandler) getByUsername() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")
		if username == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing username"))
			return
		}

		user, err := h.users.GetByUsername(username)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, user)
	}
}

// checkUsername returns {"exists": bool} for availability checks
func (h userHandler) checkUsername() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")
		if username == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing username"))
			return
		}

		exists, err := h.users.UsernameExists(username)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, map[string]bool{"exists": exists})
	}
}

// checkEmail returns {"exists": bool} for availability checks
func (h userHandler) checkEmail() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := chi.URLParam(r, "email")
		if email == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing email"))
			return
		}

		exists, err := h.users.EmailExists(email)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, map[string]bool{"exists": exists})
	}
}

// update applies a partial profile update
func (h userHandler) update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuidParam(r, "userID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var payload userUpdatePayload
		if err := decodeStrict(r, &payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode user request body")
			h.responder.WriteError(w, err)
			return
		}

		user, err := h.users.UpdateProfile(id, services.UserUpdate{
			FullName:    payload.FullName,
			Bio:         payload.Bio,
			Email:       payload.Email,
			AvatarURL:   payload.AvatarURL,
			GithubURL:   payload.GithubURL,
			LinkedinURL: payload.LinkedinURL,
		})
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, user)
	}
}

// login verifies credentials and returns the user profile. Failures are a
// single generic 401 regardless of which credential was wrong.
// @Summary Log in
// @Tags Users
// @Accept json
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} ErrorResponse
// @Router /api/users/login [post]
func (h userHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload loginPayload
		if err := decodeStrict(r, &payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode login request body")
			h.responder.WriteError(w, err)
			return
		}

		user, err := h.users.Authenticate(payload.Username, payload.Password)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, user)
	}
}
