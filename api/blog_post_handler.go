package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type blogPostHandler struct {
	responder Responder
	logger    zerolog.Logger
	posts     *services.PostService
}

func newBlogPostHandler(posts *services.PostService) blogPostHandler {
	logger := log.With().Str("handlerName", "blogPostHandler").Logger()

	return blogPostHandler{
		responder: NewResponder(logger),
		logger:    logger,
		posts:     posts,
	}
}

// blogPostPayload is the create body. The slug is server-derived; a client
// cannot supply one.
type blogPostPayload struct {
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Excerpt   *string   `json:"excerpt"`
	Published *bool     `json:"published"`
	Tags      *[]string `json:"tags"`
}

// blogPostUpdatePayload is the partial-update body. Absent fields stay nil and
// are not applied; an explicitly empty tags array clears every association.
type blogPostUpdatePayload struct {
	Title     *string   `json:"title"`
	Content   *string   `json:"content"`
	Excerpt   *string   `json:"excerpt"`
	Published *bool     `json:"published"`
	Tags      *[]string `json:"tags"`
}

// listPublished returns published posts, newest first
// @Summary List published blog posts
// @Tags Blog Posts
// @Produce json
// @Success 200 {array} models.BlogPost
// @Router /api/posts [get]
func (h blogPostHandler) listPublished() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := h.posts.ListPublished()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "blog posts", err))
			return
		}
		h.responder.WriteJSON(w, posts)
	}
}

// listAll returns every post including drafts (owner view)
// @Summary List all blog posts including drafts
// @Tags Blog Posts
// @Produce json
// @Success 200 {array} models.BlogPost
// @Router /api/posts/all [get]
func (h blogPostHandler) listAll() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := h.posts.ListAll()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "blog posts", err))
			return
		}
		h.responder.WriteJSON(w, posts)
	}
}

// getByID returns one post; the read increments its view count
// @Summary Get blog post by ID
// @Tags Blog Posts
// @Produce json
// @Param postID path string true "Blog Post ID" format(uuid)
// @Success 200 {object} models.BlogPost
// @Failure 404 {object} ErrorResponse
// @Router /api/posts/{postID} [get]
func (h blogPostHandler) getByID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuidParam(r, "postID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		post, err := h.posts.GetByID(id)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, post)
	}
}

// getBySlug returns one post by slug; the read increments its view count
func (h blogPostHandler) getBySlug() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		post, err := h.posts.GetBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, post)
	}
}

// search returns published posts whose title contains ?title=, case-insensitively
func (h blogPostHandler) search() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		title := r.URL.Query().Get("title")
		if title == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}

		posts, err := h.posts.SearchPublished(title)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("search", "blog posts", err))
			return
		}
		h.responder.WriteJSON(w, posts)
	}
}

// listByTag returns published posts carrying the tag slug
func (h blogPostHandler) listByTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tagSlug := chi.URLParam(r, "tagSlug")
		if tagSlug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing tagSlug"))
			return
		}

		posts, err := h.posts.ListByTagSlug(tagSlug)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "blog posts", err))
			return
		}
		h.responder.WriteJSON(w, posts)
	}
}

// create inserts a new post authored by the configured owner principal
// @Summary Create blog post
// @Tags Blog Posts
// @Accept json
// @Produce json
// @Success 201 {object} models.BlogPost
// @Failure 400 {object} ErrorResponse
// @Router /api/posts [post]
func (h blogPostHandler) create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload blogPostPayload
		if err := decodeStrict(r, &payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode blog post request body")
			h.responder.WriteError(w, err)
			return
		}

		authorID, ok := principalIDFromCtx(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.NewInternalError("owner principal missing from context"))
			return
		}

		in := services.PostCreate{
			Title:   payload.Title,
			Content: payload.Content,
			Excerpt: payload.Excerpt,
		}
		if payload.Published != nil {
			in.Published = *payload.Published
		}
		if payload.Tags != nil {
			in.Tags = *payload.Tags
		}

		post, err := h.posts.Create(in, authorID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteCreated(w, post)
	}
}

// update applies a partial update to one post
func (h blogPostHandler) update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuidParam(r, "postID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var payload blogPostUpdatePayload
		if err := decodeStrict(r, &payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode blog post request body")
			h.responder.WriteError(w, err)
			return
		}

		post, err := h.posts.Update(id, services.PostUpdate{
			Title:     payload.Title,
			Content:   payload.Content,
			Excerpt:   payload.Excerpt,
			Published: payload.Published,
			Tags:      payload.Tags,
		})
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, post)
	}
}

// delete removes a post along with its comments and tag associations
func (h blogPostHandler) delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuidParam(r, "postID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.posts.Delete(id); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteNoContent(w)
	}
}

// togglePublish flips the published flag
func (h blogPostHandler) togglePublish() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuidParam(r, "postID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		post, err := h.posts.TogglePublish(id)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, post)
	}
}
