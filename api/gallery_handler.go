package api

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rpupo63/portfolio-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type galleryHandler struct {
	responder Responder
	logger    zerolog.Logger
	gallery   *services.GalleryService
}

func newGalleryHandler(gallery *services.GalleryService) galleryHandler {
	logger := log.With().Str("handlerName", "galleryHandler").Logger()

	return galleryHandler{
		responder: NewResponder(logger),
		logger:    logger,
		gallery:   gallery,
	}
}

type galleryUploadPayload struct {
	ImageURL     string  `json:"imageUrl"`
	ThumbnailURL *string `json:"thumbnailUrl"`
	Caption      *string `json:"caption"`
	DisplayOrder *int    `json:"displayOrder"`
}

// list returns gallery images; ?sort=uploaded orders by upload date instead of
// display order
// @Summary List gallery images
// @Tags Gallery
// @Produce json
// @Success 200 {array} models.GalleryImage
// @Router /api/gallery [get]
func (h galleryHandler) list() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			images []*models.GalleryImage
			err    error
		)
		if r.URL.Query().Get("sort") == "uploaded" {
			images, err = h.gallery.ListByUploadDate()
		} else {
			images, err = h.gallery.List()
		}
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "gallery images", err))
			return
		}
		h.responder.WriteJSON(w, images)
	}
}

func (h galleryHandler) getByID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuidParam(r, "imageID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		image, err := h.gallery.GetByID(id)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, image)
	}
}

// upload registers a new image by URL; file storage happens elsewhere
func (h galleryHandler) upload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload galleryUploadPayload
		if err := decodeStrict(r, &payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode gallery request body")
			h.responder.WriteError(w, err)
			return
		}

		image, err := h.gallery.Upload(services.GalleryUpload{
			ImageURL:     payload.ImageURL,
			ThumbnailURL: payload.ThumbnailURL,
			Caption:      payload.Caption,
			DisplayOrder: payload.DisplayOrder,
		})
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteCreated(w, image)
	}
}

// updateCaption replaces the caption from ?caption=
func (h galleryHandler) updateCaption() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuidParam(r, "imageID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		caption := r.URL.Query().Get("caption")

		image, err := h.gallery.UpdateCaption(id, caption)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, image)
	}
}

// setDisplayOrder assigns an explicit display order via ?order=
func (h galleryHandler) setDisplayOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuidParam(r, "imageID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		order, err := strconv.Atoi(r.URL.Query().Get("order"))
		if err != nil {
			h.responder.WriteError(w, errs.NewInvalidFieldError("order", "must be an integer"))
			return
		}

		image, err := h.gallery.SetDisplayOrder(id, order)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, image)
	}
}

// reorder takes a JSON array of image ids and assigns 1-based display orders in
// that sequence; ids that don't resolve are skipped
func (h galleryHandler) reorder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var ids []uuid.UUID
		if err := decodeStrict(r, &ids); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode gallery reorder body")
			h.responder.WriteError(w, err)
			return
		}

		if err := h.gallery.Reorder(ids); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteNoContent(w)
	}
}

func (h galleryHandler) delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuidParam(r, "imageID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.gallery.Delete(id); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteNoContent(w)
	}
}
