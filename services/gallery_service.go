package services

import (
	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
)

// GalleryStore is the persistence surface GalleryService needs.
// *database.GalleryImageRepo satisfies it in production.
type GalleryStore interface {
	FindAllByDisplayOrder() ([]*models.GalleryImage, error)
	FindAllByUploadDate() ([]*models.GalleryImage, error)
	FindByID(id uuid.UUID) (*models.GalleryImage, error)
	Count() (int64, error)
	Add(image *models.GalleryImage) error
	Update(image *models.GalleryImage) error
	Delete(id uuid.UUID) error
}

// GalleryUpload carries the fields accepted when registering an uploaded image.
// Only URLs are stored; the files themselves live elsewhere.
type GalleryUpload struct {
	ImageURL     string
	ThumbnailURL *string
	Caption      *string
	DisplayOrder *int
}

// GalleryService orchestrates gallery image lifecycle operations
type GalleryService struct {
	images GalleryStore
}

func NewGalleryService(images GalleryStore) *GalleryService {
	return &GalleryService{images: images}
}

// List returns gallery images sorted by display order
func (s *GalleryService) List() ([]*models.GalleryImage, error) {
	return s.images.FindAllByDisplayOrder()
}

// ListByUploadDate returns gallery images, newest upload first
func (s *GalleryService) ListByUploadDate() ([]*models.GalleryImage, error) {
	return s.images.FindAllByUploadDate()
}

// GetByID returns a gallery image by id
func (s *GalleryService) GetByID(id uuid.UUID) (*models.GalleryImage, error) {
	image, err := s.images.FindByID(id)
	if err != nil {
		return nil, err
	}
	if image == nil {
		return nil, errs.NewNotFound("gallery image")
	}
	return image, nil
}

// Upload registers a new image. Without an explicit display order the image is
// appended at the end.
func (s *GalleryService) Upload(in GalleryUpload) (*models.GalleryImage, error) {
	if in.ImageURL == "" {
		return nil, errs.NewMissingRequiredFieldError("imageUrl")
	}

	displayOrder := 0
	if in.DisplayOrder != nil {
		displayOrder = *in.DisplayOrder
	}
	if displayOrder == 0 {
		count, err := s.images.Count()
		if err != nil {
			return nil, err
		}
		displayOrder = int(count) + 1
	}

	image := &models.GalleryImage{
		ID:           uuid.New(),
		ImageURL:     in.ImageURL,
		ThumbnailURL: in.ThumbnailURL,
		Caption:      in.Caption,
		DisplayOrder: displayOrder,
	}
	if err := s.images.Add(image); err != nil {
		return nil, errs.NewDatabaseError("create", "gallery image", err)
	}
	return image, nil
}

// UpdateCaption replaces the caption of one image
func (s *GalleryService) UpdateCaption(id uuid.UUID, caption string) (*models.GalleryImage, error) {
	image, err := s.images.FindByID(id)
	if err != nil {
		return nil, err
	}
	if image == nil {
		return nil, errs.NewNotFound("gallery image")
	}
	image.Caption = &caption
	if err := s.images.Update(image); err != nil {
		return nil, errs.NewDatabaseError("update", "gallery image", err)
	}
	return image, nil
}

// SetDisplayOrder assigns an explicit display order to one image
func (s *GalleryService) SetDisplayOrder(id uuid.UUID, order int) (*models.GalleryImage, error) {
	image, err := s.images.FindByID(id)
	if err != nil {
		return nil, err
	}
	if image == nil {
		return nil, errs.NewNotFound("gallery image")
	}
	image.DisplayOrder = order
	if err := s.images.Update(image); err != nil {
		return nil, errs.NewDatabaseError("update", "gallery image", err)
	}
	return image, nil
}

// Reorder assigns sequential 1-based display orders following the list
// position of each id. Unknown ids are silently skipped. Each image is written
// on its own; a mid-batch failure leaves earlier rows applied but individually
// consistent.
func (s *GalleryService) Reorder(ids []uuid.UUID) error {
	for i, id := range ids {
		image, err := s.images.FindByID(id)
		if err != nil {
			return err
		}
		if image == nil {
			continue
		}
		image.DisplayOrder = i + 1
		if err := s.images.Update(image); err != nil {
			return errs.NewDatabaseError("reorder", "gallery image", err)
		}
	}
	return nil
}

// Delete removes a gallery image row. The underlying file is not touched.
func (s *GalleryService) Delete(id uuid.UUID) error {
	image, err := s.images.FindByID(id)
	if err != nil {
		return err
	}
	if image == nil {
		return errs.NewNotFound("gallery image")
	}
	if err := s.images.Delete(id); err != nil {
		return errs.NewDatabaseError("delete", "gallery image", err)
	}
	return nil
}
