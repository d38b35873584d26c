package database

import (
	"errors"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-backend/models"
	"gorm.io/gorm"
)

type GalleryImageRepo struct {
	db *gorm.DB
}

func NewGalleryImageRepo(db *gorm.DB) *GalleryImageRepo {
	return &GalleryImageRepo{db}
}

// FindAllByDisplayOrder returns all gallery images sorted by display order
func (r *GalleryImageRepo) FindAllByDisplayOrder() ([]*models.GalleryImage, error) {
	var images []*models.GalleryImage
	err := r.db.Order("display_order ASC").Find(&images).Error
	return images, err
}

// FindAllByUploadDate returns all gallery images, newest upload first
func (r *GalleryImageRepo) FindAllByUploadDate() ([]*models.GalleryImage, error) {
	var images []*models.GalleryImage
	err := r.db.Order("uploaded_at DESC").Find(&images).Error
	return images, err
}

// FindByID returns a gallery image by its ID, or nil when no row matches
func (r *GalleryImageRepo) FindByID(id uuid.UUID) (*models.GalleryImage, error) {
	var image models.GalleryImage
	err := r.db.First(&image, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &image, nil
}

// Count returns the total number of gallery images
func (r *GalleryImageRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.GalleryImage{}).Count(&count).Error
	return count, err
}

// Add inserts a new gallery image into the database
func (r *GalleryImageRepo) Add(image *models.GalleryImage) error {
	return r.db.Create(image).Error
}

// Update updates an existing gallery image in the database
func (r *GalleryImageRepo) Update(image *models.GalleryImage) error {
	return r.db.Save(image).Error
}

// Delete removes a gallery image from the database by id
func (r *GalleryImageRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.GalleryImage{}, "id = ?", id).Error
}
