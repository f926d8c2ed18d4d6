package repository

import (
	"gorm.io/gorm"

	"leasing-service/internal/model"
)

// PropertyImageRepository provides access to property images.
type PropertyImageRepository struct {
	db *gorm.DB
}

func NewPropertyImageRepository(db *gorm.DB) *PropertyImageRepository {
	return &PropertyImageRepository{db: db}
}

func (r *PropertyImageRepository) GetWithProperty(id uint) (*model.PropertyImage, error) {
	if id == 0 {
		return nil, notFound(gorm.ErrRecordNotFound, "property image", id)
	}
	var image model.PropertyImage
	if err := r.db.Preload("Property").First(&image, id).Error; err != nil {
		return nil, notFound(err, "property image", id)
	}
	return &image, nil
}

func (r *PropertyImageRepository) Create(image *model.PropertyImage) error {
	return r.db.Create(image).Error
}

func (r *PropertyImageRepository) Delete(image *model.PropertyImage) error {
	return r.db.Delete(image).Error
}
