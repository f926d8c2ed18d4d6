package repository

import (
	"gorm.io/gorm"

	"leasing-service/internal/model"
)

// PropertyTypeRepository provides access to property type categories.
type PropertyTypeRepository struct {
	db *gorm.DB
}

func NewPropertyTypeRepository(db *gorm.DB) *PropertyTypeRepository {
	return &PropertyTypeRepository{db: db}
}

func (r *PropertyTypeRepository) Get(id uint) (*model.PropertyType, error) {
	if id == 0 {
		return nil, notFound(gorm.ErrRecordNotFound, "property type", id)
	}
	var propertyType model.PropertyType
	if err := r.db.First(&propertyType, id).Error; err != nil {
		return nil, notFound(err, "property type", id)
	}
	return &propertyType, nil
}

func (r *PropertyTypeRepository) List() ([]model.PropertyType, error) {
	var types []model.PropertyType
	if err := r.db.Order("id").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

func (r *PropertyTypeRepository) Create(propertyType *model.PropertyType) error {
	return r.db.Create(propertyType).Error
}

func (r *PropertyTypeRepository) Save(propertyType *model.PropertyType) error {
	return r.db.Save(propertyType).Error
}

func (r *PropertyTypeRepository) Delete(propertyType *model.PropertyType) error {
	return r.db.Delete(propertyType).Error
}

func (r *PropertyTypeRepository) CountProperties(typeID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Property{}).Where("property_type_id = ?", typeID).Count(&count).Error
	return count, err
}
