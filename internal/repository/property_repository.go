package repository

import (
	"gorm.io/gorm"

	"leasing-service/internal/model"
)

// PropertyRepository provides access to Property aggregates and their
// owned images.
type PropertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

func (r *PropertyRepository) WithTx(tx *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: tx}
}

func (r *PropertyRepository) Get(id uint) (*model.Property, error) {
	if id == 0 {
		return nil, notFound(gorm.ErrRecordNotFound, "property", id)
	}
	var property model.Property
	if err := r.db.First(&property, id).Error; err != nil {
		return nil, notFound(err, "property", id)
	}
	return &property, nil
}

func (r *PropertyRepository) GetWithOwner(id uint) (*model.Property, error) {
	if id == 0 {
		return nil, notFound(gorm.ErrRecordNotFound, "property", id)
	}
	var property model.Property
	if err := r.db.Preload("Owner").First(&property, id).Error; err != nil {
		return nil, notFound(err, "property", id)
	}
	return &property, nil
}

func (r *PropertyRepository) GetWithOwnerAndType(id uint) (*model.Property, error) {
	if id == 0 {
		return nil, notFound(gorm.ErrRecordNotFound, "property", id)
	}
	var property model.Property
	err := r.db.
		Preload("Owner").
		Preload("PropertyType").
		First(&property, id).Error
	if err != nil {
		return nil, notFound(err, "property", id)
	}
	return &property, nil
}

// GetDetails loads the property with its owner (and user), rental history
// (contracts with lessee users), type and images.
func (r *PropertyRepository) GetDetails(id uint) (*model.Property, error) {
	if id == 0 {
		return nil, notFound(gorm.ErrRecordNotFound, "property", id)
	}
	var property model.Property
	err := r.db.
		Preload("Owner.User").
		Preload("Contracts.Lessee.User").
		Preload("PropertyType").
		Preload("PropertyImages").
		First(&property, id).Error
	if err != nil {
		return nil, notFound(err, "property", id)
	}
	return &property, nil
}

func (r *PropertyRepository) Create(property *model.Property) error {
	return r.db.Create(property).Error
}

// Save performs a full replace of the property row.
func (r *PropertyRepository) Save(property *model.Property) error {
	return r.db.Save(property).Error
}

func (r *PropertyRepository) Delete(property *model.Property) error {
	return r.db.Delete(property).Error
}

func (r *PropertyRepository) CountContracts(propertyID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Contract{}).Where("property_id = ?", propertyID).Count(&count).Error
	return count, err
}

// DeleteImages removes every image owned by the property. Used by the
// cascade on property deletion.
func (r *PropertyRepository) DeleteImages(propertyID uint) error {
	return r.db.Where("property_id = ?", propertyID).Delete(&model.PropertyImage{}).Error
}
