package repository

import (
	"gorm.io/gorm"

	"leasing-service/internal/model"
)

// OwnerRepository provides access to Owner aggregates. All relation loading
// is eager and named by the caller; nothing is lazily loaded.
type OwnerRepository struct {
	db *gorm.DB
}

func NewOwnerRepository(db *gorm.DB) *OwnerRepository {
	return &OwnerRepository{db: db}
}

// WithTx returns a repository bound to the given transaction handle.
func (r *OwnerRepository) WithTx(tx *gorm.DB) *OwnerRepository {
	return &OwnerRepository{db: tx}
}

func (r *OwnerRepository) Get(id uint) (*model.Owner, error) {
	if id == 0 {
		return nil, notFound(gorm.ErrRecordNotFound, "owner", id)
	}
	var owner model.Owner
	if err := r.db.First(&owner, id).Error; err != nil {
		return nil, notFound(err, "owner", id)
	}
	return &owner, nil
}

func (r *OwnerRepository) GetWithUser(id uint) (*model.Owner, error) {
	if id == 0 {
		return nil, notFound(gorm.ErrRecordNotFound, "owner", id)
	}
	var owner model.Owner
	if err := r.db.Preload("User").First(&owner, id).Error; err != nil {
		return nil, notFound(err, "owner", id)
	}
	return &owner, nil
}

// GetDetails loads the owner together with its user, properties (including
// type and images) and contracts.
func (r *OwnerRepository) GetDetails(id uint) (*model.Owner, error) {
	if id == 0 {
		return nil, notFound(gorm.ErrRecordNotFound, "owner", id)
	}
	var owner model.Owner
	err := r.db.
		Preload("User").
		Preload("Properties.PropertyType").
		Preload("Properties.PropertyImages").
		Preload("Contracts").
		First(&owner, id).Error
	if err != nil {
		return nil, notFound(err, "owner", id)
	}
	return &owner, nil
}

func (r *OwnerRepository) List() ([]model.Owner, error) {
	var owners []model.Owner
	err := r.db.
		Preload("User").
		Preload("Properties").
		Preload("Contracts").
		Find(&owners).Error
	if err != nil {
		return nil, err
	}
	return owners, nil
}

func (r *OwnerRepository) Create(owner *model.Owner) error {
	return r.db.Create(owner).Error
}

func (r *OwnerRepository) Delete(owner *model.Owner) error {
	return r.db.Delete(owner).Error
}

func (r *OwnerRepository) CountProperties(ownerID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Property{}).Where("owner_id = ?", ownerID).Count(&count).Error
	return count, err
}

func (r *OwnerRepository) CountContracts(ownerID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Contract{}).Where("owner_id = ?", ownerID).Count(&count).Error
	return count, err
}
