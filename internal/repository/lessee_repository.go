package repository

import (
	"gorm.io/gorm"

	"leasing-service/internal/model"
)

// LesseeRepository provides access to Lessee aggregates.
type LesseeRepository struct {
	db *gorm.DB
}

func NewLesseeRepository(db *gorm.DB) *LesseeRepository {
	return &LesseeRepository{db: db}
}

func (r *LesseeRepository) WithTx(tx *gorm.DB) *LesseeRepository {
	return &LesseeRepository{db: tx}
}

func (r *LesseeRepository) Get(id uint) (*model.Lessee, error) {
	if id == 0 {
		return nil, notFound(gorm.ErrRecordNotFound, "lessee", id)
	}
	var lessee model.Lessee
	if err := r.db.First(&lessee, id).Error; err != nil {
		return nil, notFound(err, "lessee", id)
	}
	return &lessee, nil
}

func (r *LesseeRepository) GetWithUser(id uint) (*model.Lessee, error) {
	if id == 0 {
		return nil, notFound(gorm.ErrRecordNotFound, "lessee", id)
	}
	var lessee model.Lessee
	if err := r.db.Preload("User").First(&lessee, id).Error; err != nil {
		return nil, notFound(err, "lessee", id)
	}
	return &lessee, nil
}

// ListWithUser returns all lessees with their user records loaded, in
// insertion order. The lookup service sorts labels itself.
func (r *LesseeRepository) ListWithUser() ([]model.Lessee, error) {
	var lessees []model.Lessee
	if err := r.db.Preload("User").Order("id").Find(&lessees).Error; err != nil {
		return nil, err
	}
	return lessees, nil
}

func (r *LesseeRepository) Create(lessee *model.Lessee) error {
	return r.db.Create(lessee).Error
}

func (r *LesseeRepository) Delete(lessee *model.Lessee) error {
	return r.db.Delete(lessee).Error
}

func (r *LesseeRepository) CountContracts(lesseeID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Contract{}).Where("lessee_id = ?", lesseeID).Count(&count).Error
	return count, err
}
