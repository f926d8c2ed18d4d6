package repository

import (
	"gorm.io/gorm"

	"leasing-service/internal/model"
)

// ContractRepository provides access to Contract records. A contract shares
// its owner, lessee and property by reference; it owns none of them.
type ContractRepository struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

func (r *ContractRepository) WithTx(tx *gorm.DB) *ContractRepository {
	return &ContractRepository{db: tx}
}

func (r *ContractRepository) Get(id uint) (*model.Contract, error) {
	if id == 0 {
		return nil, notFound(gorm.ErrRecordNotFound, "contract", id)
	}
	var contract model.Contract
	if err := r.db.First(&contract, id).Error; err != nil {
		return nil, notFound(err, "contract", id)
	}
	return &contract, nil
}

func (r *ContractRepository) GetWithRelations(id uint) (*model.Contract, error) {
	if id == 0 {
		return nil, notFound(gorm.ErrRecordNotFound, "contract", id)
	}
	var contract model.Contract
	err := r.db.
		Preload("Owner").
		Preload("Lessee").
		Preload("Property").
		First(&contract, id).Error
	if err != nil {
		return nil, notFound(err, "contract", id)
	}
	return &contract, nil
}

// GetDetails loads the contract with user records and the property type,
// the relation set shown on the contract detail page.
func (r *ContractRepository) GetDetails(id uint) (*model.Contract, error) {
	if id == 0 {
		return nil, notFound(gorm.ErrRecordNotFound, "contract", id)
	}
	var contract model.Contract
	err := r.db.
		Preload("Owner.User").
		Preload("Lessee.User").
		Preload("Property.PropertyType").
		First(&contract, id).Error
	if err != nil {
		return nil, notFound(err, "contract", id)
	}
	return &contract, nil
}

func (r *ContractRepository) GetWithProperty(id uint) (*model.Contract, error) {
	if id == 0 {
		return nil, notFound(gorm.ErrRecordNotFound, "contract", id)
	}
	var contract model.Contract
	if err := r.db.Preload("Property").First(&contract, id).Error; err != nil {
		return nil, notFound(err, "contract", id)
	}
	return &contract, nil
}

func (r *ContractRepository) List() ([]model.Contract, error) {
	var contracts []model.Contract
	err := r.db.
		Preload("Owner.User").
		Preload("Lessee.User").
		Preload("Property.PropertyType").
		Find(&contracts).Error
	if err != nil {
		return nil, err
	}
	return contracts, nil
}

func (r *ContractRepository) Create(contract *model.Contract) error {
	return r.db.Create(contract).Error
}

// Save performs a full replace of the contract row.
func (r *ContractRepository) Save(contract *model.Contract) error {
	return r.db.Save(contract).Error
}

func (r *ContractRepository) Delete(contract *model.Contract) error {
	return r.db.Delete(contract).Error
}
