package service

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"leasing-service/internal/converter"
	"leasing-service/internal/lookup"
	"leasing-service/internal/model"
	"leasing-service/internal/repository"
)

// ContractService implements the contract lifecycle. Contracts keep the
// full rental history of a property; nothing prevents several active
// contracts on one property at a time.
type ContractService struct {
	db         *gorm.DB
	contracts  *repository.ContractRepository
	properties *repository.PropertyRepository
	converter  *converter.Service
	lookups    *lookup.Service
}

func NewContractService(
	db *gorm.DB,
	contracts *repository.ContractRepository,
	properties *repository.PropertyRepository,
	conv *converter.Service,
	lookups *lookup.Service,
) *ContractService {
	return &ContractService{
		db:         db,
		contracts:  contracts,
		properties: properties,
		converter:  conv,
		lookups:    lookups,
	}
}

// NewForm prefills the creation form for a contract on the given property:
// owner and property taken from the property itself, the price defaulted
// from the listing and a one-year term starting today.
func (s *ContractService) NewForm(propertyID uint) (*converter.ContractView, error) {
	property, err := s.properties.GetWithOwner(propertyID)
	if err != nil {
		return nil, err
	}

	lessees, err := s.lookups.LesseeOptions()
	if err != nil {
		return nil, err
	}

	today := time.Now().Truncate(24 * time.Hour)
	return &converter.ContractView{
		ContractInput: converter.ContractInput{
			OwnerID:    property.OwnerID,
			PropertyID: property.ID,
			Price:      property.Price,
			StartDate:  today,
			EndDate:    today.AddDate(1, 0, 0),
		},
		Lessees: lessees,
	}, nil
}

// Add creates a contract on the given property. The property must resolve;
// its owner and id override whatever the input carried, and the stored
// contract always gets a freshly assigned identifier.
func (s *ContractService) Add(propertyID uint, input converter.ContractInput) (*model.Contract, error) {
	property, err := s.properties.GetWithOwner(propertyID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("property %d: %w", propertyID, converter.ErrReferenceNotFound)
		}
		return nil, err
	}

	input.OwnerID = property.OwnerID
	input.PropertyID = property.ID

	contract, err := s.converter.ToContract(input, true)
	if err != nil {
		return nil, err
	}
	if err := s.contracts.Create(contract); err != nil {
		return nil, fmt.Errorf("create contract: %w", err)
	}
	return contract, nil
}

// Edit performs a full replace of the contract's mutable fields. The
// identifier is preserved and every reference must resolve.
func (s *ContractService) Edit(id uint, input converter.ContractInput) (*model.Contract, error) {
	existing, err := s.contracts.Get(id)
	if err != nil {
		return nil, err
	}

	input.ID = existing.ID
	contract, err := s.converter.ToContract(input, false)
	if err != nil {
		return nil, err
	}
	// Save writes every column; keep the original creation timestamp.
	contract.CreatedAt = existing.CreatedAt
	if err := s.contracts.Save(contract); err != nil {
		return nil, fmt.Errorf("save contract: %w", err)
	}
	return contract, nil
}

// Delete removes the contract. The linked owner, lessee and property are
// shared by reference and stay untouched.
func (s *ContractService) Delete(id uint) (*model.Contract, error) {
	contract, err := s.contracts.GetWithProperty(id)
	if err != nil {
		return nil, err
	}
	if err := s.contracts.Delete(contract); err != nil {
		return nil, fmt.Errorf("delete contract: %w", err)
	}
	return contract, nil
}

// View returns the flat edit-form representation with the current lessee
// choices.
func (s *ContractService) View(id uint) (*converter.ContractView, error) {
	contract, err := s.contracts.GetWithRelations(id)
	if err != nil {
		return nil, err
	}
	return s.converter.ToContractView(contract)
}

// Details returns the contract with user records and the property type
// eagerly loaded.
func (s *ContractService) Details(id uint) (*model.Contract, error) {
	return s.contracts.GetDetails(id)
}

// List returns all contracts with their relation sets.
func (s *ContractService) List() ([]model.Contract, error) {
	return s.contracts.List()
}
