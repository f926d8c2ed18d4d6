// Package converter maps between the flat form inputs submitted by clients
// and the relational domain entities, resolving every foreign key through
// the repositories. Flat inputs and entities are separate types joined only
// here; nothing inherits from the domain model.
package converter

import (
	"errors"
	"fmt"
	"time"

	"leasing-service/internal/lookup"
	"leasing-service/internal/model"
	"leasing-service/internal/repository"
)

// ErrReferenceNotFound is returned when a submitted foreign key (including
// the sentinel value 0) does not resolve to an existing entity.
var ErrReferenceNotFound = errors.New("reference not found")

// ContractInput is the flat representation of a contract as submitted by a
// form.
type ContractInput struct {
	ID         uint      `json:"id"`
	OwnerID    uint      `json:"owner_id"`
	LesseeID   uint      `json:"lessee_id"`
	PropertyID uint      `json:"property_id"`
	Price      float64   `json:"price"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	IsActive   bool      `json:"is_active"`
	Remarks    string    `json:"remarks"`
}

// ContractView is the flat representation rendered back to a form,
// including the lessee choice list.
type ContractView struct {
	ContractInput
	Lessees []lookup.Option `json:"lessees"`
}

// PropertyInput is the flat representation of a property as submitted by a
// form.
type PropertyInput struct {
	ID             uint    `json:"id"`
	OwnerID        uint    `json:"owner_id"`
	PropertyTypeID uint    `json:"property_type_id"`
	Address        string  `json:"address"`
	Neighborhood   string  `json:"neighborhood"`
	Price          float64 `json:"price"`
	Rooms          int     `json:"rooms"`
	SquareMeters   int     `json:"square_meters"`
	Stratum        int     `json:"stratum"`
	HasParkingLot  bool    `json:"has_parking_lot"`
	IsAvailable    bool    `json:"is_available"`
	Remarks        string  `json:"remarks"`
}

// PropertyView is the flat property representation rendered back to a form,
// including the property type choice list.
type PropertyView struct {
	PropertyInput
	PropertyTypes []lookup.Option `json:"property_types"`
}

// Service resolves flat inputs against the repositories.
type Service struct {
	owners     *repository.OwnerRepository
	lessees    *repository.LesseeRepository
	properties *repository.PropertyRepository
	types      *repository.PropertyTypeRepository
	lookups    *lookup.Service
}

func NewService(
	owners *repository.OwnerRepository,
	lessees *repository.LesseeRepository,
	properties *repository.PropertyRepository,
	types *repository.PropertyTypeRepository,
	lookups *lookup.Service,
) *Service {
	return &Service{
		owners:     owners,
		lessees:    lessees,
		properties: properties,
		types:      types,
		lookups:    lookups,
	}
}

// ToContract resolves the input's lessee, owner and property references and
// builds the entity. When isNew is true the identifier is reset so that
// persisting always inserts a fresh row, whatever the input carried.
func (s *Service) ToContract(input ContractInput, isNew bool) (*model.Contract, error) {
	lessee, err := s.lessees.Get(input.LesseeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("lessee %d: %w", input.LesseeID, ErrReferenceNotFound)
		}
		return nil, err
	}

	owner, err := s.owners.Get(input.OwnerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("owner %d: %w", input.OwnerID, ErrReferenceNotFound)
		}
		return nil, err
	}

	property, err := s.properties.Get(input.PropertyID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("property %d: %w", input.PropertyID, ErrReferenceNotFound)
		}
		return nil, err
	}

	id := input.ID
	if isNew {
		id = 0
	}

	return &model.Contract{
		ID:         id,
		OwnerID:    owner.ID,
		LesseeID:   lessee.ID,
		PropertyID: property.ID,
		Price:      input.Price,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		IsActive:   input.IsActive,
		Remarks:    input.Remarks,
	}, nil
}

// ToContractView maps a contract back to its flat representation and
// attaches the current lessee choice list for re-rendering.
func (s *Service) ToContractView(contract *model.Contract) (*ContractView, error) {
	lessees, err := s.lookups.LesseeOptions()
	if err != nil {
		return nil, err
	}

	return &ContractView{
		ContractInput: ContractInput{
			ID:         contract.ID,
			OwnerID:    contract.OwnerID,
			LesseeID:   contract.LesseeID,
			PropertyID: contract.PropertyID,
			Price:      contract.Price,
			StartDate:  contract.StartDate,
			EndDate:    contract.EndDate,
			IsActive:   contract.IsActive,
			Remarks:    contract.Remarks,
		},
		Lessees: lessees,
	}, nil
}

// ToProperty resolves the input's owner and property type references and
// builds the entity, with the same isNew identifier contract as ToContract.
func (s *Service) ToProperty(input PropertyInput, isNew bool) (*model.Property, error) {
	owner, err := s.owners.Get(input.OwnerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("owner %d: %w", input.OwnerID, ErrReferenceNotFound)
		}
		return nil, err
	}

	propertyType, err := s.types.Get(input.PropertyTypeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("property type %d: %w", input.PropertyTypeID, ErrReferenceNotFound)
		}
		return nil, err
	}

	id := input.ID
	if isNew {
		id = 0
	}

	return &model.Property{
		ID:             id,
		OwnerID:        owner.ID,
		PropertyTypeID: propertyType.ID,
		Address:        input.Address,
		Neighborhood:   input.Neighborhood,
		Price:          input.Price,
		Rooms:          input.Rooms,
		SquareMeters:   input.SquareMeters,
		Stratum:        input.Stratum,
		HasParkingLot:  input.HasParkingLot,
		IsAvailable:    input.IsAvailable,
		Remarks:        input.Remarks,
	}, nil
}

// ToPropertyView maps a property back to its flat representation and
// attaches the current property type choice list.
func (s *Service) ToPropertyView(property *model.Property) (*PropertyView, error) {
	types, err := s.lookups.PropertyTypeOptions()
	if err != nil {
		return nil, err
	}

	return &PropertyView{
		PropertyInput: PropertyInput{
			ID:             property.ID,
			OwnerID:        property.OwnerID,
			PropertyTypeID: property.PropertyTypeID,
			Address:        property.Address,
			Neighborhood:   property.Neighborhood,
			Price:          property.Price,
			Rooms:          property.Rooms,
			SquareMeters:   property.SquareMeters,
			Stratum:        property.Stratum,
			HasParkingLot:  property.HasParkingLot,
			IsAvailable:    property.IsAvailable,
			Remarks:        property.Remarks,
		},
		PropertyTypes: types,
	}, nil
}
