package service

import (
	"fmt"

	"leasing-service/internal/model"
	"leasing-service/internal/repository"
)

// PropertyTypeService manages the property type categories referenced by
// properties.
type PropertyTypeService struct {
	types *repository.PropertyTypeRepository
}

func NewPropertyTypeService(types *repository.PropertyTypeRepository) *PropertyTypeService {
	return &PropertyTypeService{types: types}
}

func (s *PropertyTypeService) List() ([]model.PropertyType, error) {
	return s.types.List()
}

func (s *PropertyTypeService) Add(name string) (*model.PropertyType, error) {
	propertyType := model.PropertyType{Name: name}
	if err := s.types.Create(&propertyType); err != nil {
		return nil, fmt.Errorf("create property type: %w", err)
	}
	return &propertyType, nil
}

func (s *PropertyTypeService) Edit(id uint, name string) (*model.PropertyType, error) {
	propertyType, err := s.types.Get(id)
	if err != nil {
		return nil, err
	}
	propertyType.Name = name
	if err := s.types.Save(propertyType); err != nil {
		return nil, fmt.Errorf("save property type: %w", err)
	}
	return propertyType, nil
}

// Delete removes the category. Rejected with ErrHasDependents while any
// property references it.
func (s *PropertyTypeService) Delete(id uint) error {
	propertyType, err := s.types.Get(id)
	if err != nil {
		return err
	}

	properties, err := s.types.CountProperties(propertyType.ID)
	if err != nil {
		return err
	}
	if properties > 0 {
		return fmt.Errorf("property type %d is used by %d properties: %w",
			propertyType.ID, properties, ErrHasDependents)
	}

	return s.types.Delete(propertyType)
}
