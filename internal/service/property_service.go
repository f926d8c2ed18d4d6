package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"leasing-service/internal/blob"
	"leasing-service/internal/converter"
	"leasing-service/internal/model"
	"leasing-service/internal/repository"
)

// PropertyService implements the property lifecycle including owned images.
type PropertyService struct {
	db         *gorm.DB
	properties *repository.PropertyRepository
	images     *repository.PropertyImageRepository
	converter  *converter.Service
	blobs      blob.Store
}

func NewPropertyService(
	db *gorm.DB,
	properties *repository.PropertyRepository,
	images *repository.PropertyImageRepository,
	conv *converter.Service,
	blobs blob.Store,
) *PropertyService {
	return &PropertyService{
		db:         db,
		properties: properties,
		images:     images,
		converter:  conv,
		blobs:      blobs,
	}
}

// Add resolves the owner and property type references and inserts a new
// property. Missing references surface as converter.ErrReferenceNotFound.
func (s *PropertyService) Add(input converter.PropertyInput) (*model.Property, error) {
	input.ID = 0
	property, err := s.converter.ToProperty(input, true)
	if err != nil {
		return nil, err
	}
	if err := s.properties.Create(property); err != nil {
		return nil, fmt.Errorf("create property: %w", err)
	}
	return property, nil
}

// Edit performs a full replace of the property identified by input.ID. The
// property must exist and every reference must resolve.
func (s *PropertyService) Edit(input converter.PropertyInput) (*model.Property, error) {
	existing, err := s.properties.Get(input.ID)
	if err != nil {
		return nil, err
	}
	property, err := s.converter.ToProperty(input, false)
	if err != nil {
		return nil, err
	}
	// Save writes every column; keep the original creation timestamp.
	property.CreatedAt = existing.CreatedAt
	if err := s.properties.Save(property); err != nil {
		return nil, fmt.Errorf("save property: %w", err)
	}
	return property, nil
}

// Delete removes the property and cascades to its images in one
// transaction. Contracts are shared rental history, so deletion is
// rejected with ErrHasDependents while any contract references the
// property.
func (s *PropertyService) Delete(id uint) error {
	property, err := s.properties.GetWithOwner(id)
	if err != nil {
		return err
	}

	contracts, err := s.properties.CountContracts(property.ID)
	if err != nil {
		return err
	}
	if contracts > 0 {
		return fmt.Errorf("property %d has %d contracts: %w", property.ID, contracts, ErrHasDependents)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.properties.WithTx(tx)
		if err := repo.DeleteImages(property.ID); err != nil {
			return fmt.Errorf("delete property images: %w", err)
		}
		if err := repo.Delete(property); err != nil {
			return fmt.Errorf("delete property: %w", err)
		}
		return nil
	})
}

// AddImage uploads the file through the blob store and attaches the
// resulting URL to the property. An empty or absent file is accepted and
// yields an empty URL.
func (s *PropertyService) AddImage(ctx context.Context, propertyID uint, file []byte) (*model.PropertyImage, error) {
	property, err := s.properties.Get(propertyID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("property %d: %w", propertyID, converter.ErrReferenceNotFound)
		}
		return nil, err
	}

	url := ""
	if len(file) > 0 {
		url, err = s.blobs.Upload(ctx, file)
		if err != nil {
			return nil, fmt.Errorf("upload image: %w", err)
		}
	}

	image := model.PropertyImage{
		PropertyID: property.ID,
		ImageURL:   url,
	}
	if err := s.images.Create(&image); err != nil {
		return nil, fmt.Errorf("create property image: %w", err)
	}
	return &image, nil
}

// DeleteImage removes a single image; the property itself is untouched.
func (s *PropertyService) DeleteImage(id uint) (*model.PropertyImage, error) {
	image, err := s.images.GetWithProperty(id)
	if err != nil {
		return nil, err
	}
	if err := s.images.Delete(image); err != nil {
		return nil, fmt.Errorf("delete property image: %w", err)
	}
	return image, nil
}

// Details returns the property with owner, rental history, type and images
// eagerly loaded.
func (s *PropertyService) Details(id uint) (*model.Property, error) {
	return s.properties.GetDetails(id)
}

// View returns the flat edit-form representation of the property with the
// current property type choices.
func (s *PropertyService) View(id uint) (*converter.PropertyView, error) {
	property, err := s.properties.GetWithOwnerAndType(id)
	if err != nil {
		return nil, err
	}
	return s.converter.ToPropertyView(property)
}
