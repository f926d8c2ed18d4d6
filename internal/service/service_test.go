package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"leasing-service/internal/converter"
	"leasing-service/internal/identity"
	"leasing-service/internal/lookup"
	"leasing-service/internal/model"
	"leasing-service/internal/repository"
	"leasing-service/pkg/jwtutil"
)

// fakeBlobStore records uploads instead of touching disk.
type fakeBlobStore struct {
	uploads int
}

func (s *fakeBlobStore) Upload(ctx context.Context, data []byte) (string, error) {
	s.uploads++
	return fmt.Sprintf("/images/%d.jpg", s.uploads), nil
}

type env struct {
	db         *gorm.DB
	blobs      *fakeBlobStore
	owners     *OwnerService
	lessees    *LesseeService
	properties *PropertyService
	types      *PropertyTypeService
	contracts  *ContractService
	identity   identity.Provider
}

func setupEnv(t *testing.T) *env {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&model.User{},
		&model.Owner{},
		&model.Lessee{},
		&model.PropertyType{},
		&model.Property{},
		&model.PropertyImage{},
		&model.Contract{},
	)
	require.NoError(t, err)

	jwt := jwtutil.NewJWTUtil(&jwtutil.JWTConfig{SigningKey: "test", ExpirationHours: 1})
	provider := identity.NewGormProvider(db, jwt)

	ownerRepo := repository.NewOwnerRepository(db)
	lesseeRepo := repository.NewLesseeRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)
	typeRepo := repository.NewPropertyTypeRepository(db)
	imageRepo := repository.NewPropertyImageRepository(db)
	contractRepo := repository.NewContractRepository(db)

	lookups := lookup.NewService(lesseeRepo, typeRepo)
	conv := converter.NewService(ownerRepo, lesseeRepo, propertyRepo, typeRepo, lookups)
	blobs := &fakeBlobStore{}

	return &env{
		db:         db,
		blobs:      blobs,
		owners:     NewOwnerService(db, ownerRepo, provider),
		lessees:    NewLesseeService(db, lesseeRepo, provider),
		properties: NewPropertyService(db, propertyRepo, imageRepo, conv, blobs),
		types:      NewPropertyTypeService(typeRepo),
		contracts:  NewContractService(db, contractRepo, propertyRepo, conv, lookups),
		identity:   provider,
	}
}

func registerOwner(t *testing.T, e *env, email string) *model.Owner {
	owner, err := e.owners.Register(RegisterOwnerInput{
		UserFields: identity.UserFields{
			Email:     email,
			Document:  "100",
			FirstName: "Ana",
			LastName:  "Gomez",
		},
		Password: "secret123",
	})
	require.NoError(t, err)
	return owner
}

func registerLessee(t *testing.T, e *env, email string) *model.Lessee {
	lessee, err := e.lessees.Register(RegisterLesseeInput{
		UserFields: identity.UserFields{
			Email:     email,
			Document:  "200",
			FirstName: "Luis",
			LastName:  "Diaz",
		},
		Password: "secret123",
	})
	require.NoError(t, err)
	return lessee
}

func addProperty(t *testing.T, e *env, ownerID uint) *model.Property {
	propertyType, err := e.types.Add("Apartment")
	require.NoError(t, err)

	property, err := e.properties.Add(converter.PropertyInput{
		OwnerID:        ownerID,
		PropertyTypeID: propertyType.ID,
		Address:        "Calle 80 #12-34",
		Price:          500000,
		Rooms:          3,
		IsAvailable:    true,
	})
	require.NoError(t, err)
	return property
}

func TestRegisterOwnerAssignsRole(t *testing.T) {
	e := setupEnv(t)

	owner := registerOwner(t, e, "ana@example.com")
	assert.NotZero(t, owner.ID)

	user, err := e.identity.GetUserByEmail("ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, identity.RoleOwner, user.Role)
	assert.Equal(t, user.ID, owner.UserID)
}

func TestRegisterOwnerDuplicateEmail(t *testing.T) {
	e := setupEnv(t)

	registerOwner(t, e, "ana@example.com")

	_, err := e.owners.Register(RegisterOwnerInput{
		UserFields: identity.UserFields{Email: "ana@example.com", Document: "101", FirstName: "Ana", LastName: "Gomez"},
		Password:   "secret123",
	})
	assert.ErrorIs(t, err, identity.ErrDuplicateEmail)

	// No second owner row was created.
	var count int64
	require.NoError(t, e.db.Model(&model.Owner{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

// failingRoleProvider rejects every role assignment.
type failingRoleProvider struct {
	identity.Provider
}

func (p *failingRoleProvider) AssignRole(userID uint, role string) error {
	return errors.New("role backend unavailable")
}

func TestRegisterOwnerRoleFailureCleansUpUser(t *testing.T) {
	e := setupEnv(t)

	broken := NewOwnerService(e.db, repository.NewOwnerRepository(e.db), &failingRoleProvider{e.identity})
	_, err := broken.Register(RegisterOwnerInput{
		UserFields: identity.UserFields{Email: "ana@example.com", Document: "100", FirstName: "Ana", LastName: "Gomez"},
		Password:   "secret123",
	})
	require.Error(t, err)

	// The half-created user is removed, so the email stays usable.
	_, err = e.identity.GetUserByEmail("ana@example.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	registerOwner(t, e, "ana@example.com")
}

func TestEditOwnerReplacesUserFields(t *testing.T) {
	e := setupEnv(t)

	owner := registerOwner(t, e, "ana@example.com")

	updated, err := e.owners.Edit(owner.ID, identity.UserFields{
		Document:    "999",
		FirstName:   "Anna",
		LastName:    "Gomez",
		Address:     "Calle Nueva 1",
		PhoneNumber: "555-0100",
	})
	require.NoError(t, err)
	assert.Equal(t, "999", updated.User.Document)
	assert.Equal(t, "Anna", updated.User.FirstName)
	assert.Equal(t, "Calle Nueva 1", updated.User.Address)
	// The email is the identity key and stays put.
	assert.Equal(t, "ana@example.com", updated.User.Email)
}

func TestEditOwnerNotFound(t *testing.T) {
	e := setupEnv(t)

	_, err := e.owners.Edit(999, identity.UserFields{})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteOwnerRejectedWhileDependentsExist(t *testing.T) {
	e := setupEnv(t)

	owner := registerOwner(t, e, "ana@example.com")
	property := addProperty(t, e, owner.ID)

	err := e.owners.Delete(owner.ID)
	assert.ErrorIs(t, err, ErrHasDependents)

	// Repeated calls fail the same way until the dependents are gone.
	err = e.owners.Delete(owner.ID)
	assert.ErrorIs(t, err, ErrHasDependents)

	require.NoError(t, e.properties.Delete(property.ID))
	require.NoError(t, e.owners.Delete(owner.ID))

	_, err = e.owners.Details(owner.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = e.identity.GetUserByEmail("ana@example.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAddPropertyStoresMatchingReferences(t *testing.T) {
	e := setupEnv(t)

	owner := registerOwner(t, e, "ana@example.com")
	property := addProperty(t, e, owner.ID)

	stored, err := e.properties.Details(property.ID)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, stored.Owner.ID)
	assert.Equal(t, "Apartment", stored.PropertyType.Name)
	assert.Equal(t, 500000.0, stored.Price)
}

func TestAddPropertyMissingReference(t *testing.T) {
	e := setupEnv(t)

	owner := registerOwner(t, e, "ana@example.com")

	_, err := e.properties.Add(converter.PropertyInput{
		OwnerID:        owner.ID,
		PropertyTypeID: 999,
		Address:        "Calle 80 #12-34",
	})
	assert.ErrorIs(t, err, converter.ErrReferenceNotFound)

	_, err = e.properties.Add(converter.PropertyInput{
		OwnerID:        999,
		PropertyTypeID: 1,
		Address:        "Calle 80 #12-34",
	})
	assert.ErrorIs(t, err, converter.ErrReferenceNotFound)
}

func TestEditPropertyFullReplace(t *testing.T) {
	e := setupEnv(t)

	owner := registerOwner(t, e, "ana@example.com")
	property := addProperty(t, e, owner.ID)

	updated, err := e.properties.Edit(converter.PropertyInput{
		ID:             property.ID,
		OwnerID:        property.OwnerID,
		PropertyTypeID: property.PropertyTypeID,
		Address:        "Carrera 7 #45-10",
		Price:          600000,
		Rooms:          4,
		IsAvailable:    false,
	})
	require.NoError(t, err)
	assert.Equal(t, property.ID, updated.ID)
	assert.Equal(t, "Carrera 7 #45-10", updated.Address)
	assert.Equal(t, 600000.0, updated.Price)
	assert.False(t, updated.IsAvailable)
}

func TestEditPropertyKeepsCreationTimestamp(t *testing.T) {
	e := setupEnv(t)

	owner := registerOwner(t, e, "ana@example.com")
	property := addProperty(t, e, owner.ID)

	var before model.Property
	require.NoError(t, e.db.First(&before, property.ID).Error)
	require.False(t, before.CreatedAt.IsZero())

	_, err := e.properties.Edit(converter.PropertyInput{
		ID:             property.ID,
		OwnerID:        property.OwnerID,
		PropertyTypeID: property.PropertyTypeID,
		Address:        "Carrera 7 #45-10",
		Price:          600000,
	})
	require.NoError(t, err)

	var after model.Property
	require.NoError(t, e.db.First(&after, property.ID).Error)
	assert.Equal(t, before.CreatedAt, after.CreatedAt)
}

func TestEditPropertyNotFound(t *testing.T) {
	e := setupEnv(t)

	_, err := e.properties.Edit(converter.PropertyInput{ID: 999})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeletePropertyCascadesImages(t *testing.T) {
	e := setupEnv(t)

	owner := registerOwner(t, e, "ana@example.com")
	property := addProperty(t, e, owner.ID)

	_, err := e.properties.AddImage(context.Background(), property.ID, []byte("jpeg-bytes"))
	require.NoError(t, err)

	require.NoError(t, e.properties.Delete(property.ID))

	var images int64
	require.NoError(t, e.db.Model(&model.PropertyImage{}).Where("property_id = ?", property.ID).Count(&images).Error)
	assert.Equal(t, int64(0), images)
}

func TestDeletePropertyRejectedWhileContractsExist(t *testing.T) {
	e := setupEnv(t)

	owner := registerOwner(t, e, "ana@example.com")
	lessee := registerLessee(t, e, "luis@example.com")
	property := addProperty(t, e, owner.ID)

	_, err := e.contracts.Add(property.ID, converter.ContractInput{
		LesseeID:  lessee.ID,
		Price:     450000,
		StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		IsActive:  true,
	})
	require.NoError(t, err)

	err = e.properties.Delete(property.ID)
	assert.ErrorIs(t, err, ErrHasDependents)
}

func TestAddImageEmptyFileAccepted(t *testing.T) {
	e := setupEnv(t)

	owner := registerOwner(t, e, "ana@example.com")
	property := addProperty(t, e, owner.ID)

	image, err := e.properties.AddImage(context.Background(), property.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, image.ImageURL)
	assert.Zero(t, e.blobs.uploads)
}

func TestAddImageUploadsFile(t *testing.T) {
	e := setupEnv(t)

	owner := registerOwner(t, e, "ana@example.com")
	property := addProperty(t, e, owner.ID)

	image, err := e.properties.AddImage(context.Background(), property.ID, []byte("jpeg-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "/images/1.jpg", image.ImageURL)
	assert.Equal(t, property.ID, image.PropertyID)
}

func TestAddImagePropertyMissing(t *testing.T) {
	e := setupEnv(t)

	_, err := e.properties.AddImage(context.Background(), 999, []byte("jpeg-bytes"))
	assert.ErrorIs(t, err, converter.ErrReferenceNotFound)
}

func TestDeleteImageLeavesProperty(t *testing.T) {
	e := setupEnv(t)

	owner := registerOwner(t, e, "ana@example.com")
	property := addProperty(t, e, owner.ID)

	image, err := e.properties.AddImage(context.Background(), property.ID, []byte("jpeg-bytes"))
	require.NoError(t, err)

	_, err = e.properties.DeleteImage(image.ID)
	require.NoError(t, err)

	_, err = e.properties.Details(property.ID)
	assert.NoError(t, err)
}

func TestAddContractAssignsFreshIdentifier(t *testing.T) {
	e := setupEnv(t)

	owner := registerOwner(t, e, "ana@example.com")
	lessee := registerLessee(t, e, "luis@example.com")
	property := addProperty(t, e, owner.ID)

	contract, err := e.contracts.Add(property.ID, converter.ContractInput{
		ID:        42,
		OwnerID:   888, // overridden by the property's owner
		LesseeID:  lessee.ID,
		Price:     450000,
		StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		IsActive:  true,
	})
	require.NoError(t, err)
	assert.NotZero(t, contract.ID)
	assert.NotEqual(t, uint(42), contract.ID)
	assert.Equal(t, owner.ID, contract.OwnerID)
	assert.Equal(t, property.ID, contract.PropertyID)
}

func TestAddContractPropertyMissing(t *testing.T) {
	e := setupEnv(t)

	_, err := e.contracts.Add(999, converter.ContractInput{})
	assert.ErrorIs(t, err, converter.ErrReferenceNotFound)
}

func TestAddContractLesseeMissing(t *testing.T) {
	e := setupEnv(t)

	owner := registerOwner(t, e, "ana@example.com")
	property := addProperty(t, e, owner.ID)

	_, err := e.contracts.Add(property.ID, converter.ContractInput{LesseeID: 0})
	assert.ErrorIs(t, err, converter.ErrReferenceNotFound)
}

func TestEditContractPreservesIdentifier(t *testing.T) {
	e := setupEnv(t)

	owner := registerOwner(t, e, "ana@example.com")
	lessee := registerLessee(t, e, "luis@example.com")
	property := addProperty(t, e, owner.ID)

	contract, err := e.contracts.Add(property.ID, converter.ContractInput{
		LesseeID:  lessee.ID,
		Price:     450000,
		StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		IsActive:  true,
	})
	require.NoError(t, err)

	updated, err := e.contracts.Edit(contract.ID, converter.ContractInput{
		OwnerID:    owner.ID,
		LesseeID:   lessee.ID,
		PropertyID: property.ID,
		Price:      475000,
		StartDate:  contract.StartDate,
		EndDate:    contract.EndDate,
		IsActive:   false,
		Remarks:    "renegotiated",
	})
	require.NoError(t, err)
	assert.Equal(t, contract.ID, updated.ID)
	assert.Equal(t, 475000.0, updated.Price)
	assert.False(t, updated.IsActive)
}

func TestEditContractKeepsCreationTimestamp(t *testing.T) {
	e := setupEnv(t)

	owner := registerOwner(t, e, "ana@example.com")
	lessee := registerLessee(t, e, "luis@example.com")
	property := addProperty(t, e, owner.ID)

	contract, err := e.contracts.Add(property.ID, converter.ContractInput{
		LesseeID:  lessee.ID,
		Price:     450000,
		StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	var before model.Contract
	require.NoError(t, e.db.First(&before, contract.ID).Error)
	require.False(t, before.CreatedAt.IsZero())

	_, err = e.contracts.Edit(contract.ID, converter.ContractInput{
		OwnerID:    owner.ID,
		LesseeID:   lessee.ID,
		PropertyID: property.ID,
		Price:      475000,
		StartDate:  contract.StartDate,
		EndDate:    contract.EndDate,
	})
	require.NoError(t, err)

	var after model.Contract
	require.NoError(t, e.db.First(&after, contract.ID).Error)
	assert.Equal(t, before.CreatedAt, after.CreatedAt)
}

func TestEditContractNotFound(t *testing.T) {
	e := setupEnv(t)

	_, err := e.contracts.Edit(999, converter.ContractInput{})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteContractLeavesRelations(t *testing.T) {
	e := setupEnv(t)

	owner := registerOwner(t, e, "ana@example.com")
	lessee := registerLessee(t, e, "luis@example.com")
	property := addProperty(t, e, owner.ID)

	contract, err := e.contracts.Add(property.ID, converter.ContractInput{
		LesseeID:  lessee.ID,
		Price:     450000,
		StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	_, err = e.contracts.Delete(contract.ID)
	require.NoError(t, err)

	_, err = e.properties.Details(property.ID)
	assert.NoError(t, err)
	_, err = e.lessees.Details(lessee.ID)
	assert.NoError(t, err)
}

// Several active contracts on one property are currently allowed; whether
// that should be restricted is an open product question.
func TestMultipleActiveContractsAllowed(t *testing.T) {
	e := setupEnv(t)

	owner := registerOwner(t, e, "ana@example.com")
	lessee := registerLessee(t, e, "luis@example.com")
	property := addProperty(t, e, owner.ID)

	for i := 0; i < 2; i++ {
		_, err := e.contracts.Add(property.ID, converter.ContractInput{
			LesseeID:  lessee.ID,
			Price:     450000,
			StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			IsActive:  true,
		})
		require.NoError(t, err)
	}

	contracts, err := e.contracts.List()
	require.NoError(t, err)
	assert.Len(t, contracts, 2)
}

func TestContractNewFormDefaults(t *testing.T) {
	e := setupEnv(t)

	owner := registerOwner(t, e, "ana@example.com")
	property := addProperty(t, e, owner.ID)

	view, err := e.contracts.NewForm(property.ID)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, view.OwnerID)
	assert.Equal(t, property.ID, view.PropertyID)
	assert.Equal(t, property.Price, view.Price)
	assert.Equal(t, view.StartDate.AddDate(1, 0, 0), view.EndDate)
	require.NotEmpty(t, view.Lessees)
	assert.Equal(t, "0", view.Lessees[0].Value)
}

func TestDeleteLesseeRejectedWhileContractsExist(t *testing.T) {
	e := setupEnv(t)

	owner := registerOwner(t, e, "ana@example.com")
	lessee := registerLessee(t, e, "luis@example.com")
	property := addProperty(t, e, owner.ID)

	_, err := e.contracts.Add(property.ID, converter.ContractInput{
		LesseeID:  lessee.ID,
		Price:     450000,
		StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	err = e.lessees.Delete(lessee.ID)
	assert.ErrorIs(t, err, ErrHasDependents)
	err = e.lessees.Delete(lessee.ID)
	assert.ErrorIs(t, err, ErrHasDependents)
}

func TestDeletePropertyTypeRejectedWhileUsed(t *testing.T) {
	e := setupEnv(t)

	owner := registerOwner(t, e, "ana@example.com")
	property := addProperty(t, e, owner.ID)

	err := e.types.Delete(property.PropertyTypeID)
	assert.ErrorIs(t, err, ErrHasDependents)
}
