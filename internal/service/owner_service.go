package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"leasing-service/internal/identity"
	"leasing-service/internal/model"
	"leasing-service/internal/repository"
)

// OwnerService implements the owner lifecycle: registration through the
// identity provider, full-replace edits and guarded deletion.
type OwnerService struct {
	db       *gorm.DB
	owners   *repository.OwnerRepository
	identity identity.Provider
}

func NewOwnerService(db *gorm.DB, owners *repository.OwnerRepository, provider identity.Provider) *OwnerService {
	return &OwnerService{db: db, owners: owners, identity: provider}
}

// RegisterOwnerInput carries the identity fields and credentials for a new
// owner.
type RegisterOwnerInput struct {
	identity.UserFields
	Password string `json:"password"`
}

// Register creates the user through the identity provider, assigns the
// Owner role and persists the owner record. A duplicate email surfaces as
// identity.ErrDuplicateEmail; no owner row is created in that case.
func (s *OwnerService) Register(input RegisterOwnerInput) (*model.Owner, error) {
	user, err := s.identity.CreateUser(input.UserFields, input.Password)
	if err != nil {
		return nil, err
	}

	// Undo the user creation on any later failure so a retry does not hit a
	// duplicate email.
	if err := s.identity.AssignRole(user.ID, identity.RoleOwner); err != nil {
		if _, delErr := s.identity.DeleteUserByEmail(user.Email); delErr != nil {
			return nil, fmt.Errorf("assign role: %w (user cleanup failed: %v)", err, delErr)
		}
		return nil, fmt.Errorf("assign role: %w", err)
	}

	owner := model.Owner{UserID: user.ID}
	if err := s.owners.Create(&owner); err != nil {
		if _, delErr := s.identity.DeleteUserByEmail(user.Email); delErr != nil {
			return nil, fmt.Errorf("create owner: %w (user cleanup failed: %v)", err, delErr)
		}
		return nil, fmt.Errorf("create owner: %w", err)
	}

	user.Role = identity.RoleOwner
	owner.User = *user
	return &owner, nil
}

// Edit overwrites every mutable field of the owner's user record. The email
// is the identity key and stays unchanged.
func (s *OwnerService) Edit(id uint, fields identity.UserFields) (*model.Owner, error) {
	owner, err := s.owners.GetWithUser(id)
	if err != nil {
		return nil, err
	}

	owner.User.Document = fields.Document
	owner.User.FirstName = fields.FirstName
	owner.User.LastName = fields.LastName
	owner.User.Address = fields.Address
	owner.User.PhoneNumber = fields.PhoneNumber

	if err := s.identity.UpdateUser(&owner.User); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return owner, nil
}

// Delete removes the owner and its user record. Deletion is rejected with
// ErrHasDependents while properties or contracts still reference the owner;
// dependents are never removed implicitly.
func (s *OwnerService) Delete(id uint) error {
	owner, err := s.owners.GetWithUser(id)
	if err != nil {
		return err
	}

	properties, err := s.owners.CountProperties(owner.ID)
	if err != nil {
		return err
	}
	contracts, err := s.owners.CountContracts(owner.ID)
	if err != nil {
		return err
	}
	if properties > 0 || contracts > 0 {
		return fmt.Errorf("owner %d has %d properties and %d contracts: %w",
			owner.ID, properties, contracts, ErrHasDependents)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return s.owners.WithTx(tx).Delete(owner)
	})
	if err != nil {
		return fmt.Errorf("delete owner: %w", err)
	}

	if _, err := s.identity.DeleteUserByEmail(owner.User.Email); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// Details returns the owner with user, properties (type and images) and
// contracts eagerly loaded.
func (s *OwnerService) Details(id uint) (*model.Owner, error) {
	return s.owners.GetDetails(id)
}

// List returns all owners with their users, properties and contracts.
func (s *OwnerService) List() ([]model.Owner, error) {
	return s.owners.List()
}

// Exists reports whether an owner with the given id is present.
func (s *OwnerService) Exists(id uint) (bool, error) {
	_, err := s.owners.Get(id)
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
