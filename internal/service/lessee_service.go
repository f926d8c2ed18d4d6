package service

import (
	"fmt"

	"gorm.io/gorm"

	"leasing-service/internal/identity"
	"leasing-service/internal/model"
	"leasing-service/internal/repository"
)

// LesseeService implements the lessee lifecycle, mirroring the owner flow
// with the Lessee role.
type LesseeService struct {
	db       *gorm.DB
	lessees  *repository.LesseeRepository
	identity identity.Provider
}

func NewLesseeService(db *gorm.DB, lessees *repository.LesseeRepository, provider identity.Provider) *LesseeService {
	return &LesseeService{db: db, lessees: lessees, identity: provider}
}

// RegisterLesseeInput carries the identity fields and credentials for a new
// lessee.
type RegisterLesseeInput struct {
	identity.UserFields
	Password string `json:"password"`
}

// Register creates the user through the identity provider, assigns the
// Lessee role and persists the lessee record.
func (s *LesseeService) Register(input RegisterLesseeInput) (*model.Lessee, error) {
	user, err := s.identity.CreateUser(input.UserFields, input.Password)
	if err != nil {
		return nil, err
	}

	// Undo the user creation on any later failure so a retry does not hit a
	// duplicate email.
	if err := s.identity.AssignRole(user.ID, identity.RoleLessee); err != nil {
		if _, delErr := s.identity.DeleteUserByEmail(user.Email); delErr != nil {
			return nil, fmt.Errorf("assign role: %w (user cleanup failed: %v)", err, delErr)
		}
		return nil, fmt.Errorf("assign role: %w", err)
	}

	lessee := model.Lessee{UserID: user.ID}
	if err := s.lessees.Create(&lessee); err != nil {
		if _, delErr := s.identity.DeleteUserByEmail(user.Email); delErr != nil {
			return nil, fmt.Errorf("create lessee: %w (user cleanup failed: %v)", err, delErr)
		}
		return nil, fmt.Errorf("create lessee: %w", err)
	}

	user.Role = identity.RoleLessee
	lessee.User = *user
	return &lessee, nil
}

// Edit overwrites every mutable field of the lessee's user record.
func (s *LesseeService) Edit(id uint, fields identity.UserFields) (*model.Lessee, error) {
	lessee, err := s.lessees.GetWithUser(id)
	if err != nil {
		return nil, err
	}

	lessee.User.Document = fields.Document
	lessee.User.FirstName = fields.FirstName
	lessee.User.LastName = fields.LastName
	lessee.User.Address = fields.Address
	lessee.User.PhoneNumber = fields.PhoneNumber

	if err := s.identity.UpdateUser(&lessee.User); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return lessee, nil
}

// Delete removes the lessee and its user record. Rejected with
// ErrHasDependents while contracts still reference the lessee.
func (s *LesseeService) Delete(id uint) error {
	lessee, err := s.lessees.GetWithUser(id)
	if err != nil {
		return err
	}

	contracts, err := s.lessees.CountContracts(lessee.ID)
	if err != nil {
		return err
	}
	if contracts > 0 {
		return fmt.Errorf("lessee %d has %d contracts: %w", lessee.ID, contracts, ErrHasDependents)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return s.lessees.WithTx(tx).Delete(lessee)
	})
	if err != nil {
		return fmt.Errorf("delete lessee: %w", err)
	}

	if _, err := s.identity.DeleteUserByEmail(lessee.User.Email); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// List returns all lessees with their user records.
func (s *LesseeService) List() ([]model.Lessee, error) {
	return s.lessees.ListWithUser()
}

// Details returns the lessee with its user record.
func (s *LesseeService) Details(id uint) (*model.Lessee, error) {
	return s.lessees.GetWithUser(id)
}
