// Package identity owns the user records behind owners and lessees:
// creation, role assignment, credential checks and deletion. The rest of
// the service only refers to users, it never writes them directly.
package identity

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"leasing-service/internal/model"
	"leasing-service/internal/repository"
	"leasing-service/pkg/jwtutil"
)

var (
	// ErrDuplicateEmail is returned when the email is already registered.
	// Surfaced to callers as a correctable validation error.
	ErrDuplicateEmail = errors.New("email already in use")

	// ErrInvalidCredentials is returned on failed login attempts.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserFields carries the mutable identity attributes submitted by forms.
type UserFields struct {
	Email       string `json:"email"`
	Document    string `json:"document"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
}

// Provider is the narrow identity contract the domain operations depend on.
type Provider interface {
	CreateUser(fields UserFields, password string) (*model.User, error)
	GetUserByEmail(email string) (*model.User, error)
	AssignRole(userID uint, role string) error
	UpdateUser(user *model.User) error
	DeleteUserByEmail(email string) (bool, error)
	Login(email, password string) (string, error)
}

// GormProvider implements Provider on the relational store with bcrypt
// password hashing and JWT session tokens.
type GormProvider struct {
	db  *gorm.DB
	jwt *jwtutil.JWTUtil
}

func NewGormProvider(db *gorm.DB, jwt *jwtutil.JWTUtil) *GormProvider {
	return &GormProvider{db: db, jwt: jwt}
}

// WithTx returns a provider bound to the given transaction handle.
func (p *GormProvider) WithTx(tx *gorm.DB) *GormProvider {
	return &GormProvider{db: tx, jwt: p.jwt}
}

// CreateUser registers a new user. The email must not be in use.
func (p *GormProvider) CreateUser(fields UserFields, password string) (*model.User, error) {
	var existing model.User
	result := p.db.Where("email = ?", fields.Email).First(&existing)
	if result.Error == nil {
		return nil, fmt.Errorf("%s: %w", fields.Email, ErrDuplicateEmail)
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check existing user: %w", result.Error)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := model.User{
		Email:       fields.Email,
		Password:    string(hashed),
		Document:    fields.Document,
		FirstName:   fields.FirstName,
		LastName:    fields.LastName,
		Address:     fields.Address,
		PhoneNumber: fields.PhoneNumber,
	}
	if err := p.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return &user, nil
}

func (p *GormProvider) GetUserByEmail(email string) (*model.User, error) {
	var user model.User
	if err := p.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %s: %w", email, repository.ErrNotFound)
		}
		return nil, err
	}
	return &user, nil
}

func (p *GormProvider) AssignRole(userID uint, role string) error {
	return p.db.Model(&model.User{}).Where("id = ?", userID).Update("role", role).Error
}

// UpdateUser performs a full replace of the user's mutable fields.
func (p *GormProvider) UpdateUser(user *model.User) error {
	return p.db.Save(user).Error
}

// DeleteUserByEmail removes the user record for good so the email can be
// registered again; a soft delete would keep the row pinned under the
// unique email index. Returns false when no user with that email exists.
func (p *GormProvider) DeleteUserByEmail(email string) (bool, error) {
	result := p.db.Unscoped().Where("email = ?", email).Delete(&model.User{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Login verifies the credentials and returns a signed session token.
func (p *GormProvider) Login(email, password string) (string, error) {
	var user model.User
	if err := p.db.Where("email = ?", email).First(&user).Error; err != nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := p.jwt.GenerateToken(user.Email, user.ID, user.Role)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return token, nil
}
