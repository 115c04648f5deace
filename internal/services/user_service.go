package services

import (
	"errors"

	"github.com/Aslam-01/Food-Managment/internal/apperr"
	"github.com/Aslam-01/Food-Managment/internal/models"
	"gorm.io/gorm"
)

type UserService interface {
	// Register hashes the user's password and persists the account.
	Register(user *models.User) error
	// Authenticate verifies email+password. Unknown email and wrong
	// password yield the same error so callers cannot enumerate users.
	Authenticate(email, password string) (*models.User, error)
}

type userService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) UserService {
	return &userService{db: db}
}

func (s *userService) Register(user *models.User) error {
	if err := user.HashPassword(); err != nil {
		return err
	}

	// The unique index on email is the single source of truth; relying on
	// it instead of a pre-check keeps concurrent signups from racing past
	// the duplicate detection.
	if err := s.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Validation(map[string][]string{
				"email": {"user with this email already exists"},
			})
		}
		return err
	}
	return nil
}

func (s *userService) Authenticate(email, password string) (*models.User, error) {
	invalidCredentials := apperr.NotFoundf("password and email is not valid")

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invalidCredentials
		}
		return nil, err
	}

	if !user.CheckPassword(password) {
		return nil, invalidCredentials
	}

	return &user, nil
}
