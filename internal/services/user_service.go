package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "paisabook/internal/errors"
	"paisabook/internal/models"
)

// userService handles user-related business logic.
type userService struct {
	db *gorm.DB
}

// NewUserService creates a new UserServicer.
func NewUserService(db *gorm.DB) UserServicer {
	return &userService{db: db}
}

// CreateUser registers a new user keyed by account number.
func (s *userService) CreateUser(accountName, accountNumber, ifsc, password string) (*models.User, error) {
	if accountName == "" || accountNumber == "" || ifsc == "" || password == "" {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "accountName, accountNumber, ifsc and password are required")
	}

	var count int64
	s.db.Model(&models.User{}).Where("account_number = ?", accountNumber).Count(&count)
	if count > 0 {
		return nil, apperrors.ErrDuplicateAccount
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user := &models.User{
		AccountName:   accountName,
		AccountNumber: accountNumber,
		IFSC:          ifsc,
		PasswordHash:  string(hashedPassword),
	}

	if err := s.db.Create(user).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return user, nil
}

// GetUserByAccountNumber retrieves a user by account number
func (s *userService) GetUserByAccountNumber(accountNumber string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("account_number = ?", accountNumber).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(id string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// VerifyPassword checks if the provided password matches the stored hash
func (s *userService) VerifyPassword(user *models.User, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	return err == nil
}
