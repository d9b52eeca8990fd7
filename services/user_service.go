package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/roxyukipookie/CampusCart-Online-Marketplace-System/models"
	"github.com/roxyukipookie/CampusCart-Online-Marketplace-System/utils"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// Register stores a new user after rejecting username and email conflicts.
// The password is hashed before it ever reaches the database.
func (s *UserService) Register(user *models.User) error {
	if s.ExistsByUsername(user.Username) {
		return fmt.Errorf("username %s: %w", user.Username, ErrUsernameTaken)
	}
	if s.existsByEmail(user.Email) {
		return ErrEmailTaken
	}

	hashed, err := utils.HashPassword(user.Password)
	if err != nil {
		return err
	}
	user.Password = hashed

	return s.DB.Create(user).Error
}

// Authenticate verifies the password against the stored bcrypt hash.
func (s *UserService) Authenticate(username, password string) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

func (s *UserService) GetByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %s: %w", username, ErrNotFound)
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) GetAll() ([]models.User, error) {
	var users []models.User
	err := s.DB.Find(&users).Error
	return users, err
}

// UpdateDetails replaces the editable profile fields. Username, password and
// profile photo are managed by their own operations.
func (s *UserService) UpdateDetails(username string, details *models.User) (*models.User, error) {
	user, err := s.GetByUsername(username)
	if err != nil {
		return nil, err
	}

	user.FirstName = details.FirstName
	user.LastName = details.LastName
	user.Address = details.Address
	user.ContactNo = details.ContactNo
	user.Email = details.Email

	if err := s.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword re-verifies the current password before storing a new hash.
func (s *UserService) ChangePassword(username, currentPassword, newPassword string) (*models.User, error) {
	user, err := s.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if !utils.CheckPasswordHash(currentPassword, user.Password) {
		return nil, ErrIncorrectPassword
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return nil, err
	}
	user.Password = hashed

	if err := s.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// SetProfilePhoto records the stored filename against the user.
func (s *UserService) SetProfilePhoto(username, fileName string) (*models.User, error) {
	user, err := s.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	user.ProfilePhoto = fileName
	if err := s.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes the user together with everything that hangs off them:
// messages in either direction, notifications and owned products. All of it
// commits or rolls back as one unit so no dangling rows survive.
func (s *UserService) Delete(username string) error {
	if _, err := s.GetByUsername(username); err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("sender_username = ? OR receiver_username = ?", username, username).
			Delete(&models.Message{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_username = ?", username).Delete(&models.Notification{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_username = ?", username).Delete(&models.Product{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, "username = ?", username).Error
	})
}

func (s *UserService) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("email %s: %w", email, ErrNotFound)
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) ExistsByUsername(username string) bool {
	var count int64
	s.DB.Model(&models.User{}).Where("username = ?", username).Count(&count)
	return count > 0
}

func (s *UserService) existsByEmail(email string) bool {
	var count int64
	s.DB.Model(&models.User{}).Where("email = ?", email).Count(&count)
	return count > 0
}

// ProvisionGoogleUser reuses the account registered under the e-mail address
// or creates one with a generated unique username. Google-provisioned accounts
// carry no usable password; they authenticate through the OAuth flow only.
func (s *UserService) ProvisionGoogleUser(email, fullName, profilePhoto, googleID string) (*models.User, error) {
	if existing, err := s.FindByEmail(email); err == nil {
		return existing, nil
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	firstNames := utils.ExtractFirstNames(fullName)
	lastName := utils.ExtractLastName(fullName)
	username := utils.GenerateUniqueUsername(firstNames, s.ExistsByUsername)

	user := &models.User{
		Username:     username,
		FirstName:    firstNames,
		LastName:     lastName,
		Email:        email,
		ProfilePhoto: profilePhoto,
		GoogleID:     googleID,
	}
	if err := s.DB.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}
