package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/roxyukipookie/CampusCart-Online-Marketplace-System/models"
	"github.com/roxyukipookie/CampusCart-Online-Marketplace-System/utils"
)

type AdminService struct {
	DB    *gorm.DB
	Users *UserService
}

func NewAdminService(db *gorm.DB, users *UserService) *AdminService {
	return &AdminService{DB: db, Users: users}
}

// Authenticate verifies an admin password against the stored bcrypt hash.
// Admins follow the same hashing discipline as users.
func (s *AdminService) Authenticate(username, password string) (*models.Admin, error) {
	var admin models.Admin
	if err := s.DB.First(&admin, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !utils.CheckPasswordHash(password, admin.Password) {
		return nil, ErrInvalidCredentials
	}
	return &admin, nil
}

// Add creates an admin account, hashing the password first.
func (s *AdminService) Add(admin *models.Admin) error {
	var count int64
	s.DB.Model(&models.Admin{}).Where("username = ?", admin.Username).Count(&count)
	if count > 0 {
		return fmt.Errorf("admin %s: %w", admin.Username, ErrUsernameTaken)
	}

	hashed, err := utils.HashPassword(admin.Password)
	if err != nil {
		return err
	}
	admin.Password = hashed

	return s.DB.Create(admin).Error
}

func (s *AdminService) GetByUsername(username string) (*models.Admin, error) {
	var admin models.Admin
	if err := s.DB.First(&admin, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("admin %s: %w", username, ErrNotFound)
		}
		return nil, err
	}
	return &admin, nil
}

func (s *AdminService) GetAll() ([]models.Admin, error) {
	var admins []models.Admin
	err := s.DB.Find(&admins).Error
	return admins, err
}

// UpdateDetails replaces the editable admin profile fields.
func (s *AdminService) UpdateDetails(username string, details *models.Admin) (*models.Admin, error) {
	admin, err := s.GetByUsername(username)
	if err != nil {
		return nil, err
	}

	admin.FirstName = details.FirstName
	admin.LastName = details.LastName
	admin.ContactNo = details.ContactNo
	admin.Email = details.Email

	if err := s.DB.Save(admin).Error; err != nil {
		return nil, err
	}
	return admin, nil
}

// ChangePassword re-verifies the current password before storing a new hash.
func (s *AdminService) ChangePassword(username, currentPassword, newPassword string) (*models.Admin, error) {
	admin, err := s.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if !utils.CheckPasswordHash(currentPassword, admin.Password) {
		return nil, ErrIncorrectPassword
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return nil, err
	}
	admin.Password = hashed

	if err := s.DB.Save(admin).Error; err != nil {
		return nil, err
	}
	return admin, nil
}

// SetProfilePhoto records the stored filename against the admin.
func (s *AdminService) SetProfilePhoto(username, fileName string) (*models.Admin, error) {
	admin, err := s.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	admin.ProfilePhoto = fileName
	if err := s.DB.Save(admin).Error; err != nil {
		return nil, err
	}
	return admin, nil
}

func (s *AdminService) Delete(username string) error {
	result := s.DB.Delete(&models.Admin{}, "username = ?", username)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("admin %s: %w", username, ErrNotFound)
	}
	return nil
}

// DeleteAccount removes either an admin or a user depending on role.
// User removal cascades through UserService.Delete.
func (s *AdminService) DeleteAccount(role, username string) error {
	switch strings.ToLower(role) {
	case "admin":
		return s.Delete(username)
	case "user":
		return s.Users.Delete(username)
	default:
		return ErrInvalidRole
	}
}
