package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/roxyukipookie/CampusCart-Online-Marketplace-System/models"
)

type ProductService struct {
	DB            *gorm.DB
	Notifications *NotificationService
}

func NewProductService(db *gorm.DB, notifications *NotificationService) *ProductService {
	return &ProductService{DB: db, Notifications: notifications}
}

// Create stores a new listing for an existing owner. Status defaults to
// Pending so the listing stays invisible until an admin approves it.
func (s *ProductService) Create(product *models.Product) error {
	var count int64
	s.DB.Model(&models.User{}).Where("username = ?", product.UserUsername).Count(&count)
	if count == 0 {
		return fmt.Errorf("user %s: %w", product.UserUsername, ErrNotFound)
	}

	if product.Status == "" {
		product.Status = models.StatusPending
	}
	return s.DB.Create(product).Error
}

func (s *ProductService) GetByCode(code int) (*models.Product, error) {
	var product models.Product
	if err := s.DB.Preload("User").First(&product, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %d: %w", code, ErrNotFound)
		}
		return nil, err
	}
	return &product, nil
}

// GetByUser returns the listings owned by the user.
func (s *ProductService) GetByUser(username string) ([]models.Product, error) {
	var products []models.Product
	err := s.DB.Where("user_username = ?", username).Find(&products).Error
	return products, err
}

// GetAllExcept returns everyone else's listings, the marketplace browse view.
func (s *ProductService) GetAllExcept(username string) ([]models.Product, error) {
	var products []models.Product
	err := s.DB.Preload("User").Where("user_username <> ?", username).Find(&products).Error
	return products, err
}

func (s *ProductService) GetAll() ([]models.Product, error) {
	var products []models.Product
	err := s.DB.Preload("User").Find(&products).Error
	return products, err
}

// Filter composes the optional predicates conjunctively; an empty value
// matches everything. The requesting user's own listings are excluded.
func (s *ProductService) Filter(username, category, status, conditionType string) ([]models.Product, error) {
	query := s.DB.Preload("User")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if conditionType != "" {
		query = query.Where("condition_type = ?", conditionType)
	}
	if username != "" {
		query = query.Where("user_username <> ?", username)
	}

	var products []models.Product
	err := query.Find(&products).Error
	return products, err
}

// Update replaces the listing fields an owner may edit. Ownership and image
// path are left untouched.
func (s *ProductService) Update(code int, updated *models.Product) (*models.Product, error) {
	product, err := s.GetByCode(code)
	if err != nil {
		return nil, err
	}

	product.Name = updated.Name
	product.PdtDescription = updated.PdtDescription
	product.BuyPrice = updated.BuyPrice
	product.Category = updated.Category
	product.Status = updated.Status
	product.ConditionType = updated.ConditionType

	if err := s.DB.Save(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Delete(code int) error {
	result := s.DB.Delete(&models.Product{}, "code = ?", code)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("product %d: %w", code, ErrNotFound)
	}
	return nil
}

// DeleteByCodes removes every listing whose code is in the list and reports
// how many rows actually went away.
func (s *ProductService) DeleteByCodes(codes []int) (int64, error) {
	result := s.DB.Where("code IN ?", codes).Delete(&models.Product{})
	return result.RowsAffected, result.Error
}

// Approve moves a Pending listing to Approved and notifies the owner. The
// status change and the notification commit together.
func (s *ProductService) Approve(code int) error {
	var created *models.Notification

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, "code = ?", code).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("product %d: %w", code, ErrNotFound)
			}
			return err
		}
		if product.Status != models.StatusPending {
			return ErrNotPending
		}

		product.Status = models.StatusApproved
		if err := tx.Save(&product).Error; err != nil {
			return err
		}

		message := fmt.Sprintf("Your product '%s' has been approved!", product.Name)
		notification, err := s.Notifications.CreateInTx(tx, message, "info", product.UserUsername)
		if err != nil {
			return err
		}
		created = notification
		return nil
	})
	if err != nil {
		return err
	}

	s.Notifications.publish(created)
	return nil
}

// Reject moves the listing to Rejected, stores the admin feedback and
// notifies the owner with that feedback, all in one transaction.
func (s *ProductService) Reject(code int, feedback string) error {
	var created *models.Notification

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, "code = ?", code).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("product %d: %w", code, ErrNotFound)
			}
			return err
		}

		product.Status = models.StatusRejected
		product.Feedback = feedback
		if err := tx.Save(&product).Error; err != nil {
			return err
		}

		message := fmt.Sprintf("Your product %s has been rejected. Feedback: %s", product.Name, feedback)
		notification, err := s.Notifications.CreateInTx(tx, message, "rejection", product.UserUsername)
		if err != nil {
			return err
		}
		created = notification
		return nil
	})
	if err != nil {
		return err
	}

	s.Notifications.publish(created)
	return nil
}

// ProductWithUser is the admin moderation row: the listing plus its owner.
type ProductWithUser struct {
	Product      models.Product `json:"product"`
	ProductName  string         `json:"productName"`
	ProductCode  int            `json:"productCode"`
	Category     string         `json:"category"`
	Status       string         `json:"status"`
	Image        string         `json:"image"`
	UserUsername string         `json:"userUsername"`
}

func (s *ProductService) GetAllWithUsers() ([]ProductWithUser, error) {
	products, err := s.GetAll()
	if err != nil {
		return nil, err
	}

	rows := make([]ProductWithUser, 0, len(products))
	for _, p := range products {
		owner := p.UserUsername
		if owner == "" {
			owner = "Unknown"
		}
		rows = append(rows, ProductWithUser{
			Product:      p,
			ProductName:  p.Name,
			ProductCode:  p.Code,
			Category:     p.Category,
			Status:       p.Status,
			Image:        p.ImagePath,
			UserUsername: owner,
		})
	}
	return rows, nil
}
