package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/roxyukipookie/CampusCart-Online-Marketplace-System/models"
)

// MessageDTO is the wire shape of a message with sender, receiver and
// product display fields flattened in.
type MessageDTO struct {
	ID           uint      `json:"id"`
	SenderID     string    `json:"senderId"`
	SenderName   string    `json:"senderName"`
	ReceiverID   string    `json:"receiverId"`
	ReceiverName string    `json:"receiverName"`
	Content      string    `json:"content"`
	IsRead       bool      `json:"isRead"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	ProductCode  *int      `json:"productCode,omitempty"`
	ProductName  string    `json:"productName,omitempty"`
	ProductImage string    `json:"productImage,omitempty"`
}

type MessageService struct {
	DB     *gorm.DB
	Events EventPublisher
}

func NewMessageService(db *gorm.DB, events EventPublisher) *MessageService {
	return &MessageService{DB: db, Events: events}
}

// Send persists a message between two existing users, optionally tagged with
// a product, and pushes it to the receiver's live connections.
func (s *MessageService) Send(dto MessageDTO) (*MessageDTO, error) {
	if err := s.requireUser(dto.SenderID, "sender"); err != nil {
		return nil, err
	}
	if err := s.requireUser(dto.ReceiverID, "receiver"); err != nil {
		return nil, err
	}

	message := models.Message{
		SenderUsername:   dto.SenderID,
		ReceiverUsername: dto.ReceiverID,
		Content:          dto.Content,
		IsRead:           false,
	}

	if dto.ProductCode != nil {
		var product models.Product
		if err := s.DB.First(&product, "code = ?", *dto.ProductCode).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("product %d: %w", *dto.ProductCode, ErrNotFound)
			}
			return nil, err
		}
		message.ProductCode = dto.ProductCode
		message.Product = &product
	}

	if err := s.DB.Omit("Product").Create(&message).Error; err != nil {
		return nil, err
	}

	saved := toDTO(&message)
	if s.Events != nil {
		s.Events.PublishToUser(dto.ReceiverID, map[string]interface{}{
			"type":    "message",
			"message": saved,
		})
	}
	return &saved, nil
}

// GetConversation returns every message between the two users in both
// directions, oldest first.
func (s *MessageService) GetConversation(username1, username2 string) ([]MessageDTO, error) {
	var messages []models.Message
	err := s.DB.Preload("Product").
		Where("(sender_username = ? AND receiver_username = ?) OR (sender_username = ? AND receiver_username = ?)",
			username1, username2, username2, username1).
		Order("created_at asc").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return toDTOs(messages), nil
}

// GetProductConversation narrows the conversation to one product.
func (s *MessageService) GetProductConversation(username1, username2 string, productCode int) ([]MessageDTO, error) {
	var messages []models.Message
	err := s.DB.Preload("Product").
		Where("((sender_username = ? AND receiver_username = ?) OR (sender_username = ? AND receiver_username = ?)) AND product_code = ?",
			username1, username2, username2, username1, productCode).
		Order("created_at asc").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return toDTOs(messages), nil
}

func (s *MessageService) MarkAsRead(messageID uint) error {
	var message models.Message
	if err := s.DB.First(&message, messageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("message %d: %w", messageID, ErrNotFound)
		}
		return err
	}
	message.IsRead = true
	return s.DB.Save(&message).Error
}

// GetUnread returns the unread messages received by the user, newest first.
func (s *MessageService) GetUnread(username string) ([]MessageDTO, error) {
	var messages []models.Message
	err := s.DB.Preload("Product").
		Where("receiver_username = ? AND is_read = ?", username, false).
		Order("created_at desc").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return toDTOs(messages), nil
}

func (s *MessageService) CountUnread(username string) (int64, error) {
	var count int64
	err := s.DB.Model(&models.Message{}).
		Where("receiver_username = ? AND is_read = ?", username, false).
		Count(&count).Error
	return count, err
}

// GetConversations aggregates every message touching the user into one entry
// per (counterpart, product) thread. The grouping itself is pure; only the
// fetch hits the database.
func (s *MessageService) GetConversations(username string) ([]Conversation, error) {
	var messages []models.Message
	err := s.DB.Preload("Product").
		Where("sender_username = ? OR receiver_username = ?", username, username).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return BuildConversations(username, messages), nil
}

func (s *MessageService) requireUser(username, role string) error {
	var count int64
	s.DB.Model(&models.User{}).Where("username = ?", username).Count(&count)
	if count == 0 {
		return fmt.Errorf("%s %s: %w", role, username, ErrNotFound)
	}
	return nil
}

func toDTO(message *models.Message) MessageDTO {
	dto := MessageDTO{
		ID:           message.ID,
		SenderID:     message.SenderUsername,
		SenderName:   message.SenderUsername,
		ReceiverID:   message.ReceiverUsername,
		ReceiverName: message.ReceiverUsername,
		Content:      message.Content,
		IsRead:       message.IsRead,
		CreatedAt:    message.CreatedAt,
		UpdatedAt:    message.UpdatedAt,
	}
	if message.Product != nil {
		dto.ProductCode = message.ProductCode
		dto.ProductName = message.Product.Name
		dto.ProductImage = message.Product.ImagePath
	} else if message.ProductCode != nil {
		dto.ProductCode = message.ProductCode
	}
	return dto
}

func toDTOs(messages []models.Message) []MessageDTO {
	dtos := make([]MessageDTO, 0, len(messages))
	for i := range messages {
		dtos = append(dtos, toDTO(&messages[i]))
	}
	return dtos
}
