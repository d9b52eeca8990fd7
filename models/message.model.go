package models

import "time"

type Message struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SenderUsername   string `gorm:"size:50;index;not null" json:"senderUsername"`
	ReceiverUsername string `gorm:"size:50;index;not null" json:"receiverUsername"`

	Content string `gorm:"type:text;not null" json:"content"`
	IsRead  bool   `gorm:"default:false" json:"isRead"`

	// Optional product the conversation is about.
	ProductCode *int     `gorm:"index" json:"productCode,omitempty"`
	Product     *Product `gorm:"foreignKey:ProductCode;references:Code" json:"product,omitempty"`

	Sender   User `gorm:"foreignKey:SenderUsername;references:Username" json:"-"`
	Receiver User `gorm:"foreignKey:ReceiverUsername;references:Username" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
