package models

import "time"

type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Type      string    `gorm:"size:30" json:"type"`
	IsRead    bool      `gorm:"default:false" json:"isRead"`
	Timestamp time.Time `json:"timestamp"`

	UserUsername string `gorm:"size:50;index;not null" json:"userUsername"`
}
