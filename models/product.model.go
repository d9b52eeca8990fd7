package models

// Product lifecycle statuses. Transitions are Pending -> Approved or
// Pending -> Rejected, both admin-triggered.
const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

type Product struct {
	Code           int     `gorm:"primaryKey;autoIncrement" json:"code"`
	Name           string  `gorm:"size:255;not null" json:"name"`
	PdtDescription string  `gorm:"type:text" json:"pdtDescription"`
	BuyPrice       float64 `gorm:"not null" json:"buyPrice"`
	ImagePath      string  `json:"imagePath"`
	Category       string  `gorm:"size:50;index" json:"category"`
	Status         string  `gorm:"size:20;default:'Pending'" json:"status"`
	ConditionType  string  `gorm:"size:20" json:"conditionType"`
	Feedback       string  `gorm:"type:text" json:"feedback"`

	UserUsername string `gorm:"size:50;index;not null" json:"userUsername"`
	User         User   `gorm:"foreignKey:UserUsername;references:Username" json:"user,omitempty"`
}
