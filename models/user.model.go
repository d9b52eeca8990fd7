package models

type User struct {
	// Username is the natural key; every other table references it.
	Username string `gorm:"primaryKey;size:50" json:"username"`

	FirstName string `gorm:"size:100" json:"firstName"`
	LastName  string `gorm:"size:100" json:"lastName"`
	ContactNo string `gorm:"size:20" json:"contactNo"`
	Email     string `gorm:"unique;not null;size:100" json:"email"`
	Address   string `gorm:"type:text" json:"address"`
	Password  string `gorm:"not null" json:"-"`

	ProfilePhoto string `json:"profilePhoto"`
	GoogleID     string `gorm:"size:100" json:"googleId,omitempty"`

	// Relations
	Products      []Product      `gorm:"foreignKey:UserUsername;references:Username;constraint:OnDelete:CASCADE" json:"products,omitempty"`
	Notifications []Notification `gorm:"foreignKey:UserUsername;references:Username;constraint:OnDelete:CASCADE" json:"-"`
}
