package models

// Admin is a separate identity space from User. Admins moderate products and
// manage accounts but never own listings.
type Admin struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"unique;not null;size:50" json:"username"`
	Password string `gorm:"not null" json:"-"`

	FirstName    string `gorm:"size:100" json:"firstName"`
	LastName     string `gorm:"size:100" json:"lastName"`
	ContactNo    string `gorm:"size:20" json:"contactNo"`
	Email        string `gorm:"size:100" json:"email"`
	ProfilePhoto string `json:"profilePhoto"`
}
