package config

import (
	"errors"
	"os"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/roxyukipookie/CampusCart-Online-Marketplace-System/models"
	"github.com/roxyukipookie/CampusCart-Online-Marketplace-System/utils"
)

// SeedAdmins provisions the bootstrap administrator so the moderation
// endpoints are reachable on a fresh database.
func SeedAdmins(db *gorm.DB) {
	password, err := utils.HashPassword(getEnv("ADMIN_PASSWORD", "admin12345"))
	if err != nil {
		logrus.Errorf("Failed to hash seed admin password: %v", err)
		return
	}

	admin := models.Admin{
		Username:  getEnv("ADMIN_USERNAME", "admin"),
		Password:  password,
		FirstName: "Campus",
		LastName:  "Admin",
		Email:     os.Getenv("ADMIN_EMAIL"),
	}

	var existing models.Admin
	err = db.Where("username = ?", admin.Username).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := db.Create(&admin).Error; err != nil {
			logrus.Errorf("Failed to seed admin %s: %v", admin.Username, err)
			return
		}
		logrus.Infof("Admin seeded: %s", admin.Username)
		return
	}
	if err != nil {
		logrus.Errorf("Failed to look up admin %s: %v", admin.Username, err)
		return
	}
	logrus.Infof("Admin already exists: %s", admin.Username)
}
