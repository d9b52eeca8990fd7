package config

import (
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/roxyukipookie/CampusCart-Online-Marketplace-System/models"
)

func Migrate(db *gorm.DB) error {
	// Migrate the schema
	err := db.AutoMigrate(
		&models.User{},
		&models.Admin{},
		&models.Product{},
		&models.Message{},
		&models.Notification{},
	)
	if err != nil {
		logrus.Errorf("Failed to migrate database schema: %v", err)
		return err
	}

	logrus.Info("Database migrations completed successfully")

	// Make sure a bootstrap admin exists even on normal migration.
	SeedAdmins(db)

	return nil
}
