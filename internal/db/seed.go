package db

import (
	"errors"                      // Error inspection
	"number_game/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
)

// SeedAdmin creates an admin account with the given credentials unless the
// username is already taken. Admins are outside the registration cap.
func SeedAdmin(db *gorm.DB, username, email, password string) error {
	var existing domain.User
	err := db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		logrus.WithField("username", username).Info("Admin already present, skipping seed")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := domain.User{
		Username: username,
		Email:    email,
		Password: string(hash),
		Role:     domain.RoleAdmin,
		Balance:  domain.InitialBalance,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"user_id":  admin.ID,
		"username": admin.Username,
	}).Info("Admin seeded")
	return nil
}
