package game

import (
	"context"                     // Request scoped context
	"errors"                      // Error inspection
	"number_game/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus" // Logging library
	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
)

// MaxPlayers caps how many role-user accounts registration accepts
const MaxPlayers = 4

// Registration is the data needed to open an account
type Registration struct {
	Username string
	Email    string
	Password string
	Role     string
}

// Register creates an account with the starting balance
func (s *Service) Register(ctx context.Context, r Registration) (*domain.User, error) {
	role, err := domain.ParseRole(r.Role)
	if err != nil {
		return nil, ErrInvalidRole
	}
	db := s.db.WithContext(ctx)

	taken, err := exists(db.Where("username = ?", r.Username))
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUsernameTaken
	}
	taken, err = exists(db.Where("email = ?", r.Email))
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	// Only regular players count toward the cap
	if role == domain.RoleUser {
		var players int64
		if err := db.Model(&domain.User{}).Where("role = ?", domain.RoleUser).Count(&players).Error; err != nil {
			return nil, err
		}
		if players >= MaxPlayers {
			return nil, ErrUserCapReached
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(r.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := domain.User{
		Username: r.Username,
		Email:    r.Email,
		Password: string(hash),
		Role:     role,
		Balance:  domain.InitialBalance,
	}
	if err := db.Create(&user).Error; err != nil {
		// Lost a race with a concurrent registration
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, duplicateCause(db, r)
		}
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     user.Role,
	}).Info("User registered")
	return &user, nil
}

// Authenticate finds the account by username or email and checks password
func (s *Service) Authenticate(ctx context.Context, usernameOrEmail, password string) (*domain.User, error) {
	var user domain.User
	err := s.db.WithContext(ctx).
		Where("username = ? OR email = ?", usernameOrEmail, usernameOrEmail).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// User loads one account by ID
func (s *Service) User(ctx context.Context, id uint) (*domain.User, error) {
	var user domain.User
	err := s.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Users lists every account, admins included
func (s *Service) Users(ctx context.Context) ([]domain.User, error) {
	users := []domain.User{}
	if err := s.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func exists(q *gorm.DB) (bool, error) {
	var n int64
	if err := q.Model(&domain.User{}).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// duplicateCause reports which unique field a failed insert collided on
func duplicateCause(db *gorm.DB, r Registration) error {
	if taken, err := exists(db.Where("username = ?", r.Username)); err == nil && taken {
		return ErrUsernameTaken
	}
	if taken, err := exists(db.Where("email = ?", r.Email)); err == nil && taken {
		return ErrEmailTaken
	}
	return ErrUsernameTaken
}
