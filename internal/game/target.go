package game

import (
	"context"                     // Request scoped context
	"errors"                      // Error inspection
	"number_game/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
	"gorm.io/gorm/clause"        // Upsert clause
)

// SetNumber creates or replaces the target number. Concurrent calls race and
// the last write wins.
func (s *Service) SetNumber(ctx context.Context, number int) (*domain.AdminConfig, error) {
	if !domain.ValidNumber(number) {
		return nil, ErrInvalidNumber
	}
	cfg := domain.AdminConfig{ID: domain.AdminConfigID, Number: number}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"number", "updated_at"}),
	}).Create(&cfg).Error
	if err != nil {
		return nil, err
	}
	logrus.WithField("number", number).Info("Target number set")
	return &cfg, nil
}

// CurrentNumber returns the target number record
func (s *Service) CurrentNumber(ctx context.Context) (*domain.AdminConfig, error) {
	var cfg domain.AdminConfig
	err := s.db.WithContext(ctx).First(&cfg, domain.AdminConfigID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotConfigured
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
