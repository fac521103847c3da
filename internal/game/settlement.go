package game

import (
	"context"                     // Request scoped context
	"errors"                      // Error inspection
	"fmt"                         // Error wrapping
	"number_game/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// Balance deltas applied on every settlement
const (
	WinAmount  int64 = 100
	LossAmount int64 = 100
)

// Settlement reports who was credited and who was debited
type Settlement struct {
	Target  int    `json:"target"`
	Winners []uint `json:"winners"`
	Losers  []uint `json:"losers"`
}

// Affected returns every user ID whose balance changed
func (st *Settlement) Affected() []uint {
	ids := make([]uint, 0, len(st.Winners)+len(st.Losers))
	ids = append(ids, st.Winners...)
	return append(ids, st.Losers...)
}

// Partition splits users holding a selection into winners and losers for
// target. Users without a selection are skipped.
func Partition(users []domain.User, target int) (winners, losers []uint) {
	for _, u := range users {
		if u.SelectedNumber == nil {
			continue
		}
		if *u.SelectedNumber == target {
			winners = append(winners, u.ID)
		} else {
			losers = append(losers, u.ID)
		}
	}
	return winners, losers
}

// SelectNumber stores number as the user's selection and settles balances
// against the current target.
//
// The selection is committed before settlement starts. If settlement then
// fails the selection stays and no balance moves; nothing is compensated.
func (s *Service) SelectNumber(ctx context.Context, userID uint, number int) (*Settlement, error) {
	if !domain.ValidNumber(number) {
		return nil, ErrInvalidNumber
	}
	target, err := s.CurrentNumber(ctx)
	if err != nil {
		return nil, err
	}
	db := s.db.WithContext(ctx)

	var user domain.User
	if err := db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if err := db.Model(&user).Update("selected_number", number).Error; err != nil {
		return nil, fmt.Errorf("save selection: %w", err)
	}

	var selectors []domain.User
	q := db.Select("id", "selected_number").Where("selected_number IS NOT NULL")
	if s.scope == ScopeSubmitter {
		q = q.Where("id = ?", user.ID)
	}
	if err := q.Find(&selectors).Error; err != nil {
		s.logSettleFailure(user.ID, number, err)
		return nil, fmt.Errorf("load selections: %w", err)
	}

	winners, losers := Partition(selectors, target.Number)
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := adjust(tx, winners, WinAmount); err != nil {
			return err // Return error to rollback
		}
		return adjust(tx, losers, -LossAmount)
	})
	if err != nil {
		s.logSettleFailure(user.ID, number, err)
		return nil, fmt.Errorf("update balances: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"user_id": user.ID,
		"number":  number,
		"target":  target.Number,
		"winners": len(winners),
		"losers":  len(losers),
		"scope":   s.scope,
	}).Info("Selection settled")
	return &Settlement{Target: target.Number, Winners: winners, Losers: losers}, nil
}

func adjust(tx *gorm.DB, ids []uint, delta int64) error {
	if len(ids) == 0 {
		return nil
	}
	return tx.Model(&domain.User{}).
		Where("id IN ?", ids).
		Update("balance", gorm.Expr("balance + ?", delta)).Error
}

// The selection is already stored at this point
func (s *Service) logSettleFailure(userID uint, number int, err error) {
	logrus.WithFields(logrus.Fields{
		"user_id": userID,
		"number":  number,
		"error":   err.Error(),
	}).Error("Settlement failed after selection was saved")
}
