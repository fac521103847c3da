// Package game holds the number game rules: accounts, the target number and
// balance settlement. It talks to the database only; caching and HTTP live in
// the api package.
package game

import (
	"gorm.io/gorm" // GORM ORM library
)

// Scope selects which users a selection re-scores
type Scope string

const (
	ScopeAll       Scope = "all"       // Re-score every user holding a selection
	ScopeSubmitter Scope = "submitter" // Score only the user who submitted
)

// ParseScope maps a setting onto a Scope. Unknown values re-score everyone.
func ParseScope(s string) Scope {
	if Scope(s) == ScopeSubmitter {
		return ScopeSubmitter
	}
	return ScopeAll
}

// Service runs game operations against a database
type Service struct {
	db    *gorm.DB
	scope Scope
}

// NewService creates a Service. Anything other than ScopeSubmitter is
// treated as ScopeAll.
func NewService(db *gorm.DB, scope Scope) *Service {
	return &Service{db: db, scope: ParseScope(string(scope))}
}
