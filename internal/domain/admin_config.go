package domain

// AdminConfigID is the primary key of the only AdminConfig row
const AdminConfigID uint = 1

// AdminConfig Model holds the current target number. It is a singleton:
// writes always upsert the row keyed by AdminConfigID.
type AdminConfig struct {
	ID        uint  `gorm:"primaryKey;autoIncrement:false" json:"-"` // Always AdminConfigID
	Number    int   `gorm:"not null" json:"number"`                  // Target number
	UpdatedAt int64 `gorm:"autoUpdateTime:milli" json:"updatedAt"`   // Last change in milliseconds
}
