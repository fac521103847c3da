package domain

// Starting balance for every new account
const InitialBalance int64 = 1000

// Selection bounds, inclusive
const (
	MinNumber = 1
	MaxNumber = 30
)

// ValidNumber reports whether n is a selectable number
func ValidNumber(n int) bool {
	return n >= MinNumber && n <= MaxNumber
}

// User Model
type User struct {
	ID             uint   `gorm:"primaryKey" json:"id"`                  // Primary key
	Username       string `gorm:"unique;not null" json:"username"`       // Unique username
	Email          string `gorm:"unique;not null" json:"email"`          // Unique email
	Password       string `gorm:"not null" json:"-"`                     // Hashed password
	Role           Role   `gorm:"not null;default:user" json:"role"`     // Role: user or admin
	SelectedNumber *int   `gorm:"index" json:"selectedNumber"`           // Chosen number, NULL until first pick
	Balance        int64  `gorm:"not null;default:1000" json:"balance"`  // Game balance, may go negative
	CreatedAt      int64  `gorm:"autoCreateTime:milli" json:"createdAt"` // Timestamp of creation in milliseconds
}
