package models

// User represents a registered account. The password hash is never
// serialized in any response.
type User struct {
	Base
	Email    string    `gorm:"uniqueIndex;not null" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Name     string    `gorm:"not null" json:"name"`
	Invoices []Invoice `gorm:"foreignKey:UserID" json:"invoices,omitempty"`
}
