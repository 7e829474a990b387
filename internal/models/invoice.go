package models

import "time"

// Invoice is an owner-scoped financial record. Invoices are created by the
// seed/import path and are read-only through the API.
type Invoice struct {
	Base
	VendorName  string    `gorm:"not null" json:"vendorName"`
	Amount      float64   `gorm:"not null" json:"amount"`
	DueDate     time.Time `gorm:"not null" json:"dueDate"`
	Description string    `json:"description"`
	Paid        bool      `gorm:"default:false" json:"paid"`
	UserID      string    `gorm:"type:uuid;not null;index" json:"userId"`
}
