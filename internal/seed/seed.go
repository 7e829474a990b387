// Package seed loads the demo user and invoice fixtures. Invoices have no
// write endpoint, so seeding is the only ingestion path in this service.
package seed

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"invoicetrack/internal/models"
)

// DemoEmail and DemoPassword are the credentials of the seeded demo account.
const (
	DemoEmail    = "demo@example.com"
	DemoPassword = "demo123"
)

type invoiceFixture struct {
	vendorName string
	amount     float64
	paid       bool
}

var demoInvoices = []invoiceFixture{
	{"Amazon", 0.00, true},
	{"Sysco", 228.75, false},
	{"US Foods", 0.00, true},
	{"Retal Inc", 0.00, true},
	{"Fiber Optics", 150.00, false},
	{"Ikea", 0.00, true},
	{"Costco", 0.00, true},
	{"Office Depot", 0.00, true},
	{"Sysco", 350.00, false},
}

// Run creates the demo user and their nine invoices. It is idempotent:
// when the demo user already exists nothing is written.
func Run(db *gorm.DB) error {
	var existing models.User
	err := db.Where("email = ?", DemoEmail).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	dueDate := time.Date(2023, time.October, 31, 0, 0, 0, 0, time.UTC)

	return db.Transaction(func(tx *gorm.DB) error {
		user := &models.User{
			Email:    DemoEmail,
			Name:     "Demo User",
			Password: string(hash),
		}
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		for _, f := range demoInvoices {
			invoice := &models.Invoice{
				VendorName:  f.vendorName,
				Amount:      f.amount,
				DueDate:     dueDate,
				Description: "Rental",
				Paid:        f.paid,
				UserID:      user.ID,
			}
			if err := tx.Create(invoice).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
