package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"invoicetrack/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// TestPassword is the plaintext password of every fixture user.
const TestPassword = "password123"

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		Name:     fmt.Sprintf("Test User %d", nextID()),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestInvoice creates an invoice for the given user.
func CreateTestInvoice(t *testing.T, db *gorm.DB, userID string, vendorName string, amount float64, paid bool) *models.Invoice {
	t.Helper()

	invoice := &models.Invoice{
		VendorName:  vendorName,
		Amount:      amount,
		DueDate:     time.Date(2023, time.October, 31, 0, 0, 0, 0, time.UTC),
		Description: "Rental",
		Paid:        paid,
		UserID:      userID,
	}
	if err := db.Create(invoice).Error; err != nil {
		t.Fatalf("failed to create test invoice: %v", err)
	}
	return invoice
}

// SeedDemoInvoices creates the nine demo invoices for the given user and
// returns them in insertion order.
func SeedDemoInvoices(t *testing.T, db *gorm.DB, userID string) []*models.Invoice {
	t.Helper()

	fixtures := []struct {
		vendorName string
		amount     float64
		paid       bool
	}{
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

	invoices := make([]*models.Invoice, 0, len(fixtures))
	for _, f := range fixtures {
		invoices = append(invoices, CreateTestInvoice(t, db, userID, f.vendorName, f.amount, f.paid))
	}
	return invoices
}
