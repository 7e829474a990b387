package testutil_test

import (
	"testing"

	"invoicetrack/internal/errors"
	"invoicetrack/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	// Verify all tables exist by doing a simple count query on each model.
	var count int64
	for _, table := range []string{"users", "invoices"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	user := testutil.CreateTestUser(t, db)
	if user.ID == "" {
		t.Fatal("user should have a non-empty ID")
	}

	invoice := testutil.CreateTestInvoice(t, db, user.ID, "Sysco", 228.75, false)
	if invoice.Amount != 228.75 {
		t.Errorf("expected amount 228.75, got %f", invoice.Amount)
	}
	if invoice.UserID != user.ID {
		t.Errorf("expected owner %s, got %s", user.ID, invoice.UserID)
	}

	invoices := testutil.SeedDemoInvoices(t, db, user.ID)
	if len(invoices) != 9 {
		t.Errorf("expected 9 demo invoices, got %d", len(invoices))
	}
}

func TestAssertAppError(t *testing.T) {
	err := errors.WithMessage(errors.ErrInvoiceNotFound, "custom message")
	testutil.AssertAppError(t, err, errors.ErrInvoiceNotFound)
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}
