package services

import (
	"errors"
	"testing"

	apperrors "invoicetrack/internal/errors"
	"invoicetrack/internal/models"
	"invoicetrack/internal/testutil"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func TestCreateUser(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user, err := svc.CreateUser("Alice", "alice@example.com", "password123")
		testutil.AssertNoError(t, err)

		if user.ID == "" {
			t.Fatal("expected non-empty user ID")
		}
		if user.Email != "alice@example.com" {
			t.Errorf("expected email alice@example.com, got %s", user.Email)
		}
		if user.Name != "Alice" {
			t.Errorf("expected name Alice, got %s", user.Name)
		}
		if user.Password == "password123" {
			t.Error("password must not be stored in plaintext")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")); err != nil {
			t.Errorf("stored hash should verify the original password: %v", err)
		}
	})

	t.Run("duplicate_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		first, err := svc.CreateUser("First", "dup@example.com", "password123")
		testutil.AssertNoError(t, err)

		_, err = svc.CreateUser("Second", "dup@example.com", "password456")
		testutil.AssertAppError(t, err, apperrors.ErrDuplicateEmail)

		// The existing record must be untouched.
		var stored models.User
		if err := db.Where("email = ?", "dup@example.com").First(&stored).Error; err != nil {
			t.Fatalf("failed to reload user: %v", err)
		}
		if stored.ID != first.ID || stored.Name != "First" {
			t.Errorf("existing user was altered by the conflicting registration: %+v", stored)
		}
		var count int64
		db.Model(&models.User{}).Count(&count)
		if count != 1 {
			t.Errorf("expected 1 user, got %d", count)
		}
	})

	t.Run("unique_index_backstop", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)

		// The pre-insert lookup is advisory; under concurrent identical
		// registrations the unique index is the real guard. Verify the
		// store reports a duplicate insert as gorm.ErrDuplicatedKey, the
		// error CreateUser maps to the conflict sentinel.
		testutil.CreateTestUserWithEmail(t, db, "race@example.com")

		hash, _ := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
		err := db.Create(&models.User{Name: "Racer", Email: "race@example.com", Password: string(hash)}).Error
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			t.Fatalf("expected gorm.ErrDuplicatedKey, got %v", err)
		}
	})

	t.Run("empty_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("", "test@example.com", "password123")
		testutil.AssertAppError(t, err, apperrors.ErrInvalidInput)

		_, err = svc.CreateUser("Test", "", "password123")
		testutil.AssertAppError(t, err, apperrors.ErrInvalidInput)

		_, err = svc.CreateUser("Test", "test@example.com", "")
		testutil.AssertAppError(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("email_normalized_to_lowercase", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user, err := svc.CreateUser("Alice", "Alice@EXAMPLE.COM", "password123")
		testutil.AssertNoError(t, err)

		if user.Email != "alice@example.com" {
			t.Errorf("expected lowercased email, got %s", user.Email)
		}

		_, err = svc.CreateUser("Other", "alice@example.com", "password123")
		testutil.AssertAppError(t, err, apperrors.ErrDuplicateEmail)
	})
}

func TestGetUserByEmail(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		created := testutil.CreateTestUserWithEmail(t, db, "found@example.com")
		user, err := svc.GetUserByEmail("found@example.com")
		testutil.AssertNoError(t, err)

		if user.ID != created.ID {
			t.Errorf("expected user ID %s, got %s", created.ID, user.ID)
		}
	})

	t.Run("lookup_is_case_insensitive", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		testutil.CreateTestUserWithEmail(t, db, "case@example.com")
		_, err := svc.GetUserByEmail("Case@Example.COM")
		testutil.AssertNoError(t, err)
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.GetUserByEmail("nonexistent@example.com")
		testutil.AssertAppError(t, err, apperrors.ErrUserNotFound)
	})
}

func TestGetUserByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		created := testutil.CreateTestUser(t, db)
		user, err := svc.GetUserByID(created.ID)
		testutil.AssertNoError(t, err)

		if user.Email != created.Email {
			t.Errorf("expected email %s, got %s", created.Email, user.Email)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.GetUserByID("00000000-0000-0000-0000-000000000000")
		testutil.AssertAppError(t, err, apperrors.ErrUserNotFound)
	})
}

func TestAttemptLogin(t *testing.T) {
	t.Run("valid_credentials", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		created := testutil.CreateTestUserWithEmail(t, db, "login@example.com")
		user, err := svc.AttemptLogin("login@example.com", testutil.TestPassword)
		testutil.AssertNoError(t, err)

		if user.ID != created.ID {
			t.Errorf("expected user ID %s, got %s", created.ID, user.ID)
		}
	})

	t.Run("wrong_password_and_unknown_email_are_indistinguishable", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		testutil.CreateTestUserWithEmail(t, db, "known@example.com")

		_, errWrongPassword := svc.AttemptLogin("known@example.com", "not-the-password")
		testutil.AssertAppError(t, errWrongPassword, apperrors.ErrAuthenticationFailed)

		_, errUnknownEmail := svc.AttemptLogin("unknown@example.com", testutil.TestPassword)
		testutil.AssertAppError(t, errUnknownEmail, apperrors.ErrAuthenticationFailed)

		if errWrongPassword.Error() != errUnknownEmail.Error() {
			t.Errorf("failure messages must match: %q vs %q",
				errWrongPassword.Error(), errUnknownEmail.Error())
		}
	})
}
