package services

import (
	"errors"
	"testing"
	"time"

	"github.com/terraincognita07/joydairy/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type authUserRepositoryStub struct {
	users     []models.User
	createErr error
}

func (stub *authUserRepositoryStub) ExistsByNormalizedEmail(email string) (bool, error) {
	_, err := stub.FindByNormalizedEmail(email)
	return err == nil, nil
}

func (stub *authUserRepositoryStub) FindByNormalizedEmail(email string) (models.User, error) {
	for _, user := range stub.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (stub *authUserRepositoryStub) FindByID(userID uint) (models.User, error) {
	for _, user := range stub.users {
		if user.ID == userID {
			return user, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (stub *authUserRepositoryStub) Create(user *models.User) error {
	if stub.createErr != nil {
		return stub.createErr
	}
	user.ID = uint(len(stub.users) + 1)
	stub.users = append(stub.users, *user)
	return nil
}

func (stub *authUserRepositoryStub) UpdatePassword(userID uint, passwordHash string) error {
	for index := range stub.users {
		if stub.users[index].ID == userID {
			stub.users[index].PasswordHash = passwordHash
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func TestAuthServiceRegisterAndAuthenticate(t *testing.T) {
	repo := &authUserRepositoryStub{}
	service := NewAuthService(repo)

	user, err := service.Register(RegistrationInput{Name: "Alice", Email: "Alice@Example.com", Password: "secret1"}, time.Now())
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.ID == 0 || user.Email != "alice@example.com" {
		t.Fatalf("unexpected registered user %+v", user)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret1")) != nil {
		t.Fatal("expected stored bcrypt hash of the password")
	}

	authenticated, err := service.Authenticate("alice@example.com", "secret1")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if authenticated.ID != user.ID {
		t.Fatalf("expected same user, got %d", authenticated.ID)
	}

	_, wrongPasswordErr := service.Authenticate("alice@example.com", "secret2")
	if !errors.Is(wrongPasswordErr, ErrUnauthorized) {
		t.Fatalf("expected unauthorized for wrong password, got %v", wrongPasswordErr)
	}
	_, unknownErr := service.Authenticate("bob@example.com", "secret1")
	if !errors.Is(unknownErr, ErrUnauthorized) {
		t.Fatalf("expected unauthorized for unknown email, got %v", unknownErr)
	}
	if wrongPasswordErr.Error() != unknownErr.Error() {
		t.Fatalf("expected identical messages, got %q and %q", wrongPasswordErr, unknownErr)
	}

	_, err = service.Register(RegistrationInput{Name: "Alice", Email: "alice@example.com", Password: "secret1"}, time.Now())
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected conflict for duplicate registration, got %v", err)
	}
}

func TestAuthServiceRegisterMapsDuplicateInsertToConflict(t *testing.T) {
	service := NewAuthService(&authUserRepositoryStub{createErr: gorm.ErrDuplicatedKey})

	_, err := service.Register(RegistrationInput{Name: "Alice", Email: "alice@example.com", Password: "secret1"}, time.Now())
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestAuthServiceFindByIDMissingUserIsUnauthorized(t *testing.T) {
	service := NewAuthService(&authUserRepositoryStub{})

	if _, err := service.FindByID(42); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected unauthorized for missing user, got %v", err)
	}
}

func TestAuthServiceResetPassword(t *testing.T) {
	repo := &authUserRepositoryStub{}
	service := NewAuthService(repo)
	if _, err := service.Register(RegistrationInput{Name: "Alice", Email: "alice@example.com", Password: "secret1"}, time.Now()); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := service.ResetPassword("ALICE@example.com", "brand-new"); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if _, err := service.Authenticate("alice@example.com", "brand-new"); err != nil {
		t.Fatalf("expected new password to work, got %v", err)
	}
	if _, err := service.Authenticate("alice@example.com", "secret1"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected old password to fail, got %v", err)
	}

	if _, err := service.ResetPassword("nobody@example.com", "brand-new"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected unknown user error, got %v", err)
	}
	var validationErr *ValidationError
	if _, err := service.ResetPassword("alice@example.com", "123"); !errors.As(err, &validationErr) {
		t.Fatalf("expected weak password validation error, got %v", err)
	}
}
