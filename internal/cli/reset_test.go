package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/terraincognita07/joydairy/internal/db"
	"github.com/terraincognita07/joydairy/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func openTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "joydairy-cli-test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return database
}

func createCLITestUser(t *testing.T, database *gorm.DB, email string, password string) models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := models.User{Name: "CLI User", Email: email, PasswordHash: string(hash), CreatedAt: time.Now().UTC()}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func TestResetPasswordPrintsWorkingTemporaryPassword(t *testing.T) {
	database := openTestDatabase(t)
	user := createCLITestUser(t, database, "reset@example.com", "OldPass1")

	var out bytes.Buffer
	if err := RunResetPasswordCommand(database, ResetPasswordOptions{Email: " RESET@example.com "}, &out); err != nil {
		t.Fatalf("RunResetPasswordCommand returned error: %v", err)
	}

	_, temporary, found := strings.Cut(out.String(), "Temporary password: ")
	if !found {
		t.Fatalf("expected temporary password in output, got %q", out.String())
	}
	temporary = strings.TrimSpace(temporary)
	if len(temporary) != temporaryPasswordLength {
		t.Fatalf("temporary password len = %d, want %d", len(temporary), temporaryPasswordLength)
	}

	var updated models.User
	if err := database.First(&updated, user.ID).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte(temporary)) != nil {
		t.Fatal("expected stored hash to match the temporary password")
	}
}

func TestResetPasswordReadsPromptedPassword(t *testing.T) {
	database := openTestDatabase(t)
	user := createCLITestUser(t, database, "prompt@example.com", "OldPass1")

	stdinPath := filepath.Join(t.TempDir(), "stdin")
	if err := os.WriteFile(stdinPath, []byte("ChosenPass9\n"), 0o600); err != nil {
		t.Fatalf("write stdin fixture: %v", err)
	}
	stdin, err := os.Open(stdinPath)
	if err != nil {
		t.Fatalf("open stdin fixture: %v", err)
	}
	defer stdin.Close()

	var out bytes.Buffer
	options := ResetPasswordOptions{Email: user.Email, Prompt: true, Stdin: stdin}
	if err := RunResetPasswordCommand(database, options, &out); err != nil {
		t.Fatalf("RunResetPasswordCommand returned error: %v", err)
	}
	if strings.Contains(out.String(), "Temporary password") {
		t.Fatalf("prompted reset must not print a password, got %q", out.String())
	}

	var updated models.User
	if err := database.First(&updated, user.ID).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("ChosenPass9")) != nil {
		t.Fatal("expected stored hash to match the prompted password")
	}
}

func TestResetPasswordRejectsUnknownOrMissingEmail(t *testing.T) {
	database := openTestDatabase(t)

	if err := RunResetPasswordCommand(database, ResetPasswordOptions{}, &bytes.Buffer{}); err == nil {
		t.Fatal("expected error for empty email")
	}

	err := RunResetPasswordCommand(database, ResetPasswordOptions{Email: "ghost@example.com"}, &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestSeedAffirmationsIsIdempotent(t *testing.T) {
	database := openTestDatabase(t)
	now := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)

	var first bytes.Buffer
	if err := RunSeedAffirmationsCommand(database, now, &first); err != nil {
		t.Fatalf("first seed returned error: %v", err)
	}
	if !strings.HasPrefix(first.String(), "Seeded ") {
		t.Fatalf("expected seed summary, got %q", first.String())
	}

	var second bytes.Buffer
	if err := RunSeedAffirmationsCommand(database, now, &second); err != nil {
		t.Fatalf("second seed returned error: %v", err)
	}
	if !strings.Contains(second.String(), "nothing to do") {
		t.Fatalf("expected no-op message, got %q", second.String())
	}

	var count int64
	if err := database.Model(&models.Affirmation{}).Count(&count).Error; err != nil {
		t.Fatalf("count affirmations: %v", err)
	}
	if int(count) != len(models.DefaultAffirmations()) {
		t.Fatalf("expected %d affirmations, got %d", len(models.DefaultAffirmations()), count)
	}
}

func TestGenerateSecretPrintsKey(t *testing.T) {
	var out bytes.Buffer
	if err := RunGenerateSecretCommand(&out); err != nil {
		t.Fatalf("RunGenerateSecretCommand returned error: %v", err)
	}
	if len(strings.TrimSpace(out.String())) < 32 {
		t.Fatalf("expected a long secret, got %q", out.String())
	}
}
