package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/terraincognita07/joydairy/internal/db"
	"github.com/terraincognita07/joydairy/internal/security"
	"github.com/terraincognita07/joydairy/internal/services"
	"gorm.io/gorm"
)

func RunSeedAffirmationsCommand(database *gorm.DB, now time.Time, out io.Writer) error {
	repositories := db.NewRepositories(database)
	affirmationService := services.NewAffirmationService(repositories.Affirmations, repositories.UserAffirmations)

	inserted, err := affirmationService.SeedCatalog(now)
	if err != nil {
		return err
	}
	if inserted == 0 {
		fmt.Fprintln(out, "Affirmation catalog already populated, nothing to do")
		return nil
	}
	fmt.Fprintf(out, "Seeded %d affirmations\n", inserted)
	return nil
}

func RunGenerateSecretCommand(out io.Writer) error {
	secret, err := security.NewSecretKey()
	if err != nil {
		return fmt.Errorf("generate secret key: %w", err)
	}
	fmt.Fprintln(out, secret)
	return nil
}
