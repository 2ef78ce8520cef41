package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/terraincognita07/joydairy/internal/api"
	"github.com/terraincognita07/joydairy/internal/cli"
	"github.com/terraincognita07/joydairy/internal/config"
	"github.com/terraincognita07/joydairy/internal/db"
	"github.com/terraincognita07/joydairy/internal/logger"
	"github.com/terraincognita07/joydairy/internal/security"
	"gorm.io/gorm"
)

var version = "dev"

const shutdownTimeout = 10 * time.Second

type runContext struct {
	configFile string
	stdin      *os.File
	stdout     io.Writer
}

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Path to a YAML config file." type:"path" env:"JOYDAIRY_CONFIG"`

	Serve            ServeCmd            `cmd:"" help:"Run the HTTP API server." default:"1"`
	SeedAffirmations SeedAffirmationsCmd `cmd:"" help:"Load the built-in affirmation catalog into an empty database."`
	ResetPassword    ResetPasswordCmd    `cmd:"" help:"Reset a user's password."`
	GenerateSecret   GenerateSecretCmd   `cmd:"" help:"Print a random SECRET_KEY value."`
}

type ServeCmd struct{}

type SeedAffirmationsCmd struct{}

type ResetPasswordCmd struct {
	Email  string `required:"" help:"Email address of the account."`
	Prompt bool   `help:"Read the new password from stdin instead of generating a temporary one."`
}

type GenerateSecretCmd struct{}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("joydairy"),
		kong.Description("Joy Dairy journaling and mood tracking API"),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	err := ctx.Run(&runContext{
		configFile: CLI.Config,
		stdin:      os.Stdin,
		stdout:     os.Stdout,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func (cmd *ServeCmd) Run(run *runContext) error {
	cfg, log, closeLog, err := loadRuntime(run)
	if err != nil {
		return err
	}
	defer closeLog()

	database, err := openDatabase(cfg)
	if err != nil {
		log.Error("database init failed", "error", err)
		return err
	}

	tokens := security.NewTokenManager(cfg.Auth.SecretKey, cfg.Auth.TokenTTL)
	handler := api.NewHandler(database, tokens, api.Options{
		Location: cfg.Location,
		Logger:   log,
		Version:  version,
	})

	seeded, err := handler.AffirmationService().SeedCatalog(time.Now())
	if err != nil {
		log.Error("affirmation seed failed", "error", err)
		return err
	}
	if seeded > 0 {
		log.Info("affirmation catalog seeded", "count", seeded)
	}

	app := newApp(cfg, handler, run.stdout)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error("server shutdown failed", "error", err)
		}
	}()

	log.Info("joydairy listening",
		"addr", cfg.Addr(),
		"db_driver", cfg.Database.Driver,
		"tz", cfg.Location.String(),
		"version", version,
	)
	if err := app.Listen(cfg.Addr()); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	log.Info("joydairy stopped")
	return nil
}

func (cmd *SeedAffirmationsCmd) Run(run *runContext) error {
	cfg, _, closeLog, err := loadRuntime(run)
	if err != nil {
		return err
	}
	defer closeLog()

	database, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	return cli.RunSeedAffirmationsCommand(database, time.Now(), run.stdout)
}

func (cmd *ResetPasswordCmd) Run(run *runContext) error {
	cfg, _, closeLog, err := loadRuntime(run)
	if err != nil {
		return err
	}
	defer closeLog()

	database, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	return cli.RunResetPasswordCommand(database, cli.ResetPasswordOptions{
		Email:  cmd.Email,
		Prompt: cmd.Prompt,
		Stdin:  run.stdin,
	}, run.stdout)
}

func (cmd *GenerateSecretCmd) Run(run *runContext) error {
	return cli.RunGenerateSecretCommand(run.stdout)
}

func loadRuntime(run *runContext) (config.Config, *slog.Logger, func(), error) {
	cfg, err := config.Load(run.configFile)
	if err != nil {
		return config.Config{}, nil, nil, fmt.Errorf("load config: %w", err)
	}

	log, closer, err := logger.New(cfg.Log, run.stdout)
	if err != nil {
		return config.Config{}, nil, nil, fmt.Errorf("init logger: %w", err)
	}
	slog.SetDefault(log)

	return cfg, log, func() { _ = closer.Close() }, nil
}

func openDatabase(cfg config.Config) (*gorm.DB, error) {
	database, err := db.Open(db.Options{
		Driver: cfg.Database.Driver,
		Path:   cfg.Database.Path,
		DSN:    cfg.Database.DSN,
	})
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}
	return database, nil
}

func newApp(cfg config.Config, handler *api.Handler, accessLog io.Writer) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "Joy Dairy",
		DisableStartupMessage: true,
		ErrorHandler:          handler.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
		Output: accessLog,
	}))
	app.Use(compress.New())
	app.Use(cors.New(corsConfig(cfg)))

	api.RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app
}

func corsConfig(cfg config.Config) cors.Config {
	origins := cfg.CORSAllowOrigins()
	if strings.TrimSpace(origins) == "" {
		origins = "*"
	}
	return cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET,POST,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization,x-auth-token",
	}
}
