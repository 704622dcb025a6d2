package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/terraincognita07/aurora/internal/ai"
	"github.com/terraincognita07/aurora/internal/api"
	"github.com/terraincognita07/aurora/internal/i18n"
	"go.uber.org/zap"
)

const (
	minSecretKeyLength = 32
	shutdownTimeout    = 10 * time.Second
)

var insecureSecretKeys = map[string]struct{}{
	"change_me_in_production":                    {},
	"replace_with_at_least_32_random_characters": {},
}

type ServeCmd struct {
	Port            int    `env:"PORT" default:"8080" help:"HTTP port."`
	SecretKey       string `name:"secret-key" env:"SECRET_KEY" help:"Signing key for session tokens (at least 32 characters)."`
	TZ              string `name:"tz" env:"TZ" default:"UTC" help:"Time zone used for day boundaries."`
	DefaultLanguage string `name:"default-language" env:"DEFAULT_LANGUAGE" default:"en" enum:"en,pt" help:"Language when the request does not choose one."`
	CookieSecure    bool   `name:"cookie-secure" env:"COOKIE_SECURE" help:"Mark cookies as Secure."`
	AIProvider      string `name:"ai-provider" env:"AI_PROVIDER" default:"openai" enum:"openai,gemini" help:"Text generation provider."`
	AIAPIKey        string `name:"ai-api-key" env:"AI_API_KEY" help:"Provider API key. Without it every AI feature serves its fallback."`
	AIBaseURL       string `name:"ai-base-url" env:"AI_BASE_URL" help:"Override the provider endpoint."`
	AIModel         string `name:"ai-model" env:"AI_MODEL" help:"Override the provider model."`
}

// Validate runs after flag parsing and before Run.
func (cmd *ServeCmd) Validate() error {
	if err := validatePort(cmd.Port); err != nil {
		return err
	}
	secret, err := validateSecretKey(cmd.SecretKey)
	if err != nil {
		return err
	}
	cmd.SecretKey = secret
	return nil
}

func (cmd *ServeCmd) Run(globals *Globals) error {
	log, err := globals.logger()
	if err != nil {
		return err
	}
	defer func() {
		_ = log.Sync()
	}()

	location := loadLocation(cmd.TZ, log)
	time.Local = location

	database, closeDatabase, err := globals.openDatabase(log)
	if err != nil {
		return err
	}
	defer closeDatabase()

	lifecycleCtx, cancelLifecycle := context.WithCancel(context.Background())
	defer cancelLifecycle()

	coach, err := ai.NewCoach(newCompleter(lifecycleCtx, cmd, log), log)
	if err != nil {
		return fmt.Errorf("coach init failed: %w", err)
	}

	i18nManager, err := i18n.NewEmbeddedManager(cmd.DefaultLanguage)
	if err != nil {
		return fmt.Errorf("i18n init failed: %w", err)
	}

	handler, err := api.NewHandler(api.Config{
		Database:     database,
		Secret:       cmd.SecretKey,
		Location:     location,
		I18n:         i18nManager,
		Coach:        coach,
		CookieSecure: cmd.CookieSecure,
		Logger:       log,
	})
	if err != nil {
		return fmt.Errorf("handler init failed: %w", err)
	}

	app := newApp(handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		cancelLifecycle()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error("server shutdown failed", zap.Error(err))
		}
	}()

	log.Info("aurora listening",
		zap.Int("port", cmd.Port),
		zap.String("db_driver", globals.DBDriver),
		zap.String("tz", location.String()),
		zap.Bool("ai", coach.Enabled()),
	)
	if err := app.Listen(fmt.Sprintf(":%d", cmd.Port)); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	return nil
}

func newApp(handler *api.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "Aurora " + version,
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	api.RegisterRoutes(app, handler)
	return app
}

// newCompleter returns nil when no provider is configured.
func newCompleter(ctx context.Context, cmd *ServeCmd, log *zap.Logger) ai.Completer {
	completer, err := ai.NewCompleter(ctx, ai.ClientConfig{
		Provider: cmd.AIProvider,
		APIKey:   cmd.AIAPIKey,
		BaseURL:  cmd.AIBaseURL,
		Model:    cmd.AIModel,
	})
	switch {
	case errors.Is(err, ai.ErrAPIKeyMissing):
		log.Info("AI_API_KEY is not set, AI features will serve fallbacks")
		return nil
	case err != nil:
		log.Warn("AI provider init failed, AI features will serve fallbacks", zap.String("provider", cmd.AIProvider), zap.Error(err))
		return nil
	}
	return completer
}

func validateSecretKey(raw string) (string, error) {
	secret := strings.TrimSpace(raw)
	if secret == "" {
		return "", errors.New("SECRET_KEY is required")
	}
	if _, insecure := insecureSecretKeys[secret]; insecure {
		return "", errors.New("SECRET_KEY uses an insecure placeholder")
	}
	if len(secret) < minSecretKeyLength {
		return "", fmt.Errorf("SECRET_KEY must be at least %d characters", minSecretKeyLength)
	}
	return secret, nil
}

func validatePort(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("invalid PORT %d", port)
	}
	return nil
}

func loadLocation(name string, log *zap.Logger) *time.Location {
	location, err := time.LoadLocation(strings.TrimSpace(name))
	if err != nil {
		log.Warn("invalid TZ, falling back to UTC", zap.String("tz", name))
		return time.UTC
	}
	return location
}
