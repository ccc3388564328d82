package main

import (
	"context"
	"log"
	"os"
	"time"

	"log/slog"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	apphttp "github.com/aseelyusef9/frontInvApp/internal/http"
	"github.com/aseelyusef9/frontInvApp/internal/http/authcookie"
	"github.com/aseelyusef9/frontInvApp/internal/http/flash"
	"github.com/aseelyusef9/frontInvApp/internal/modules/extraction"
	"github.com/aseelyusef9/frontInvApp/internal/storage"
)

func main() {
	// Load .env file (ignore error if not found - prod uses real env vars)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	backendURL := os.Getenv("BACKEND_URL")
	if backendURL == "" {
		log.Fatal("BACKEND_URL environment variable is required")
	}

	secret := []byte(envOr("COOKIE_SECRET", "dev-only-insecure-secret"))
	secure := os.Getenv("COOKIE_SECURE") == "true"

	// The login gate is a local placeholder: one configured pair, admin/admin
	// unless overridden.
	username := envOr("AUTH_USERNAME", "admin")
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(envOr("AUTH_PASSWORD", "admin")), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash configured password: %v", err)
	}

	archive, err := storage.FromEnv(context.Background())
	if err != nil {
		log.Fatalf("failed to configure document archive: %v", err)
	}
	logger.Info("document archive", "driver", archive.Driver)

	r := apphttp.NewRouter(apphttp.Config{
		Logger:       logger,
		Extractor:    extraction.NewClient(backendURL),
		Archive:      archive.Archive,
		FlashCodec:   flash.NewCodec(secret, "fia_flash", secure),
		AuthCodec:    authcookie.New(secret, "fia_auth", secure, 7*24*time.Hour),
		Username:     username,
		PasswordHash: passwordHash,
		Templates:    envOr("TEMPLATES_GLOB", "templates/*.html"),
	})
	_ = r.Run(envOr("ADDR", ":8080"))
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
