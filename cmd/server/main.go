package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/altuslab/challenges-api/auth"
	"github.com/altuslab/challenges-api/internal/config"
	"github.com/altuslab/challenges-api/internal/handlers"
	"github.com/altuslab/challenges-api/internal/logging"
	"github.com/altuslab/challenges-api/internal/provider/firebase"
	"github.com/altuslab/challenges-api/internal/provider/local"
	"github.com/altuslab/challenges-api/internal/store"
)

func main() {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	if err := run(logger); err != nil {
		logger.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(logger *logging.SlogLogger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	db, err := store.Connect(connectCtx, cfg.MongoURI, cfg.DatabaseName, logger)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Close(closeCtx); err != nil {
			logger.Warn("failed to close mongodb client", "error", err)
		}
	}()

	provider, err := selectProvider(cfg, db, logger)
	if err != nil {
		return err
	}

	tokens := auth.NewTokenService([]byte(cfg.GetSigningKey()), cfg.GetTokenTTL(), logger)
	verifier := auth.NewVerifier(tokens, logger)
	gate := auth.NewGate(verifier, logger)
	auther := auth.NewAuthenticator(provider, db, tokens).WithLogger(logger)

	app := fiber.New(fiber.Config{
		AppName:      "challenges-api",
		ErrorHandler: handlers.ErrorHandler(logger),
	})

	h := handlers.New(handlers.Handlers{
		Auther:         auther,
		Gate:           gate,
		Categories:     db,
		Challenges:     db,
		Participations: db,
		Comments:       db,
		Logger:         logger,
	})
	h.Register(app)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", cfg.HTTPAddr)
		errCh <- app.Listen(cfg.HTTPAddr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("shutting down")
		return app.ShutdownWithTimeout(10 * time.Second)
	}
}

// selectProvider picks the identity provider: Firebase when an API key
// is configured, the local bcrypt provider otherwise.
func selectProvider(cfg *config.Config, db *store.Store, logger auth.Logger) (auth.IdentityProvider, error) {
	if cfg.FirebaseAPIKey != "" {
		return firebase.NewIdentityProvider(cfg.FirebaseAPIKey, firebase.WithLogger(logger))
	}

	logger.Warn("FIREBASE_API_KEY not set, using local credential store")
	return local.NewIdentityProvider(db, logger)
}
