package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/character-builder/internal/dice"
	"github.com/KirkDiggler/character-builder/internal/handlers/httpapi"
	charorch "github.com/KirkDiggler/character-builder/internal/orchestrators/character"
	"github.com/KirkDiggler/character-builder/internal/pkg/clock"
	"github.com/KirkDiggler/character-builder/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/character-builder/internal/redis"
	characterrepo "github.com/KirkDiggler/character-builder/internal/repositories/character"
	draftrepo "github.com/KirkDiggler/character-builder/internal/repositories/draft"
	"github.com/KirkDiggler/character-builder/internal/rulebook"
)

// serverConfig is populated from the environment. A .env file in the
// working directory is loaded first when present.
type serverConfig struct {
	HTTPAddr   string `env:"HTTP_ADDR" envDefault:":8080"`
	RedisAddr  string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"characters.db"`

	// RerollFloor is a table house rule: dice at or below this value
	// are rerolled. Zero plays it straight.
	RerollFloor int `env:"DICE_REROLL_FLOOR" envDefault:"0"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long:  `Start the character builder HTTP server with all configured services.`,
	RunE:  runServer,
}

func runServer(cmd *cobra.Command, args []string) error {
	// Missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

	cfg, err := env.ParseAs[serverConfig]()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("received shutdown signal")
		cancel()
	}()

	redisConn, err := redisclient.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return err
	}
	defer func() { _ = redisConn.Close() }()

	charRepo, err := characterrepo.OpenSQLite(cfg.SQLitePath)
	if err != nil {
		return err
	}
	defer func() { _ = charRepo.Close() }()

	roller, err := dice.New(&dice.Config{
		Source:      dice.NewRandomSource(),
		RerollFloor: cfg.RerollFloor,
	})
	if err != nil {
		return err
	}

	orchestrator, err := charorch.New(&charorch.Config{
		DraftRepo:     draftrepo.NewRedisRepository(redisConn),
		CharacterRepo: charRepo,
		Rulebook:      rulebook.New(),
		Roller:        roller,
		IDGenerator:   idgen.NewUUID("char"),
		Clock:         clock.New(),
	})
	if err != nil {
		return err
	}

	handler, err := httpapi.New(&httpapi.Config{Service: orchestrator})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("http server starting", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down http server")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("forced shutdown", "error", err)
			return srv.Close()
		}
		slog.Info("server stopped gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}
