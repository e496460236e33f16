package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/walletpanel/go-wallet-panel/internal/api"
	"github/walletpanel/go-wallet-panel/internal/api/router"
	"github/walletpanel/go-wallet-panel/internal/config"
	"github/walletpanel/go-wallet-panel/internal/util/command"
)

func New() *cobra.Command {
	return &cobra.Command{
		Use:   "server",
		Short: "Starts the wallet panel server",
		Long: `Starts the wallet panel server.

Requires configuration through ENV and a wallet backend; outside an
embedding host enable SERVER_PANEL_DEV_FAKE_BACKENDS for the
deterministic development backends.`,
		Run: func(_ *cobra.Command, _ []string) {
			runServer()
		},
	}
}

func runServer() {
	cfg := config.DefaultServiceConfigFromEnv()

	command.InitLogger(cfg)

	backends, err := command.ResolveBackends(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to resolve wallet backends")
	}

	s, err := api.InitNewServer(cfg, backends)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize server")
	}

	router.Init(s)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := s.InitPanel(ctx); err != nil {
		log.Warn().Err(err).Msg("Initial wallet state refresh failed")
	}

	go func() {
		if err := s.Sync.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error().Err(err).Msg("Wallet state synchronizer stopped")
		}
	}()

	go func() {
		if err := s.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Received signal, shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if errs := s.Shutdown(shutdownCtx); len(errs) > 0 {
		for _, err := range errs {
			log.Error().Err(err).Msg("Failed to shutdown server component")
		}

		os.Exit(1)
	}
}
