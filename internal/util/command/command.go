package command

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/walletpanel/go-wallet-panel/internal/api"
	"github/walletpanel/go-wallet-panel/internal/api/router"
	"github/walletpanel/go-wallet-panel/internal/config"
	"github/walletpanel/go-wallet-panel/internal/wallet/walletfake"
)

// NewSubcommandGroup returns a cobra command that only groups its
// subcommands and prints the help when invoked directly.
func NewSubcommandGroup(use string, subcommands ...*cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use: use,
		Run: func(cmd *cobra.Command, _ []string) {
			if err := cmd.Help(); err != nil {
				log.Error().Err(err).Msg("Failed to print help")
				os.Exit(1)
			}

			os.Exit(0)
		},
	}

	cmd.AddCommand(subcommands...)

	return cmd
}

// InitLogger applies the logger config to the global zerolog instance.
func InitLogger(cfg config.Server) {
	zerolog.SetGlobalLevel(cfg.Logger.Level)

	if cfg.Logger.PrettyPrintConsole {
		log.Logger = log.Output(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
			w.TimeFormat = "15:04:05"
		}))
	}
}

// ResolveBackends returns the wallet backends for standalone runs.
// Embedding hosts construct their own api.Backends; outside a host only
// the deterministic dev backends are available.
func ResolveBackends(cfg config.Server) (api.Backends, error) {
	if !cfg.Panel.DevFakeBackends {
		return api.Backends{}, errors.New("no wallet backends available, standalone runs require SERVER_PANEL_DEV_FAKE_BACKENDS=true")
	}

	return api.Backends{
		EOA:          walletfake.NewEOABackend(),
		SmartAccount: walletfake.NewSmartAccountBackend(),
	}, nil
}

// WithServer initializes a full server for the given config, runs fn
// with it and shuts the server down afterwards. Used by one-off
// subcommands that need the wired components without serving HTTP.
func WithServer(ctx context.Context, cfg config.Server, fn func(ctx context.Context, s *api.Server) error) error {
	InitLogger(cfg)

	backends, err := ResolveBackends(cfg)
	if err != nil {
		return err
	}

	s, err := api.InitNewServer(cfg, backends)
	if err != nil {
		return errors.Wrap(err, "failed to initialize server")
	}

	router.Init(s)

	if err := s.InitPanel(ctx); err != nil {
		log.Warn().Err(err).Msg("Initial wallet state refresh failed")
	}

	defer func() {
		for _, err := range s.Shutdown(context.Background()) {
			log.Error().Err(err).Msg("Failed to shutdown server component")
		}
	}()

	return fn(ctx, s)
}
