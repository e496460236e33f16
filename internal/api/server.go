package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dropbox/godropbox/time2"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github/walletpanel/go-wallet-panel/internal/config"
	"github/walletpanel/go-wallet-panel/internal/i18n"
	"github/walletpanel/go-wallet-panel/internal/metrics"
	"github/walletpanel/go-wallet-panel/internal/util"
	"github/walletpanel/go-wallet-panel/internal/wallet/chain"
	"github/walletpanel/go-wallet-panel/internal/wallet/eoa"
	"github/walletpanel/go-wallet-panel/internal/wallet/smartaccount"
	"github/walletpanel/go-wallet-panel/internal/wallet/state"
	"github/walletpanel/go-wallet-panel/internal/wallet/unified"
)

// Backends carries the host-supplied wallet backend handles. Either may
// be nil; the unified adapter derives its mode from what is present.
type Backends struct {
	EOA          eoa.Backend
	SmartAccount smartaccount.Backend
}

type Router struct {
	Routes      []*echo.Route
	Root        *echo.Group
	Management  *echo.Group
	APIV1Wallet *echo.Group
	APIV1Assets *echo.Group
}

// Server is a central struct keeping all the dependencies.
// It is initialized with wire, which handles making the new instances of the components
// in the right order. To add a new component, 3 steps are required:
// - declaring it in this struct
// - adding a provider function in providers.go
// - adding the provider's function name to the arguments of wire.Build() in wire.go
//
// Components labeled as `wire:"-"` will be skipped and have to be initialized after the InitNewServer* call.
// For more information about wire refer to https://pkg.go.dev/github.com/google/wire
type Server struct {
	// skip wire:
	// -> initialized with router.Init(s) function
	Echo   *echo.Echo `wire:"-"`
	Router *Router    `wire:"-"`

	Config   config.Server
	Clock    time2.Clock
	I18n     *i18n.Service
	Metrics  *metrics.Service
	Assets   *config.Assets
	Chains   *chain.Registry
	Balances state.BalanceReader
	Adapter  *unified.Adapter
	Sync     *state.Synchronizer
}

// newServerWithComponents is used by wire to initialize the server components.
// Components not listed here won't be handled by wire and should be initialized separately.
// Components which shouldn't be handled must be labeled `wire:"-"` in Server struct.
func newServerWithComponents(
	cfg config.Server,
	clock time2.Clock,
	i18nService *i18n.Service,
	metricsService *metrics.Service,
	assets *config.Assets,
	chains *chain.Registry,
	balances state.BalanceReader,
	adapter *unified.Adapter,
	sync *state.Synchronizer,
) *Server {
	return &Server{
		Config:   cfg,
		Clock:    clock,
		I18n:     i18nService,
		Metrics:  metricsService,
		Assets:   assets,
		Chains:   chains,
		Balances: balances,
		Adapter:  adapter,
		Sync:     sync,
	}
}

func NewServer(config config.Server) *Server {
	s := &Server{
		Config: config,
	}

	return s
}

// InitPanel binds the unified adapter to the state synchronizer and runs
// the initial refresh.
func (s *Server) InitPanel(ctx context.Context) error {
	return s.Sync.SetAdapter(ctx, s.Adapter)
}

func (s *Server) Ready() bool {
	if err := util.IsStructInitialized(s); err != nil {
		log.Debug().Err(err).Msg("Server is not fully initialized")
		return false
	}

	return true
}

func (s *Server) Start() error {
	if !s.Ready() {
		return errors.New("server is not ready")
	}

	if err := s.Echo.Start(s.Config.Echo.ListenAddress); err != nil {
		return fmt.Errorf("failed to start echo server: %w", err)
	}

	return nil
}

func (s *Server) Shutdown(ctx context.Context) []error {
	log.Warn().Msg("Shutting down server")

	var errs []error

	if closer, ok := s.Balances.(interface{ Close() }); ok {
		log.Debug().Msg("Closing balance RPC clients")
		closer.Close()
	}

	if s.Echo != nil {
		log.Debug().Msg("Shutting down echo server")

		if err := s.Echo.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Failed to shutdown echo server")
			errs = append(errs, err)
		}
	}

	return errs
}
