package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/subosito/gotenv"
	"github/walletpanel/go-wallet-panel/internal/util"
)

// EchoServer configures the echo HTTP layer.
type EchoServer struct {
	Debug                          bool
	ListenAddress                  string
	HideInternalServerErrorDetails bool
	BaseURL                        string
	EnableCORSMiddleware           bool
	EnableLoggerMiddleware         bool
	EnableRecoverMiddleware        bool
	EnableRequestIDMiddleware      bool
	EnableTrailingSlashMiddleware  bool
	EnableMetricsMiddleware        bool
}

// LoggerServer configures zerolog.
type LoggerServer struct {
	Level              zerolog.Level
	RequestLevel       zerolog.Level
	LogRequestBody     bool
	LogRequestHeader   bool
	LogRequestQuery    bool
	LogResponseBody    bool
	LogResponseHeader  bool
	PrettyPrintConsole bool
}

// PanelServer configures the wallet panel core.
type PanelServer struct {
	// RefreshInterval of the state synchronizer; <= 0 disables the
	// periodic refresh.
	RefreshInterval time.Duration
	// DefaultChainID used when the active backend cannot report a chain.
	DefaultChainID int64
	// SponsoredDefault is the initial paymaster sponsorship preference.
	SponsoredDefault bool
	// DevFakeBackends wires deterministic in-memory wallet backends
	// instead of host-provided ones.
	DevFakeBackends bool
	// AssetsFilePath points to the chains/tokens asset registry file.
	AssetsFilePath string
}

// Server is the full service configuration.
type Server struct {
	Echo   EchoServer
	Logger LoggerServer
	Panel  PanelServer
}

var (
	configOnce sync.Once
	config     Server
)

// DefaultServiceConfigFromEnv returns the server config as parsed from
// the environment, loading a .env file once in non-test contexts.
func DefaultServiceConfigFromEnv() Server {
	configOnce.Do(func() {
		if !util.RunningInTest() {
			gotenv.Load(filepath.Join(util.GetProjectRootDir(), ".env")) //nolint:errcheck
		}

		config = Server{
			Echo: EchoServer{
				Debug:                          util.GetEnvAsBool("SERVER_ECHO_DEBUG", false),
				ListenAddress:                  util.GetEnv("SERVER_ECHO_LISTEN_ADDRESS", ":8080"),
				HideInternalServerErrorDetails: util.GetEnvAsBool("SERVER_ECHO_HIDE_INTERNAL_SERVER_ERROR_DETAILS", true),
				BaseURL:                        util.GetEnv("SERVER_ECHO_BASE_URL", "http://localhost:8080"),
				EnableCORSMiddleware:           util.GetEnvAsBool("SERVER_ECHO_ENABLE_CORS_MIDDLEWARE", true),
				EnableLoggerMiddleware:         util.GetEnvAsBool("SERVER_ECHO_ENABLE_LOGGER_MIDDLEWARE", true),
				EnableRecoverMiddleware:        util.GetEnvAsBool("SERVER_ECHO_ENABLE_RECOVER_MIDDLEWARE", true),
				EnableRequestIDMiddleware:      util.GetEnvAsBool("SERVER_ECHO_ENABLE_REQUEST_ID_MIDDLEWARE", true),
				EnableTrailingSlashMiddleware:  util.GetEnvAsBool("SERVER_ECHO_ENABLE_TRAILING_SLASH_MIDDLEWARE", true),
				EnableMetricsMiddleware:        util.GetEnvAsBool("SERVER_ECHO_ENABLE_METRICS_MIDDLEWARE", true),
			},
			Logger: LoggerServer{
				Level:              util.LogLevelFromString(util.GetEnv("SERVER_LOGGER_LEVEL", zerolog.DebugLevel.String())),
				RequestLevel:       util.LogLevelFromString(util.GetEnv("SERVER_LOGGER_REQUEST_LEVEL", zerolog.DebugLevel.String())),
				LogRequestBody:     util.GetEnvAsBool("SERVER_LOGGER_LOG_REQUEST_BODY", false),
				LogRequestHeader:   util.GetEnvAsBool("SERVER_LOGGER_LOG_REQUEST_HEADER", false),
				LogRequestQuery:    util.GetEnvAsBool("SERVER_LOGGER_LOG_REQUEST_QUERY", false),
				LogResponseBody:    util.GetEnvAsBool("SERVER_LOGGER_LOG_RESPONSE_BODY", false),
				LogResponseHeader:  util.GetEnvAsBool("SERVER_LOGGER_LOG_RESPONSE_HEADER", false),
				PrettyPrintConsole: util.GetEnvAsBool("SERVER_LOGGER_PRETTY_PRINT_CONSOLE", false),
			},
			Panel: PanelServer{
				RefreshInterval:  util.GetEnvAsDuration("SERVER_PANEL_REFRESH_INTERVAL", 30*time.Second),
				DefaultChainID:   util.GetEnvAsInt64("SERVER_PANEL_DEFAULT_CHAIN_ID", 11155111),
				SponsoredDefault: util.GetEnvAsBool("SERVER_PANEL_SPONSORED_DEFAULT", true),
				DevFakeBackends:  util.GetEnvAsBool("SERVER_PANEL_DEV_FAKE_BACKENDS", false),
				AssetsFilePath:   util.GetEnv("SERVER_PANEL_ASSETS_FILE_PATH", filepath.Join(util.GetProjectRootDir(), "assets.yml")),
			},
		}
	})

	return config
}
