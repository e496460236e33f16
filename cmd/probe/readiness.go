package probe

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/walletpanel/go-wallet-panel/internal/config"
)

func newReadiness() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "readiness",
		Short: "Runs the readiness probe against the local server",
		Run: func(cmd *cobra.Command, _ []string) {
			verbose, err := cmd.Flags().GetBool(verboseFlag)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to parse verbose flag")
			}

			probeManagementEndpoint("/-/ready", verbose)
		},
	}

	cmd.Flags().BoolP(verboseFlag, "v", false, "Print the probe response body")

	return cmd
}

// probeManagementEndpoint queries a local management endpoint and exits
// non-zero unless it answers 200, making the binary usable as a k8s
// probe command.
func probeManagementEndpoint(path string, verbose bool) {
	cfg := config.DefaultServiceConfigFromEnv()

	client := &http.Client{Timeout: 5 * time.Second}

	res, err := client.Get(fmt.Sprintf("http://localhost%s%s", cfg.Echo.ListenAddress, path)) //nolint:noctx
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("Probe request failed")
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read probe response")
	}

	if verbose {
		fmt.Println(string(body))
	}

	if res.StatusCode != http.StatusOK {
		os.Exit(1)
	}
}
