package config

import "fmt"

// ModuleName is the name of the module, overridable at build time via
// -ldflags.
var ModuleName = "go-wallet-panel"

// The following vars are automatically injected via -ldflags.
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// GetFormattedBuildArgs returns "<ModuleName> @ <commit> (<build date>)".
func GetFormattedBuildArgs() string {
	return fmt.Sprintf("%v @ %v (%v)", ModuleName, Commit, BuildDate)
}
