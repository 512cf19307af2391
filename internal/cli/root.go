package cli

import (
	"fmt"
	"os"

	"github.com/goxrpld/lab/internal/config"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configFile string
	debug      bool
	profile    string

	loadedConfig *config.Config
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "xrpld",
	Short: "goxrpld-lab - a deterministic XRPL consensus/ledger research engine",
	Long: `goxrpld-lab is an educational/research re-implementation of the XRP
Ledger's consensus and ledger engine: a deterministic consensus FSM, a
transaction pipeline, a seeded simulation harness, and a profile-gated
JSON control surface. It is not a production rippled node.`,
	Version: "0.1.0-dev",
}

// Execute adds all child commands to the root command and runs it. This
// is called by main.main(); it only needs to happen once.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&configFile, "conf", "", "configuration file path")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable normally suppressed debug logging")
	rootCmd.PersistentFlags().StringVar(&profile, "profile", "", `override the configured profile ("research" or "production")`)
}

// initConfig loads the node configuration from --conf (or built-in
// defaults) and applies any --profile override, ready for every
// subcommand to consume via loadedConfig.
func initConfig() {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	if profile != "" {
		cfg.Profile = profile
		if err := config.ValidateConfig(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(1)
		}
	}

	loadedConfig = cfg
}
