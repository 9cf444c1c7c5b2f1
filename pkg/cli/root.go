package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/donmatraca/nitrado-go/internal/cliconfig"
	"github.com/donmatraca/nitrado-go/pkg/logging"
)

var (
	// Persistent flags available to all subcommands
	flagToken     string
	flagAPIURL    string
	flagServiceID string
	jsonOutput    bool
	verbose       bool

	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"

	// cfg is the resolved configuration, set before any RunE fires.
	cfg *cliconfig.Config
	// log is the CLI logger; quiet unless --verbose.
	log *slog.Logger = logging.Nop()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "nitractl",
	Short: "nitractl manages Nitrado-hosted game servers",
	Long: `nitractl drives a Nitrado-hosted game server from the terminal: power
control, restart schedules, player lists, FTP file transfer, and config
file checks.

It needs a long-lived API token (account settings on nitrado.net) and the
numeric service ID of the server. Both can come from flags, NITRADO_*
environment variables, or ~/.config/nitractl/config.yaml.`,
	SilenceUsage:  true,
	SilenceErrors: true, // We handle errors in Execute()
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		resolved, err := cliconfig.LoadAll()
		if err != nil {
			return err
		}
		cliconfig.Merge(resolved, &cliconfig.Config{
			Token:     flagToken,
			APIURL:    flagAPIURL,
			ServiceID: flagServiceID,
			Verbose:   verbose,
		}, cliconfig.SourceFlag)
		cfg = resolved

		if cfg.Verbose {
			log = logging.New(logging.Config{
				Level:  logging.LevelDebug,
				Format: logging.FormatText,
				Output: os.Stderr,
			})
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Define persistent flags that apply globally to all nitractl commands
	rootCmd.PersistentFlags().StringVar(&flagToken, "token", "", "Nitrado API token (overrides NITRADO_TOKEN and the config file)")
	rootCmd.PersistentFlags().StringVar(&flagAPIURL, "api-url", "", "API base URL (default: https://api.nitrado.net)")
	rootCmd.PersistentFlags().StringVar(&flagServiceID, "service-id", "", "Service ID of the game server")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output command results in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
