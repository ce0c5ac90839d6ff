package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/RobsonDevCode/reactscan/internal/configuration"
	"github.com/RobsonDevCode/reactscan/internal/logging"
	scanreportservice "github.com/RobsonDevCode/reactscan/internal/services/scanReportService"
	"github.com/spf13/cobra"
)

type ScanReportFactory func(config *configuration.Config) scanreportservice.ScanReportService

var (
	scanReportFactory ScanReportFactory
	loadedConfig      *configuration.Config
)

const (
	ConfigFlag  = "config"
	VerboseFlag = "verbose"
)

var rootCmd = &cobra.Command{
	Use:   "reactscan",
	Short: "check a project's React and Next.js versions against known vulnerable releases",
	Long: `reactscan detects the installed React and Next.js versions of a local project
		   and reports whether either falls in a known vulnerable release.

		   Running reactscan without a sub-command scans the current directory.`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfiguration,
	RunE:              runScan,
}

// cant DI directly into the command so we use a setter
func SetScanReportFactory(factory ScanReportFactory) {
	scanReportFactory = factory
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func loadConfiguration(cmd *cobra.Command, _ []string) error {
	configPath, _ := cmd.Flags().GetString(ConfigFlag)
	verbose, _ := cmd.Flags().GetBool(VerboseFlag)

	logging.Init(verbose)

	config, err := configuration.Load(configPath)
	if err != nil {
		return fmt.Errorf("error starting command line: %w", err)
	}

	loadedConfig = config
	return nil
}

func init() {
	rootCmd.PersistentFlags().String(ConfigFlag, "", fmt.Sprintf("Path to a configuration file (default %s when present)", configuration.FilePath))
	rootCmd.PersistentFlags().BoolP(VerboseFlag, "v", false, "Log every detection attempt to stderr")

	addScanFlags(rootCmd)
}
