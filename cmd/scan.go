package cmd

import (
	"fmt"

	"github.com/RobsonDevCode/reactscan/internal/configuration"
	scanreportservice "github.com/RobsonDevCode/reactscan/internal/services/scanReportService"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "scan project directories for vulnerable React and Next.js versions",
	Long: `scan project directories for vulnerable React and Next.js versions.

		   If no directory is provided, scans the current directory.
		   Repeat --dir to scan several project checkouts one after another.`,
	Args: cobra.NoArgs,
	RunE: runScan,
}

const (
	DirFlag         = "dir"
	TableFlag       = "table"
	ExportFlag      = "export"
	ExportDirFlag   = "export-dir"
	InteractiveFlag = "interactive"
)

func runScan(cmd *cobra.Command, _ []string) error {
	if scanReportFactory == nil {
		return fmt.Errorf("scan service has not been configured")
	}

	config := loadedConfig
	if config == nil {
		config = configuration.Default()
	}

	options := scanOptions(cmd.Flags(), config)
	_, err := scanReportFactory(config).Scan(cmd.Context(), options)
	return err
}

// scanOptions merges flags over configuration; a flag only wins when it was set.
func scanOptions(flags *pflag.FlagSet, config *configuration.Config) scanreportservice.ScanOptions {
	options := scanreportservice.ScanOptions{
		ProjectDirs: config.ScannerSettings.ProjectDirs,
		ExportDir:   config.ExportSettings.Directory,
	}

	if flags.Changed(DirFlag) {
		options.ProjectDirs, _ = flags.GetStringSlice(DirFlag)
	}
	if flags.Changed(ExportDirFlag) {
		options.ExportDir, _ = flags.GetString(ExportDirFlag)
	}

	options.ShowTable, _ = flags.GetBool(TableFlag)
	options.Export, _ = flags.GetBool(ExportFlag)
	options.Interactive, _ = flags.GetBool(InteractiveFlag)

	return options
}

func addScanFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceP(DirFlag, "d", nil, "Project directory to scan, may be repeated (default .)")
	cmd.Flags().BoolP(TableFlag, "t", false, "Print a detection table showing where each version came from")
	cmd.Flags().BoolP(ExportFlag, "e", false, "Export results to an excel workbook")
	cmd.Flags().String(ExportDirFlag, "", "Directory for exported workbooks (default ./export)")
	cmd.Flags().BoolP(InteractiveFlag, "i", false, "Ask whether to export results once the scan finishes")
}

func init() {
	addScanFlags(scanCmd)

	rootCmd.AddCommand(scanCmd)
}
