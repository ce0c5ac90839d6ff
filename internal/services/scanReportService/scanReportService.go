package scanreportservice

import (
	"context"
	"fmt"
	"io"
	"time"

	reportwriter "github.com/RobsonDevCode/reactscan/internal/cmdLineWriters/reportWriter"
	tablewriterservice "github.com/RobsonDevCode/reactscan/internal/cmdLineWriters/tablewriter"
	"github.com/RobsonDevCode/reactscan/internal/constants/exportExcelOptions"
	scannerService "github.com/RobsonDevCode/reactscan/internal/scanner"
	scannermodels "github.com/RobsonDevCode/reactscan/internal/scanner/models"
	excelexportservice "github.com/RobsonDevCode/reactscan/internal/services/excelExportService"
	"github.com/fatih/color"
)

type ScanOptions struct {
	ProjectDirs []string
	ShowTable   bool
	Export      bool
	Interactive bool
	ExportDir   string
}

type ScanReportService interface {
	Scan(ctx context.Context, options ScanOptions) ([]scannermodels.ProjectScan, error)
}

type ScanReport struct {
	scanner      scannerService.ScannerService
	out          io.Writer
	selectExport func() (string, error)
	now          func() time.Time
}

func NewScanReport(scanner scannerService.ScannerService, out io.Writer) *ScanReport {
	return &ScanReport{
		scanner:      scanner,
		out:          out,
		selectExport: excelexportservice.SelectExportFindings,
		now:          time.Now,
	}
}

// Scan reports on each project directory in turn. The first fatal error stops the run;
// scans completed before it are still returned.
func (s *ScanReport) Scan(ctx context.Context, options ScanOptions) ([]scannermodels.ProjectScan, error) {
	writer := reportwriter.NewReportWriter(s.out)
	multipleProjects := len(options.ProjectDirs) > 1

	var scans []scannermodels.ProjectScan
	for _, projectDir := range options.ProjectDirs {
		if multipleProjects {
			writer.WriteProject(projectDir)
		}

		scan, err := s.scanProject(ctx, writer, projectDir)
		if err != nil {
			return scans, err
		}
		scans = append(scans, scan)

		if options.ShowTable {
			tablewriterservice.DisplayDetectionTable(s.out, scan)
		}
	}

	if err := s.export(options, scans); err != nil {
		return scans, err
	}

	return scans, nil
}

func (s *ScanReport) scanProject(ctx context.Context, writer *reportwriter.ReportWriter, projectDir string) (scannermodels.ProjectScan, error) {
	writer.WriteHeader()

	// findings evaluated before a fatal error are still printed
	scan, err := s.scanner.ScanProject(ctx, projectDir)
	writer.WriteDetected(scan.Resolutions)
	writer.WriteFindings(scan.Findings)
	if err != nil {
		return scan, err
	}

	writer.WriteFooter()
	return scan, nil
}

func (s *ScanReport) export(options ScanOptions, scans []scannermodels.ProjectScan) error {
	if len(scans) == 0 {
		return nil
	}

	shouldExport := options.Export
	if !shouldExport && options.Interactive {
		choice, err := s.selectExport()
		if err != nil {
			return err
		}
		shouldExport = choice == exportExcelOptions.Yes
	}

	if !shouldExport {
		return nil
	}

	path, err := excelexportservice.ExportFindings(options.ExportDir, scans, s.now())
	if err != nil {
		return err
	}

	fmt.Fprintf(s.out, "%s\n", color.GreenString("Your file has been saved to: %s", path))
	return nil
}
