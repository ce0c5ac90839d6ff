package reportwriter

import (
	"fmt"
	"io"

	scanstatus "github.com/RobsonDevCode/reactscan/internal/constants/scanStatus"
	trackedpackages "github.com/RobsonDevCode/reactscan/internal/constants/trackedPackages"
	scannermodels "github.com/RobsonDevCode/reactscan/internal/scanner/models"
	"github.com/fatih/color"
)

const (
	header        = "=== Local React / Next.js Vulnerability Scan ==="
	reportSection = "--- Vulnerability Report ---"
	footer        = "=== Scan Complete ==="
)

var (
	vulnerableMarker = color.New(color.FgRed, color.Bold).SprintFunc()
	secureMarker     = color.New(color.FgGreen).SprintFunc()
)

type ReportWriter struct {
	out io.Writer
}

func NewReportWriter(out io.Writer) *ReportWriter {
	return &ReportWriter{
		out: out,
	}
}

func (w *ReportWriter) WriteProject(projectDir string) {
	fmt.Fprintf(w.out, "\nProject: %s\n", color.CyanString("%s", projectDir))
}

func (w *ReportWriter) WriteHeader() {
	fmt.Fprintf(w.out, "\n%s\n\n", header)
}

func (w *ReportWriter) WriteDetected(resolutions []scannermodels.Resolution) {
	for _, resolution := range resolutions {
		fmt.Fprintf(w.out, "Detected %s version: %s\n",
			trackedpackages.DisplayName(resolution.Package), resolution.DisplayVersion())
	}
}

func (w *ReportWriter) WriteFindings(findings []scannermodels.Finding) {
	fmt.Fprintf(w.out, "\n%s\n", reportSection)

	for _, finding := range findings {
		name := trackedpackages.DisplayName(finding.Resolution.Package)
		version := finding.Resolution.DisplayVersion()

		if finding.Vulnerable {
			fmt.Fprintf(w.out, "%s %s %s -> %s\n", vulnerableMarker("[!]"), name, version, scanstatus.Vulnerable)
		} else {
			fmt.Fprintf(w.out, "%s %s %s -> %s\n", secureMarker("[OK]"), name, version, scanstatus.Secure)
		}
	}
}

func (w *ReportWriter) WriteFooter() {
	fmt.Fprintf(w.out, "\n%s\n\n", footer)
}
