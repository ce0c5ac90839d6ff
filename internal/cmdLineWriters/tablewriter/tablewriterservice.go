package tablewriterservice

import (
	"fmt"
	"io"

	scanstatus "github.com/RobsonDevCode/reactscan/internal/constants/scanStatus"
	"github.com/RobsonDevCode/reactscan/internal/constants/tableHeaders"
	trackedpackages "github.com/RobsonDevCode/reactscan/internal/constants/trackedPackages"
	"github.com/RobsonDevCode/reactscan/internal/extensions"
	scannermodels "github.com/RobsonDevCode/reactscan/internal/scanner/models"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

const maxVersionWidth = 24

func FindingStatus(finding scannermodels.Finding) string {
	switch {
	case !finding.Resolved:
		return scanstatus.Unresolved
	case finding.Vulnerable:
		return scanstatus.Vulnerable
	default:
		return scanstatus.Secure
	}
}

func DetectionRows(findings []scannermodels.Finding) [][]string {
	rows := make([][]string, 0, len(findings))
	for _, finding := range findings {
		rows = append(rows, []string{
			trackedpackages.DisplayName(finding.Resolution.Package),
			extensions.TruncateString(finding.Resolution.DisplayVersion(), maxVersionWidth),
			finding.Resolution.Source,
			FindingStatus(finding),
		})
	}
	return rows
}

func DisplayDetectionTable(out io.Writer, scan scannermodels.ProjectScan) {
	if len(scan.Findings) == 0 {
		return
	}

	fmt.Fprintf(out, "\n Detection Details (%s): \n", color.CyanString("%s", scan.ProjectDir))

	table := tablewriter.NewTable(out,
		tablewriter.WithRenderer(renderer.NewBlueprint(tw.Rendition{
			Settings: tw.Settings{Separators: tw.Separators{BetweenRows: tw.On}},
		})),
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoWrap: tw.WrapNormal},
				Alignment:    tw.CellAlignment{Global: tw.AlignCenter},
				ColMaxWidths: tw.CellWidth{Global: 30},
			},
		}),
	)

	table.Header(tableHeaders.DetectionTableHeaders)
	for _, row := range DetectionRows(scan.Findings) {
		table.Append(row)
	}

	table.Render()
}
