package excelexportservice

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/AlecAivazis/survey/v2"
	tablewriterservice "github.com/RobsonDevCode/reactscan/internal/cmdLineWriters/tablewriter"
	"github.com/RobsonDevCode/reactscan/internal/constants/exportExcelOptions"
	"github.com/RobsonDevCode/reactscan/internal/constants/tableHeaders"
	trackedpackages "github.com/RobsonDevCode/reactscan/internal/constants/trackedPackages"
	scannermodels "github.com/RobsonDevCode/reactscan/internal/scanner/models"
	"github.com/xuri/excelize/v2"
)

const reportSheetName = "Vulnerability Report"

// ExportFindings writes one row per project and package to a new workbook in saveFileTo
// and returns the path of the saved file.
func ExportFindings(saveFileTo string, scans []scannermodels.ProjectScan, now time.Time) (string, error) {
	if err := os.MkdirAll(saveFileTo, 0755); err != nil {
		return "", fmt.Errorf("error creating directory %s, %w", saveFileTo, err)
	}

	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", reportSheetName); err != nil {
		return "", fmt.Errorf("error naming sheet: %w", err)
	}

	for i, header := range tableHeaders.ExcelReportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		file.SetCellValue(reportSheetName, cell, header)
	}

	row := 2 // excel is 1 indexed and row 1 holds the headers
	for _, scan := range scans {
		for _, finding := range scan.Findings {
			rowData := []interface{}{
				scan.ProjectDir,
				trackedpackages.DisplayName(finding.Resolution.Package),
				finding.Resolution.DisplayVersion(),
				finding.Resolution.Source,
				tablewriterservice.FindingStatus(finding),
			}

			if err := file.SetSheetRow(reportSheetName, fmt.Sprintf("A%d", row), &rowData); err != nil {
				return "", fmt.Errorf("error writing row %d: %w", row, err)
			}
			row++
		}
	}

	fileName := fmt.Sprintf("reactscan_%s.xlsx", now.Format("2006-01-02T15-04-05"))
	fullPath := filepath.Join(saveFileTo, fileName)

	if err := file.SaveAs(fullPath); err != nil {
		return "", fmt.Errorf("failed to save excel to %s, %w", fullPath, err)
	}

	return fullPath, nil
}

func SelectExportFindings() (string, error) {
	prompt := &survey.Select{
		Message: "Export Scan Results",
		Options: exportExcelOptions.ExcelOptions,
	}

	var selectedIndex int
	err := survey.AskOne(prompt, &selectedIndex)
	if err != nil {
		return "", fmt.Errorf("selection error: %w", err)
	}

	return exportExcelOptions.ExcelOptions[selectedIndex], nil
}
