package reportwriter

import (
	"bytes"
	"testing"

	scannermodels "github.com/RobsonDevCode/reactscan/internal/scanner/models"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	m.Run()
}

func TestFullReport(t *testing.T) {
	react := scannermodels.Resolution{Package: "react", Version: "19.1.1", Found: true}
	next := scannermodels.Resolution{Package: "next", Version: "15.2.6", Found: true}

	var buf bytes.Buffer
	writer := NewReportWriter(&buf)
	writer.WriteHeader()
	writer.WriteDetected([]scannermodels.Resolution{react, next})
	writer.WriteFindings([]scannermodels.Finding{
		{Resolution: react, Vulnerable: true, Resolved: true},
		{Resolution: next, Vulnerable: false, Resolved: true},
	})
	writer.WriteFooter()

	expected := "\n=== Local React / Next.js Vulnerability Scan ===\n\n" +
		"Detected React version: 19.1.1\n" +
		"Detected Next.js version: 15.2.6\n" +
		"\n--- Vulnerability Report ---\n" +
		"[!] React 19.1.1 -> VULNERABLE\n" +
		"[OK] Next.js 15.2.6 -> SECURE\n" +
		"\n=== Scan Complete ===\n\n"
	assert.Equal(t, expected, buf.String())
}

// Known defect reproduced: an undetected UI library prints as secure.
func TestAbsentVersionPrintsNoneAsSecure(t *testing.T) {
	react := scannermodels.Resolution{Package: "react"}

	var buf bytes.Buffer
	writer := NewReportWriter(&buf)
	writer.WriteDetected([]scannermodels.Resolution{react})
	writer.WriteFindings([]scannermodels.Finding{{Resolution: react}})

	assert.Equal(t, "Detected React version: None\n\n--- Vulnerability Report ---\n[OK] React None -> SECURE\n", buf.String())
}

func TestWriteProject(t *testing.T) {
	var buf bytes.Buffer
	NewReportWriter(&buf).WriteProject("./apps/web")

	assert.Equal(t, "\nProject: ./apps/web\n", buf.String())
}
