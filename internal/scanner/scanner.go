package scannerService

import (
	"context"
	"fmt"

	trackedpackages "github.com/RobsonDevCode/reactscan/internal/constants/trackedPackages"
	scannermodels "github.com/RobsonDevCode/reactscan/internal/scanner/models"
	versionresolverservice "github.com/RobsonDevCode/reactscan/internal/services/versionResolverService"
	vulnerabilityevaluatorservice "github.com/RobsonDevCode/reactscan/internal/services/vulnerabilityEvaluatorService"
)

type ScannerService interface {
	ScanProject(ctx context.Context, projectDir string) (scannermodels.ProjectScan, error)
}

type Scanner struct {
	resolver  versionresolverservice.VersionResolverService
	evaluator vulnerabilityevaluatorservice.VulnerabilityEvaluatorService
	packages  []string
}

func NewScanner(resolver versionresolverservice.VersionResolverService,
	evaluator vulnerabilityevaluatorservice.VulnerabilityEvaluatorService) *Scanner {
	return &Scanner{
		resolver:  resolver,
		evaluator: evaluator,
		packages:  trackedpackages.All,
	}
}

// ScanProject resolves every tracked package in projectDir, then evaluates them in order.
// On an evaluation error the returned scan carries every resolution and the findings
// evaluated before the failing one.
func (s *Scanner) ScanProject(ctx context.Context, projectDir string) (scannermodels.ProjectScan, error) {
	scan := scannermodels.ProjectScan{
		ProjectDir: projectDir,
	}

	for _, pkg := range s.packages {
		scan.Resolutions = append(scan.Resolutions, s.resolver.Resolve(ctx, projectDir, pkg))
	}

	scan.Findings = make([]scannermodels.Finding, 0, len(scan.Resolutions))
	for _, resolution := range scan.Resolutions {
		finding, err := s.evaluator.Evaluate(resolution)
		if err != nil {
			return scan, fmt.Errorf("scanning %s: %w", projectDir, err)
		}
		scan.Findings = append(scan.Findings, finding)
	}

	return scan, nil
}
