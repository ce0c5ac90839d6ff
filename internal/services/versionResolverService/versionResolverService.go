package versionresolverservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	detectionsources "github.com/RobsonDevCode/reactscan/internal/constants/detectionSources"
	trackedpackages "github.com/RobsonDevCode/reactscan/internal/constants/trackedPackages"
	scannermodels "github.com/RobsonDevCode/reactscan/internal/scanner/models"
	projectreaderservice "github.com/RobsonDevCode/reactscan/internal/services/projectReaderService"
	commandrunner "github.com/RobsonDevCode/reactscan/internal/thirdPartyCommands/commandRunner"
	nextcommands "github.com/RobsonDevCode/reactscan/internal/thirdPartyCommands/nextCommands"
	npmcommands "github.com/RobsonDevCode/reactscan/internal/thirdPartyCommands/npmCommands"
)

// ErrUnavailable means a source had nothing to offer for a routine reason.
var ErrUnavailable = errors.New("source unavailable")

type VersionResolverService interface {
	Resolve(ctx context.Context, projectDir string, pkg string) scannermodels.Resolution
}

type detectFunc func(ctx context.Context, projectDir string, pkg string) (string, error)

type strategy struct {
	source string
	detect detectFunc
}

type VersionResolver struct {
	projectReader projectreaderservice.ProjectReaderService
	npmCommands   npmcommands.NpmCommandService
	nextCommands  nextcommands.NextCommandService
}

func NewVersionResolver(projectReader projectreaderservice.ProjectReaderService,
	npmCommands npmcommands.NpmCommandService,
	nextCommands nextcommands.NextCommandService) *VersionResolver {
	return &VersionResolver{
		projectReader: projectReader,
		npmCommands:   npmCommands,
		nextCommands:  nextCommands,
	}
}

// Resolve walks the detection strategies for pkg in priority order and returns the first
// non-empty version. It never fails: a source that errors is recorded and skipped.
func (r *VersionResolver) Resolve(ctx context.Context, projectDir string, pkg string) scannermodels.Resolution {
	resolution := scannermodels.Resolution{
		Package: pkg,
		Source:  detectionsources.None,
	}

	for _, s := range r.strategiesFor(pkg) {
		attempt := runStrategy(ctx, s, projectDir, pkg)
		resolution.Attempts = append(resolution.Attempts, attempt)

		if attempt.Outcome == scannermodels.OutcomeFound {
			resolution.Version = attempt.Version
			resolution.Source = attempt.Source
			resolution.Found = true
			break
		}
	}

	slog.Debug("resolved package version",
		"package", pkg,
		"dir", projectDir,
		"found", resolution.Found,
		"version", resolution.Version,
		"source", resolution.Source,
		"attempts", len(resolution.Attempts))

	return resolution
}

func (r *VersionResolver) strategiesFor(pkg string) []strategy {
	strategies := []strategy{
		{source: detectionsources.InstalledManifest, detect: r.fromInstalledManifest},
		{source: detectionsources.ProjectManifest, detect: r.fromProjectManifest},
		{source: detectionsources.Lockfile, detect: r.fromPackageLock},
		{source: detectionsources.NpmList, detect: r.fromNpmList},
	}

	// the framework's own CLI is the most authoritative live signal
	if pkg == trackedpackages.Next {
		strategies = append([]strategy{{source: detectionsources.NextCli, detect: r.fromNextCli}}, strategies...)
	}

	return strategies
}

func runStrategy(ctx context.Context, s strategy, projectDir string, pkg string) (attempt scannermodels.Attempt) {
	attempt.Source = s.source

	defer func() {
		if recovered := recover(); recovered != nil {
			attempt.Outcome = scannermodels.OutcomeFailed
			attempt.Version = ""
			attempt.Err = fmt.Errorf("%s strategy panicked: %v", s.source, recovered)
			slog.Warn("version detection failed", "package", pkg, "source", s.source, "error", attempt.Err)
		}
	}()

	version, err := s.detect(ctx, projectDir, pkg)
	switch {
	case err == nil && version != "":
		attempt.Outcome = scannermodels.OutcomeFound
		attempt.Version = version
	case err == nil:
		attempt.Outcome = scannermodels.OutcomeUnavailable
		attempt.Err = fmt.Errorf("%w: empty version", ErrUnavailable)
	case isExpectedAbsence(err):
		attempt.Outcome = scannermodels.OutcomeUnavailable
		attempt.Err = err
		slog.Debug("version source unavailable", "package", pkg, "source", s.source, "reason", err)
	default:
		attempt.Outcome = scannermodels.OutcomeFailed
		attempt.Err = err
		slog.Warn("version detection failed", "package", pkg, "source", s.source, "error", err)
	}

	return attempt
}

func isExpectedAbsence(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError

	switch {
	case errors.Is(err, ErrUnavailable), errors.Is(err, fs.ErrNotExist):
		return true
	case errors.As(err, &syntaxErr), errors.As(err, &typeErr):
		return true
	}

	return commandrunner.IsExpectedFailure(err)
}
