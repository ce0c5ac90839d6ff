package versionresolverservice

import (
	"context"
	"fmt"

	"github.com/RobsonDevCode/reactscan/internal/extensions"
	projectreaderservice "github.com/RobsonDevCode/reactscan/internal/services/projectReaderService"
)

func (r *VersionResolver) fromInstalledManifest(ctx context.Context, projectDir string, pkg string) (string, error) {
	manifest, err := r.projectReader.ReadInstalledManifest(ctx, projectDir, pkg)
	if err != nil {
		return "", err
	}

	return manifest.Version, nil
}

func (r *VersionResolver) fromProjectManifest(ctx context.Context, projectDir string, pkg string) (string, error) {
	manifest, err := r.projectReader.ReadProjectManifest(ctx, projectDir)
	if err != nil {
		return "", err
	}

	for _, section := range manifest.DependencySections() {
		if specifier, ok := section[pkg]; ok {
			return extensions.StripRangePrefix(specifier), nil
		}
	}

	return "", fmt.Errorf("%w: %s not declared in project manifest", ErrUnavailable, pkg)
}

func (r *VersionResolver) fromPackageLock(ctx context.Context, projectDir string, pkg string) (string, error) {
	lock, err := r.projectReader.ReadPackageLock(ctx, projectDir)
	if err != nil {
		return "", err
	}

	entry, ok := lock.Packages[projectreaderservice.LockfileKey(pkg)]
	if !ok {
		return "", fmt.Errorf("%w: %s not in lockfile", ErrUnavailable, pkg)
	}

	return entry.Version, nil
}

func (r *VersionResolver) fromNpmList(ctx context.Context, projectDir string, pkg string) (string, error) {
	response, err := r.npmCommands.ListPackage(ctx, projectDir, pkg)
	if err != nil {
		return "", err
	}

	dependency, ok := response.NpmPackage[pkg]
	if !ok {
		return "", fmt.Errorf("%w: %s not in npm dependency tree", ErrUnavailable, pkg)
	}

	return dependency.Version, nil
}

func (r *VersionResolver) fromNextCli(ctx context.Context, projectDir string, _ string) (string, error) {
	text, err := r.nextCommands.Version(ctx, projectDir)
	if err != nil {
		return "", err
	}

	version, found := extensions.FirstVersionToken(text)
	if !found {
		return "", fmt.Errorf("%w: no version in %q", ErrUnavailable, text)
	}

	return version, nil
}
