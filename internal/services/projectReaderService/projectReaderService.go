package projectreaderservice

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	cache "github.com/RobsonDevCode/reactscan/internal/caching"
	scannermodels "github.com/RobsonDevCode/reactscan/internal/scanner/models"
	"golang.org/x/net/context"
)

const (
	manifestFile     = "package.json"
	lockFile         = "package-lock.json"
	dependenciesRoot = "node_modules"

	// project documents only need to outlive a single run
	documentTTL = time.Hour
)

type ProjectReaderService interface {
	ReadInstalledManifest(ctx context.Context, projectDir string, pkg string) (scannermodels.PackageManifest, error)
	ReadProjectManifest(ctx context.Context, projectDir string) (scannermodels.PackageManifest, error)
	ReadPackageLock(ctx context.Context, projectDir string) (scannermodels.PackageLock, error)
}

type ProjectReader struct {
	cache *cache.Cache
}

func NewProjectReader(cache *cache.Cache) *ProjectReader {
	return &ProjectReader{
		cache: cache,
	}
}

func InstalledManifestPath(projectDir string, pkg string) string {
	return filepath.Join(projectDir, dependenciesRoot, pkg, manifestFile)
}

func LockfileKey(pkg string) string {
	return dependenciesRoot + "/" + pkg
}

func (r *ProjectReader) ReadInstalledManifest(ctx context.Context, projectDir string, pkg string) (scannermodels.PackageManifest, error) {
	if err := ctx.Err(); err != nil {
		return scannermodels.PackageManifest{}, err
	}

	var manifest scannermodels.PackageManifest
	if err := readJSON(InstalledManifestPath(projectDir, pkg), &manifest); err != nil {
		return scannermodels.PackageManifest{}, err
	}

	return manifest, nil
}

func (r *ProjectReader) ReadProjectManifest(ctx context.Context, projectDir string) (scannermodels.PackageManifest, error) {
	if err := ctx.Err(); err != nil {
		return scannermodels.PackageManifest{}, err
	}

	path := filepath.Join(projectDir, manifestFile)
	value, err := r.cache.GetOrCreate(cacheKey(path), documentTTL, func() (interface{}, error) {
		var manifest scannermodels.PackageManifest
		if err := readJSON(path, &manifest); err != nil {
			return nil, err
		}
		return manifest, nil
	})
	if err != nil {
		return scannermodels.PackageManifest{}, err
	}

	manifest, ok := value.(scannermodels.PackageManifest)
	if !ok {
		return scannermodels.PackageManifest{}, fmt.Errorf("unexpected cached type for %s", path)
	}

	return manifest, nil
}

func (r *ProjectReader) ReadPackageLock(ctx context.Context, projectDir string) (scannermodels.PackageLock, error) {
	if err := ctx.Err(); err != nil {
		return scannermodels.PackageLock{}, err
	}

	path := filepath.Join(projectDir, lockFile)
	value, err := r.cache.GetOrCreate(cacheKey(path), documentTTL, func() (interface{}, error) {
		var lock scannermodels.PackageLock
		if err := readJSON(path, &lock); err != nil {
			return nil, err
		}
		return lock, nil
	})
	if err != nil {
		return scannermodels.PackageLock{}, err
	}

	lock, ok := value.(scannermodels.PackageLock)
	if !ok {
		return scannermodels.PackageLock{}, fmt.Errorf("unexpected cached type for %s", path)
	}

	return lock, nil
}

func readJSON(path string, target interface{}) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", path, err)
	}

	if err := json.Unmarshal(content, target); err != nil {
		return fmt.Errorf("error unmarshalling json file %s: %w", path, err)
	}

	return nil
}

func cacheKey(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
