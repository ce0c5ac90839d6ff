package vulnerabilityevaluatorservice

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	trackedpackages "github.com/RobsonDevCode/reactscan/internal/constants/trackedPackages"
	vulnerableversions "github.com/RobsonDevCode/reactscan/internal/constants/vulnerableVersions"
	scannermodels "github.com/RobsonDevCode/reactscan/internal/scanner/models"
)

// ErrInvalidVersion is returned when a version component is not an integer.
// Callers treat it as fatal for the whole run.
var ErrInvalidVersion = errors.New("invalid version")

type VulnerabilityEvaluatorService interface {
	Evaluate(resolution scannermodels.Resolution) (scannermodels.Finding, error)
}

type VulnerabilityEvaluator struct {
	reactVersions []string
	nextRanges    []vulnerableversions.VersionRange
}

func NewVulnerabilityEvaluator() *VulnerabilityEvaluator {
	return &VulnerabilityEvaluator{
		reactVersions: vulnerableversions.React,
		nextRanges:    vulnerableversions.NextRanges,
	}
}

func (e *VulnerabilityEvaluator) Evaluate(resolution scannermodels.Resolution) (scannermodels.Finding, error) {
	finding := scannermodels.Finding{
		Resolution: resolution,
		Resolved:   resolution.Found,
	}

	switch resolution.Package {
	case trackedpackages.React:
		// an absent version is compared as-is and never matches
		finding.Vulnerable = IsExactMatch(resolution.Version, e.reactVersions)

	case trackedpackages.Next:
		if !resolution.Found {
			return finding, nil
		}

		vulnerable, err := IsInAnyRange(resolution.Version, e.nextRanges)
		if err != nil {
			return scannermodels.Finding{}, fmt.Errorf("evaluating %s %s: %w", resolution.Package, resolution.Version, err)
		}
		finding.Vulnerable = vulnerable

	default:
		return scannermodels.Finding{}, fmt.Errorf("no vulnerability table for package %q", resolution.Package)
	}

	return finding, nil
}

func IsExactMatch(version string, vulnerable []string) bool {
	return slices.Contains(vulnerable, version)
}

// IsInAnyRange reports whether version lies inside one of the inclusive ranges.
// It stops at the first range that matches.
func IsInAnyRange(version string, ranges []vulnerableversions.VersionRange) (bool, error) {
	for _, r := range ranges {
		inRange, err := IsInRange(version, r.Start, r.End)
		if err != nil {
			return false, err
		}
		if inRange {
			return true, nil
		}
	}

	return false, nil
}

func IsInRange(version string, start string, end string) (bool, error) {
	v, err := ParseVersion(version)
	if err != nil {
		return false, err
	}

	s, err := ParseVersion(start)
	if err != nil {
		return false, err
	}

	e, err := ParseVersion(end)
	if err != nil {
		return false, err
	}

	return CompareVersions(s, v) <= 0 && CompareVersions(v, e) <= 0, nil
}

// ParseVersion splits a dotted version into integer components. Pre-release and build
// suffixes are not understood and yield ErrInvalidVersion.
func ParseVersion(version string) ([]int, error) {
	parts := strings.Split(version, ".")
	components := make([]int, 0, len(parts))

	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%w %q: component %q is not an integer", ErrInvalidVersion, version, part)
		}
		components = append(components, n)
	}

	return components, nil
}

// CompareVersions orders component tuples lexicographically; a strict prefix sorts first.
func CompareVersions(a []int, b []int) int {
	return slices.Compare(a, b)
}
