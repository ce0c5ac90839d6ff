package npmcommands

import (
	"context"
	"encoding/json"
	"fmt"

	commandrunner "github.com/RobsonDevCode/reactscan/internal/thirdPartyCommands/commandRunner"
	npmmodels "github.com/RobsonDevCode/reactscan/internal/thirdPartyCommands/models/npm"
)

type NpmCommandService interface {
	ListPackage(ctx context.Context, path string, pkg string) (npmmodels.NpmPackageResponse, error)
}

type NpmCommandExecutor struct {
	runner     commandrunner.CommandRunner
	executable string
}

func NewNpmCommandExecutor(runner commandrunner.CommandRunner, executable string) *NpmCommandExecutor {
	return &NpmCommandExecutor{
		runner:     runner,
		executable: executable,
	}
}

// ListPackage runs `npm list <pkg> --json` in path. Any non-zero exit is returned as an error,
// even though npm still prints a document when the package is missing from the tree.
// Only stdout is decoded, so npm warnings on stderr do not spoil the document; merging the
// streams would turn every warning into a parse failure and an unavailable result.
func (n *NpmCommandExecutor) ListPackage(ctx context.Context, path string, pkg string) (npmmodels.NpmPackageResponse, error) {
	output, err := n.runner.Run(ctx, commandrunner.Command{
		Dir:  path,
		Name: n.executable,
		Args: []string{"list", pkg, "--json"},
	})
	if err != nil {
		return npmmodels.NpmPackageResponse{}, fmt.Errorf("npm list %s failed in %s: %w", pkg, path, err)
	}

	var result npmmodels.NpmPackageResponse
	if err := json.Unmarshal(output, &result); err != nil {
		return npmmodels.NpmPackageResponse{}, fmt.Errorf("failed to parse data from npm list output in %s: %w", path, err)
	}

	return result, nil
}
