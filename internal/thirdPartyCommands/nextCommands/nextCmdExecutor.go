package nextcommands

import (
	"context"
	"fmt"
	"strings"

	commandrunner "github.com/RobsonDevCode/reactscan/internal/thirdPartyCommands/commandRunner"
)

type NextCommandService interface {
	Version(ctx context.Context, path string) (string, error)
}

type NextCommandExecutor struct {
	runner     commandrunner.CommandRunner
	executable string
}

func NewNextCommandExecutor(runner commandrunner.CommandRunner, executable string) *NextCommandExecutor {
	return &NextCommandExecutor{
		runner:     runner,
		executable: executable,
	}
}

// Version returns the raw text printed by `next --version`, stderr included.
func (n *NextCommandExecutor) Version(ctx context.Context, path string) (string, error) {
	output, err := n.runner.Run(ctx, commandrunner.Command{
		Dir:           path,
		Name:          n.executable,
		Args:          []string{"--version"},
		CombineOutput: true,
	})
	if err != nil {
		return "", fmt.Errorf("next --version failed in %s: %w", path, err)
	}

	return strings.TrimSpace(string(output)), nil
}
