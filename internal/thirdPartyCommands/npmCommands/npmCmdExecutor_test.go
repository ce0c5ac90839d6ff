package npmcommands

import (
	"context"
	"errors"
	"testing"

	commandrunner "github.com/RobsonDevCode/reactscan/internal/thirdPartyCommands/commandRunner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRunner struct {
	command commandrunner.Command
	output  []byte
	err     error
}

func (r *recordingRunner) Run(ctx context.Context, command commandrunner.Command) ([]byte, error) {
	r.command = command
	return r.output, r.err
}

func TestListPackage_DecodesDependencies(t *testing.T) {
	runner := &recordingRunner{output: []byte(`{
  "name": "storefront",
  "version": "1.0.0",
  "dependencies": {
    "react": { "version": "19.1.1", "resolved": "https://registry.npmjs.org/react/-/react-19.1.1.tgz" }
  }
}`)}
	executor := NewNpmCommandExecutor(runner, "npm")

	response, err := executor.ListPackage(context.Background(), "/srv/storefront", "react")

	require.NoError(t, err)
	assert.Equal(t, "storefront", response.ServiceName)
	assert.Equal(t, "19.1.1", response.NpmPackage["react"].Version)
	assert.Equal(t, commandrunner.Command{
		Dir:  "/srv/storefront",
		Name: "npm",
		Args: []string{"list", "react", "--json"},
	}, runner.command)
}

func TestListPackage_RunnerFailure(t *testing.T) {
	exitErr := errors.New("exit status 1")
	executor := NewNpmCommandExecutor(&recordingRunner{err: exitErr}, "npm")

	_, err := executor.ListPackage(context.Background(), ".", "react")

	assert.ErrorIs(t, err, exitErr)
}

func TestListPackage_MalformedOutput(t *testing.T) {
	executor := NewNpmCommandExecutor(&recordingRunner{output: []byte("npm WARN config")}, "npm")

	_, err := executor.ListPackage(context.Background(), ".", "react")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse data from npm list output")
}
