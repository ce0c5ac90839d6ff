package nextcommands

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

func TestVersion_ReturnsTrimmedOutput(t *testing.T) {
	runner := &recordingRunner{output: []byte("  Next.js v15.2.3\n")}
	executor := NewNextCommandExecutor(runner, "next")

	text, err := executor.Version(context.Background(), "/srv/app")

	require.NoError(t, err)
	assert.Equal(t, "Next.js v15.2.3", text)
	assert.True(t, runner.command.CombineOutput)
	assert.Equal(t, []string{"--version"}, runner.command.Args)
	assert.Equal(t, "/srv/app", runner.command.Dir)
}

func TestVersion_Failure(t *testing.T) {
	notFound := errors.New("executable file not found in $PATH")
	executor := NewNextCommandExecutor(&recordingRunner{err: notFound}, "next")

	_, err := executor.Version(context.Background(), ".")

	assert.ErrorIs(t, err, notFound)
}
