package runner

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
}

func TestCommandString(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
		want string
	}{
		{name: "no args", cmd: Command{Name: "npm"}, want: "npm"},
		{name: "args", cmd: Command{Name: "npx", Args: []string{"tailwindcss", "init", "-p"}}, want: "npx tailwindcss init -p"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cmd.String())
		})
	}
}

func TestExecRunner_Success(t *testing.T) {
	skipOnWindows(t)
	dir := t.TempDir()

	r := New()
	err := r.Run(context.Background(), Command{Dir: dir, Name: "sh", Args: []string{"-c", "echo hi > out.txt"}})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "out.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hi\n", string(data))
}

func TestExecRunner_NonZeroExit(t *testing.T) {
	skipOnWindows(t)

	var streamed bytes.Buffer
	err := New().Run(context.Background(), Command{
		Name:   "sh",
		Args:   []string{"-c", "echo boom; echo bad >&2; exit 3"},
		Output: &streamed,
	})
	require.Error(t, err)

	var cmdErr *CommandError
	require.True(t, errors.As(err, &cmdErr))
	assert.Equal(t, 3, cmdErr.ExitCode())
	assert.Contains(t, cmdErr.Output, "boom")
	assert.Contains(t, cmdErr.Output, "bad")
	assert.Equal(t, cmdErr.Output, streamed.String())
	assert.Contains(t, cmdErr.Error(), `"sh -c`)
}

func TestExecRunner_MissingExecutable(t *testing.T) {
	r := New()
	err := r.Run(context.Background(), Command{Name: "vitewind-definitely-not-installed"})

	var cmdErr *CommandError
	require.True(t, errors.As(err, &cmdErr))
	assert.Equal(t, -1, cmdErr.ExitCode())
	assert.ErrorIs(t, err, exec.ErrNotFound)
}

func TestExecRunner_CanceledContext(t *testing.T) {
	skipOnWindows(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := New().Run(ctx, Command{Name: "sh", Args: []string{"-c", "sleep 5"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
