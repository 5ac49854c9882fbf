package root

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schmitthub/vitewind/internal/cmdutil"
	"github.com/schmitthub/vitewind/internal/config"
	"github.com/schmitthub/vitewind/internal/iostreams/iostreamstest"
	"github.com/schmitthub/vitewind/internal/logger"
)

func testFactory(t *testing.T) (*cmdutil.Factory, *iostreamstest.TestIOStreams) {
	t.Helper()
	tio := iostreamstest.New()
	return &cmdutil.Factory{
		Version:   "1.0.0",
		Commit:    "abc123",
		IOStreams: tio.IOStreams,
		Settings:  func() (*config.Settings, error) { return config.DefaultSettings(), nil },
	}, tio
}

func TestNewCmdRoot(t *testing.T) {
	f, _ := testFactory(t)
	cmd := NewCmdRoot(f)

	assert.Equal(t, "vitewind", cmd.Use)
	assert.Equal(t, "1.0.0", cmd.Version)

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Subset(t, names, []string{"create", "config", "version"})
	assert.NotNil(t, cmd.PersistentFlags().Lookup("debug"))
}

func TestRoot_VersionFlag(t *testing.T) {
	f, tio := testFactory(t)
	cmd := NewCmdRoot(f)
	cmd.SetOut(tio.OutBuf)
	cmd.SetArgs([]string{"--version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "vitewind version 1.0.0 (abc123)\n", tio.OutBuf.String())
}

func TestRoot_UnknownArgument(t *testing.T) {
	f, tio := testFactory(t)
	cmd := NewCmdRoot(f)
	cmd.SetOut(tio.OutBuf)
	cmd.SetErr(tio.ErrBuf)
	cmd.SetArgs([]string{"bogus"})

	assert.Error(t, cmd.Execute())
}

func TestRoot_InitializesFileLogging(t *testing.T) {
	home := t.TempDir()
	t.Setenv(config.HomeEnv, home)
	t.Cleanup(func() {
		_ = logger.CloseFileWriter()
		logger.Init(false)
	})

	f, tio := testFactory(t)
	cmd := NewCmdRoot(f)
	cmd.SetOut(tio.OutBuf)
	cmd.SetArgs([]string{"--debug", "version"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, filepath.Join(home, config.LogsSubdir, logger.LogFileName), logger.LogFilePath())
	_, err := os.Stat(logger.LogFilePath())
	assert.NoError(t, err)
}
