package factory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schmitthub/vitewind/internal/config"
)

func TestNew(t *testing.T) {
	f := New("1.0.0", "abc123")

	assert.Equal(t, "1.0.0", f.Version)
	assert.Equal(t, "abc123", f.Commit)
	assert.NotNil(t, f.IOStreams)
	assert.NotNil(t, f.Fs)
	assert.NotEmpty(t, f.WorkDir)
	assert.NotNil(t, f.Runner())
	assert.True(t, f.Git().Commit)
}

func TestNew_CIDisablesPrompts(t *testing.T) {
	t.Setenv("CI", "true")
	f := New("dev", "")
	assert.False(t, f.IOStreams.CanPrompt())
}

func TestFactory_SettingsCached(t *testing.T) {
	home := t.TempDir()
	t.Setenv(config.HomeEnv, home)
	require.NoError(t, os.WriteFile(filepath.Join(home, config.ConfigFileName),
		[]byte("scaffold:\n  package_manager: pnpm\n"), 0o644))

	f := New("dev", "")

	l1, err := f.ConfigLoader()
	require.NoError(t, err)
	l2, err := f.ConfigLoader()
	require.NoError(t, err)
	assert.Same(t, l1, l2)
	assert.Equal(t, filepath.Join(home, config.ConfigFileName), l1.Path())

	s1, err := f.Settings()
	require.NoError(t, err)
	assert.Equal(t, "pnpm", s1.Scaffold.PackageManager)

	s2, err := f.Settings()
	require.NoError(t, err)
	assert.Same(t, s1, s2)
}

func TestFactory_PrompterShared(t *testing.T) {
	f := New("dev", "")
	assert.Same(t, f.Prompter(), f.Prompter())
}

func TestFactory_DefaultTemplates(t *testing.T) {
	f := New("dev", "")
	b, err := f.Templates("")
	require.NoError(t, err)
	assert.NotEmpty(t, b.AppJSX)
}
