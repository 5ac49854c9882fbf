package iostreams_test

import (
	"testing"

	"github.com/schmitthub/vitewind/internal/iostreams"
	"github.com/schmitthub/vitewind/internal/iostreams/iostreamstest"
	"github.com/stretchr/testify/assert"
)

func TestTestStreams_NonInteractiveByDefault(t *testing.T) {
	ios := iostreamstest.New()

	assert.False(t, ios.IsInputTTY())
	assert.False(t, ios.IsOutputTTY())
	assert.False(t, ios.IsInteractive())
	assert.False(t, ios.CanPrompt())
	assert.False(t, ios.ColorEnabled())
}

func TestCanPrompt(t *testing.T) {
	ios := iostreamstest.New()
	ios.SetInteractive(true)
	assert.True(t, ios.CanPrompt())

	ios.SetNeverPrompt(true)
	assert.False(t, ios.CanPrompt())
}

func TestColorScheme_DisabledIsPlain(t *testing.T) {
	ios := iostreamstest.New()
	cs := ios.ColorScheme()

	assert.False(t, cs.Enabled())
	assert.Equal(t, "none", cs.Theme())
	assert.Equal(t, "text", cs.Cyan("text"))
	assert.Equal(t, "[ok]", cs.SuccessIcon())
	assert.Equal(t, "[error]", cs.FailureIcon())
	assert.Equal(t, "[warn]", cs.WarningIcon())
	assert.Equal(t, "[info]", cs.InfoIcon())
}

func TestColorScheme_EnabledIcons(t *testing.T) {
	cs := iostreams.NewColorScheme(true, "")
	assert.Equal(t, "dark", cs.Theme())
	assert.Contains(t, cs.SuccessIcon(), "✓")
	assert.Contains(t, cs.FailureIcon(), "✗")
}

func TestPrintMessages(t *testing.T) {
	ios := iostreamstest.New()

	ios.PrintSuccess("created %s", "demo")
	ios.PrintFailure("failed %d", 1)
	ios.PrintWarning("careful")
	ios.PrintInfo("fyi")

	out := ios.ErrBuf.String()
	assert.Contains(t, out, "[ok] created demo\n")
	assert.Contains(t, out, "[error] failed 1\n")
	assert.Contains(t, out, "[warn] careful\n")
	assert.Contains(t, out, "[info] fyi\n")
	assert.Empty(t, ios.OutBuf.String())
}

func TestPrintNextSteps(t *testing.T) {
	ios := iostreamstest.New()

	ios.PrintNextSteps()
	assert.Empty(t, ios.ErrBuf.String())

	ios.PrintNextSteps("cd demo", "npm run dev")
	assert.Equal(t, "\nNext steps:\n  1. cd demo\n  2. npm run dev\n", ios.ErrBuf.String())
}

func TestTerminalWidth_Pinned(t *testing.T) {
	ios := iostreamstest.New()
	assert.Equal(t, 80, ios.TerminalWidth())

	ios.SetTerminalWidth(120)
	assert.Equal(t, 120, ios.TerminalWidth())
}
