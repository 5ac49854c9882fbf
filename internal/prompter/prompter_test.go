package prompter

import (
	"errors"
	"io"
	"testing"

	"github.com/schmitthub/vitewind/internal/iostreams/iostreamstest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInteractive(input string) (*Prompter, *iostreamstest.TestIOStreams) {
	ios := iostreamstest.New()
	ios.SetInteractive(true)
	ios.InBuf.SetInput(input)
	return NewPrompter(ios.IOStreams), ios
}

func TestString(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		cfg         PromptConfig
		interactive bool
		want        string
		wantErr     error
	}{
		{
			name:        "answer",
			input:       "demo\n",
			cfg:         PromptConfig{Message: "Project name"},
			interactive: true,
			want:        "demo",
		},
		{
			name:        "answer without trailing newline",
			input:       "demo",
			cfg:         PromptConfig{Message: "Project name"},
			interactive: true,
			want:        "demo",
		},
		{
			name:        "empty takes default",
			input:       "\n",
			cfg:         PromptConfig{Message: "Project name", Default: "vite-project"},
			interactive: true,
			want:        "vite-project",
		},
		{
			name:        "EOF takes default",
			input:       "",
			cfg:         PromptConfig{Message: "Project name", Default: "vite-project"},
			interactive: true,
			want:        "vite-project",
		},
		{
			name:        "required and empty asks again",
			input:       "\n\ndemo\n",
			cfg:         PromptConfig{Message: "Project name", Required: true},
			interactive: true,
			want:        "demo",
		},
		{
			name:        "required and input runs out",
			input:       "\n",
			cfg:         PromptConfig{Message: "Project name", Required: true},
			interactive: true,
			wantErr:     io.EOF,
		},
		{
			name:    "non-interactive default",
			cfg:     PromptConfig{Message: "Project name", Default: "vite-project"},
			want:    "vite-project",
		},
		{
			name:    "non-interactive required without default",
			cfg:     PromptConfig{Message: "Project name", Required: true},
			wantErr: ErrRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ios := iostreamstest.New()
			ios.SetInteractive(tt.interactive)
			ios.InBuf.SetInput(tt.input)

			got, err := NewPrompter(ios.IOStreams).String(tt.cfg)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestString_ValidatorRejectionAsksAgain(t *testing.T) {
	p, ios := newInteractive("bad/name\ngood\n")
	errBad := errors.New("bad name")

	got, err := p.String(PromptConfig{
		Message: "Project name",
		Validator: func(s string) error {
			if s == "bad/name" {
				return errBad
			}
			return nil
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "good", got)
	assert.Equal(t, "Project name: [error] bad name\nProject name: ", ios.ErrBuf.String())
}

func TestString_ValidatorRejectionThenEOF(t *testing.T) {
	p, _ := newInteractive("bad/name\n")

	_, err := p.String(PromptConfig{
		Message:   "Project name",
		Validator: func(string) error { return errors.New("bad name") },
	})
	assert.ErrorIs(t, err, io.EOF)
}

func TestString_ShowsDefaultInPrompt(t *testing.T) {
	p, ios := newInteractive("x\n")

	_, err := p.String(PromptConfig{Message: "Project name", Default: "vite-project"})
	require.NoError(t, err)
	assert.Equal(t, "Project name [vite-project]: ", ios.ErrBuf.String())
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input      string
		defaultYes bool
		want       bool
	}{
		{"y\n", false, true},
		{"YES\n", false, true},
		{"n\n", true, false},
		{"\n", true, true},
		{"\n", false, false},
		{"", true, true},
		{"maybe\n", true, false},
	}

	for _, tt := range tests {
		p, _ := newInteractive(tt.input)
		got, err := p.Confirm("Continue?", tt.defaultYes)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %q default %v", tt.input, tt.defaultYes)
	}
}

func TestSelect(t *testing.T) {
	options := []SelectOption{
		{Label: "Remove existing files", Description: "and continue"},
		{Label: "Choose another name"},
		{Label: "Cancel"},
	}

	tests := []struct {
		name        string
		input       string
		interactive bool
		defaultIdx  int
		want        int
	}{
		{name: "pick first", input: "1\n", interactive: true, defaultIdx: 2, want: 0},
		{name: "pick last", input: "3\n", interactive: true, want: 2},
		{name: "empty takes default", input: "\n", interactive: true, defaultIdx: 2, want: 2},
		{name: "EOF takes default", input: "", interactive: true, defaultIdx: 1, want: 1},
		{name: "out of range asks again", input: "4\n3\n", interactive: true, want: 2},
		{name: "not a number asks again", input: "abc\n0\n2\n", interactive: true, want: 1},
		{name: "invalid then EOF takes default", input: "9\n", interactive: true, defaultIdx: 2, want: 2},
		{name: "non-interactive default", defaultIdx: 2, want: 2},
		{name: "bad default clamps to zero", defaultIdx: 7, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ios := iostreamstest.New()
			ios.SetInteractive(tt.interactive)
			ios.InBuf.SetInput(tt.input)

			got, err := NewPrompter(ios.IOStreams).Select("Target directory is not empty", options, tt.defaultIdx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelect_NoOptions(t *testing.T) {
	p, _ := newInteractive("")
	_, err := p.Select("Pick", nil, 0)
	assert.Error(t, err)
}

func TestSelect_RendersMenu(t *testing.T) {
	p, ios := newInteractive("2\n")

	_, err := p.Select("Pick one", []SelectOption{{Label: "A", Description: "first"}, {Label: "B"}}, 0)
	require.NoError(t, err)
	assert.Equal(t, "Pick one\n> 1. A (first)\n  2. B\nEnter selection [1]: ", ios.ErrBuf.String())
}

func TestSelect_ReportsInvalidSelection(t *testing.T) {
	p, ios := newInteractive("4\n2\n")

	idx, err := p.Select("Pick one", []SelectOption{{Label: "A"}, {Label: "B"}}, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
	assert.Equal(t,
		"Pick one\n> 1. A\n  2. B\nEnter selection [1]: "+
			"[error] Invalid selection \"4\": enter a number from 1 to 2\n"+
			"Enter selection [1]: ",
		ios.ErrBuf.String())
}

func TestPrompter_SequentialPromptsShareInput(t *testing.T) {
	p, _ := newInteractive("2\nother-name\n")

	idx, err := p.Select("Pick", []SelectOption{{Label: "A"}, {Label: "B"}}, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	name, err := p.String(PromptConfig{Message: "New name", Required: true})
	require.NoError(t, err)
	assert.Equal(t, "other-name", name)
}
