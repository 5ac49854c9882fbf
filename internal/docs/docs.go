// Package docs renders reference documentation for a cobra command tree as
// Markdown pages, man pages and YAML.
package docs

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Generator writes one file per visible command into Dir on Fs.
type Generator struct {
	Fs  afero.Fs
	Dir string
}

// NewGenerator returns a Generator writing to dir on the real filesystem.
func NewGenerator(dir string) *Generator {
	return &Generator{Fs: afero.NewOsFs(), Dir: dir}
}

// renderFunc produces the contents of one command's page.
type renderFunc func(cmd *cobra.Command) ([]byte, error)

// walk renders every non-hidden command under root, children first, and
// writes each page to the file named by filename.
func (g *Generator) walk(root *cobra.Command, filename func(*cobra.Command) string, render renderFunc) error {
	if err := g.Fs.MkdirAll(g.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", g.Dir, err)
	}
	var visit func(cmd *cobra.Command) error
	visit = func(cmd *cobra.Command) error {
		for _, c := range visibleCommands(cmd) {
			if err := visit(c); err != nil {
				return err
			}
		}
		cmd.InitDefaultHelpCmd()
		cmd.InitDefaultHelpFlag()

		data, err := render(cmd)
		if err != nil {
			return fmt.Errorf("rendering %s: %w", cmd.CommandPath(), err)
		}
		path := filepath.Join(g.Dir, filename(cmd))
		if err := afero.WriteFile(g.Fs, path, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		return nil
	}
	return visit(root)
}

// commandFilename joins the command path with sep and appends ext.
func commandFilename(cmd *cobra.Command, sep, ext string) string {
	return strings.ReplaceAll(cmd.CommandPath(), " ", sep) + ext
}

// visibleCommands returns non-hidden subcommands other than help, sorted by name.
func visibleCommands(cmd *cobra.Command) []*cobra.Command {
	var commands []*cobra.Command
	for _, c := range cmd.Commands() {
		if !c.Hidden && c.Name() != "help" {
			commands = append(commands, c)
		}
	}
	sort.Slice(commands, func(i, j int) bool {
		return commands[i].Name() < commands[j].Name()
	})
	return commands
}

// hasRunnableSubCommands reports whether any visible descendant is runnable.
func hasRunnableSubCommands(cmd *cobra.Command) bool {
	for _, c := range visibleCommands(cmd) {
		if c.Runnable() || hasRunnableSubCommands(c) {
			return true
		}
	}
	return false
}

// flagDoc is one documented flag.
type flagDoc struct {
	Name         string `yaml:"name"`
	Shorthand    string `yaml:"shorthand,omitempty"`
	DefaultValue string `yaml:"default_value,omitempty"`
	Usage        string `yaml:"usage"`
	Type         string `yaml:"type,omitempty"`
}

// collectFlags returns the visible flags of fs sorted by name. Zero-value
// defaults are dropped.
func collectFlags(fs *pflag.FlagSet) []flagDoc {
	var flags []flagDoc
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		d := flagDoc{
			Name:         f.Name,
			Shorthand:    f.Shorthand,
			DefaultValue: f.DefValue,
			Usage:        f.Usage,
			Type:         f.Value.Type(),
		}
		switch d.DefaultValue {
		case "", "false", "0", "[]":
			d.DefaultValue = ""
		}
		flags = append(flags, d)
	})
	sort.Slice(flags, func(i, j int) bool {
		return flags[i].Name < flags[j].Name
	})
	return flags
}

func codeBlock(buf *bytes.Buffer, body string) {
	buf.WriteString("```\n")
	buf.WriteString(strings.TrimRight(body, "\n"))
	buf.WriteString("\n```\n\n")
}
