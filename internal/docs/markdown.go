package docs

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// MarkdownOptions customizes Markdown output.
type MarkdownOptions struct {
	// FilePrepender returns content placed before each page, e.g. front matter.
	FilePrepender func(filename string) string
	// LinkHandler turns a command path into a link target.
	LinkHandler func(cmdPath string) string
}

// MarkdownLink is the default link handler: "vitewind create" -> "vitewind_create.md".
func MarkdownLink(cmdPath string) string {
	return strings.ReplaceAll(cmdPath, " ", "_") + ".md"
}

// Markdown writes one Markdown page per command.
func (g *Generator) Markdown(root *cobra.Command, opts MarkdownOptions) error {
	link := opts.LinkHandler
	if link == nil {
		link = MarkdownLink
	}
	filename := func(cmd *cobra.Command) string { return commandFilename(cmd, "_", ".md") }

	return g.walk(root, filename, func(cmd *cobra.Command) ([]byte, error) {
		var buf bytes.Buffer
		if opts.FilePrepender != nil {
			buf.WriteString(opts.FilePrepender(filename(cmd)))
		}
		renderMarkdown(&buf, cmd, link)
		return buf.Bytes(), nil
	})
}

func renderMarkdown(buf *bytes.Buffer, cmd *cobra.Command, link func(string) string) {
	buf.WriteString("## " + cmd.CommandPath() + "\n\n")
	if cmd.Short != "" {
		buf.WriteString(cmd.Short + "\n\n")
	}

	if cmd.Runnable() || hasRunnableSubCommands(cmd) {
		buf.WriteString("### Synopsis\n\n")
		if cmd.Long != "" {
			buf.WriteString(cmd.Long + "\n\n")
		}
		if cmd.Runnable() {
			codeBlock(buf, cmd.UseLine())
		}
	}

	if cmd.Example != "" {
		buf.WriteString("### Examples\n\n")
		codeBlock(buf, cmd.Example)
	}

	if subs := visibleCommands(cmd); len(subs) > 0 {
		buf.WriteString("### Subcommands\n\n")
		for _, c := range subs {
			fmt.Fprintf(buf, "* [%s](%s) - %s\n", c.CommandPath(), link(c.CommandPath()), c.Short)
		}
		buf.WriteString("\n")
	}

	if flags := cmd.NonInheritedFlags(); flags.HasAvailableFlags() {
		buf.WriteString("### Options\n\n")
		codeBlock(buf, flags.FlagUsages())
	}
	if flags := cmd.InheritedFlags(); flags.HasAvailableFlags() {
		buf.WriteString("### Options inherited from parent commands\n\n")
		codeBlock(buf, flags.FlagUsages())
	}

	if cmd.HasParent() {
		parent := cmd.Parent()
		buf.WriteString("### See also\n\n")
		fmt.Fprintf(buf, "* [%s](%s) - %s\n", parent.CommandPath(), link(parent.CommandPath()), parent.Short)
	}
}
