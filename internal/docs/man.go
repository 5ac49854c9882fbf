package docs

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/cpuguy83/go-md2man/v2/md2man"
	"github.com/spf13/cobra"
)

// ManHeader is the metadata placed in each page's title line.
type ManHeader struct {
	Section string
	Date    *time.Time
	Source  string
	Manual  string
}

// DefaultManHeader is used when Man is given a nil header.
func DefaultManHeader() *ManHeader {
	return &ManHeader{Section: "1", Source: "vitewind", Manual: "vitewind Manual"}
}

// Man writes one roff man page per command, e.g. vitewind-create.1.
func (g *Generator) Man(root *cobra.Command, header *ManHeader) error {
	if header == nil {
		header = DefaultManHeader()
	}
	if header.Section == "" {
		header.Section = "1"
	}
	filename := func(cmd *cobra.Command) string { return commandFilename(cmd, "-", "."+header.Section) }

	return g.walk(root, filename, func(cmd *cobra.Command) ([]byte, error) {
		return md2man.Render(manMarkdown(cmd, header)), nil
	})
}

// manMarkdown builds the md2man source for cmd.
func manMarkdown(cmd *cobra.Command, header *ManHeader) []byte {
	var buf bytes.Buffer
	name := cmd.CommandPath()

	date := ""
	if header.Date != nil {
		date = header.Date.Format("Jan 2006")
	}
	fmt.Fprintf(&buf, "%% %s(%s) %s | %s\n\n",
		strings.ToUpper(strings.ReplaceAll(name, " ", "-")), header.Section, date, header.Manual)

	short := cmd.Short
	if short == "" {
		short = "manual page for " + name
	}
	fmt.Fprintf(&buf, "# NAME\n%s \\- %s\n\n", name, short)

	buf.WriteString("# SYNOPSIS\n**" + name + "**")
	if cmd.NonInheritedFlags().HasAvailableFlags() {
		buf.WriteString(" [OPTIONS]")
	}
	if cmd.HasAvailableSubCommands() {
		buf.WriteString(" COMMAND")
	}
	buf.WriteString("\n\n")

	if cmd.Long != "" {
		buf.WriteString("# DESCRIPTION\n" + cmd.Long + "\n\n")
	}

	if subs := visibleCommands(cmd); len(subs) > 0 {
		buf.WriteString("# COMMANDS\n")
		for _, c := range subs {
			fmt.Fprintf(&buf, "**%s**\n: %s\n\n", c.Name(), c.Short)
		}
	}

	flags := append(collectFlags(cmd.NonInheritedFlags()), collectFlags(cmd.InheritedFlags())...)
	if len(flags) > 0 {
		buf.WriteString("# OPTIONS\n")
		for _, f := range flags {
			if f.Shorthand != "" {
				fmt.Fprintf(&buf, "**-%s**, **--%s**", f.Shorthand, f.Name)
			} else {
				fmt.Fprintf(&buf, "**--%s**", f.Name)
			}
			if f.Type != "bool" {
				fmt.Fprintf(&buf, " <%s>", f.Type)
			}
			buf.WriteString("\n: " + f.Usage)
			if f.DefaultValue != "" {
				fmt.Fprintf(&buf, " (default: %s)", f.DefaultValue)
			}
			buf.WriteString("\n\n")
		}
	}

	if cmd.Example != "" {
		buf.WriteString("# EXAMPLES\n")
		codeBlock(&buf, cmd.Example)
	}

	manSeeAlso(&buf, cmd, header.Section)

	return buf.Bytes()
}

func manSeeAlso(buf *bytes.Buffer, cmd *cobra.Command, section string) {
	var refs []string
	ref := func(c *cobra.Command) string {
		return fmt.Sprintf("**%s(%s)**", strings.ReplaceAll(c.CommandPath(), " ", "-"), section)
	}
	if cmd.HasParent() {
		refs = append(refs, ref(cmd.Parent()))
		for _, s := range visibleCommands(cmd.Parent()) {
			if s != cmd {
				refs = append(refs, ref(s))
			}
		}
	}
	for _, c := range visibleCommands(cmd) {
		refs = append(refs, ref(c))
	}
	if len(refs) == 0 {
		return
	}
	buf.WriteString("# SEE ALSO\n" + strings.Join(refs, ", ") + "\n")
}
