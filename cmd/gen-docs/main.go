// gen-docs writes the vitewind CLI reference as Markdown, man pages or YAML.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"

	"github.com/schmitthub/vitewind/internal/cmd/root"
	"github.com/schmitthub/vitewind/internal/cmdutil"
	"github.com/schmitthub/vitewind/internal/docs"
)

func main() {
	if err := run(os.Args, afero.NewOsFs(), os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, fsys afero.Fs, stderr io.Writer) error {
	flags := pflag.NewFlagSet("gen-docs", pflag.ContinueOnError)
	flags.SetOutput(stderr)

	var (
		flagDocPath  string
		flagMarkdown bool
		flagManPage  bool
		flagYAML     bool
		flagWebsite  bool
	)

	flags.StringVar(&flagDocPath, "doc-path", "", "Output directory for generated docs (required)")
	flags.BoolVar(&flagMarkdown, "markdown", false, "Generate Markdown documentation")
	flags.BoolVar(&flagManPage, "man-page", false, "Generate man pages")
	flags.BoolVar(&flagYAML, "yaml", false, "Generate YAML reference")
	flags.BoolVar(&flagWebsite, "website", false, "Add Jekyll front matter (requires --markdown)")

	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage of %s:\n\n%s", filepath.Base(args[0]), flags.FlagUsages())
	}

	if err := flags.Parse(args[1:]); err != nil {
		return err
	}

	if flagDocPath == "" {
		return fmt.Errorf("--doc-path is required")
	}
	if !flagMarkdown && !flagManPage && !flagYAML {
		return fmt.Errorf("at least one format must be specified (--markdown, --man-page, --yaml)")
	}
	if flagWebsite && !flagMarkdown {
		return fmt.Errorf("--website requires --markdown")
	}

	rootCmd := root.NewCmdRoot(&cmdutil.Factory{})
	rootCmd.DisableAutoGenTag = true

	generator := func(sub string) *docs.Generator {
		return &docs.Generator{Fs: fsys, Dir: filepath.Join(flagDocPath, sub)}
	}

	if flagMarkdown {
		g := generator("markdown")
		opts := docs.MarkdownOptions{}
		if flagWebsite {
			opts.FilePrepender = jekyllFilePrepender
			opts.LinkHandler = jekyllLinkHandler
		}
		if err := g.Markdown(rootCmd, opts); err != nil {
			return fmt.Errorf("failed to generate Markdown documentation: %w", err)
		}
		fmt.Fprintf(stderr, "Generated Markdown documentation in %s\n", g.Dir)
	}

	if flagManPage {
		g := generator("man")
		if err := g.Man(rootCmd, nil); err != nil {
			return fmt.Errorf("failed to generate man pages: %w", err)
		}
		fmt.Fprintf(stderr, "Generated man pages in %s\n", g.Dir)
	}

	if flagYAML {
		g := generator("yaml")
		if err := g.YAML(rootCmd); err != nil {
			return fmt.Errorf("failed to generate YAML documentation: %w", err)
		}
		fmt.Fprintf(stderr, "Generated YAML documentation in %s\n", g.Dir)
	}

	return nil
}

// jekyllFilePrepender returns front matter for a page such as
// "vitewind_config_show.md".
func jekyllFilePrepender(filename string) string {
	name := strings.TrimSuffix(filepath.Base(filename), ".md")
	return fmt.Sprintf("---\nlayout: manual\npermalink: %s\ntitle: %s\n---\n\n",
		jekyllLinkHandler(strings.ReplaceAll(name, "_", " ")),
		strings.ReplaceAll(name, "_", " "))
}

// jekyllLinkHandler maps "vitewind config show" to "/cli/vitewind/config/show/".
func jekyllLinkHandler(cmdPath string) string {
	return "/cli/" + strings.ReplaceAll(cmdPath, " ", "/") + "/"
}
