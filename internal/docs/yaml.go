package docs

import (
	"bytes"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// CommandDoc is the YAML reference for one command.
type CommandDoc struct {
	Name             string       `yaml:"name"`
	Synopsis         string       `yaml:"synopsis,omitempty"`
	Description      string       `yaml:"description,omitempty"`
	Usage            string       `yaml:"usage,omitempty"`
	Options          []flagDoc    `yaml:"options,omitempty"`
	InheritedOptions []flagDoc    `yaml:"inherited_options,omitempty"`
	Commands         []CommandDoc `yaml:"commands,omitempty"`
	Examples         string       `yaml:"examples,omitempty"`
	SeeAlso          []string     `yaml:"see_also,omitempty"`
}

// YAML writes one YAML reference file per command.
func (g *Generator) YAML(root *cobra.Command) error {
	filename := func(cmd *cobra.Command) string { return commandFilename(cmd, "_", ".yaml") }
	return g.walk(root, filename, func(cmd *cobra.Command) ([]byte, error) {
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(buildCommandDoc(cmd)); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	})
}

func buildCommandDoc(cmd *cobra.Command) CommandDoc {
	doc := CommandDoc{
		Name:             cmd.CommandPath(),
		Synopsis:         cmd.Short,
		Description:      cmd.Long,
		Examples:         cmd.Example,
		Options:          collectFlags(cmd.NonInheritedFlags()),
		InheritedOptions: collectFlags(cmd.InheritedFlags()),
	}
	if cmd.Runnable() {
		doc.Usage = cmd.UseLine()
	}
	if cmd.HasParent() {
		doc.SeeAlso = append(doc.SeeAlso, cmd.Parent().CommandPath())
	}
	for _, c := range visibleCommands(cmd) {
		doc.Commands = append(doc.Commands, CommandDoc{Name: c.Name(), Synopsis: c.Short})
		doc.SeeAlso = append(doc.SeeAlso, c.CommandPath())
	}
	return doc
}
