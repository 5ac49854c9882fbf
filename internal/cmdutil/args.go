package cmdutil

import (
	"github.com/spf13/cobra"
)

// NoArgs rejects any positional argument.
func NoArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	if cmd.HasSubCommands() {
		return FlagErrorf("unknown command %q for %q", args[0], cmd.CommandPath())
	}
	return FlagErrorf("%q accepts no arguments", cmd.CommandPath())
}

// RequiresMaxArgs rejects more than maxArgs positional arguments.
func RequiresMaxArgs(maxArgs int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) <= maxArgs {
			return nil
		}
		return FlagErrorf("%q accepts at most %d %s, received %d",
			cmd.CommandPath(), maxArgs, pluralize("argument", maxArgs), len(args))
	}
}

func pluralize(word string, number int) string {
	if number == 1 {
		return word
	}
	return word + "s"
}
