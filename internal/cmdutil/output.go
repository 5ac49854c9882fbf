package cmdutil

import (
	"errors"
	"fmt"
	"strings"

	"github.com/schmitthub/vitewind/internal/iostreams"
	"github.com/schmitthub/vitewind/internal/runner"
)

// maxOutputLines caps how much captured command output is echoed on failure.
const maxOutputLines = 40

// PrintHelpHint prints a contextual help hint to stderr.
// cmdPath should be cmd.CommandPath() (e.g., "vitewind create").
func PrintHelpHint(ios *iostreams.IOStreams, cmdPath string) {
	fmt.Fprintf(ios.ErrOut, "\nRun '%s --help' for more information.\n", cmdPath)
}

// PrintError renders err to stderr. A wrapped *runner.CommandError also
// gets the tail of the captured process output.
func PrintError(ios *iostreams.IOStreams, err error) {
	cs := ios.ColorScheme()
	fmt.Fprintf(ios.ErrOut, "%s Error: %s\n", cs.FailureIcon(), err)

	var cmdErr *runner.CommandError
	if !errors.As(err, &cmdErr) {
		return
	}
	out := strings.TrimRight(cmdErr.Output, "\n")
	if out == "" {
		return
	}
	lines := strings.Split(out, "\n")
	if len(lines) > maxOutputLines {
		fmt.Fprintf(ios.ErrOut, "%s\n", cs.Muted(fmt.Sprintf("... %d earlier lines omitted", len(lines)-maxOutputLines)))
		lines = lines[len(lines)-maxOutputLines:]
	}
	fmt.Fprintf(ios.ErrOut, "\n%s\n", cs.Bold("Output of "+cmdErr.Command.String()+":"))
	for _, line := range lines {
		fmt.Fprintf(ios.ErrOut, "  %s\n", line)
	}
}
