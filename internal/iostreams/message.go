package iostreams

import "fmt"

// PrintSuccess writes "<success icon> message" to ErrOut.
func (s *IOStreams) PrintSuccess(format string, args ...any) {
	fmt.Fprintf(s.ErrOut, "%s %s\n", s.ColorScheme().SuccessIcon(), fmt.Sprintf(format, args...))
}

// PrintWarning writes "<warning icon> message" to ErrOut.
func (s *IOStreams) PrintWarning(format string, args ...any) {
	fmt.Fprintf(s.ErrOut, "%s %s\n", s.ColorScheme().WarningIcon(), fmt.Sprintf(format, args...))
}

// PrintInfo writes "<info icon> message" to ErrOut.
func (s *IOStreams) PrintInfo(format string, args ...any) {
	fmt.Fprintf(s.ErrOut, "%s %s\n", s.ColorScheme().InfoIcon(), fmt.Sprintf(format, args...))
}

// PrintFailure writes "<failure icon> message" to ErrOut.
func (s *IOStreams) PrintFailure(format string, args ...any) {
	fmt.Fprintf(s.ErrOut, "%s %s\n", s.ColorScheme().FailureIcon(), fmt.Sprintf(format, args...))
}

// PrintNextSteps writes a numbered "Next steps" list to ErrOut.
func (s *IOStreams) PrintNextSteps(steps ...string) {
	if len(steps) == 0 {
		return
	}
	fmt.Fprintf(s.ErrOut, "\n%s\n", s.ColorScheme().Bold("Next steps:"))
	for i, step := range steps {
		fmt.Fprintf(s.ErrOut, "  %d. %s\n", i+1, step)
	}
}
