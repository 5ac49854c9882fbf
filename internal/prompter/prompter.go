// Package prompter implements the line-based interactive prompts: single
// choice selection, free text input and yes/no confirmation.
//
// Every prompt degrades to its default when the streams cannot prompt
// (non-TTY, CI), so callers must pick defaults that are safe to apply
// unattended.
package prompter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/schmitthub/vitewind/internal/iostreams"
)

// ErrRequired is returned when a required value is missing.
var ErrRequired = errors.New("required input missing")

// Prompter reads answers from IOStreams.In and writes prompts to ErrOut.
type Prompter struct {
	ios    *iostreams.IOStreams
	reader *bufio.Reader
}

// NewPrompter returns a Prompter bound to ios.
func NewPrompter(ios *iostreams.IOStreams) *Prompter {
	return &Prompter{ios: ios}
}

// readLine returns one trimmed line. The bufio.Reader is shared across
// prompts so read-ahead from one answer is not lost to the next.
func (p *Prompter) readLine() (string, error) {
	if p.reader == nil {
		p.reader = bufio.NewReader(p.ios.In)
	}
	line, err := p.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// PromptConfig configures String.
type PromptConfig struct {
	Message   string
	Default   string
	Required  bool
	Validator func(string) error
}

// String asks for a line of text. An empty answer takes the default. A
// missing required answer or one the Validator rejects is reported and asked
// again; only a read failure ends the prompt with an error.
func (p *Prompter) String(cfg PromptConfig) (string, error) {
	if !p.ios.CanPrompt() {
		if cfg.Required && cfg.Default == "" {
			return "", fmt.Errorf("%w: %s (cannot prompt in non-interactive mode)", ErrRequired, cfg.Message)
		}
		return cfg.Default, nil
	}

	prompt := cfg.Message
	if cfg.Default != "" {
		prompt = fmt.Sprintf("%s [%s]", cfg.Message, cfg.Default)
	}

	for {
		fmt.Fprintf(p.ios.ErrOut, "%s: ", prompt)

		response, err := p.readLine()
		if err != nil {
			if errors.Is(err, io.EOF) && cfg.Default != "" {
				fmt.Fprintln(p.ios.ErrOut)
				return cfg.Default, nil
			}
			return "", fmt.Errorf("failed to read input: %w", err)
		}

		if response == "" {
			response = cfg.Default
		}
		if cfg.Required && response == "" {
			p.ios.PrintFailure("A value is required")
			continue
		}
		if cfg.Validator != nil {
			if err := cfg.Validator(response); err != nil {
				p.ios.PrintFailure("%s", err)
				continue
			}
		}
		return response, nil
	}
}

// Confirm asks a yes/no question.
func (p *Prompter) Confirm(message string, defaultYes bool) (bool, error) {
	if !p.ios.CanPrompt() {
		return defaultYes, nil
	}

	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}
	fmt.Fprintf(p.ios.ErrOut, "%s %s ", message, hint)

	response, err := p.readLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(p.ios.ErrOut)
			return defaultYes, nil
		}
		return false, fmt.Errorf("failed to read input: %w", err)
	}

	switch strings.ToLower(response) {
	case "":
		return defaultYes, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// SelectOption is one entry of a Select menu.
type SelectOption struct {
	Label       string
	Description string
}

// Select shows a numbered menu and returns the chosen index. An answer that
// is not one of the listed numbers is reported and asked again.
func (p *Prompter) Select(message string, options []SelectOption, defaultIdx int) (int, error) {
	if len(options) == 0 {
		return -1, fmt.Errorf("no options provided")
	}
	if defaultIdx < 0 || defaultIdx >= len(options) {
		defaultIdx = 0
	}
	if !p.ios.CanPrompt() {
		return defaultIdx, nil
	}

	fmt.Fprintf(p.ios.ErrOut, "%s\n", message)
	for i, opt := range options {
		marker := "  "
		if i == defaultIdx {
			marker = "> "
		}
		if opt.Description != "" {
			fmt.Fprintf(p.ios.ErrOut, "%s%d. %s (%s)\n", marker, i+1, opt.Label, opt.Description)
		} else {
			fmt.Fprintf(p.ios.ErrOut, "%s%d. %s\n", marker, i+1, opt.Label)
		}
	}

	for {
		fmt.Fprintf(p.ios.ErrOut, "Enter selection [%d]: ", defaultIdx+1)

		response, err := p.readLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(p.ios.ErrOut)
				return defaultIdx, nil
			}
			return -1, fmt.Errorf("failed to read input: %w", err)
		}
		if response == "" {
			return defaultIdx, nil
		}

		idx, err := strconv.Atoi(response)
		if err != nil || idx < 1 || idx > len(options) {
			p.ios.PrintFailure("Invalid selection %q: enter a number from 1 to %d", response, len(options))
			continue
		}
		return idx - 1, nil
	}
}
