package create

import (
	"context"
	"fmt"

	"github.com/spf13/afero"

	"github.com/schmitthub/vitewind/internal/conflict"
	"github.com/schmitthub/vitewind/internal/prompter"
)

// conflictOptions are listed in the order the prompt shows them.
var conflictOptions = []struct {
	choice conflict.Choice
	option prompter.SelectOption
}{
	{conflict.Clear, prompter.SelectOption{Label: "Remove existing files and continue"}},
	{conflict.Rename, prompter.SelectOption{Label: "Choose a different project name"}},
	{conflict.Abort, prompter.SelectOption{Label: "Cancel operation"}},
}

// abortIndex is the default selection, so a non-interactive run never
// clears a directory.
const abortIndex = 2

// promptDecider asks the user how to resolve a directory conflict. Clearing
// needs a second confirmation; declining it shows the menu again.
type promptDecider struct {
	prompter *prompter.Prompter
	fs       afero.Fs
}

func (d *promptDecider) Decide(_ context.Context, name, path string) (conflict.Choice, error) {
	options := make([]prompter.SelectOption, len(conflictOptions))
	for i, o := range conflictOptions {
		options[i] = o.option
	}

	msg := fmt.Sprintf("Target directory %q (%s) is not empty. How do you want to proceed?", name, path)
	for {
		idx, err := d.prompter.Select(msg, options, abortIndex)
		if err != nil {
			return conflict.Abort, err
		}
		choice := conflictOptions[idx].choice
		if choice != conflict.Clear {
			return choice, nil
		}
		ok, err := d.confirmClear(path)
		if err != nil {
			return conflict.Abort, err
		}
		if ok {
			return conflict.Clear, nil
		}
	}
}

func (d *promptDecider) confirmClear(path string) (bool, error) {
	msg := fmt.Sprintf("Delete the contents of %s?", path)
	if entries, err := afero.ReadDir(d.fs, path); err == nil {
		noun := "entries"
		if len(entries) == 1 {
			noun = "entry"
		}
		msg = fmt.Sprintf("Delete %d %s in %s?", len(entries), noun, path)
	}
	return d.prompter.Confirm(msg, false)
}

func (d *promptDecider) NewName(_ context.Context, current string) (string, error) {
	return d.prompter.String(prompter.PromptConfig{
		Message:   fmt.Sprintf("New project name (instead of %s)", current),
		Required:  true,
		Validator: conflict.ValidateName,
	})
}
