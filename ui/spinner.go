package ui

import (
	"fmt"

	"github.com/charmbracelet/huh/spinner"
)

// SpinnerAction runs an action with a spinner, returning any error from the action
type SpinnerAction func() error

// RunWithSpinner runs an action with a spinner display.
// Without a TTY, or in verbose mode where the action streams its own output,
// it prints the title and runs the action directly.
func RunWithSpinner(title string, action SpinnerAction) error {
	if !IsTTY() || IsVerbose() {
		fmt.Fprintln(out, title)
		return action()
	}

	var actionErr error
	spinErr := spinner.New().
		Title(title).
		Action(func() {
			actionErr = action()
		}).
		Run()

	if spinErr != nil {
		return spinErr
	}
	return actionErr
}
