package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C) or declined to
	// retry a failed submission.
	ErrAborted = errors.New("tui: aborted")
	// ErrWizardRequired is returned when Run is called without a wizard.
	ErrWizardRequired = errors.New("tui: wizard is required")
)
