// Package prompt collects operator input on the terminal.
package prompt

import (
	"github.com/AlecAivazis/survey/v2"
)

// Driver asks the operator for input. Both calls block until answered.
type Driver interface {
	// Choice presents a bounded option list and returns the selection.
	Choice(message string, options []string) (string, error)

	// Text asks for free-form input, showing defaultHint as the default.
	Text(message, defaultHint string) (string, error)
}

// Terminal is the interactive Driver backed by survey.
type Terminal struct{}

// NewTerminal creates a terminal prompt driver.
func NewTerminal() *Terminal {
	return &Terminal{}
}

func (t *Terminal) Choice(message string, options []string) (string, error) {
	var answer string
	q := &survey.Select{
		Message: message,
		Options: options,
	}
	if err := survey.AskOne(q, &answer); err != nil {
		return "", err
	}
	return answer, nil
}

func (t *Terminal) Text(message, defaultHint string) (string, error) {
	var answer string
	q := &survey.Input{
		Message: message,
		Default: defaultHint,
	}
	if err := survey.AskOne(q, &answer); err != nil {
		return "", err
	}
	return answer, nil
}
