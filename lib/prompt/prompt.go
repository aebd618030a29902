package prompt

import (
	"github.com/AlecAivazis/survey/v2"
)

// Interactive prompts backed by survey. Implements quiz.Asker.
//
// survey returns terminal.InterruptErr when the student hits Ctrl-C during a
// read; callers treat that as a course interrupt.
type Survey struct{}

// Ask for a one-line answer.
func (Survey) Ask(prompt string) (string, error) {
	var answer string
	if err := survey.AskOne(&survey.Input{Message: prompt}, &answer); err != nil {
		return "", err
	}

	return answer, nil
}

// Block until the student presses Enter.
func (Survey) Ack(prompt string) error {
	var ignored string
	return survey.AskOne(&survey.Input{Message: prompt}, &ignored)
}
