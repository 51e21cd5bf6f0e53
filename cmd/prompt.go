package cmd

import (
	"github.com/AlecAivazis/survey/v2"

	"github.com/icmt/icmt/internal/icmt/errors"
)

// prompter asks the user for input. Tests substitute a scripted one.
type prompter interface {
	Input(message, def string, required bool) (string, error)
	Password(message string) (string, error)
	Select(message string, options []string, def string) (string, error)
	Confirm(message string, def bool) (bool, error)
}

type surveyPrompter struct{}

func (surveyPrompter) Input(message, def string, required bool) (string, error) {
	var answer string
	var opts []survey.AskOpt
	if required {
		opts = append(opts, survey.WithValidator(survey.Required))
	}
	err := survey.AskOne(&survey.Input{Message: message, Default: def}, &answer, opts...)
	return answer, err
}

func (surveyPrompter) Password(message string) (string, error) {
	var answer string
	err := survey.AskOne(&survey.Password{Message: message}, &answer, survey.WithValidator(survey.Required))
	return answer, err
}

func (surveyPrompter) Select(message string, options []string, def string) (string, error) {
	var answer string
	prompt := &survey.Select{Message: message, Options: options}
	for _, o := range options {
		// survey rejects a default that is not one of the options
		if o == def {
			prompt.Default = def
			break
		}
	}
	err := survey.AskOne(prompt, &answer)
	return answer, err
}

func (surveyPrompter) Confirm(message string, def bool) (bool, error) {
	var answer bool
	err := survey.AskOne(&survey.Confirm{Message: message, Default: def}, &answer)
	return answer, err
}

// noPrompter refuses every question; used with --no-prompt.
type noPrompter struct{}

func (noPrompter) Input(string, string, bool) (string, error) {
	return "", errors.ErrPromptDisabled
}

func (noPrompter) Password(string) (string, error) {
	return "", errors.ErrPromptDisabled
}

func (noPrompter) Select(string, []string, string) (string, error) {
	return "", errors.ErrPromptDisabled
}

func (noPrompter) Confirm(string, bool) (bool, error) {
	return false, errors.ErrPromptDisabled
}

func newPrompter(noPrompt bool) prompter {
	if noPrompt {
		return noPrompter{}
	}
	return surveyPrompter{}
}
