package cli

import (
	"github.com/AlecAivazis/survey/v2"

	"github.com/dropsite-io/dropsite-cli/internal/terminal"
)

// set of input field names
const (
	inputFieldName     = "name"
	inputFieldPassword = "password"
	inputFieldPath     = "path"
)

type siteInputs struct {
	Name     string
	Password string
}

func (i *siteInputs) Resolve(ui terminal.UI) error {
	var questions []*survey.Question

	if i.Name == "" {
		questions = append(questions, &survey.Question{
			Name:     inputFieldName,
			Prompt:   &survey.Input{Message: "Site Name"},
			Validate: survey.Required,
		})
	}

	if i.Password == "" {
		questions = append(questions, &survey.Question{
			Name:     inputFieldPassword,
			Prompt:   &survey.Password{Message: "Site Password"},
			Validate: survey.Required,
		})
	}

	if len(questions) > 0 {
		if err := ui.Ask(i, questions...); err != nil {
			return err
		}
	}
	return nil
}

type uploadInputs struct {
	Path string
}

func (i *uploadInputs) Resolve(ui terminal.UI) error {
	if i.Path != "" {
		return nil
	}

	return ui.Ask(i, &survey.Question{
		Name:     inputFieldPath,
		Prompt:   &survey.Input{Message: "Local File Path"},
		Validate: survey.Required,
	})
}
