package prompt

import (
	"github.com/AlecAivazis/survey/v2"
)

// Questioner asks the open-ended and yes/no questions of the config editor
type Questioner interface {
	Text(message, defaultValue string) (string, error)
	YesNo(message string, defaultValue bool) (bool, error)
}

// SurveyQuestioner implements Questioner with survey
type SurveyQuestioner struct{}

// Text asks for free text, returning defaultValue on an empty answer
func (SurveyQuestioner) Text(message, defaultValue string) (string, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return "", err
	}
	answer := defaultValue
	err := survey.AskOne(&survey.Input{
		Message: message,
		Default: defaultValue,
	}, &answer, survey.WithValidator(survey.Required))
	return answer, err
}

// YesNo asks a yes/no question
func (SurveyQuestioner) YesNo(message string, defaultValue bool) (bool, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return false, err
	}
	answer := defaultValue
	err := survey.AskOne(&survey.Confirm{
		Message: message,
		Default: defaultValue,
	}, &answer)
	return answer, err
}
