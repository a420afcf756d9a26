package cli

import (
	"github.com/AlecAivazis/survey/v2"
)

// set of main menu actions
const (
	mainMenuOptionAccess = "Access an existing site"
	mainMenuOptionCreate = "Create a new site"
	mainMenuOptionExit   = "Exit"
)

func (s *Session) showMainMenu() (screenID, error) {
	var idx int
	if err := s.ui.AskOne(&survey.Select{
		Message: "What would you like to do?",
		Options: []string{mainMenuOptionAccess, mainMenuOptionCreate, mainMenuOptionExit},
	}, &idx); err != nil {
		return screenExit, err
	}

	switch idx {
	case 0:
		return screenAccessSite, nil
	case 1:
		return screenCreateSite, nil
	}
	return screenExit, nil
}
