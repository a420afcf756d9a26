package cli

import (
	"github.com/dropsite-io/dropsite-cli/internal/terminal"
)

func (s *Session) showCreateSite() (screenID, error) {
	var inputs siteInputs
	if err := inputs.Resolve(s.ui); err != nil {
		return screenMainMenu, err
	}

	if token, err := s.creds.Load(); err == nil && token != "" {
		proceed, confirmErr := s.ui.Confirm("Creating a new site replaces the credential saved on this machine, would you like to proceed?")
		if confirmErr != nil {
			return screenMainMenu, confirmErr
		}
		if !proceed {
			return screenMainMenu, nil
		}
	}

	res, err := s.client.CreateSite(inputs.Name, inputs.Password)
	if err != nil {
		return screenMainMenu, err
	}

	if err := s.creds.Save(res.AuthToken); err != nil {
		return screenMainMenu, err
	}

	s.ui.Print(terminal.NewSuccessLog("Site %q created, access it from the main menu to manage its files", inputs.Name))
	return screenMainMenu, nil
}
