package cli

import (
	"github.com/dropsite-io/dropsite-cli/internal/terminal"
)

func (s *Session) showAccessSite() (screenID, error) {
	var inputs siteInputs
	if err := inputs.Resolve(s.ui); err != nil {
		return screenMainMenu, err
	}

	res, err := s.client.Site(inputs.Name, inputs.Password)
	if err != nil {
		return screenMainMenu, err
	}

	if err := s.creds.Save(res.AuthToken); err != nil {
		return screenMainMenu, err
	}

	s.site = inputs.Name
	s.password = inputs.Password
	s.files = res.Files

	s.ui.Print(terminal.NewSuccessLog("Accessed site %q", s.site))
	return screenFileManager, nil
}
