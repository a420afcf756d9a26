package cli

import (
	"io/ioutil"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"

	"github.com/dropsite-io/dropsite-cli/internal/cloud/dropsite"
	"github.com/dropsite-io/dropsite-cli/internal/terminal"
)

// set of file manager actions
const (
	fileManagerOptionUpload   = "Upload a file"
	fileManagerOptionDownload = "Download a file"
	fileManagerOptionBack     = "Back to main menu"
)

func (s *Session) showFileManager() (screenID, error) {
	s.ui.Print(terminal.NewTextLog("Files in %q:", s.site))
	if len(s.files) == 0 {
		s.ui.Print(terminal.NewTextLog("  (no files uploaded yet)"))
	} else {
		for i, file := range s.files {
			s.ui.Print(terminal.NewTextLog("  %d. %s", i+1, file.FileName))
		}
	}

	var idx int
	if err := s.ui.AskOne(&survey.Select{
		Message: "Choose an action",
		Options: []string{fileManagerOptionUpload, fileManagerOptionDownload, fileManagerOptionBack},
	}, &idx); err != nil {
		return screenMainMenu, err
	}

	switch idx {
	case 0:
		if err := s.uploadFile(); err != nil {
			if isSessionEnd(err) {
				return screenMainMenu, err
			}
			s.ui.Print(terminal.NewErrorLog(err))
			return screenFileManager, nil
		}
		s.refreshFiles()
	case 1:
		if len(s.files) == 0 {
			s.ui.Print(terminal.NewWarningLog("there are no files to download yet"))
			return screenFileManager, nil
		}
		if err := s.downloadFile(); err != nil {
			if isSessionEnd(err) {
				return screenMainMenu, err
			}
			s.ui.Print(terminal.NewErrorLog(err))
			return screenFileManager, nil
		}
		s.refreshFiles()
	case 2:
		return screenMainMenu, nil
	}
	return screenFileManager, nil
}

func (s *Session) uploadFile() error {
	var inputs uploadInputs
	if err := inputs.Resolve(s.ui); err != nil {
		return err
	}

	if err := dropsite.ValidateUpload(inputs.Path); err != nil {
		return err
	}

	token, err := s.creds.Load()
	if err != nil {
		return err
	}

	if err := s.client.Upload(s.site, token, inputs.Path); err != nil {
		return err
	}

	s.ui.Print(terminal.NewSuccessLog("Uploaded %q", filepath.Base(inputs.Path)))
	return nil
}

func (s *Session) downloadFile() error {
	options := make([]string, 0, len(s.files))
	for _, file := range s.files {
		options = append(options, file.FileName)
	}

	var idx int
	if err := s.ui.AskOne(&survey.Select{
		Message: "Which file would you like to download?",
		Options: options,
	}, &idx); err != nil {
		return err
	}
	file := s.files[idx]

	token, err := s.creds.Load()
	if err != nil {
		return err
	}

	data, err := s.client.Download(file.ID, token)
	if err != nil {
		return err
	}

	// file names come from the server, keep them from escaping the downloads dir
	target := filepath.Join(s.downloadsDir, filepath.Base(file.FileName))
	if err := ioutil.WriteFile(target, data, 0644); err != nil {
		return err
	}

	s.ui.Print(terminal.NewSuccessLog("Saved %q to %s", file.FileName, target))
	return nil
}

// refreshFiles re-fetches the authoritative file list after a mutation,
// falling back to an empty list if the site cannot be re-read
func (s *Session) refreshFiles() {
	res, err := s.client.Site(s.site, s.password)
	if err != nil {
		s.ui.Print(terminal.NewWarningLog("unable to refresh the file list: %s", err))
		s.files = nil
		return
	}
	s.files = res.Files
}
