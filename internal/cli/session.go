package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dropsite-io/dropsite-cli/internal/auth"
	"github.com/dropsite-io/dropsite-cli/internal/cloud/dropsite"
	"github.com/dropsite-io/dropsite-cli/internal/terminal"

	surveyterm "github.com/AlecAivazis/survey/v2/terminal"
)

// screenID identifies an interactive session screen
type screenID string

// set of interactive session screens
const (
	screenMainMenu    screenID = "main_menu"
	screenAccessSite  screenID = "access_site"
	screenCreateSite  screenID = "create_site"
	screenFileManager screenID = "file_manager"
	screenExit        screenID = "exit"
)

// errPause is how long an error message stays on screen
// before the session returns to the main menu
const errPause = 2 * time.Second

// Session is an interactive CLI session, driving the screens of the
// file sharing workflow as a state machine with a single dispatch loop
type Session struct {
	ui           terminal.UI
	client       dropsite.Client
	creds        *auth.Store
	downloadsDir string
	sleep        func(time.Duration)

	// state of the currently accessed site, reset on each access
	site     string
	password string
	files    []dropsite.File
}

// NewSession creates a new interactive session
func NewSession(ui terminal.UI, client dropsite.Client, creds *auth.Store, downloadsDir string) *Session {
	return &Session{
		ui:           ui,
		client:       client,
		creds:        creds,
		downloadsDir: downloadsDir,
		sleep:        time.Sleep,
	}
}

// Run drives the session until the user exits.
// Any error raised by a screen is printed, held on screen briefly,
// and resolved by returning to the main menu.
func (s *Session) Run() error {
	s.ui.Print(terminal.Banner(Name, Version))

	screen := screenMainMenu
	for screen != screenExit {
		next, err := s.dispatch(screen)
		if err != nil {
			if isSessionEnd(err) {
				break
			}
			s.ui.Print(terminal.NewErrorLog(err))
			s.sleep(errPause)
			next = screenMainMenu
		}
		screen = next
	}

	s.ui.Print(terminal.NewTextLog("Goodbye!"))
	return nil
}

func (s *Session) dispatch(screen screenID) (screenID, error) {
	switch screen {
	case screenMainMenu:
		return s.showMainMenu()
	case screenAccessSite:
		return s.showAccessSite()
	case screenCreateSite:
		return s.showCreateSite()
	case screenFileManager:
		return s.showFileManager()
	}
	return screenExit, fmt.Errorf("unknown screen: %s", screen)
}

// isSessionEnd recognizes the user abandoning the prompt entirely,
// which should end the session instead of bouncing back to the main menu
func isSessionEnd(err error) bool {
	return errors.Is(err, surveyterm.InterruptErr) || errors.Is(err, io.EOF)
}
