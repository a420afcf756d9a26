package cli

import (
	"fmt"
	"log"
	"os"

	"github.com/dropsite-io/dropsite-cli/internal/auth"
	"github.com/dropsite-io/dropsite-cli/internal/cloud/dropsite"
	"github.com/dropsite-io/dropsite-cli/internal/terminal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// set of CLI flags
const (
	flagProfile      = "profile"
	flagProfileUsage = "specify the CLI profile to use"

	flagBaseURL      = "base-url"
	flagBaseURLUsage = "specify the base dropsite server URL"
)

// SessionFactory builds and runs interactive sessions
type SessionFactory struct {
	profile   *Profile
	uiConfig  terminal.UIConfig
	ui        terminal.UI
	errLogger *log.Logger
}

// NewSessionFactory creates a new session factory
func NewSessionFactory() *SessionFactory {
	errLogger := log.New(os.Stderr, "UTC ERROR ", log.Ltime|log.Lmsgprefix)

	profile, profileErr := NewDefaultProfile()
	if profileErr != nil {
		errLogger.Fatal(profileErr)
	}

	return &SessionFactory{
		profile:   profile,
		errLogger: errLogger,
	}
}

// SetGlobalFlags sets the global flags
func (factory *SessionFactory) SetGlobalFlags(fs *pflag.FlagSet) {
	fs.SortFlags = false // ensures global flags are added unsorted

	// profile flags
	fs.StringVar(&factory.profile.Name, flagProfile, DefaultProfile, flagProfileUsage)

	// ui flags
	fs.BoolVar(&factory.uiConfig.DisableColors, terminal.FlagDisableColors, false, terminal.FlagDisableColorsUsage)
	fs.BoolVarP(&factory.uiConfig.AutoConfirm, terminal.FlagAutoConfirm, terminal.FlagAutoConfirmShort, false, terminal.FlagAutoConfirmUsage)

	// hidden flags
	fs.StringVar(&factory.profile.baseURL, flagBaseURL, "", flagBaseURLUsage)
	fs.MarkHidden(flagBaseURL) //nolint: errcheck
}

// Setup initializes the session factory
func (factory *SessionFactory) Setup() {
	if err := factory.profile.Load(); err != nil {
		factory.errLogger.Fatal(err)
	}
}

// RunSession starts an interactive session.
// The downloads directory is prepared up front: no screen can function
// without it, so failing to create it aborts the process immediately.
func (factory *SessionFactory) RunSession() error {
	factory.ensureUI()

	downloadsDir, dirErr := factory.profile.DownloadsDir()
	if dirErr != nil {
		return fmt.Errorf("failed to resolve the downloads directory: %w", dirErr)
	}
	if err := os.MkdirAll(downloadsDir, 0755); err != nil {
		return fmt.Errorf("failed to create the downloads directory: %w", err)
	}

	session := NewSession(
		factory.ui,
		dropsite.NewClient(factory.profile.BaseURL()),
		auth.NewStore(auth.FileName),
		downloadsDir,
	)
	return session.Run()
}

// Run executes the command, reporting any error through the terminal UI
// and translating it into the process exit code
func (factory *SessionFactory) Run(cmd *cobra.Command) int {
	if err := cmd.Execute(); err != nil {
		if factory.ui == nil {
			factory.errLogger.Print(err)
			return 1
		}
		factory.ui.Print(terminal.NewErrorLog(err))
		return 1
	}
	return 0
}

func (factory *SessionFactory) ensureUI() {
	if factory.ui == nil {
		factory.ui = terminal.NewUI(factory.uiConfig, os.Stdin, os.Stdout, os.Stderr)
	}
}
