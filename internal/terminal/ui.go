package terminal

import (
	"fmt"
	"io"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/fatih/color"
)

// UI is a terminal UI
type UI interface {
	Ask(answer interface{}, questions ...*survey.Question) error
	AskOne(prompt survey.Prompt, answer interface{}) error
	Confirm(format string, args ...interface{}) (bool, error)
	Print(logs ...Log)
}

// UIConfig holds the global config for the CLI ui
type UIConfig struct {
	AutoConfirm   bool
	DisableColors bool
}

// NewUI creates a new terminal UI
func NewUI(config UIConfig, in io.Reader, out, err io.Writer) UI {
	color.NoColor = config.DisableColors

	return &ui{
		config: config,
		err:    err,
		in:     in,
		out:    out,
	}
}

type ui struct {
	config UIConfig
	err    io.Writer
	in     io.Reader
	out    io.Writer
}

func (ui *ui) Ask(answer interface{}, questions ...*survey.Question) error {
	return survey.Ask(questions, answer, survey.WithStdio(ui.stdioIn(), ui.stdioOut(), ui.err))
}

func (ui *ui) AskOne(prompt survey.Prompt, answer interface{}) error {
	return survey.AskOne(prompt, answer, survey.WithStdio(ui.stdioIn(), ui.stdioOut(), ui.err))
}

func (ui *ui) Confirm(format string, args ...interface{}) (bool, error) {
	if ui.config.AutoConfirm {
		return true, nil
	}

	answer := false
	err := ui.AskOne(&survey.Confirm{Message: fmt.Sprintf(format, args...)}, &answer)
	return answer, err
}

func (ui *ui) Print(logs ...Log) {
	for _, log := range logs {
		writer := ui.out
		if log.Level == LogLevelError {
			writer = ui.err
		}
		fmt.Fprintln(writer, log.text())
	}
}

func (ui *ui) stdioIn() terminal.FileReader {
	if in, ok := ui.in.(terminal.FileReader); ok {
		return in
	}
	return noopFdReader{ui.in}
}

func (ui *ui) stdioOut() terminal.FileWriter {
	if out, ok := ui.out.(terminal.FileWriter); ok {
		return out
	}
	return noopFdWriter{ui.out}
}

type noopFdReader struct {
	io.Reader
}

func (r noopFdReader) Fd() uintptr {
	return 0
}

type noopFdWriter struct {
	io.Writer
}

func (w noopFdWriter) Fd() uintptr {
	return 0
}
