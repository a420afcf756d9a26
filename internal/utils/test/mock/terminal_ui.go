package mock

import (
	"bytes"
	"io"

	"github.com/dropsite-io/dropsite-cli/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
	"github.com/Netflix/go-expect"
	"github.com/hinshun/vt10x"
)

// UIOptions are the options to configure the mock terminal UI
type UIOptions struct {
	AutoConfirm bool
	UseColors   bool
}

func newUIConfig(options UIOptions) terminal.UIConfig {
	return terminal.UIConfig{
		AutoConfirm:   options.AutoConfirm,
		DisableColors: !options.UseColors,
	}
}

// UI is a mocked terminal UI: any function field left unset
// falls back to the underlying terminal.UI implementation
type UI struct {
	terminal.UI
	AskFn     func(answer interface{}, questions ...*survey.Question) error
	AskOneFn  func(prompt survey.Prompt, answer interface{}) error
	ConfirmFn func(format string, args ...interface{}) (bool, error)
	PrintFn   func(logs ...terminal.Log)
}

// Ask calls the mocked Ask implementation if provided
func (ui UI) Ask(answer interface{}, questions ...*survey.Question) error {
	if ui.AskFn != nil {
		return ui.AskFn(answer, questions...)
	}
	return ui.UI.Ask(answer, questions...)
}

// AskOne calls the mocked AskOne implementation if provided
func (ui UI) AskOne(prompt survey.Prompt, answer interface{}) error {
	if ui.AskOneFn != nil {
		return ui.AskOneFn(prompt, answer)
	}
	return ui.UI.AskOne(prompt, answer)
}

// Confirm calls the mocked Confirm implementation if provided
func (ui UI) Confirm(format string, args ...interface{}) (bool, error) {
	if ui.ConfirmFn != nil {
		return ui.ConfirmFn(format, args...)
	}
	return ui.UI.Confirm(format, args...)
}

// Print calls the mocked Print implementation if provided
func (ui UI) Print(logs ...terminal.Log) {
	if ui.PrintFn != nil {
		ui.PrintFn(logs...)
		return
	}
	ui.UI.Print(logs...)
}

// NewUI returns a new *bytes.Buffer and a mock terminal UI that writes to the buffer
func NewUI() (*bytes.Buffer, UI) {
	out := new(bytes.Buffer)
	return out, NewUIWithOptions(UIOptions{}, out)
}

// NewUIWithOptions creates a new mock terminal UI based on the provided options
func NewUIWithOptions(options UIOptions, writer io.Writer) UI {
	return UI{UI: terminal.NewUI(newUIConfig(options), nil, writer, writer)}
}

// NewVT10XConsole returns a new *expect.Console backed by a vt10x terminal
// along with its corresponding mock terminal UI
func NewVT10XConsole(writers ...io.Writer) (*expect.Console, UI, error) {
	return NewVT10XConsoleWithOptions(UIOptions{}, writers...)
}

// NewVT10XConsoleWithOptions creates a new *expect.Console backed by a vt10x terminal
// along with its corresponding mock terminal UI based on the provided options
func NewVT10XConsoleWithOptions(options UIOptions, writers ...io.Writer) (*expect.Console, UI, error) {
	console, _, err := vt10x.NewVT10XConsole(expect.WithStdout(writers...))
	if err != nil {
		return nil, UI{}, err
	}

	ui := UI{UI: terminal.NewUI(
		newUIConfig(options),
		console.Tty(),
		console.Tty(),
		console.Tty(),
	)}

	return console, ui, nil
}
