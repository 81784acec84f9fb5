package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/cumbre/internal/service"
	"github.com/charmbracelet/huh"
)

func promptYesNoIO(in io.Reader, out io.Writer, message string) bool {
	if out != nil {
		fmt.Fprint(out, message)
	}

	text, err := readPromptLine(in)
	if err != nil {
		return false
	}

	text = strings.TrimSpace(strings.ToLower(text))
	switch text {
	case "y", "yes", "s", "si", "sí":
		return true
	}
	return false
}

// readPromptLine reads until either LF or CR so Enter works in normal and raw terminal modes.
func readPromptLine(in io.Reader) (string, error) {
	if in == nil {
		return "", io.EOF
	}

	var buf []byte
	var one [1]byte

	for {
		n, err := in.Read(one[:])
		if n > 0 {
			switch one[0] {
			case '\n', '\r':
				return string(buf), nil
			default:
				buf = append(buf, one[0])
			}
		}

		if err != nil {
			if err == io.EOF && len(buf) > 0 {
				return string(buf), nil
			}
			return string(buf), err
		}
	}
}

// confirmer picks how the user is asked: not at all with --yes, a huh
// confirm form on a terminal, a line prompt otherwise.
func (app *App) confirmer(out io.Writer, assumeYes bool) service.Confirmer {
	if assumeYes {
		return service.AlwaysConfirm
	}
	if app.interactive() {
		return service.ConfirmFunc(confirmForm)
	}
	in := app.input()
	return service.ConfirmFunc(func(_ context.Context, prompt string) (bool, error) {
		return promptYesNoIO(in, out, prompt+" [y/N]: "), nil
	})
}

func confirmForm(ctx context.Context, prompt string) (bool, error) {
	var ok bool
	title, description, _ := strings.Cut(prompt, "\n\n")
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Sí").
				Negative("No").
				Value(&ok),
		),
	).WithTheme(cumbreHuhTheme()).WithShowHelp(false)
	if err := form.RunWithContext(ctx); err != nil {
		return false, err
	}
	return ok, nil
}
