// Package picker asks the desktop for a directory through a native dialog.
package picker

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// ErrUnavailable is returned when no dialog tool can be found.
var ErrUnavailable = errors.New("directory picker unavailable")

const dialogTitle = "Select the folder where the project will be created"

// Picker chooses a single directory. ok is false when the user made no
// selection; that is not an error.
type Picker interface {
	PickDirectory(ctx context.Context) (path string, ok bool, err error)
}

// Func adapts a function to the Picker interface.
type Func func(ctx context.Context) (string, bool, error)

// PickDirectory calls f.
func (f Func) PickDirectory(ctx context.Context) (string, bool, error) { return f(ctx) }

// CommandPicker runs an external dialog tool and reads the chosen path from
// its stdout.
type CommandPicker struct {
	// Command, when set, is used instead of detecting a dialog tool.
	Command []string

	lookPath func(string) (string, error)
	goos     string
}

// NewCommandPicker returns a picker that uses command if non-empty and
// otherwise the first dialog tool found on PATH.
func NewCommandPicker(command []string) *CommandPicker {
	return &CommandPicker{
		Command:  command,
		lookPath: exec.LookPath,
		goos:     runtime.GOOS,
	}
}

// PickDirectory runs the dialog and waits for it to close.
func (p *CommandPicker) PickDirectory(ctx context.Context) (string, bool, error) {
	argv, err := p.resolve()
	if err != nil {
		return "", false, err
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	runErr := cmd.Run()

	path := strings.TrimSpace(stdout.String())
	if runErr != nil {
		// zenity and kdialog exit 1 on cancel with no output.
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) && exitErr.ExitCode() == 1 && path == "" {
			return "", false, nil
		}
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return "", false, fmt.Errorf("%s: %w: %s", argv[0], runErr, msg)
		}
		return "", false, fmt.Errorf("%s: %w", argv[0], runErr)
	}
	if path == "" {
		return "", false, nil
	}
	return path, true, nil
}

func (p *CommandPicker) resolve() ([]string, error) {
	if len(p.Command) > 0 {
		return p.Command, nil
	}
	for _, candidate := range candidates(p.goos) {
		if _, err := p.lookPath(candidate[0]); err == nil {
			return candidate, nil
		}
	}
	return nil, ErrUnavailable
}

func candidates(goos string) [][]string {
	switch goos {
	case "darwin":
		return [][]string{{
			"osascript", "-e",
			fmt.Sprintf(`POSIX path of (choose folder with prompt %q)`, dialogTitle),
		}}
	case "windows":
		return nil
	default:
		return [][]string{
			{"zenity", "--file-selection", "--directory", "--title=" + dialogTitle},
			{"kdialog", "--getexistingdirectory", ".", "--title", dialogTitle},
		}
	}
}
