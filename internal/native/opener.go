package native

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Opener reveals a folder in the OS file manager.
type Opener interface {
	Open(path string) error
}

// OpenerFunc adapts a function to the Opener interface.
type OpenerFunc func(path string) error

// Open calls f.
func (f OpenerFunc) Open(path string) error { return f(path) }

// SystemOpener launches the platform file manager without waiting for it.
type SystemOpener struct{}

// Open starts the platform opener for path.
func (SystemOpener) Open(path string) error {
	name, args := openerCommand(runtime.GOOS)
	cmd := exec.Command(name, append(args, path)...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open folder: %w", err)
	}
	// Reap the child in the background.
	go func() { _ = cmd.Wait() }()
	return nil
}

func openerCommand(goos string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", nil
	case "windows":
		return "explorer", nil
	default:
		return "xdg-open", nil
	}
}
