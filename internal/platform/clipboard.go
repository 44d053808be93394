package platform

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// Clipboard command constants
const (
	PbcopyCommand = "pbcopy"
	ClipCommand   = "clip"
	WlCopyCommand = "wl-copy"
	XclipCommand  = "xclip"
)

// xclip needs the CLIPBOARD selection, not the default PRIMARY one
var XclipArgs = []string{"-selection", "clipboard"}

// CopyText writes text to the system clipboard through an external copy
// command. This is the fallback path used when the toolkit clipboard is
// unavailable.
func CopyText(text string) error {
	name, args, err := copyCommand()
	if err != nil {
		return err
	}

	cmd := exec.Command(name, args...)
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("clipboard command %s failed: %w", name, err)
	}
	return nil
}

// copyCommand picks the copy utility for the current platform
func copyCommand() (string, []string, error) {
	switch runtime.GOOS {
	case OSDarwin:
		return PbcopyCommand, nil, nil
	case OSWindows:
		return ClipCommand, nil, nil
	case OSLinux:
		if os.Getenv("WAYLAND_DISPLAY") != "" {
			return WlCopyCommand, nil, nil
		}
		return XclipCommand, XclipArgs, nil
	default:
		return "", nil, fmt.Errorf("no clipboard command for %s", runtime.GOOS)
	}
}
