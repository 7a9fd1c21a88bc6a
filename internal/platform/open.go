package platform

import (
	"fmt"
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

// Command constants
const (
	OpenCommand    = "open"
	XDGOpenCommand = "xdg-open"
	CmdCommand     = "cmd"
	WindowsCmdFlag = "/c"
	StartCommand   = "start"
)

// MagnetScheme is the URI scheme handed off to the OS handler
const MagnetScheme = "magnet:"

// OpenMagnet hands a magnet URI to the platform's default handler, which is
// whatever torrent client the user has registered for the magnet scheme.
// Success means the handler was launched, not that a transfer started.
func OpenMagnet(uri string) error {
	if !strings.HasPrefix(uri, MagnetScheme) {
		return fmt.Errorf("not a magnet URI: %q", truncateForError(uri))
	}

	name, args := openerCommand(runtime.GOOS, uri)
	if err := exec.Command(name, args...).Start(); err != nil {
		return fmt.Errorf("failed to open magnet: %w", err)
	}
	return nil
}

// openerCommand returns the per-OS command that opens a URI with the default
// handler. Separated from OpenMagnet so the dispatch is testable without
// launching anything.
func openerCommand(goos, uri string) (string, []string) {
	switch goos {
	case OSWindows:
		// "start" is a cmd built-in; the empty string is the window title slot.
		return CmdCommand, []string{WindowsCmdFlag, StartCommand, "", uri}
	case OSDarwin:
		return OpenCommand, []string{uri}
	default:
		// Linux and the rest of the unixes go through xdg-open.
		return XDGOpenCommand, []string{uri}
	}
}

// truncateForError keeps error messages readable when a full magnet URI with
// dozens of trackers ends up in one
func truncateForError(uri string) string {
	const max = 64
	if len(uri) <= max {
		return uri
	}
	return uri[:max] + "..."
}
