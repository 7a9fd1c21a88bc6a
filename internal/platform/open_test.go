package platform

import (
	"strings"
	"testing"
)

func TestOpenerCommand(t *testing.T) {
	uri := "magnet:?xt=urn:btih:X"

	tests := []struct {
		goos     string
		name     string
		lastArg  string
		argCount int
	}{
		{OSWindows, CmdCommand, uri, 4},
		{OSDarwin, OpenCommand, uri, 1},
		{OSLinux, XDGOpenCommand, uri, 1},
		{"freebsd", XDGOpenCommand, uri, 1},
	}

	for _, test := range tests {
		name, args := openerCommand(test.goos, uri)
		if name != test.name {
			t.Errorf("openerCommand(%s) name = %s, expected %s", test.goos, name, test.name)
		}
		if len(args) != test.argCount {
			t.Errorf("openerCommand(%s) arg count = %d, expected %d", test.goos, len(args), test.argCount)
		}
		if len(args) == 0 || args[len(args)-1] != test.lastArg {
			t.Errorf("openerCommand(%s) last arg = %v, expected %s", test.goos, args, test.lastArg)
		}
	}
}

func TestOpenMagnet_RejectsNonMagnetURI(t *testing.T) {
	inputs := []string{"", "http://example.com", "ftp://host/file"}

	for _, input := range inputs {
		if err := OpenMagnet(input); err == nil {
			t.Errorf("OpenMagnet(%q) expected error, got nil", input)
		}
	}
}

func TestTruncateForError(t *testing.T) {
	short := "magnet:?xt=urn:btih:X"
	if got := truncateForError(short); got != short {
		t.Errorf("truncateForError(short) = %s, expected unchanged", got)
	}

	long := "magnet:?xt=urn:btih:" + strings.Repeat("a", 200)
	got := truncateForError(long)
	if len(got) != 64+len("...") {
		t.Errorf("truncateForError(long) length = %d, expected %d", len(got), 64+len("..."))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("truncateForError(long) = %s, expected ellipsis suffix", got)
	}
}
