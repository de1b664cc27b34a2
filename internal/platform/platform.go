package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Platform classifies the host operating system into the small set the
// installer supports.
type Platform int

const (
	Unknown Platform = iota
	Darwin
	Linux
)

// String returns a human-readable platform name for messages.
func (p Platform) String() string {
	switch p {
	case Darwin:
		return "macOS"
	case Linux:
		return "Linux"
	default:
		return "unsupported"
	}
}

// Signal returns the OS-identifying signal for the current process. Shells
// export OSTYPE with values like "linux-gnu" or "darwin23"; when it is absent
// (the usual case for a compiled binary), runtime.GOOS carries the same
// prefixes.
func Signal() string {
	if sig := os.Getenv("OSTYPE"); sig != "" {
		return sig
	}
	return runtime.GOOS
}

// Detect classifies an OS signal by matching against known prefixes.
// Anything unrecognized is Unknown and the installer must abort.
func Detect(signal string) Platform {
	sig := strings.ToLower(strings.TrimSpace(signal))
	switch {
	case strings.HasPrefix(sig, "darwin"):
		return Darwin
	case strings.HasPrefix(sig, "linux"):
		return Linux
	default:
		return Unknown
	}
}

// InstallPath maps a supported platform to its fixed install directory for
// the given home directory and application name. The second return value is
// false for Unknown. Same inputs always yield the same path.
func InstallPath(p Platform, home, app string) (string, bool) {
	switch p {
	case Darwin:
		return filepath.Join(home, "Applications", app), true
	case Linux:
		return filepath.Join(home, "."+app), true
	default:
		return "", false
	}
}
