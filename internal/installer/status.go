package installer

// Status classifies what is already on the machine before the installer
// mutates anything. Only StatusClean lets the installation proceed; every
// other value aborts with a status-specific remediation hint.
type Status int

const (
	// StatusClean means no trace of an installation was found.
	StatusClean Status = iota
	// StatusInstalled means the install directory is populated and the
	// command resolves: a working installation already exists.
	StatusInstalled
	// StatusCorrupted means the install directory is populated but the
	// command does not resolve, e.g. a half-finished or manually broken run.
	StatusCorrupted
	// StatusOtherUser means the command resolves and the global shortcut
	// exists, but nothing lives under this user's install directory: another
	// account on the machine installed it.
	StatusOtherUser
	// StatusUnknownInstall means the command resolves without the global
	// shortcut, so something outside this installer put it on PATH.
	StatusUnknownInstall
)

// String returns a short identifier used in error messages.
func (s Status) String() string {
	switch s {
	case StatusClean:
		return "clean"
	case StatusInstalled:
		return "installed"
	case StatusCorrupted:
		return "corrupted"
	case StatusOtherUser:
		return "installed by another user"
	case StatusUnknownInstall:
		return "installed outside this installer"
	default:
		return "unknown"
	}
}

// Probe is the structured filesystem and command-presence snapshot that
// Classify evaluates. Collecting it is the caller's job; Classify itself
// touches nothing.
type Probe struct {
	DirExists      bool // install directory exists
	DirNonEmpty    bool // install directory has at least one entry
	CommandOnPath  bool // the application command resolves from PATH
	ShortcutExists bool // the global shortcut file exists
}

// Classify evaluates the pre-flight decision table; first match wins.
//
// An install directory that exists but is empty deliberately falls through to
// the same branches as a missing directory, so an aborted run that only got
// as far as mkdir is indistinguishable from a fresh machine.
func Classify(p Probe) Status {
	if p.DirExists && p.DirNonEmpty {
		if p.CommandOnPath {
			return StatusInstalled
		}
		return StatusCorrupted
	}

	if p.CommandOnPath {
		if p.ShortcutExists {
			return StatusOtherUser
		}
		return StatusUnknownInstall
	}

	return StatusClean
}
