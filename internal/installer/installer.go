package installer

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"path/filepath"

	"quickdeck-installer/internal/config"
	"quickdeck-installer/internal/logger"
	"quickdeck-installer/internal/platform"
	"quickdeck-installer/internal/term"
)

// Installer runs the linear provisioning flow: privilege warning, dependency
// check, platform detection, path resolution, pre-flight classification,
// clone, permission grant, shortcut creation, and final verification. Every
// step failure is terminal; nothing is retried and no partial state is
// cleaned up.
type Installer struct {
	cfg     config.Install
	actions SystemActions
	styler  term.Styler
	out     io.Writer
	in      io.Reader

	home        string
	username    string
	osSignal    string
	interactive bool
	elevated    bool
}

// Options carries the environment-derived inputs the flow needs. The command
// layer collects them once so the installer itself never reads globals.
type Options struct {
	Out      io.Writer
	In       io.Reader
	Styler   term.Styler
	Home     string
	Username string
	OSSignal string
	// Interactive gates the press-any-key acknowledgment; unattended runs
	// (stdin not a terminal) skip the pause instead of hanging.
	Interactive bool
	// Elevated reports whether the process already runs with root privileges.
	Elevated bool
}

// New builds an Installer over the given actions.
func New(cfg config.Install, actions SystemActions, opts Options) *Installer {
	styler := opts.Styler
	if styler == (term.Styler{}) {
		styler = term.NewStyler(term.Capabilities{NoColor: true})
	}
	return &Installer{
		cfg:         cfg,
		actions:     actions,
		styler:      styler,
		out:         opts.Out,
		in:          opts.In,
		home:        opts.Home,
		username:    opts.Username,
		osSignal:    opts.OSSignal,
		interactive: opts.Interactive,
		elevated:    opts.Elevated,
	}
}

// Run executes the whole flow. A nil return means the application is
// installed and its command resolves from PATH.
func (i *Installer) Run(ctx context.Context) error {
	fmt.Fprintln(i.out, i.styler.Accent("%s installer", i.cfg.AppName))

	i.acknowledgePrivileges()

	if err := i.checkDependencies(); err != nil {
		return err
	}

	plat := platform.Detect(i.osSignal)
	logger.Debug("[DEBUG] OS signal %q classified as %s\n", i.osSignal, plat)
	if plat == platform.Unknown {
		return fmt.Errorf("unsupported operating system %q: only macOS and Linux are supported", i.osSignal)
	}

	installPath, _ := platform.InstallPath(plat, i.home, i.cfg.AppName)
	logger.Debug("[DEBUG] Install path for %s: %s\n", plat, installPath)

	if err := i.preflight(installPath); err != nil {
		return err
	}

	if err := i.fetch(ctx, installPath); err != nil {
		return err
	}

	entry := filepath.Join(installPath, i.cfg.EntryPoint)
	if err := i.grantExecutable(ctx, entry); err != nil {
		return err
	}

	if err := i.createShortcut(ctx, entry); err != nil {
		return err
	}

	return i.verify()
}

// acknowledgePrivileges warns about the privilege situation and waits for a
// keypress. It never blocks execution on the answer: any key continues, and
// non-interactive runs skip the pause entirely.
func (i *Installer) acknowledgePrivileges() {
	if i.elevated {
		fmt.Fprintln(i.out, i.styler.Warn("Running as root: installed files will be owned by root until ownership is adjusted."))
	} else {
		fmt.Fprintln(i.out, i.styler.Warn("Some steps use sudo and may prompt for your password."))
	}

	if !i.interactive {
		return
	}
	fmt.Fprint(i.out, "Press Enter to continue...")
	_, _ = bufio.NewReader(i.in).ReadString('\n')
	fmt.Fprintln(i.out)
}

// checkDependencies verifies the required external tools are present. Git is
// the only hard dependency: the fetch step is a clone.
func (i *Installer) checkDependencies() error {
	if !i.actions.CommandExists("git") {
		fmt.Fprintln(i.out, i.styler.Fail("git was not found on PATH."))
		fmt.Fprintln(i.out, "Install git (https://git-scm.com/downloads) and run the installer again.")
		return fmt.Errorf("missing dependency: git")
	}
	logger.Debug("[DEBUG] git found on PATH\n")
	return nil
}

// preflight classifies any pre-existing installation state and aborts with a
// remediation hint for anything other than a clean machine.
func (i *Installer) preflight(installPath string) error {
	probe := Probe{
		DirExists:      i.actions.DirExists(installPath),
		DirNonEmpty:    i.actions.DirNonEmpty(installPath),
		CommandOnPath:  i.actions.CommandExists(i.cfg.AppName),
		ShortcutExists: i.actions.FileExists(i.cfg.ShortcutPath()),
	}
	status := Classify(probe)
	logger.Debug("[DEBUG] Pre-flight probe %+v -> %s\n", probe, status)

	switch status {
	case StatusClean:
		return nil
	case StatusInstalled:
		fmt.Fprintln(i.out, i.styler.Warn("%s is already installed at %s.", i.cfg.AppName, installPath))
		fmt.Fprintf(i.out, "To reinstall, remove %s and %s first.\n", installPath, i.cfg.ShortcutPath())
	case StatusCorrupted:
		fmt.Fprintln(i.out, i.styler.Fail("An installation at %s looks broken: the directory is populated but the %q command does not resolve.", installPath, i.cfg.AppName))
		fmt.Fprintf(i.out, "Remove %s and run the installer again.\n", installPath)
	case StatusOtherUser:
		fmt.Fprintln(i.out, i.styler.Warn("%s was installed by another user on this machine (the global shortcut exists, but nothing lives at %s).", i.cfg.AppName, installPath))
		fmt.Fprintln(i.out, "Ask that user to remove it, or remove the shortcut yourself, before reinstalling.")
	case StatusUnknownInstall:
		fmt.Fprintln(i.out, i.styler.Warn("A %q command already resolves on PATH but was not placed there by this installer (no installation at %s).", i.cfg.AppName, installPath))
		fmt.Fprintln(i.out, "Remove the existing command before reinstalling.")
	}
	return fmt.Errorf("pre-existing installation detected (%s) at %s", status, installPath)
}

// fetch creates the install directory and clones the application source into
// it. Success is defined by the clone leaving its metadata marker behind, not
// by the clone's console output: git chats on stderr even on success.
func (i *Installer) fetch(ctx context.Context, installPath string) error {
	fmt.Fprintln(i.out, i.styler.Accent("Fetching %s from %s...", i.cfg.AppName, i.cfg.RepoURL))

	res := i.actions.Clone(ctx, i.cfg.RepoURL, i.cfg.Branch, installPath)
	if !i.actions.DirExists(filepath.Join(installPath, ".git")) {
		// Surface the captured diagnostics verbatim so the user sees what
		// git itself had to say.
		if res.Output != "" {
			fmt.Fprintln(i.out, res.Output)
		}
		return fmt.Errorf("cloning %s into %s failed", i.cfg.RepoURL, installPath)
	}

	logger.Info("[INFO] Cloned %s into %s\n", i.cfg.AppName, installPath)
	return nil
}

// grantExecutable marks the entry point readable and executable for all
// users. Any diagnostic output at all counts as failure, even on a zero exit
// status.
func (i *Installer) grantExecutable(ctx context.Context, entry string) error {
	fmt.Fprintln(i.out, i.styler.Accent("Marking %s executable...", entry))

	res := i.actions.MakeExecutable(ctx, entry)
	if !res.OK || res.Output != "" {
		if res.Output != "" {
			fmt.Fprintln(i.out, res.Output)
		}
		return fmt.Errorf("could not mark %s executable", entry)
	}
	return nil
}

// createShortcut links the entry point into the global bin directory and
// hands ownership of the entry point back to the invoking user. The chown is
// not attempted when the link step fails.
func (i *Installer) createShortcut(ctx context.Context, entry string) error {
	shortcut := i.cfg.ShortcutPath()
	fmt.Fprintln(i.out, i.styler.Accent("Linking %s -> %s...", shortcut, entry))

	res := i.actions.Symlink(ctx, entry, shortcut)
	if !res.OK || res.Output != "" {
		if res.Output != "" {
			fmt.Fprintln(i.out, res.Output)
		}
		return fmt.Errorf("could not create shortcut %s", shortcut)
	}

	res = i.actions.Chown(ctx, i.username, entry)
	if !res.OK || res.Output != "" {
		if res.Output != "" {
			fmt.Fprintln(i.out, res.Output)
		}
		return fmt.Errorf("could not set ownership of %s to %s", entry, i.username)
	}
	return nil
}

// verify confirms the global command now resolves. The shortcut was just
// created, so a miss here usually means the shell session predates the
// install or the bin directory is not on PATH.
func (i *Installer) verify() error {
	if !i.actions.CommandExists(i.cfg.AppName) {
		fmt.Fprintln(i.out, i.styler.Warn("The %q command is not visible in this session.", i.cfg.AppName))
		fmt.Fprintf(i.out, "Open a new shell (or check that %s is on your PATH) and try again.\n", i.cfg.BinDir)
		return fmt.Errorf("%s installed but its command does not resolve yet", i.cfg.AppName)
	}

	fmt.Fprintln(i.out, i.styler.Success("%s installed successfully. Run `%s help` to get started.", i.cfg.AppName, i.cfg.AppName))
	return nil
}
