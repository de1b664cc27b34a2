package installer

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"quickdeck-installer/internal/logger"
)

// CommandResult carries the outcome of a single external-tool invocation:
// whether the process exited successfully, plus whatever it printed on
// stdout/stderr. The installer treats the captured text as the sole failure
// signal for mutating steps, so even a zero exit status with output counts
// as a failure there.
type CommandResult struct {
	OK     bool
	Output string
}

// SystemActions abstracts every external command and filesystem probe the
// installer performs, so the decision logic can run against a fake in tests.
// Each mutating method maps to exactly one invocation of the underlying tool;
// nothing is retried.
type SystemActions interface {
	// CommandExists reports whether an executable of that name is on PATH.
	CommandExists(name string) bool
	// DirExists reports whether path exists and is a directory.
	DirExists(path string) bool
	// DirNonEmpty reports whether path is a directory with at least one entry.
	DirNonEmpty(path string) bool
	// FileExists reports whether path exists at all (including as a symlink).
	FileExists(path string) bool

	// Clone creates dest (with parents) and clones repoURL into it.
	Clone(ctx context.Context, repoURL, branch, dest string) CommandResult
	// MakeExecutable applies read+execute for all users to path.
	MakeExecutable(ctx context.Context, path string) CommandResult
	// Symlink links link -> target, replacing any existing link.
	Symlink(ctx context.Context, target, link string) CommandResult
	// Chown sets the owner of path to the named user.
	Chown(ctx context.Context, owner, path string) CommandResult
}

// ExecActions is the production SystemActions backed by os/exec. Mutating
// actions that touch root-owned locations run through sudo, which prompts on
// the controlling terminal when a credential is needed.
type ExecActions struct{}

func (ExecActions) CommandExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

func (ExecActions) DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (ExecActions) DirNonEmpty(path string) bool {
	entries, err := os.ReadDir(path)
	return err == nil && len(entries) > 0
}

func (ExecActions) FileExists(path string) bool {
	// Lstat so a dangling symlink still counts as present.
	_, err := os.Lstat(path)
	return err == nil
}

// run executes one command, capturing combined stdout/stderr.
func (ExecActions) run(ctx context.Context, name string, args ...string) CommandResult {
	cmd := exec.CommandContext(ctx, name, args...)
	logger.Debug("[DEBUG] Running command: %s\n", strings.Join(cmd.Args, " "))

	output, err := cmd.CombinedOutput()
	if err != nil {
		logger.Debug("[DEBUG] Command failed: %v\n", err)
	}
	return CommandResult{
		OK:     err == nil,
		Output: strings.TrimSpace(string(output)),
	}
}

func (a ExecActions) Clone(ctx context.Context, repoURL, branch, dest string) CommandResult {
	if err := os.MkdirAll(dest, 0755); err != nil {
		return CommandResult{OK: false, Output: err.Error()}
	}

	args := []string{"clone"}
	if branch != "" {
		args = append(args, "--branch", branch)
	}
	args = append(args, repoURL, dest)
	return a.run(ctx, "git", args...)
}

func (a ExecActions) MakeExecutable(ctx context.Context, path string) CommandResult {
	return a.run(ctx, "sudo", "chmod", "a+rx", path)
}

func (a ExecActions) Symlink(ctx context.Context, target, link string) CommandResult {
	return a.run(ctx, "sudo", "ln", "-sf", target, link)
}

func (a ExecActions) Chown(ctx context.Context, owner, path string) CommandResult {
	return a.run(ctx, "sudo", "chown", owner, path)
}
