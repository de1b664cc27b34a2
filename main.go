package main

import (
	"os"

	"quickdeck-installer/cmd"
	"quickdeck-installer/internal/logger"
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// The quickdeck-installer project provisions the quickdeck application onto a user's machine:
//   - Verifies that git is available and that the host OS is one of the supported platforms
//   - Resolves the platform-specific install directory under the invoking user's home
//   - Refuses to run over any pre-existing installation, pointing the user at manual remediation
//   - Clones the quickdeck source tree into the install directory
//   - Marks the entry-point script executable and links it into the global bin directory,
//     elevating through sudo where the filesystem requires it
//   - Verifies afterwards that the `quickdeck` command resolves from PATH
//
// Error handling strategy:
//   - Every failed step is terminal: the installer surfaces the diagnostic, leaves whatever
//     side effects already happened in place, and exits with status 1
//   - Nothing is retried and no state file is written; re-running after fixing the cause
//     is the recovery path
func main() {
	if err := cmd.Execute(); err != nil {
		logger.Error("[ERROR] %v\n", err)
		os.Exit(1)
	}
}
