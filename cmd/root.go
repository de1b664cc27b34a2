package cmd

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"

	"quickdeck-installer/internal/config"
	"quickdeck-installer/internal/installer"
	"quickdeck-installer/internal/logger"
	"quickdeck-installer/internal/platform"
	"quickdeck-installer/internal/term"
)

// debug indicates whether debug logging should be enabled.
// It can be toggled via the `--debug` command-line flag.
var debug bool

// noColor forces plain output even on a capable terminal.
var noColor bool

// configPath names an optional YAML file overriding the built-in install
// defaults (repository URL, branch, bin directory). Empty means defaults only.
var configPath string

// rootCmd is the whole CLI surface: running `quickdeck-install` with no
// arguments performs the full installation. There are no subcommands.
var rootCmd = &cobra.Command{
	Use:           "quickdeck-install",
	Short:         "Install quickdeck on this machine",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,

	// PersistentPreRun is a hook that runs before the command body.
	// Here, we initialize the logger based on the debug flag.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug)
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load(configPath)

		caps := term.DetectCapabilities(os.Stdout, noColor)
		styler := term.NewStyler(caps)

		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("cannot resolve home directory: %w", err)
		}

		// The invoking user owns the entry point after installation, even
		// when the chown itself runs through sudo.
		username := ""
		if u, err := user.Current(); err == nil {
			username = u.Username
		}

		inst := installer.New(cfg, installer.ExecActions{}, installer.Options{
			Out:         cmd.OutOrStdout(),
			In:          os.Stdin,
			Styler:      styler,
			Home:        home,
			Username:    username,
			OSSignal:    platform.Signal(),
			Interactive: term.IsTerminal(os.Stdin),
			Elevated:    os.Geteuid() == 0,
		})
		return inst.Run(cmd.Context())
	},
}

// Execute initializes flags and starts the command execution.
// It's the entry point for the CLI when invoked by the user.
func Execute() error {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to an optional install config file")

	return rootCmd.Execute()
}
