// Package commands wires the rundetached command line
package commands

import (
	"fmt"
	"io"
	"os"

	"rundetached/internal/cmdline"
	"rundetached/internal/config"
	"rundetached/internal/constants"
	"rundetached/internal/launcher"
	"rundetached/internal/system"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	logger   = logrus.New()
	exitCode = constants.ExitSuccess

	rawCommandLine = cmdline.Raw
)

// rootCmd launches its whole command line as a detached process
var rootCmd = &cobra.Command{
	Use:   "rundetached <command line>",
	Short: "Start a program detached from this console at below normal priority",
	Long: `rundetached starts everything after its own name as a new process that has
no console or controlling terminal and does not inherit handles. It returns
as soon as the process exists and prints the system error on failure.`,
	// Every argument belongs to the child, including -h and --help
	DisableFlagParsing: true,
	Args:               cobra.ArbitraryArgs,
	SilenceErrors:      true,
	SilenceUsage:       true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := configureLogger(logger, cfg, cmd.ErrOrStderr()); err != nil {
			return err
		}

		l := launcher.New(cfg, system.NewSpawner(logger), cmd.ErrOrStderr(), logger)
		exitCode = l.Run(rawCommandLine())
		return nil
	},
}

func init() {
	// Launching from Explorer is a normal way to use this tool
	cobra.MousetrapHelpText = ""
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// configureLogger points logger at out with the configured level
func configureLogger(logger *logrus.Logger, cfg *config.Config, out io.Writer) error {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	logger.SetOutput(out)
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	return nil
}

// Execute runs the root command and returns the process exit code
func Execute() int {
	// The launcher reads the raw command line itself. Cobra gets no words so
	// none of them, __complete included, can be claimed as a command.
	rootCmd.SetArgs([]string{})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return constants.ExitFailure
	}
	return exitCode
}
