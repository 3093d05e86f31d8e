// Package launcher starts the command line that follows the utility's own
// invocation token as a detached process.
package launcher

import (
	"fmt"
	"io"

	"rundetached/internal/cmdline"
	"rundetached/internal/config"
	"rundetached/internal/constants"
	"rundetached/internal/system"
	"rundetached/internal/utils"

	"github.com/sirupsen/logrus"
)

// Launcher runs one detached launch per invocation
type Launcher struct {
	cfg         *config.Config
	spawner     system.Spawner
	renderError func(error) string
	stderr      io.Writer
	logger      *logrus.Logger
}

// New creates a launcher that reports failures to stderr
func New(cfg *config.Config, spawner system.Spawner, stderr io.Writer, logger *logrus.Logger) *Launcher {
	return &Launcher{
		cfg:         cfg,
		spawner:     spawner,
		renderError: system.RenderError,
		stderr:      stderr,
		logger:      logger,
	}
}

// Run strips the invocation token from raw, spawns the remainder detached
// and returns the process exit code.
func (l *Launcher) Run(raw string) int {
	commandLine := cmdline.SplitSelfInvocation(raw)
	l.logger.WithField("command_line", commandLine).Debug("Launching detached process")

	proc, err := l.spawner.SpawnDetached(commandLine)
	if err != nil {
		l.report(err)
		return constants.ExitFailure
	}
	defer func() {
		if err := proc.Release(); err != nil {
			l.logger.WithError(err).Debug("Failed to release process handles")
		}
	}()

	if l.cfg.LowerPriority {
		if err := proc.LowerPriority(); err != nil {
			l.logger.WithError(err).WithField("pid", proc.Pid()).Warn("Failed to lower process priority")
		}
	}

	return constants.ExitSuccess
}

// report writes the rendered error as a single line and flushes stderr
func (l *Launcher) report(err error) {
	msg := l.renderError(err)
	if msg == "" {
		msg = err.Error()
	}
	msg = utils.TruncateRunes(msg, l.cfg.MaxMessageLength)

	_, _ = fmt.Fprintln(l.stderr, msg)
	if s, ok := l.stderr.(interface{ Sync() error }); ok {
		// Sync fails on terminals and pipes
		_ = s.Sync()
	}
}
