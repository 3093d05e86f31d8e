//go:build unix

package system

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/kballard/go-shellquote"
)

// SpawnDetached splits commandLine with shell quoting rules and starts it in
// a new session with stdio on the null device. It does not wait for the child.
func (s *DetachedSpawner) SpawnDetached(commandLine string) (Process, error) {
	argv, err := shellquote.Split(commandLine)
	if err != nil {
		return nil, fmt.Errorf("failed to parse command line: %w", err)
	}
	if len(argv) == 0 {
		return nil, ErrEmptyCommandLine
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.SysProcAttr = sysProcAttrForDetach()
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil

	if err := cmd.Start(); err != nil {
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"pid":  cmd.Process.Pid,
		"path": cmd.Path,
		"argc": len(argv),
	}).Debug("Started detached process")

	return &unixProcess{proc: cmd.Process}, nil
}

type unixProcess struct {
	proc *os.Process
}

func (p *unixProcess) Pid() int {
	return p.proc.Pid
}

// LowerPriority sets the child's niceness to BelowNormalNice.
// Raising the niceness of an own child needs no privileges.
func (p *unixProcess) LowerPriority() error {
	return lowerPriority(p.proc.Pid)
}

func (p *unixProcess) Release() error {
	return p.proc.Release()
}
