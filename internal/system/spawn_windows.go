//go:build windows

package system

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// SpawnDetached hands commandLine unchanged to CreateProcess. The image is
// resolved from the command line, no handles are inherited, and the child
// gets the parent's environment and working directory.
func (s *DetachedSpawner) SpawnDetached(commandLine string) (Process, error) {
	// CreateProcessW may write to the buffer, so it must not be shared
	cmdLine, err := windows.UTF16FromString(commandLine)
	if err != nil {
		return nil, fmt.Errorf("failed to encode command line: %w", err)
	}

	si := new(windows.StartupInfo)
	si.Cb = uint32(unsafe.Sizeof(*si))
	pi := new(windows.ProcessInformation)

	err = windows.CreateProcess(
		nil,
		&cmdLine[0],
		nil,
		nil,
		false,
		creationFlagsForDetach(),
		nil,
		nil,
		si,
		pi,
	)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"pid": pi.ProcessId,
		"tid": pi.ThreadId,
	}).Debug("Started detached process")

	return &windowsProcess{info: *pi}, nil
}

type windowsProcess struct {
	info windows.ProcessInformation
}

func (p *windowsProcess) Pid() int {
	return int(p.info.ProcessId)
}

func (p *windowsProcess) LowerPriority() error {
	if err := windows.SetPriorityClass(p.info.Process, windows.BELOW_NORMAL_PRIORITY_CLASS); err != nil {
		return fmt.Errorf("failed to set priority class of pid %d: %w", p.info.ProcessId, err)
	}
	return nil
}

// Release closes the process and thread handles returned by CreateProcess
func (p *windowsProcess) Release() error {
	return errors.Join(
		windows.CloseHandle(p.info.Thread),
		windows.CloseHandle(p.info.Process),
	)
}
