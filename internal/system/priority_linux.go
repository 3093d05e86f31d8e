//go:build linux

package system

import (
	"errors"
	"fmt"

	"rundetached/internal/constants"

	"github.com/shirou/gopsutil/v4/process"
	"golang.org/x/sys/unix"
)

// lowerPriority renices every thread of pid. Linux applies niceness per
// thread, so PRIO_PROCESS on the pid alone would miss threads the child
// already started. The main thread goes first so threads it creates later
// inherit the new value.
func lowerPriority(pid int) error {
	if err := setNice(pid); err != nil {
		return err
	}

	proc, err := process.NewProcess(int32(pid))
	if err != nil {
		return fmt.Errorf("failed to open pid %d: %w", pid, err)
	}
	threads, err := proc.Threads()
	if err != nil {
		return fmt.Errorf("failed to list threads of pid %d: %w", pid, err)
	}

	for tid := range threads {
		if int(tid) == pid {
			continue
		}
		// A thread may exit between listing and renicing
		if err := setNice(int(tid)); err != nil && !errors.Is(err, unix.ESRCH) {
			return err
		}
	}
	return nil
}

func setNice(id int) error {
	if err := unix.Setpriority(unix.PRIO_PROCESS, id, constants.BelowNormalNice); err != nil {
		return fmt.Errorf("failed to set niceness of %d: %w", id, err)
	}
	return nil
}
