//go:build unix && !linux

package system

import (
	"fmt"

	"rundetached/internal/constants"

	"golang.org/x/sys/unix"
)

// lowerPriority renices the whole process; PRIO_PROCESS covers every thread here.
func lowerPriority(pid int) error {
	if err := unix.Setpriority(unix.PRIO_PROCESS, pid, constants.BelowNormalNice); err != nil {
		return fmt.Errorf("failed to set niceness of pid %d: %w", pid, err)
	}
	return nil
}
