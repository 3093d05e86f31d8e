//go:build !unix && !windows

package system

import (
	"errors"
	"fmt"
)

// SpawnDetached always fails: there is no way to detach a child here.
func (s *DetachedSpawner) SpawnDetached(commandLine string) (Process, error) {
	return nil, fmt.Errorf("detached process creation: %w", errors.ErrUnsupported)
}
