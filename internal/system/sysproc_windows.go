//go:build windows

package system

import "golang.org/x/sys/windows"

// creationFlagsForDetach returns the CreateProcess flags for a detached child.
// DETACHED_PROCESS starts it without the parent's console.
func creationFlagsForDetach() uint32 {
	return windows.DETACHED_PROCESS
}
