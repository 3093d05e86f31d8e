//go:build unix

package system

import "syscall"

// sysProcAttrForDetach returns SysProcAttr to detach a child process (new session).
// Setsid drops the controlling terminal so the child survives parent exit.
func sysProcAttrForDetach() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setsid: true}
}
