//go:build windows

package cmdline

import "golang.org/x/sys/windows"

// Raw returns the command line exactly as Windows passed it to the process.
func Raw() string {
	return windows.UTF16PtrToString(windows.GetCommandLine())
}
