//go:build windows

package system

import (
	"errors"
	"strings"
	"syscall"

	"rundetached/internal/constants"

	"golang.org/x/sys/windows"
)

// MAKELANGID(LANG_NEUTRAL, SUBLANG_SYS_DEFAULT)
const langSystemDefault = 0x02 << 10

// FormatMessage never writes more than 64K bytes
const maxFormatMessageLength = 32 * 1024

// RenderError returns the system's localized message for the error code
// carried by err, falling back to err's own text. Callers bound the length.
func RenderError(err error) string {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return err.Error()
	}

	if msg, ok := formatSystemMessage(errno, constants.MaxMessageLength, maxFormatMessageLength); ok {
		return msg
	}
	return err.Error()
}

// formatSystemMessage tries each buffer size in turn until the message fits
func formatSystemMessage(errno syscall.Errno, sizes ...int) (string, bool) {
	for _, size := range sizes {
		buf := make([]uint16, size)
		n, err := windows.FormatMessage(
			windows.FORMAT_MESSAGE_FROM_SYSTEM|windows.FORMAT_MESSAGE_IGNORE_INSERTS,
			0,
			uint32(errno),
			langSystemDefault,
			buf,
			nil,
		)
		if errors.Is(err, windows.ERROR_INSUFFICIENT_BUFFER) {
			continue
		}
		if err != nil || n == 0 {
			return "", false
		}
		return strings.TrimRight(windows.UTF16ToString(buf[:n]), "\r\n "), true
	}
	return "", false
}
