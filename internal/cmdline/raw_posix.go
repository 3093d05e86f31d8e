//go:build !windows

package cmdline

import (
	"os"
	"strings"
	"unicode"

	"github.com/kballard/go-shellquote"
)

// Raw rebuilds a command line from os.Args, since only the argument vector
// survives exec on these platforms.
func Raw() string {
	return rawFromArgs(os.Args)
}

// rawFromArgs joins the invocation token and the shell-quoted arguments.
// The invocation token is only ever skipped, so embedded double quotes are
// replaced rather than escaped.
func rawFromArgs(args []string) string {
	if len(args) == 0 {
		return ""
	}

	self := strings.ReplaceAll(args[0], `"`, `'`)
	if self == "" || strings.IndexFunc(self, unicode.IsSpace) >= 0 {
		self = `"` + self + `"`
	}
	if len(args) == 1 {
		return self
	}
	return self + " " + shellquote.Join(args[1:]...)
}
