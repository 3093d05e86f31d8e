// Package system creates detached child processes and renders the
// platform's description of process creation errors.
package system

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// ErrEmptyCommandLine is returned when there is nothing left to launch
var ErrEmptyCommandLine = errors.New("no command line to launch")

// Process is a handle to a child started by SpawnDetached
type Process interface {
	// Pid returns the operating system process id
	Pid() int
	// LowerPriority drops the child's base priority one notch below normal
	LowerPriority() error
	// Release frees the handles held for the child without affecting it
	Release() error
}

// Spawner starts a command line as a detached process
type Spawner interface {
	SpawnDetached(commandLine string) (Process, error)
}

// DetachedSpawner is the operating system backed Spawner
type DetachedSpawner struct {
	logger *logrus.Logger
}

// NewSpawner creates a new detached process spawner
func NewSpawner(logger *logrus.Logger) *DetachedSpawner {
	return &DetachedSpawner{
		logger: logger,
	}
}
