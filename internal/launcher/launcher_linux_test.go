//go:build linux

package launcher

import (
	"bytes"
	"io"
	"testing"

	"rundetached/internal/config"
	"rundetached/internal/constants"
	"rundetached/internal/system"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestRunMissingExecutableEndToEnd(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	stderr := &bytes.Buffer{}
	l := New(config.New(), system.NewSpawner(logger), stderr, logger)

	code := l.Run("rundetached rundetached-no-such-program --flag")

	assert.NotEqual(t, constants.ExitSuccess, code)
	assert.Contains(t, stderr.String(), "rundetached-no-such-program")
	assert.Equal(t, 1, bytes.Count(stderr.Bytes(), []byte("\n")))
}

func TestRunEndToEnd(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	stderr := &bytes.Buffer{}
	l := New(config.New(), system.NewSpawner(logger), stderr, logger)

	assert.Equal(t, constants.ExitSuccess, l.Run(`"/opt/my tools/rundetached" true`))
	assert.Empty(t, stderr.String())
}
