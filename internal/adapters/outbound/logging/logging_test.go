package logging_test

import (
	"bytes"
	"testing"

	"github.com/makeca/make-ca/internal/adapters/outbound/logging"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNew_QuietByDefault(t *testing.T) {
	var buf bytes.Buffer
	l := logging.New(&buf, false)

	l.Debug("rendered template")
	l.Info("progress")
	assert.Empty(t, buf.String())

	l.Warn("directory is not empty")
	assert.Contains(t, buf.String(), "directory is not empty")
}

func TestNew_VerboseEnablesDebug(t *testing.T) {
	var buf bytes.Buffer
	l := logging.New(&buf, true)

	assert.Equal(t, logrus.DebugLevel, l.GetLevel())
	l.Debug("rendered template")
	assert.Contains(t, buf.String(), "rendered template")
}

func TestWithVersion(t *testing.T) {
	var buf bytes.Buffer
	l := logging.New(&buf, false)

	logging.WithVersion(l, "1.2.3").Warn("hello")
	assert.Contains(t, buf.String(), "version=1.2.3")
}

func TestDiscard(t *testing.T) {
	l := logging.Discard()
	l.Error("dropped")
	assert.Equal(t, logrus.InfoLevel, l.GetLevel())
}
