package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf)

	l.Debugf("hidden %d", 1)
	l.Infof("round %d", 2)
	l.Warn("ignoring invalid pattern", "pattern", "(")

	out := buf.String()
	assert.NotContains(t, out, "hidden 1")
	assert.Contains(t, out, "round 2")
	assert.Contains(t, out, "ignoring invalid pattern")
	assert.Contains(t, out, "pattern=(")

	buf.Reset()
	l.SetVerbose(true)
	l.Debugf("shown %d", 3)
	assert.Contains(t, buf.String(), "shown 3")

	buf.Reset()
	l.SetVerbose(false)
	l.Debugf("hidden again")
	assert.Empty(t, buf.String())
}
