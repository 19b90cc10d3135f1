package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZerologLoggerMethods(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	var buf bytes.Buffer
	l := NewZerologLogger("test", WithWriter(&buf), WithLevel("debug"))
	if l == nil {
		t.Fatalf("nil logger")
	}
	l.Debugf("debug %d", 1)
	l.Debugw("debug", map[string]any{"k": 1})
	l.Infof("info %s", "test")
	l.Warnf("warn")
	l.Errorf("error")
	assert.Contains(t, buf.String(), "info test")
}

func TestZerologLoggerJSONFields(t *testing.T) {
	t.Setenv("APP_ENV", "")
	var buf bytes.Buffer
	l := New("rotation", WithWriter(&buf), WithField("run_id", "abc"))
	l.Infof("generated %d assignments", 9)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "rotation", entry["component"])
	assert.Equal(t, "abc", entry["run_id"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "generated 9 assignments", entry["message"])
}

func TestZerologLoggerLevelFilter(t *testing.T) {
	t.Setenv("APP_ENV", "")
	var buf bytes.Buffer
	l := New("rotation", WithWriter(&buf), WithLevel("warn"))
	l.Debugf("hidden")
	l.Infof("hidden")
	l.Warnf("shown")
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
	assert.Contains(t, buf.String(), "shown")
}

func TestWithLevelUnknownKeepsInfo(t *testing.T) {
	t.Setenv("APP_ENV", "")
	var buf bytes.Buffer
	l := New("rotation", WithWriter(&buf), WithLevel("loud"))
	l.Debugf("hidden")
	l.Infof("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNopLogger(t *testing.T) {
	var l Logger = NopLogger{}
	assert.NotPanics(t, func() {
		l.Debugf("x")
		l.Debugw("x", nil)
		l.Infof("x")
		l.Warnf("x")
		l.Errorf("x")
	})
}
