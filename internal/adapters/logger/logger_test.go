package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lode/internal/adapters/logger"
	"go.trai.ch/lode/internal/core/domain"
	"go.trai.ch/zerr"
)

// captureStderr captures output written to os.Stderr during the execution of fn.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()

	originalStderr := os.Stderr
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stderr = w
	defer func() { os.Stderr = originalStderr }()

	done := make(chan string, 1)
	go func() {
		buf, _ := io.ReadAll(r)
		done <- string(buf)
	}()

	fn()

	require.NoError(t, w.Close())
	output := <-done
	require.NoError(t, r.Close())

	return output
}

func newBuffered(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	lg, ok := logger.New().(*logger.Logger)
	require.True(t, ok)
	var buf bytes.Buffer
	lg.SetOutput(&buf)
	return lg, &buf
}

func TestNew_WritesToStderr(t *testing.T) {
	output := captureStderr(t, func() {
		logger.New().Info("indexing manifest")
	})

	assert.Contains(t, output, "indexing manifest")
	assert.Contains(t, output, "INFO")
}

func TestLogger_Levels(t *testing.T) {
	lg, buf := newBuffered(t)

	lg.Info("some message")
	lg.Warn("some warning")
	lg.Error(os.ErrPermission)

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "some message")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "some warning")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "permission denied")
}

func TestLogger_ErrorNil(t *testing.T) {
	lg, buf := newBuffered(t)

	lg.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	lg, buf := newBuffered(t)
	lg.SetJSON(true)

	lg.Error(zerr.Wrap(errors.New("disk full"), "failed to write snapshot store"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "operation failed", record["msg"])

	// zerr errors render as a group through slog.LogValuer.
	group, ok := record["error"].(map[string]any)
	require.True(t, ok, "error attribute is %T", record["error"])
	assert.Equal(t, "failed to write snapshot store", group["msg"])
	assert.Equal(t, "disk full", group["cause"])
}

func TestFormatError(t *testing.T) {
	err := zerr.Wrap(
		zerr.With(zerr.Wrap(domain.ErrTargetDefinitionNotIndexed, ""), "target_definition", "App"),
		"failed to look up target",
	)

	got := logger.FormatError(err)

	lines := strings.Split(got, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Error: failed to look up target", lines[0])
	assert.Equal(t, "  Caused by:", lines[1])
	assert.Equal(t, "    -> dependencies for target definition do not exist in the cache", lines[2])

	assert.Equal(t, "Error: plain", logger.FormatError(errors.New("plain")))
}
