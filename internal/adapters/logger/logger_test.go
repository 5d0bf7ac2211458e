package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/relock/internal/adapters/logger"
	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger writing to a buffer with colours disabled.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name       string
		log        func(*logger.Logger)
		goldenName string
	}{
		{
			name:       "info",
			log:        func(l *logger.Logger) { l.Info("compiling requirements/base.in") },
			goldenName: "info_basic",
		},
		{
			name:       "warn",
			log:        func(l *logger.Logger) { l.Warn("retrying under runtime 2.7.18") },
			goldenName: "warn_basic",
		},
		{
			name:       "plain error",
			log:        func(l *logger.Logger) { l.Error(errors.New("resolver exited")) },
			goldenName: "error_simple",
		},
		{
			name: "multiline error",
			log: func(l *logger.Logger) {
				l.Error(errors.New("ERROR: Could not find a version that satisfies the requirement foo==9.9\nERROR: No matching distribution found for foo==9.9"))
			},
			goldenName: "error_multiline",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			tt.log(lg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_Error_ZerrChain(t *testing.T) {
	lg, buf := newTestLogger(t)

	err := zerr.Wrap(zerr.Wrap(errors.New("permission denied"), "failed to write workspace file"), "resolution failed")
	lg.Error(err)

	out := buf.String()
	assert.Contains(t, out, "Error: resolution failed")
	assert.Contains(t, out, "Caused by:")
	assert.Contains(t, out, "failed to write workspace file")
	assert.Contains(t, out, "permission denied")
}

func TestLogger_Error_TypedDomainError(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Error(&domain.ResolutionError{Kind: domain.KindGitReferenceNotFound, Ref: "private-lib"})
	assert.Equal(t, "✗ Error: git reference not found: private-lib\n", buf.String())
}

func TestLogger_SetJSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Info("resolved")
	lg.Error(errors.New("boom"))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var first map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &first))
	assert.Equal(t, "INFO", first["level"])
	assert.Equal(t, "resolved", first["msg"])

	var second map[string]any
	require.NoError(t, json.Unmarshal(lines[1], &second))
	assert.Equal(t, "ERROR", second["level"])
	assert.Equal(t, "boom", second["error"])
}

func TestLogger_SetQuiet(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetQuiet(true)

	lg.Info("hidden")
	lg.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	lg.SetQuiet(false)
	lg.Info("visible again")
	assert.Contains(t, buf.String(), "visible again")
}

func TestFormatErrorEntries(t *testing.T) {
	got := logger.FormatErrorEntries([]string{"top", "middle\ndetail", "root"})
	want := "Error: top\n\n  Caused by:\n    → middle\n      detail\n    → root"
	assert.Equal(t, want, got)
}

func TestCollectErrorEntries_StopsAtPlainError(t *testing.T) {
	got := logger.CollectErrorEntries(errors.New("plain"))
	assert.Equal(t, []string{"plain"}, got)
}
