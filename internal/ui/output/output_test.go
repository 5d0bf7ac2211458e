package output_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/relock/internal/ui/output"
)

func TestColorProfile_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, output.ColorProfile(new(bytes.Buffer)))
}

func TestNew_PlainWhenNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	out := output.New(&buf)
	_, err := out.WriteString(out.String("resolved").Foreground(termenv.RGBColor("#22A06B")).String())
	require.NoError(t, err)
	assert.Equal(t, "resolved", buf.String())
}

func TestColorProfile_PlainForNonTerminalFile(t *testing.T) {
	t.Setenv("NO_COLOR", "")

	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer func() {
		_ = r.Close()
		_ = w.Close()
	}()

	assert.Equal(t, termenv.Ascii, output.ColorProfile(w))
}
