package tui

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminal_Redraw(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	term := NewTerminal(&buf)

	term.Clear()
	term.HideCursor()
	term.WriteLine("Intern Onboarding")
	term.ShowCursor()

	assert.Equal(t, "\033[2J\033[H\033[?25lIntern Onboarding\r\n\033[?25h", buf.String())
}

func TestTerminal_PipeIsNotTerminal(t *testing.T) {
	t.Parallel()

	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	term := &Terminal{in: r, out: &bytes.Buffer{}}
	assert.False(t, term.IsTerminal())

	_, _, err = term.Size()
	assert.Error(t, err)

	// Leaving raw mode that was never entered is a no-op.
	assert.NoError(t, term.ExitRaw())
}

func TestTerminal_ReadFromInput(t *testing.T) {
	t.Parallel()

	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()

	_, err = w.Write([]byte("j"))
	require.NoError(t, err)
	w.Close()

	term := &Terminal{in: r, out: &bytes.Buffer{}}
	p := make([]byte, 4)
	n, err := term.Read(p)
	require.NoError(t, err)
	assert.Equal(t, "j", string(p[:n]))
}
