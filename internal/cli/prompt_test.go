package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAskTrimsInput(t *testing.T) {
	t.Parallel()

	out := new(bytes.Buffer)
	p := newPrompter(strings.NewReader("  Y  \n"), out)

	answer, err := p.ask("Pick a mode: ")
	require.NoError(t, err)
	require.Equal(t, "Y", answer)
	require.Equal(t, "Pick a mode: ", out.String())
}

func TestAskAcceptsFinalLineWithoutNewline(t *testing.T) {
	t.Parallel()

	p := newPrompter(strings.NewReader("EN"), new(bytes.Buffer))

	answer, err := p.ask("Language: ")
	require.NoError(t, err)
	require.Equal(t, "EN", answer)
}

func TestAskFailsOnBareEOF(t *testing.T) {
	t.Parallel()

	p := newPrompter(strings.NewReader(""), new(bytes.Buffer))

	_, err := p.ask("Language: ")
	require.Error(t, err)
}
