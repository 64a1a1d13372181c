package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRootCommandRegistersAmbientFlags(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()

	require.NotNil(t, cmd.Flags().Lookup("verbose"))
	require.NotNil(t, cmd.Flags().Lookup("json"))
	require.NotNil(t, cmd.Flags().Lookup("no-progress"))
	require.NotNil(t, cmd.Flags().Lookup("env-file"))
	require.NotNil(t, cmd.Flags().Lookup("log-file"))
	require.NotNil(t, cmd.Flags().Lookup("downloads-dir"))

	require.Equal(t, ".env", cmd.Flags().Lookup("env-file").DefValue)
	require.Equal(t, "transcription.log", cmd.Flags().Lookup("log-file").DefValue)
	require.Equal(t, "false", cmd.Flags().Lookup("verbose").DefValue)
}

func TestRootCommandHasNoSubcommands(t *testing.T) {
	t.Parallel()

	for _, sub := range NewRootCmd().Commands() {
		require.True(t, sub.Hidden || sub.Name() == "completion" || sub.Name() == "help",
			"unexpected subcommand %q", sub.Name())
	}
}

func TestRootHelpParsesSuccessfully(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs([]string{"--help"})

	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), "interactive prompts")
}

func TestStartupFailsBeforeAnyPromptWithoutCredentials(t *testing.T) {
	for _, envVar := range []string{
		"WIT_API_KEY_ENGLISH",
		"WIT_API_KEY_ARABIC",
		"WIT_API_KEY_FRENCH",
		"WIT_API_KEY_JAPANESE",
	} {
		t.Setenv(envVar, "")
	}

	cmd := NewRootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetIn(strings.NewReader("Y\n"))
	cmd.SetArgs([]string{"--log-file", "", "--env-file", ""})

	err := cmd.Execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), "no Wit.ai API key configured")
	require.Empty(t, out.String(), "no prompt may be shown before the credential check")
}
