package command

import (
	"bytes"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

type testResult struct {
	Router string `json:"router"`
}

func (r *testResult) GetOutput() string {
	return "router " + r.Router
}

func newTestCommand(t *testing.T, jsonOutput bool) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().Bool(JSONOutputFlag, false, "")
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	if jsonOutput {
		require.NoError(t, cmd.Flags().Set(JSONOutputFlag, "true"))
	}

	return cmd, &stdout, &stderr
}

func TestOutputter_CLI(t *testing.T) {
	t.Parallel()

	cmd, stdout, stderr := newTestCommand(t, false)

	outputter := InitializeOutputter(cmd)
	require.IsType(t, &CLIOutput{}, outputter)

	outputter.WriteCommandResult(&testResult{Router: "0x1"})
	outputter.SetCommandResult(&testResult{Router: "0x2"})
	outputter.WriteOutput()

	require.Equal(t, "router 0x1\nrouter 0x2\n", stdout.String())
	require.Empty(t, stderr.String())
}

func TestOutputter_JSON(t *testing.T) {
	t.Parallel()

	cmd, stdout, stderr := newTestCommand(t, true)

	outputter := InitializeOutputter(cmd)
	require.IsType(t, &JSONOutput{}, outputter)

	outputter.SetCommandResult(&testResult{Router: "0x2"})
	outputter.WriteOutput()
	require.Equal(t, "{\"router\":\"0x2\"}\n", stdout.String())

	outputter.SetError(errors.New("transaction rejected"))
	outputter.WriteOutput()
	require.Equal(t, "{\"error\":\"transaction rejected\"}\n", stderr.String())
}

func TestOutputter_ErrorOnly(t *testing.T) {
	t.Parallel()

	cmd, stdout, stderr := newTestCommand(t, false)

	outputter := InitializeOutputter(cmd)
	outputter.SetError(errors.New("unknown network: \"unknown\""))
	outputter.WriteOutput()

	require.Empty(t, stdout.String())
	require.Equal(t, "unknown network: \"unknown\"\n", stderr.String())
}
