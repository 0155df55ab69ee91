package cli_test

import (
	"bytes"
	"testing"

	"github.com/makeca/make-ca/internal/adapters/inbound/cli"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes args like the binary does and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := cli.NewRootCmdForTest()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := cli.ExecuteForTest(root)
	return out.String(), errOut.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "make-ca dev")
}

func TestRootCmd_PersistentFlagsBound(t *testing.T) {
	var cmd *cobra.Command
	require.NotPanics(t, func() { cmd = cli.NewRootCmdForTest() })
	assert.NotNil(t, cmd.PersistentFlags().Lookup("verbose"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("dir"))
}

func TestUnknownCommand(t *testing.T) {
	_, errOut, err := run(t, "frobnicate")
	require.Error(t, err)
	assert.Contains(t, errOut, "unknown command")
	assert.Contains(t, errOut, "--help")
}

func TestMCPCommandExists(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	cmd.SetArgs([]string{"mcp", "--help"})
	err := cmd.Execute()
	assert.NoError(t, err)
}

func TestMCPServeCommandExists(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	cmd.SetArgs([]string{"mcp", "serve", "--help"})
	err := cmd.Execute()
	assert.NoError(t, err)
}

func TestDirFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MAKE_CA_DIR", dir)

	_, errOut, err := run(t, "list")
	require.Error(t, err)
	assert.Contains(t, errOut, dir)
	assert.Contains(t, errOut, "make-ca init")
}
