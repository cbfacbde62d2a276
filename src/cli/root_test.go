package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"connect-export/src/version"
)

func execute(args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersionCmd(t *testing.T) {
	stdout, _, err := execute("version")
	require.NoError(t, err)
	assert.Contains(t, stdout, version.Version)
}

func TestExportRequiresDest(t *testing.T) {
	_, _, err := execute("export")
	require.Error(t, err)
	var ue *usageError
	assert.ErrorAs(t, err, &ue, "missing arguments are a usage error")
}

func TestExportRejectsExtraArgs(t *testing.T) {
	_, _, err := execute("export", "demo", "profile", "Q-", "extra")
	require.Error(t, err)
	var ue *usageError
	assert.ErrorAs(t, err, &ue)
}

func TestUnknownFlagIsUsageError(t *testing.T) {
	_, _, err := execute("export", "demo", "--no-such-flag")
	require.Error(t, err)
	var ue *usageError
	assert.ErrorAs(t, err, &ue)
}

func TestRootHelpListsExport(t *testing.T) {
	stdout, _, err := execute("--help")
	require.NoError(t, err)
	assert.Contains(t, stdout, "export")
	assert.Contains(t, stdout, "version")
}

func TestUsageErrorUnwraps(t *testing.T) {
	inner := errors.New("bad arguments")
	err := &usageError{err: inner}
	assert.ErrorIs(t, err, inner)
}
