package runlog

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerRecordsCallsAndErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.log")
	l, err := Open(path)
	require.NoError(t, err)

	l.Call("ListQueues", "inst-1")
	l.CallError("DescribeQueue", "Sales", errors.New("throttled"))
	l.Skip("contact-flow", "Inbound", "not published")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "ListQueues", first["op"])
	assert.Equal(t, "inst-1", first["resource"])

	assert.Contains(t, lines[1], "throttled")
	assert.Contains(t, lines[2], "not published")
}

func TestLoggerAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.log")
	l, err := Open(path)
	require.NoError(t, err)
	l.Call("ListInstances", "demo")
	require.NoError(t, l.Close())

	l, err = Open(path)
	require.NoError(t, err)
	l.Call("ListPrompts", "inst-1")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(string(data)), "\n"), 2)
}

func TestDiscardIsSafe(t *testing.T) {
	l := Discard()
	l.Call("ListQueues", "inst-1")
	l.Collision("queue_Sales.json")
	require.NoError(t, l.Close())
}
