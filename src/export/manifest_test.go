package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"connect-export/src/connectapi"
)

func TestRewriteManifestWithout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "modules.json")
	entries := []connectapi.FlowModuleSummary{
		{Id: "m-1", Name: "Greeting"},
		{Id: "m-2", Name: "Hold"},
		{Id: "m-3", Name: "Voicemail"},
	}
	require.NoError(t, writeJSON(path, entries))

	require.NoError(t, rewriteManifestWithout(path, "Hold"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var kept []connectapi.FlowModuleSummary
	require.NoError(t, json.Unmarshal(data, &kept))
	require.Equal(t, []connectapi.FlowModuleSummary{
		{Id: "m-1", Name: "Greeting"},
		{Id: "m-3", Name: "Voicemail"},
	}, kept)
}

func TestRewriteManifestWithoutMissingName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flows.json")
	require.NoError(t, writeJSON(path, []connectapi.FlowSummary{{Id: "f-1", Name: "Inbound"}}))

	require.NoError(t, rewriteManifestWithout(path, "NoSuchFlow"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var kept []connectapi.FlowSummary
	require.NoError(t, json.Unmarshal(data, &kept))
	require.Len(t, kept, 1)
}

func TestRewriteManifestMissingFile(t *testing.T) {
	err := rewriteManifestWithout(filepath.Join(t.TempDir(), "absent.json"), "x")
	require.Error(t, err)
}
