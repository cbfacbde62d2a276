package export

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitDestBareAlias(t *testing.T) {
	dir, alias := SplitDest("demo")
	assert.Equal(t, "demo", dir)
	assert.Equal(t, "demo", alias)
}

func TestSplitDestPath(t *testing.T) {
	dir, alias := SplitDest(filepath.Join("backups", "demo"))
	assert.Equal(t, filepath.Join("backups", "demo"), dir)
	assert.Equal(t, "demo", alias)
}

func TestDetailPathPrefixes(t *testing.T) {
	assert.Equal(t, filepath.Join("out", "hour_Core.json"), detailPath("out", KindHours, "Core"))
	assert.Equal(t, filepath.Join("out", "queue_Sales.json"), detailPath("out", KindQueue, "Sales"))
	assert.Equal(t, filepath.Join("out", "routing_Basic.json"), detailPath("out", KindRoutingProfile, "Basic"))
	assert.Equal(t, filepath.Join("out", "module_Hold.json"), detailPath("out", KindFlowModule, "Hold"))
	assert.Equal(t, filepath.Join("out", "flow_Inbound.json"), detailPath("out", KindFlow, "Inbound"))
	assert.Equal(t, filepath.Join("out", "routingQs_Basic.json"), routingQueuesPath("out", "Basic"))
}

func TestLogPathIsSibling(t *testing.T) {
	assert.Equal(t, "demo.log", LogPath("demo"))
	assert.Equal(t, filepath.Join("backups", "demo")+".log", LogPath(filepath.Join("backups", "demo")))
}

func TestSkippableKinds(t *testing.T) {
	assert.True(t, KindFlow.Skippable())
	assert.True(t, KindFlowModule.Skippable())
	assert.False(t, KindQueue.Skippable())
	assert.False(t, KindHours.Skippable())
	assert.False(t, KindRoutingProfile.Skippable())
	assert.False(t, KindPrompt.Skippable())
}
