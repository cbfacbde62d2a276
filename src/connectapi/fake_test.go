package connectapi

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFakeFindInstanceByAlias(t *testing.T) {
	f := NewFake()
	f.Instances = []Instance{{Id: "inst-1", Alias: "demo"}}

	inst, err := f.FindInstanceByAlias(context.Background(), "demo")
	require.NoError(t, err)
	assert.Equal(t, "inst-1", inst.Id)

	_, err = f.FindInstanceByAlias(context.Background(), "other")
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "instance", nf.Resource)
}

func TestFakeListPromptsSortedAtSource(t *testing.T) {
	f := NewFake()
	f.Prompts["inst-1"] = []PromptSummary{
		{Id: "p-1", Name: "Welcome"},
		{Id: "p-2", Name: "Beep"},
	}
	prompts, err := f.ListPrompts(context.Background(), "inst-1", ListPageCap)
	require.NoError(t, err)
	assert.Equal(t, "Beep", prompts[0].Name)
	assert.Equal(t, "Welcome", prompts[1].Name)
}

func TestFakeListTruncatesAtLimit(t *testing.T) {
	f := NewFake()
	for i := 0; i < 5; i++ {
		f.Queues["inst-1"] = append(f.Queues["inst-1"], QueueSummary{Id: string(rune('a' + i))})
	}
	queues, err := f.ListQueues(context.Background(), "inst-1", 3)
	require.NoError(t, err)
	assert.Len(t, queues, 3, "a single bounded page, no pagination")
}

func TestFakeInjectedFailures(t *testing.T) {
	f := NewFake()
	f.FailList["ListQueues"] = errors.New("access denied")
	f.FailDescribe["m-1"] = errors.New("throttled")
	f.Modules["inst-1"] = []FlowModuleSummary{{Id: "m-1", Name: "Greeting"}}

	_, err := f.ListQueues(context.Background(), "inst-1", ListPageCap)
	assert.EqualError(t, err, "access denied")

	_, err = f.DescribeContactFlowModule(context.Background(), "inst-1", "m-1")
	assert.EqualError(t, err, "throttled")
}

func TestFakeDescribeUnknownIsNotFound(t *testing.T) {
	f := NewFake()
	_, err := f.DescribeQueue(context.Background(), "inst-1", "q-404")
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
}
