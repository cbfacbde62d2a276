package export

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"connect-export/src/connectapi"
)

func queueName(q connectapi.QueueSummary) string { return q.Name }
func flowName(f connectapi.FlowSummary) string   { return f.Name }

func TestFilterExcludePrefix(t *testing.T) {
	in := []connectapi.QueueSummary{
		{Name: "Test-Sales"},
		{Name: "Sales"},
		{Name: "Test"},
		{Name: "Support"},
	}
	out := filterNames(in, queueName, NameFilter{ExcludePrefix: "Test"}, false)
	assert.Equal(t, []connectapi.QueueSummary{{Name: "Sales"}, {Name: "Support"}}, out)
}

func TestFilterIncludePrefixAdmitsDefaults(t *testing.T) {
	in := []connectapi.FlowSummary{
		{Name: "Other flow"},
		{Name: "Q-main"},
		{Name: "Default agent whisper"},
	}
	out := filterNames(in, flowName, NameFilter{IncludePrefix: "Q-"}, true)
	assert.Equal(t, []connectapi.FlowSummary{{Name: "Default agent whisper"}, {Name: "Q-main"}}, out)
}

func TestFilterIncludeIgnoredWithoutFlag(t *testing.T) {
	// The inclusion predicate only applies to flows and modules; other
	// kinds pass withInclude=false and keep everything.
	in := []connectapi.QueueSummary{{Name: "Sales"}, {Name: "Support"}}
	out := filterNames(in, queueName, NameFilter{IncludePrefix: "Q-"}, false)
	assert.Len(t, out, 2)
}

func TestFilterResortsByName(t *testing.T) {
	in := []connectapi.QueueSummary{{Name: "c"}, {Name: "a"}, {Name: "b"}}
	out := filterNames(in, queueName, NameFilter{}, false)
	assert.Equal(t, []connectapi.QueueSummary{{Name: "a"}, {Name: "b"}, {Name: "c"}}, out)
}

func TestFilterEmptyResultIsValid(t *testing.T) {
	in := []connectapi.FlowSummary{{Name: "Other"}}
	out := filterNames(in, flowName, NameFilter{IncludePrefix: "Q-"}, true)
	assert.Empty(t, out)
}

func TestFilterPrefixIsAnchored(t *testing.T) {
	in := []connectapi.QueueSummary{{Name: "Sales-Test"}}
	out := filterNames(in, queueName, NameFilter{ExcludePrefix: "Test"}, false)
	assert.Len(t, out, 1, "exclusion matches at the start of the name only")
}

func TestFilterActive(t *testing.T) {
	assert.False(t, NameFilter{}.Active())
	assert.True(t, NameFilter{IncludePrefix: "Q"}.Active())
	assert.True(t, NameFilter{ExcludePrefix: "Test"}.Active())
}
