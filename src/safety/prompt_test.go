package safety

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmYesFlagSkipsPrompt(t *testing.T) {
	var out bytes.Buffer
	ok, err := Confirm(Options{Yes: true}, strings.NewReader(""), &out, "Replace existing export directory demo?")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, out.String())
}

func TestConfirmReadsAnswer(t *testing.T) {
	for answer, want := range map[string]bool{
		"y\n":   true,
		"yes\n": true,
		"Y\n":   true,
		"n\n":   false,
		"\n":    false,
	} {
		var out bytes.Buffer
		ok, err := Confirm(Options{}, strings.NewReader(answer), &out, "Replace?")
		require.NoError(t, err)
		assert.Equal(t, want, ok, "answer %q", answer)
		assert.Contains(t, out.String(), "[y/N]")
	}
}

func TestConfirmEOFDeclines(t *testing.T) {
	ok, err := Confirm(Options{}, strings.NewReader(""), nil, "Replace?")
	require.NoError(t, err)
	assert.False(t, ok)
}
