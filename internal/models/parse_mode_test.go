package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParseModeFromString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected ParseMode
	}{
		{name: "strict", input: "strict", expected: ParseModeStrict},
		{name: "lenient", input: "lenient", expected: ParseModeLenient},
		{name: "mixed case and spaces", input: " Lenient ", expected: ParseModeLenient},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mode, err := NewParseModeFromString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, mode)
		})
	}
}

func TestNewParseModeFromString_Invalid(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "skip", "strict-ish"} {
		mode, err := NewParseModeFromString(input)
		assert.Error(t, err, "input %q", input)
		assert.Equal(t, ParseMode(""), mode)
	}
}

func TestParseMode_SkipsMalformed(t *testing.T) {
	t.Parallel()

	assert.False(t, ParseModeStrict.SkipsMalformed())
	assert.True(t, ParseModeLenient.SkipsMalformed())
	assert.Panics(t, func() {
		ParseMode("invalid").SkipsMalformed()
	}, "SkipsMalformed should panic on invalid ParseMode")
}
