package extensions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripRangePrefix(t *testing.T) {
	tests := map[string]string{
		"^15.2.0":  "15.2.0",
		"~19.1.1":  "19.1.1",
		"^~15.0.0": "15.0.0",
		"15.0.0":   "15.0.0",
		">=15.0.0": ">=15.0.0",
		"^":        "",
	}

	for input, want := range tests {
		assert.Equal(t, want, StripRangePrefix(input), input)
	}
}

func TestFirstVersionToken(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  string
		found bool
	}{
		{"framework banner", "Next.js 15.2.3", "15.2.3", true},
		{"bare version", "16.0.1\n", "16.0.1", true},
		{"prefixed token skipped", "Next.js v15.2.3", "", false},
		{"first digit token wins", "warn 1 deprecated\nNext.js 15.2.3", "1", true},
		{"canary kept verbatim", "Next.js 15.2.0-canary.3", "15.2.0-canary.3", true},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := FirstVersionToken(tt.text)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.found, found)
		})
	}
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", TruncateString("short", 10))
	assert.Equal(t, "15.2.0-...", TruncateString("15.2.0-canary.3", 10))
	assert.Equal(t, "ünïcödé-...", TruncateString("ünïcödé-tag-1.0", 11))
	assert.Equal(t, "ñé", TruncateString("ñéxt", 2))
}
