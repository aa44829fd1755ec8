package patch

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		before     string
		after      string
		want       string
		wantReason error
		wantCount  int
	}{
		{
			name:    "single occurrence",
			content: ".btn {\n  color: red;\n}\n",
			before:  "color: red;",
			after:   "color: blue;",
			want:    ".btn {\n  color: blue;\n}\n",
		},
		{
			name:    "whole file",
			content: "export const x = 1;\n",
			before:  "export const x = 1;\n",
			after:   "",
			want:    "",
		},
		{
			name:    "multi-line before",
			content: "a\nb\nc\n",
			before:  "b\nc",
			after:   "B\nC",
			want:    "a\nB\nC\n",
		},
		{
			name:       "missing",
			content:    "color: green;",
			before:     "color: red;",
			after:      "color: blue;",
			wantReason: ErrNotFound,
		},
		{
			name:       "ambiguous",
			content:    "color: red; color: red; color: red;",
			before:     "color: red;",
			after:      "color: blue;",
			wantReason: ErrAmbiguous,
			wantCount:  3,
		},
		{
			name:       "empty before",
			content:    "anything",
			before:     "",
			after:      "x",
			wantReason: ErrEmpty,
		},
		{
			name:       "empty content",
			content:    "",
			before:     "x",
			after:      "y",
			wantReason: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(tt.content, tt.before, tt.after)

			if tt.wantReason == nil {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}

			var safety *SafetyError
			require.True(t, errors.As(err, &safety), "want *SafetyError, got %v", err)
			assert.ErrorIs(t, err, tt.wantReason)
			assert.Equal(t, tt.wantCount, safety.Occurrences)
			assert.Equal(t, tt.content, got, "content must be returned unchanged")
		})
	}
}

func TestApply_ReplacementContainsBefore(t *testing.T) {
	got, err := Apply("gap: 4px;", "4px", "4px 8px")

	require.NoError(t, err)
	assert.Equal(t, "gap: 4px 8px;", got)
}

func TestSafetyError_Messages(t *testing.T) {
	_, err := Apply("body {}", "color: red;", "color: blue;")
	assert.EqualError(t, err, `safety check failed: 'before' substring not found in file, expected to find: "color: red;"`)

	_, err = Apply("a a", "a", "b")
	assert.EqualError(t, err, `safety check failed: 'before' substring appears 2 times, expected exactly 1: "a"`)

	long := strings.Repeat("x", 150)
	_, err = Apply(long+long, long, "y")
	assert.EqualError(t, err, fmt.Sprintf("safety check failed: 'before' substring appears 2 times, expected exactly 1: %q", Preview(long)))

	_, err = Apply("a", "", "b")
	assert.EqualError(t, err, "safety check failed: 'before' substring is empty")
}

func TestSafetyError_TruncatesExpected(t *testing.T) {
	before := strings.Repeat("x", 80)

	_, err := Apply("nothing here", before, "y")

	assert.Contains(t, err.Error(), strings.Repeat("x", 50)+"...")
	assert.NotContains(t, err.Error(), strings.Repeat("x", 51))
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "short", Preview("short"))
	assert.Equal(t, strings.Repeat("é", 50)+"...", Preview(strings.Repeat("é", 60)))
}
