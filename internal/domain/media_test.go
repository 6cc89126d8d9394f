package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInferMedia_Patterns(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		wantID string
	}{
		{"watch url", "Workout https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"watch url extra params", "https://youtube.com/watch?list=x&v=abcdefghijk done", "abcdefghijk"},
		{"short link", "Stretch https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"embed link", "https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"mobile url", "https://m.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := InferMedia(tt.input)
			require.NotNil(t, ref)
			assert.Equal(t, tt.wantID, ref.ID)
			assert.NotEmpty(t, ref.SourceURL)
		})
	}
}

func TestInferMedia_NoMatch(t *testing.T) {
	assert.Nil(t, InferMedia("Plain task name"))
	assert.Nil(t, InferMedia("https://example.com/watch?v=dQw4w9WgXcQ"))
	assert.Nil(t, InferMedia(""))
}

func TestInferMedia_Idempotent(t *testing.T) {
	name := "Warmup https://youtu.be/dQw4w9WgXcQ"
	first := InferMedia(name)
	second := InferMedia(name)
	require.NotNil(t, first)
	assert.Equal(t, first, second)
}
