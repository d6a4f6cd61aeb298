package patch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"trailing newline", "a\nb\nc\n"},
		{"no trailing newline", "a\nb\nc"},
		{"crlf endings", "a\r\nb\r\nc\r\n"},
		{"empty", ""},
		{"blank lines", "\n\n\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := FromString(tt.content)
			assert.Equal(t, tt.content, doc.Content())
			assert.False(t, doc.Dirty())
		})
	}
}

func TestDocumentSetLine(t *testing.T) {
	doc := FromString("a\nb\nc")

	doc.SetLine(1, "b")
	assert.False(t, doc.Dirty())

	doc.SetLine(1, "B")
	assert.True(t, doc.Dirty())
	assert.Equal(t, "a\nB\nc", doc.Content())
}

func TestDocumentSetContent(t *testing.T) {
	doc := FromString("a\nb")

	doc.SetContent("a\nb")
	assert.False(t, doc.Dirty())

	doc.SetContent("x\ny")
	assert.True(t, doc.Dirty())
	assert.Equal(t, 2, doc.Len())
	assert.Equal(t, "x", doc.Line(0))
}

func TestDocumentSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.ts")
	require.NoError(t, os.WriteFile(path, []byte("a\nb\n"), 0o644))

	doc, err := Load(path)
	require.NoError(t, err)

	// clean document: Save must not rewrite the file
	require.NoError(t, os.Remove(path))
	require.NoError(t, doc.Save())
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	doc.SetLine(0, "A")
	require.NoError(t, doc.Save())
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "A\nb\n", string(raw))
	assert.False(t, doc.Dirty())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.ts"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
