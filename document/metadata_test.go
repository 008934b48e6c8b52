package document

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorePropertiesRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.docx")
	writeMinimalDocx(t, path, paragraphXML("content"))

	created := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	modified := time.Date(2024, 6, 15, 17, 0, 0, 0, time.UTC)

	require.NoError(t, writeCoreProperties(path, CoreProperties{
		Title:    "A <Titled> Document",
		Author:   "Sam & Alex",
		Created:  created,
		Modified: modified,
	}))

	props, err := readCoreProperties(path)
	require.NoError(t, err)

	assert.Equal(t, "A <Titled> Document", props.Title)
	assert.Equal(t, "Sam & Alex", props.Author)
	assert.True(t, props.Created.Equal(created))
	assert.True(t, props.Modified.Equal(modified))
}

func TestCorePropertiesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.docx")
	writeMinimalDocx(t, path, paragraphXML("content"))

	require.NoError(t, writeCoreProperties(path, CoreProperties{Title: "first"}))
	require.NoError(t, writeCoreProperties(path, CoreProperties{Title: "second", Author: "me"}))

	props, err := readCoreProperties(path)
	require.NoError(t, err)
	assert.Equal(t, "second", props.Title)
	assert.Equal(t, "me", props.Author)
}

func TestCorePropertiesAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.docx")
	writeMinimalDocx(t, path, paragraphXML("content"))

	props, err := readCoreProperties(path)
	require.NoError(t, err)
	assert.Empty(t, props.Title)
	assert.Empty(t, props.Author)
	assert.True(t, props.Created.IsZero())
	assert.True(t, props.Modified.IsZero())
}

func TestCorePropertiesSurviveMutation(t *testing.T) {
	svc := newTestService(t)
	path := filepath.Join(t.TempDir(), "doc.docx")

	require.NoError(t, svc.Create(context.Background(), path, "Keep Me", "Author A"))

	_, err := svc.WriteText(context.Background(), path, "more text", true)
	require.NoError(t, err)

	props, err := readCoreProperties(path)
	require.NoError(t, err)
	assert.Equal(t, "Keep Me", props.Title)
	assert.Equal(t, "Author A", props.Author)
}

func TestParseW3CDTF(t *testing.T) {
	tests := []struct {
		in   string
		zero bool
	}{
		{"2024-01-02T03:04:05Z", false},
		{"2024-01-02T03:04:05+10:00", false},
		{"2024-01-02T03:04:05", false},
		{"2024-01-02", false},
		{"", true},
		{"not a date", true},
	}

	for _, tt := range tests {
		got := parseW3CDTF(tt.in)
		assert.Equal(t, tt.zero, got.IsZero(), "input %q", tt.in)
	}
}
