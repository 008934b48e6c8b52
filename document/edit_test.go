package document

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTextFreshDocument(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "notes.docx")

	appended, err := svc.WriteText(ctx, path, "hello world", false)
	require.NoError(t, err)
	assert.False(t, appended)

	content, err := svc.Read(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "hello world", content)
}

func TestWriteTextAppendPreservesOrder(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "notes.docx")

	appended, err := svc.WriteText(ctx, path, "first line", true)
	require.NoError(t, err)
	assert.False(t, appended, "first write has nothing to append to")

	appended, err = svc.WriteText(ctx, path, "second line", true)
	require.NoError(t, err)
	assert.True(t, appended)

	content, err := svc.Read(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "first line\nsecond line", content)
}

func TestWriteTextReplaceDiscardsContent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "notes.docx")

	_, err := svc.WriteText(ctx, path, "old content", true)
	require.NoError(t, err)

	_, err = svc.WriteText(ctx, path, "new content", false)
	require.NoError(t, err)

	content, err := svc.Read(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "new content", content)
}

func TestAddHeadingLevelGate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "doc.docx")

	for _, level := range []int{0, 7, -1, 100} {
		err := svc.AddHeading(ctx, path, "title", level)
		assert.ErrorIs(t, err, ErrInvalidArgument, "level %d", level)
	}

	// The gate fires before any file IO.
	assert.NoFileExists(t, path)
}

func TestAddHeadingCreatesAndAppends(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "doc.docx")

	require.NoError(t, svc.AddHeading(ctx, path, "Introduction", 1))

	_, err := svc.WriteText(ctx, path, "body text", true)
	require.NoError(t, err)

	require.NoError(t, svc.AddHeading(ctx, path, "Details", 3))

	content, err := svc.Read(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "Introduction\nbody text\nDetails", content)
}

func TestCopyMissingSource(t *testing.T) {
	svc := newTestService(t)
	dir := t.TempDir()

	err := svc.Copy(context.Background(), filepath.Join(dir, "missing"), filepath.Join(dir, "target"))
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoFileExists(t, filepath.Join(dir, "target.docx"))
}

func TestCopyExistingTargetUntouched(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	dir := t.TempDir()

	source := filepath.Join(dir, "source.docx")
	target := filepath.Join(dir, "target.docx")

	_, err := svc.WriteText(ctx, source, "source content", false)
	require.NoError(t, err)
	_, err = svc.WriteText(ctx, target, "target content", false)
	require.NoError(t, err)

	before, err := os.ReadFile(target)
	require.NoError(t, err)

	err = svc.Copy(ctx, source, target)
	assert.ErrorIs(t, err, ErrAlreadyExists)

	after, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, before, after, "failed copy must leave the target byte-for-byte unmodified")
}

func TestCopyRoundTrip(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	dir := t.TempDir()

	source := filepath.Join(dir, "source.docx")
	target := filepath.Join(dir, "copy.docx")

	_, err := svc.WriteText(ctx, source, "original text", false)
	require.NoError(t, err)

	require.NoError(t, svc.Copy(ctx, source, target))

	content, err := svc.Read(ctx, target)
	require.NoError(t, err)
	assert.Equal(t, "original text", content)
}
