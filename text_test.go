package snapdiff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextEqualMatches(t *testing.T) {
	compare := ForContentType("text/plain")

	mismatch, err := compare("abc", []byte("abc"), nil)
	require.NoError(t, err)
	assert.Nil(t, mismatch)
}

func TestTextMismatchStyling(t *testing.T) {
	compare := ForContentType("text/plain")

	// actual "abc" vs expected "abd": "ab" equal, "d" deleted, "c" inserted.
	mismatch, err := compare("abc", []byte("abd"), nil)
	require.NoError(t, err)
	require.NotNil(t, mismatch)
	assert.Nil(t, mismatch.Diff, "text diffs live in the message, not a payload")

	wantDeleted := removedStyle.Render("d")
	wantInserted := addedStyle.Render("c")
	assert.Contains(t, mismatch.Message, wantDeleted)
	assert.Contains(t, mismatch.Message, wantInserted)
	assert.True(t, strings.HasPrefix(mismatch.Message, "ab"), "equal prefix rendered verbatim, got %q", mismatch.Message)
	assert.Less(t, strings.Index(mismatch.Message, wantDeleted), strings.Index(mismatch.Message, wantInserted),
		"deletion comes before insertion")
}

func TestTextActualNotString(t *testing.T) {
	compare := ForContentType("text/plain")

	for _, actual := range []any{[]byte("abc"), 42, nil} {
		mismatch, err := compare(actual, []byte("abc"), nil)
		require.NoError(t, err)
		require.NotNil(t, mismatch)
		assert.Equal(t, "Actual result should be a string.", mismatch.Message)
	}
}

func TestSemanticDifferReconstructs(t *testing.T) {
	expected := "The quick brown fox jumps over the lazy dog"
	actual := "The quick red fox leaps over the lazy dog"

	edits := semanticDiffer{}.Diff(expected, actual)
	require.NotEmpty(t, edits)

	var gotExpected, gotActual strings.Builder
	for _, e := range edits {
		if e.Op == EditEqual || e.Op == EditDelete {
			gotExpected.WriteString(e.Text)
		}
		if e.Op == EditEqual || e.Op == EditInsert {
			gotActual.WriteString(e.Text)
		}
	}
	assert.Equal(t, expected, gotExpected.String())
	assert.Equal(t, actual, gotActual.String())
}

func TestSemanticCleanupMergesNoise(t *testing.T) {
	// The minimal character-level diff of mouse->sofas interleaves
	// single-letter edits; semantic cleanup merges them into whole-word
	// spans.
	edits := semanticDiffer{}.Diff("that mouse ate my cheese", "that sofas ate my cheese")

	var deleted, inserted []string
	for _, e := range edits {
		switch e.Op {
		case EditDelete:
			deleted = append(deleted, e.Text)
		case EditInsert:
			inserted = append(inserted, e.Text)
		}
	}
	assert.Equal(t, []string{"mouse"}, deleted)
	assert.Equal(t, []string{"sofas"}, inserted)
}

func TestRenderEditsOrder(t *testing.T) {
	got := renderEdits([]TextEdit{
		{Op: EditEqual, Text: "keep "},
		{Op: EditDelete, Text: "old"},
		{Op: EditInsert, Text: "new"},
		{Op: EditEqual, Text: " tail"},
	})
	want := "keep " + removedStyle.Render("old") + addedStyle.Render("new") + " tail"
	assert.Equal(t, want, got)
}
