package snapdiff

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// EditOp is the kind of a single text edit.
type EditOp int8

const (
	// EditEqual marks a span present in both texts.
	EditEqual EditOp = iota
	// EditInsert marks a span present only in the actual text.
	EditInsert
	// EditDelete marks a span present only in the expected text.
	EditDelete
)

// TextEdit is one span of a text diff. Concatenating the Insert and Equal
// spans of a sequence reconstructs the actual text; the Delete and Equal
// spans reconstruct the expected text.
type TextEdit struct {
	Op   EditOp
	Text string
}

// TextDiffer computes an ordered edit sequence turning expected into
// actual, with trivial noisy edits merged away.
type TextDiffer interface {
	Diff(expected, actual string) []TextEdit
}

// semanticDiffer wraps diffmatchpatch. The semantic cleanup pass merges
// short alternating edits into coherent spans, trading diff minimality for
// human readability.
type semanticDiffer struct{}

func (semanticDiffer) Diff(expected, actual string) []TextEdit {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(expected, actual, true)
	diffs = dmp.DiffCleanupSemantic(diffs)

	edits := make([]TextEdit, 0, len(diffs))
	for _, d := range diffs {
		op := EditEqual
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			op = EditInsert
		case diffmatchpatch.DiffDelete:
			op = EditDelete
		}
		edits = append(edits, TextEdit{Op: op, Text: d.Text})
	}
	return edits
}

// Text diffs are styled against a renderer pinned to the basic ANSI
// profile, so the message is identical whether or not the process runs in a
// terminal.
var (
	diffStyler   = lipgloss.NewRenderer(io.Discard)
	addedStyle   lipgloss.Style
	removedStyle lipgloss.Style
)

func init() {
	diffStyler.SetColorProfile(termenv.ANSI)
	addedStyle = diffStyler.NewStyle().Foreground(lipgloss.Color("2"))
	removedStyle = diffStyler.NewStyle().Foreground(lipgloss.Color("1")).Strikethrough(true)
}

// compareText is the text/plain comparator. The diff visualization is
// textual and embedded in the mismatch message itself; there is no separate
// diff payload.
func compareText(actual any, expected []byte, _ *Options) (*Mismatch, error) {
	actualText, ok := actual.(string)
	if !ok {
		return &Mismatch{Message: "Actual result should be a string."}, nil
	}

	expectedText := string(expected)
	if actualText == expectedText {
		return nil, nil
	}

	var differ TextDiffer = semanticDiffer{}
	edits := differ.Diff(expectedText, actualText)

	Logger().Debug("text comparison", "edits", len(edits))

	return &Mismatch{Message: renderEdits(edits)}, nil
}

// renderEdits flattens an edit sequence into one string: insertions in the
// added style, deletions struck through, equal spans verbatim.
func renderEdits(edits []TextEdit) string {
	var b strings.Builder
	for _, e := range edits {
		switch e.Op {
		case EditInsert:
			b.WriteString(addedStyle.Render(e.Text))
		case EditDelete:
			b.WriteString(removedStyle.Render(e.Text))
		default:
			b.WriteString(e.Text)
		}
	}
	return b.String()
}
