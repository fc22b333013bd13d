package snapdiff

import "github.com/Theenell/snapdiff/internal/imagecodec"

// Comparator compares an actual test result against an expected baseline.
//
// actual is either a []byte or a string, depending on what the test harness
// produced; expected is always the raw baseline bytes. A nil *Mismatch means
// the artifacts match. A non-nil *Mismatch describes the difference. A
// non-nil error is reserved for configuration mistakes (see Options) and
// never represents a comparison outcome.
type Comparator func(actual any, expected []byte, opts *Options) (*Mismatch, error)

// Mismatch is the negative outcome of a comparison.
type Mismatch struct {
	// Message is a human-readable explanation of the difference. For text
	// comparisons it embeds an ANSI-styled inline diff.
	Message string

	// Diff is an encoded visualization of the difference. It is present only
	// for image mismatches where both images have the same dimensions; it is
	// nil for dimension mismatches, text and binary comparisons.
	Diff []byte
}

// contentKind is the closed set of comparator families. Content-type
// strings are mapped onto it once, in ForContentType, so dispatch below is
// exhaustive rather than stringly-typed.
type contentKind int

const (
	kindBinary contentKind = iota
	kindText
	kindImage
)

// ForContentType returns the comparator for the given MIME content type.
//
// image/png, image/jpeg and image/webp select an image comparator bound to
// that format's codec. text/plain selects the text comparator. Every other
// value, including the empty string, selects the binary comparator: unknown
// types degrade to the strictest fallback rather than failing, so selection
// cannot error.
func ForContentType(contentType string) Comparator {
	kind := kindBinary
	var codec imagecodec.Codec
	if c, ok := imagecodec.For(contentType); ok {
		kind = kindImage
		codec = c
	} else if contentType == "text/plain" {
		kind = kindText
	}

	switch kind {
	case kindImage:
		return newImageComparator(codec).compare
	case kindText:
		return compareText
	default:
		return compareBinary
	}
}
