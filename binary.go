package snapdiff

import "bytes"

// compareBinary is the fallback comparator for unknown content types: exact
// byte equality, with a string-input escape hatch into the text comparator.
// Strings are always treated as text no matter what content type the caller
// declared.
func compareBinary(actual any, expected []byte, opts *Options) (*Mismatch, error) {
	if s, ok := actual.(string); ok {
		return compareText(s, expected, opts)
	}
	actualBytes, ok := actual.([]byte)
	if !ok {
		return &Mismatch{Message: "Actual result should be a byte slice or a string."}, nil
	}
	if bytes.Equal(actualBytes, expected) {
		return nil, nil
	}
	// No byte-level visualization is attempted for arbitrary binary data.
	return &Mismatch{Message: "Buffers differ"}, nil
}
