package snapdiff

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/Theenell/snapdiff/internal/imagecodec"
)

// imageComparator compares two encoded images of one format. The codec is
// bound at construction, so the same comparator logic serves PNG, JPEG and
// WebP.
type imageComparator struct {
	codec imagecodec.Codec
}

func newImageComparator(codec imagecodec.Codec) imageComparator {
	return imageComparator{codec: codec}
}

func (c imageComparator) compare(actual any, expected []byte, opts *Options) (*Mismatch, error) {
	r := opts.resolve()

	actualBytes, ok := actual.([]byte)
	if !ok {
		return &Mismatch{Message: "Actual result should be a byte slice."}, nil
	}

	actualImg, err := c.codec.Decode(actualBytes)
	if err != nil {
		return &Mismatch{Message: fmt.Sprintf("Failed to decode actual image: %v", err)}, nil
	}
	expectedImg, err := c.codec.Decode(expected)
	if err != nil {
		return &Mismatch{Message: fmt.Sprintf("Failed to decode expected image: %v", err)}, nil
	}

	actualPix := FromImage(actualImg)
	expectedPix := FromImage(expectedImg)

	// Grids of different shapes cannot be overlaid, so a dimension mismatch
	// carries no diff image.
	if !expectedPix.SameSize(actualPix) {
		return &Mismatch{Message: fmt.Sprintf("Expected an image %dx%d, received %dx%d.",
			expectedPix.Width(), expectedPix.Height(),
			actualPix.Width(), actualPix.Height())}, nil
	}

	differ, err := differFor(r.algorithm)
	if err != nil {
		return nil, err
	}

	count, vis, err := differ.Diff(expectedPix, actualPix, r.threshold)
	if err != nil {
		return nil, err
	}

	total := expectedPix.Width() * expectedPix.Height()
	limit := r.maxDiffCount(total)

	Logger().Debug("image comparison",
		"contentType", c.codec.ContentType(),
		"algorithm", string(r.algorithm),
		"diffPixels", count,
		"maxDiffPixels", limit,
	)

	if float64(count) <= limit {
		return nil, nil
	}

	diff, err := c.encodeDiff(vis)
	if err != nil {
		return nil, err
	}
	return &Mismatch{
		Message: fmt.Sprintf("%d pixels (ratio %.2f of all image pixels) are different", count, diffRatio(count, total)),
		Diff:    diff,
	}, nil
}

// encodeDiff encodes the visualization with the bound codec, falling back
// to PNG for decode-only formats.
func (c imageComparator) encodeDiff(vis image.Image) ([]byte, error) {
	diff, err := c.codec.Encode(vis)
	if errors.Is(err, imagecodec.ErrEncodeUnsupported) {
		diff, err = imagecodec.PNG().Encode(vis)
	}
	if err != nil {
		return nil, fmt.Errorf("snapdiff: encode diff image: %w", err)
	}
	return diff, nil
}

// diffRatio reports the differing fraction rounded up to two decimals, so a
// barely-nonzero ratio never displays as 0.00.
func diffRatio(count, total int) float64 {
	return math.Ceil(float64(count)/float64(total)*100) / 100
}
