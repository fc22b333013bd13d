package snapdiff

import (
	"fmt"
	"image"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/orisano/pixelmatch"
)

// PixelDiffer computes the difference between two equal-sized images.
//
// Diff returns the number of differing pixels and a visualization image of
// the same dimensions highlighting them. threshold is the per-pixel
// color-closeness tolerance in [0, 1]; implementations with a fixed
// perceptual model may ignore it. Callers guarantee that expected and
// actual have identical bounds.
type PixelDiffer interface {
	Diff(expected, actual image.Image, threshold float64) (count int, vis image.Image, err error)
}

// differFor maps an algorithm name to its kernel. An unrecognized name is a
// configuration error, not a comparison outcome.
func differFor(algorithm Algorithm) (PixelDiffer, error) {
	switch algorithm {
	case AlgorithmPerceptualThreshold:
		return pixelmatchDiffer{}, nil
	case AlgorithmColorDistanceCIE94:
		return cie94Differ{jnd: 1.0}, nil
	}
	return nil, fmt.Errorf("snapdiff: unknown comparator algorithm %q", algorithm)
}

// pixelmatchDiffer counts pixels whose YIQ color delta exceeds the
// threshold, skipping detected anti-aliasing artifacts.
type pixelmatchDiffer struct{}

func (pixelmatchDiffer) Diff(expected, actual image.Image, threshold float64) (int, image.Image, error) {
	var vis image.Image
	count, err := pixelmatch.MatchPixel(expected, actual,
		pixelmatch.Threshold(threshold),
		pixelmatch.WriteTo(&vis),
	)
	if err != nil {
		return 0, nil, fmt.Errorf("snapdiff: pixelmatch: %w", err)
	}
	return count, vis, nil
}

// cie94Differ counts pixels whose CIE94 color distance exceeds jnd. It has
// no anti-aliasing handling and no tunable threshold: 1.0 dE is the
// conventional just-noticeable difference.
type cie94Differ struct {
	jnd float64
}

func (d cie94Differ) Diff(expected, actual image.Image, _ float64) (int, image.Image, error) {
	bounds := expected.Bounds()
	vis := NewPixmap(bounds.Dx(), bounds.Dy())
	count := 0

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			e := overWhite(expected.At(x, y))
			a := overWhite(actual.At(x, y))
			ox, oy := x-bounds.Min.X, y-bounds.Min.Y
			if e.DistanceCIE94(a) > d.jnd {
				count++
				vis.SetPixel(ox, oy, color.NRGBA{R: 255, A: 255})
			} else {
				vis.SetPixel(ox, oy, dimmedGray(e))
			}
		}
	}
	return count, vis, nil
}

// overWhite composites c onto a white background and returns it as a
// colorful.Color. Color distance is only meaningful between opaque colors.
func overWhite(c color.Color) colorful.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	a := float64(n.A) / 255
	blend := func(v uint8) float64 {
		return (float64(v)*a + 255*(1-a)) / 255
	}
	return colorful.Color{R: blend(n.R), G: blend(n.G), B: blend(n.B)}
}

// dimmedGray renders a matching pixel as washed-out grayscale, the same
// background treatment pixelmatch uses, so differing pixels stand out.
func dimmedGray(c colorful.Color) color.NRGBA {
	y := 0.299*c.R + 0.587*c.G + 0.114*c.B
	v := uint8(255 - (1-y)*255*0.1)
	return color.NRGBA{R: v, G: v, B: v, A: 255}
}
