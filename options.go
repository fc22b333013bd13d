package snapdiff

// Algorithm names a pixel-diff strategy for image comparisons.
type Algorithm string

const (
	// AlgorithmPerceptualThreshold counts pixels whose perceptual color
	// delta exceeds Options.Threshold, with anti-aliasing detection. Fast
	// and tunable; the default.
	AlgorithmPerceptualThreshold Algorithm = "perceptual-threshold"

	// AlgorithmColorDistanceCIE94 counts pixels whose CIE94 color distance
	// exceeds 1.0 dE, the conventional just-noticeable difference. Slower
	// but closer to human perception; ignores Options.Threshold.
	AlgorithmColorDistanceCIE94 Algorithm = "color-distance-cie94"
)

// defaultThreshold is the per-pixel color-closeness tolerance used when
// Options.Threshold is nil.
const defaultThreshold = 0.2

// Options configures a single comparison call. The zero value (and a nil
// *Options) means: default threshold, zero tolerance for differing pixels,
// perceptual-threshold algorithm.
//
// Pointer fields distinguish "not set" from an explicit zero, which matters
// for the pixel caps: MaxDiffPixels of 0 is a deliberate zero-tolerance cap,
// while nil leaves the cap to MaxDiffPixelRatio if that is set.
type Options struct {
	// Threshold is the per-pixel color-closeness tolerance in [0, 1] passed
	// to the perceptual algorithm. Defaults to 0.2. Ignored by
	// AlgorithmColorDistanceCIE94.
	Threshold *float64

	// MaxDiffPixels is an absolute cap on the number of differing pixels.
	MaxDiffPixels *int

	// MaxDiffPixelRatio caps differing pixels as a fraction of total pixels,
	// in [0, 1].
	//
	// MaxDiffPixels and MaxDiffPixelRatio are independent. When both are set
	// the stricter bound wins. When neither is set, any differing pixel at
	// all fails the comparison.
	MaxDiffPixelRatio *float64

	// Algorithm selects the pixel-diff strategy. Defaults to
	// AlgorithmPerceptualThreshold. Any other value than the two named
	// constants is a configuration error and aborts the comparison.
	Algorithm Algorithm
}

// resolved is an Options with defaults applied, computed once at the top of
// each compare call.
type resolved struct {
	threshold         float64
	maxDiffPixels     *int
	maxDiffPixelRatio *float64
	algorithm         Algorithm
}

func (o *Options) resolve() resolved {
	r := resolved{
		threshold: defaultThreshold,
		algorithm: AlgorithmPerceptualThreshold,
	}
	if o == nil {
		return r
	}
	if o.Threshold != nil {
		r.threshold = *o.Threshold
	}
	if o.Algorithm != "" {
		r.algorithm = o.Algorithm
	}
	r.maxDiffPixels = o.MaxDiffPixels
	r.maxDiffPixelRatio = o.MaxDiffPixelRatio
	return r
}

// maxDiffCount returns the effective cap on differing pixels for an image
// with total pixels. When both caps are present the minimum applies; when
// neither is present the cap is zero.
//
// The ratio-derived cap is kept fractional on purpose: a count is over the
// cap when count > total*ratio, without rounding in either direction.
func (r resolved) maxDiffCount(total int) float64 {
	var limit float64
	switch {
	case r.maxDiffPixels != nil && r.maxDiffPixelRatio != nil:
		limit = float64(total) * *r.maxDiffPixelRatio
		if abs := float64(*r.maxDiffPixels); abs < limit {
			limit = abs
		}
	case r.maxDiffPixels != nil:
		limit = float64(*r.maxDiffPixels)
	case r.maxDiffPixelRatio != nil:
		limit = float64(total) * *r.maxDiffPixelRatio
	}
	return limit
}

// Float64 returns a pointer to v, for filling optional Options fields.
func Float64(v float64) *float64 { return &v }

// Int returns a pointer to v, for filling optional Options fields.
func Int(v int) *int { return &v }
