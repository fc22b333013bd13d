package snapdiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveDefaults(t *testing.T) {
	for _, opts := range []*Options{nil, {}} {
		r := opts.resolve()
		assert.Equal(t, 0.2, r.threshold)
		assert.Equal(t, AlgorithmPerceptualThreshold, r.algorithm)
		assert.Nil(t, r.maxDiffPixels)
		assert.Nil(t, r.maxDiffPixelRatio)
	}
}

func TestResolveExplicit(t *testing.T) {
	r := (&Options{
		Threshold:         Float64(0.5),
		MaxDiffPixels:     Int(12),
		MaxDiffPixelRatio: Float64(0.25),
		Algorithm:         AlgorithmColorDistanceCIE94,
	}).resolve()

	assert.Equal(t, 0.5, r.threshold)
	assert.Equal(t, AlgorithmColorDistanceCIE94, r.algorithm)
	assert.Equal(t, 12, *r.maxDiffPixels)
	assert.Equal(t, 0.25, *r.maxDiffPixelRatio)
}

func TestResolveExplicitZeroThreshold(t *testing.T) {
	// An explicit zero must not be mistaken for "use the default".
	r := (&Options{Threshold: Float64(0)}).resolve()
	assert.Equal(t, 0.0, r.threshold)
}

func TestMaxDiffCount(t *testing.T) {
	tests := []struct {
		name string
		opts *Options
		want float64
	}{
		{"neither set means zero tolerance", &Options{}, 0},
		{"absolute only", &Options{MaxDiffPixels: Int(5)}, 5},
		{"explicit zero absolute", &Options{MaxDiffPixels: Int(0)}, 0},
		{"ratio only", &Options{MaxDiffPixelRatio: Float64(0.5)}, 100},
		{"both, absolute stricter", &Options{MaxDiffPixels: Int(5), MaxDiffPixelRatio: Float64(0.5)}, 5},
		{"both, ratio stricter", &Options{MaxDiffPixels: Int(150), MaxDiffPixelRatio: Float64(0.5)}, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.opts.resolve().maxDiffCount(200)
			assert.Equal(t, tt.want, got)
		})
	}
}
