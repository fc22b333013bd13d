package snapdiff

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPixmap(t *testing.T) {
	pm := NewPixmap(3, 2)
	assert.Equal(t, 3, pm.Width())
	assert.Equal(t, 2, pm.Height())
	assert.Len(t, pm.Data(), 3*2*4)
}

func TestPixmapSetGet(t *testing.T) {
	pm := NewPixmap(4, 4)
	c := color.NRGBA{R: 10, G: 20, B: 30, A: 255}
	pm.SetPixel(2, 1, c)

	assert.Equal(t, c, pm.PixelAt(2, 1))
	assert.Equal(t, color.NRGBA{}, pm.PixelAt(0, 0))

	i := (1*4 + 2) * 4
	assert.Equal(t, []uint8{10, 20, 30, 255}, pm.Data()[i:i+4])
}

func TestPixmapOutOfBounds(t *testing.T) {
	pm := NewPixmap(2, 2)
	for _, p := range []struct{ x, y int }{{-1, 0}, {2, 0}, {0, -1}, {0, 2}} {
		pm.SetPixel(p.x, p.y, color.NRGBA{R: 255, A: 255})
		assert.Equal(t, color.NRGBA{}, pm.PixelAt(p.x, p.y))
	}
	for _, v := range pm.Data() {
		require.Zero(t, v, "out-of-bounds write must not touch the buffer")
	}
}

func TestFromImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	src.SetNRGBA(1, 1, color.NRGBA{B: 255, A: 255})

	pm := FromImage(src)
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, pm.PixelAt(0, 0))
	assert.Equal(t, color.NRGBA{B: 255, A: 255}, pm.PixelAt(1, 1))
}

func TestFromImageNonZeroOrigin(t *testing.T) {
	src := image.NewNRGBA(image.Rect(5, 5, 7, 7))
	src.SetNRGBA(5, 5, color.NRGBA{G: 255, A: 255})

	pm := FromImage(src)
	assert.Equal(t, 2, pm.Width())
	assert.Equal(t, 2, pm.Height())
	assert.Equal(t, color.NRGBA{G: 255, A: 255}, pm.PixelAt(0, 0))
}

func TestPixmapSameSize(t *testing.T) {
	assert.True(t, NewPixmap(3, 4).SameSize(NewPixmap(3, 4)))
	assert.False(t, NewPixmap(3, 4).SameSize(NewPixmap(4, 3)))
}

func TestPixmapImplementsImage(t *testing.T) {
	var _ image.Image = NewPixmap(1, 1)

	pm := NewPixmap(3, 3)
	pm.SetPixel(1, 1, color.NRGBA{R: 1, G: 2, B: 3, A: 4})
	assert.Equal(t, image.Rect(0, 0, 3, 3), pm.Bounds())
	assert.Equal(t, color.NRGBA{R: 1, G: 2, B: 3, A: 4}, pm.At(1, 1))
}
