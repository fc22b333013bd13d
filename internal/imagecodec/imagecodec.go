// Package imagecodec provides per-format image decoding and encoding for
// snapdiff comparisons.
//
// Each supported content type gets one Codec. Decoders enforce a pixel-count
// ceiling before allocating, so an absurdly large baseline is rejected with
// an error instead of silently exhausting memory.
package imagecodec

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/webp"
)

var (
	// ErrEmptyData is returned when the image data is empty.
	ErrEmptyData = errors.New("imagecodec: empty data")

	// ErrTooLarge is returned when the decoded image would exceed the
	// pixel-count ceiling.
	ErrTooLarge = errors.New("imagecodec: image too large")

	// ErrEncodeUnsupported is returned by codecs that can only decode.
	ErrEncodeUnsupported = errors.New("imagecodec: encoding not supported for this format")
)

// maxPixels caps decoded image area at 2^26 pixels (256 MiB of RGBA), well
// beyond any sane screenshot.
const maxPixels = 1 << 26

// Codec decodes a compressed image byte buffer into pixels and encodes
// pixels back into bytes, for one image format.
type Codec interface {
	// ContentType returns the MIME type this codec handles.
	ContentType() string

	// Decode decompresses data into an image. It fails on empty input,
	// malformed data, or dimensions over the decode ceiling.
	Decode(data []byte) (image.Image, error)

	// Encode compresses img. Decode-only codecs return ErrEncodeUnsupported.
	Encode(img image.Image) ([]byte, error)
}

// For returns the codec registered for contentType.
func For(contentType string) (Codec, bool) {
	switch contentType {
	case "image/png":
		return pngCodec{}, true
	case "image/jpeg":
		return jpegCodec{}, true
	case "image/webp":
		return webpCodec{}, true
	}
	return nil, false
}

// PNG returns the PNG codec. Comparators use it to encode diff
// visualizations for formats whose own codec cannot encode.
func PNG() Codec { return pngCodec{} }

// checkSize vets the image header before the full decode runs.
func checkSize(data []byte, decodeConfig func(*bytes.Reader) (image.Config, error)) error {
	if len(data) == 0 {
		return ErrEmptyData
	}
	cfg, err := decodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("imagecodec: decode header: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Width*cfg.Height > maxPixels {
		return fmt.Errorf("%w: %dx%d", ErrTooLarge, cfg.Width, cfg.Height)
	}
	return nil
}

type pngCodec struct{}

func (pngCodec) ContentType() string { return "image/png" }

func (pngCodec) Decode(data []byte) (image.Image, error) {
	err := checkSize(data, func(r *bytes.Reader) (image.Config, error) { return png.DecodeConfig(r) })
	if err != nil {
		return nil, err
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("imagecodec: decode PNG: %w", err)
	}
	return img, nil
}

func (pngCodec) Encode(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("imagecodec: encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

type jpegCodec struct{}

// jpegQuality matches the common screenshot-capture default.
const jpegQuality = 90

func (jpegCodec) ContentType() string { return "image/jpeg" }

func (jpegCodec) Decode(data []byte) (image.Image, error) {
	err := checkSize(data, func(r *bytes.Reader) (image.Config, error) { return jpeg.DecodeConfig(r) })
	if err != nil {
		return nil, err
	}
	img, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("imagecodec: decode JPEG: %w", err)
	}
	return img, nil
}

func (jpegCodec) Encode(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("imagecodec: encode JPEG: %w", err)
	}
	return buf.Bytes(), nil
}

// webpCodec is decode-only: x/image/webp has no encoder, so diff
// visualizations for WebP inputs are emitted as PNG by the caller.
type webpCodec struct{}

func (webpCodec) ContentType() string { return "image/webp" }

func (webpCodec) Decode(data []byte) (image.Image, error) {
	err := checkSize(data, func(r *bytes.Reader) (image.Config, error) { return webp.DecodeConfig(r) })
	if err != nil {
		return nil, err
	}
	img, err := webp.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("imagecodec: decode WebP: %w", err)
	}
	return img, nil
}

func (webpCodec) Encode(image.Image) ([]byte, error) {
	return nil, ErrEncodeUnsupported
}
