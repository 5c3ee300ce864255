// Package image turns arbitrary uploaded photos into bounded, web-optimized
// images: orientation fixed, longest side capped, re-encoded as lossy WebP.
package image

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	// ErrInvalidImage means the input could not be decoded. Not retryable.
	ErrInvalidImage = errors.New("image: invalid or unsupported input")
	// ErrTransformFailed means decoding worked but encoding did not.
	ErrTransformFailed = errors.New("image: transform failed")
)

const DefaultMaxDimension = 1920

// Encoder writes a decoded image in the delivery format.
type Encoder interface {
	Encode(ctx context.Context, img image.Image) ([]byte, error)
	Ext() string
	ContentType() string
}

type Output struct {
	Data        []byte
	Ext         string
	ContentType string
	Width       int
	Height      int
}

func (o *Output) Size() int64 {
	return int64(len(o.Data))
}

type Normalizer struct {
	maxDimension int
	encoder      Encoder
}

func NewNormalizer(maxDimension int, encoder Encoder) *Normalizer {
	if maxDimension <= 0 {
		maxDimension = DefaultMaxDimension
	}
	return &Normalizer{maxDimension: maxDimension, encoder: encoder}
}

// Normalize decodes r, applies EXIF orientation, fits the result inside a
// maxDimension square without ever enlarging it, and re-encodes it.
func (n *Normalizer) Normalize(ctx context.Context, r io.Reader) (*Output, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: read input: %v", ErrInvalidImage, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidImage)
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	img = n.fit(img)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	encoded, err := n.encoder.Encode(ctx, img)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransformFailed, err)
	}

	b := img.Bounds()
	return &Output{
		Data:        encoded,
		Ext:         n.encoder.Ext(),
		ContentType: n.encoder.ContentType(),
		Width:       b.Dx(),
		Height:      b.Dy(),
	}, nil
}

func (n *Normalizer) fit(img image.Image) image.Image {
	b := img.Bounds()
	if b.Dx() <= n.maxDimension && b.Dy() <= n.maxDimension {
		return img
	}
	return imaging.Fit(img, n.maxDimension, n.maxDimension, imaging.Lanczos)
}
