package images

import (
	"bytes"
	"context"
	"fmt"
	"image"

	"gera_wallet/internal/domain/entities"
	"gera_wallet/internal/usecase/interfaces"

	"github.com/disintegration/imaging"
	"golang.org/x/sync/errgroup"
)

// Variant is one square bounding box a thumbnail is fitted into.
type Variant struct {
	Size    int
	Density entities.ImageDensity
}

// ThumbnailVariants are the wallet thumbnail sizes at 1x, 2x and 3x.
var ThumbnailVariants = []Variant{
	{Size: 90, Density: entities.ImageDensity1x},
	{Size: 180, Density: entities.ImageDensity2x},
	{Size: 270, Density: entities.ImageDensity3x},
}

// DefaultMaxPixels is the largest source image, in pixels, the renderer decodes (16383 x 16383).
const DefaultMaxPixels int64 = 0x3FFF * 0x3FFF

// ThumbnailRenderer fits a source image inside each variant box keeping its
// aspect ratio. Output PNGs are fully opaque.
type ThumbnailRenderer struct {
	variants  []Variant
	maxPixels int64
}

var _ interfaces.IThumbnailRenderer = (*ThumbnailRenderer)(nil)

// NewThumbnailRenderer refuses sources above maxPixels; zero or less means DefaultMaxPixels.
func NewThumbnailRenderer(maxPixels int64) *ThumbnailRenderer {
	if maxPixels <= 0 {
		maxPixels = DefaultMaxPixels
	}
	return &ThumbnailRenderer{variants: ThumbnailVariants, maxPixels: maxPixels}
}

func (r *ThumbnailRenderer) Render(ctx context.Context, name string, source []byte) ([]entities.PassImage, error) {
	if err := r.checkDimensions(source); err != nil {
		return nil, err
	}

	src, err := imaging.Decode(bytes.NewReader(source), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	out := make([]entities.PassImage, len(r.variants))
	g, ctx := errgroup.WithContext(ctx)
	for i, v := range r.variants {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := renderVariant(src, v.Size)
			if err != nil {
				return fmt.Errorf("render %s: %w", v.Density, err)
			}
			out[i] = entities.PassImage{Name: name, Density: v.Density, Data: data}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// checkDimensions reads only the image header, so oversized images are refused
// before their pixel buffer is allocated.
func (r *ThumbnailRenderer) checkDimensions(source []byte) error {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(source))
	if err != nil {
		return fmt.Errorf("decode image: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("decode image: invalid dimensions %dx%d", cfg.Width, cfg.Height)
	}
	if int64(cfg.Width)*int64(cfg.Height) > r.maxPixels {
		return fmt.Errorf("%w: %dx%d pixels, limit %d", interfaces.ErrImageLimitExceeded, cfg.Width, cfg.Height, r.maxPixels)
	}
	return nil
}

func renderVariant(src image.Image, box int) ([]byte, error) {
	w, h := fitInside(src.Bounds().Dx(), src.Bounds().Dy(), box)
	resized := imaging.Resize(src, w, h, imaging.Lanczos)
	removeAlpha(resized)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, imaging.PNG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// fitInside scales w x h so the larger side equals box. Smaller images are enlarged.
func fitInside(w, h, box int) (int, int) {
	if w <= 0 || h <= 0 {
		return box, box
	}
	if w >= h {
		nh := h * box / w
		if nh < 1 {
			nh = 1
		}
		return box, nh
	}
	nw := w * box / h
	if nw < 1 {
		nw = 1
	}
	return nw, box
}

// removeAlpha makes every pixel opaque, keeping its color channels as they are.
func removeAlpha(img *image.NRGBA) {
	for y := 0; y < img.Rect.Dy(); y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+img.Rect.Dx()*4]
		for i := 3; i < len(row); i += 4 {
			row[i] = 0xff
		}
	}
}
