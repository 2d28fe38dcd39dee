package thumbnail

import (
	"bytes"
	"chatview/errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"log/slog"

	"github.com/gabriel-vasile/mimetype"
	"github.com/samber/lo"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

var supportedTypes = []string{"image/png", "image/jpeg", "image/gif", "image/bmp", "image/webp"}

// maxSourcePixels bounds the decoded size of a source image.
const maxSourcePixels = 40_000_000

// Thumbnail is a rendered PNG thumbnail.
type Thumbnail struct {
	Data   []byte
	Width  int
	Height int
}

type Renderer struct {
	log *slog.Logger
}

func NewRenderer(log *slog.Logger) Renderer {
	return Renderer{log: log}
}

// Render scales the image in data according to p and encodes the result as PNG.
// Fit never enlarges the image; crop always fills the whole box.
func (r Renderer) Render(data []byte, p Params) (Thumbnail, error) {
	if p.Width <= 0 || p.Height <= 0 {
		return Thumbnail{}, fmt.Errorf("%w: %dx%d", errors.ErrInvalidSize, p.Width, p.Height)
	}
	mtype := mimetype.Detect(data)
	if !lo.ContainsBy(supportedTypes, func(t string) bool { return mtype.Is(t) }) {
		return Thumbnail{}, fmt.Errorf("%w: %s", errors.ErrUnsupportedMedia, mtype.String())
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Thumbnail{}, fmt.Errorf("failed to read %s header: %w", mtype.String(), err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > maxSourcePixels {
		return Thumbnail{}, fmt.Errorf("%w: %dx%d", errors.ErrImageTooLarge, cfg.Width, cfg.Height)
	}

	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Thumbnail{}, fmt.Errorf("failed to decode %s image: %w", mtype.String(), err)
	}
	bounds := src.Bounds()
	r.log.Debug("Thumbnail: decoded source image",
		"format", format,
		"width", bounds.Dx(),
		"height", bounds.Dy(),
		"target_width", p.Width,
		"target_height", p.Height,
		"fill_mode", p.FillMode.String())

	var dst *image.NRGBA
	switch p.FillMode {
	case PreserveAspectCrop:
		dst = image.NewNRGBA(image.Rect(0, 0, p.Width, p.Height))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, cropRect(bounds, p.Width, p.Height), draw.Src, nil)
	default:
		w, h := fitSize(bounds.Dx(), bounds.Dy(), p.Width, p.Height)
		dst = image.NewNRGBA(image.Rect(0, 0, w, h))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Src, nil)
	}

	var buf bytes.Buffer
	if err = png.Encode(&buf, dst); err != nil {
		return Thumbnail{}, fmt.Errorf("failed to encode thumbnail: %w", err)
	}
	r.log.Debug("Thumbnail: rendered",
		"width", dst.Bounds().Dx(),
		"height", dst.Bounds().Dy(),
		"output_size_bytes", buf.Len())

	return Thumbnail{Data: buf.Bytes(), Width: dst.Bounds().Dx(), Height: dst.Bounds().Dy()}, nil
}

// fitSize returns the largest size with the source aspect ratio fitting in the box,
// without enlarging the source.
func fitSize(srcW, srcH, boxW, boxH int) (int, int) {
	if srcW <= boxW && srcH <= boxH {
		return srcW, srcH
	}
	if srcW*boxH > srcH*boxW {
		// Wider than the box
		return boxW, max(1, srcH*boxW/srcW)
	}
	return max(1, srcW*boxH/srcH), boxH
}

// cropRect returns the centred region of bounds that has the aspect ratio of the box.
func cropRect(bounds image.Rectangle, boxW, boxH int) image.Rectangle {
	srcW, srcH := bounds.Dx(), bounds.Dy()
	w, h := srcW, srcH
	if srcW*boxH > srcH*boxW {
		w = max(1, srcH*boxW/boxH)
	} else {
		h = max(1, srcW*boxH/boxW)
	}
	x0 := bounds.Min.X + (srcW-w)/2
	y0 := bounds.Min.Y + (srcH-h)/2
	return image.Rect(x0, y0, x0+w, y0+h)
}
