// Package imageio encodes rendered images to files.
package imageio

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lmittmann/ppm"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/xfmoulet/qoi"
	"go.uber.org/multierr"
	"golang.org/x/image/bmp"

	"github.com/df07/go-glimpse/pkg/film"
)

// Format is an output image encoding
type Format string

// Supported formats
const (
	PNG  Format = "png"
	JPEG Format = "jpeg"
	BMP  Format = "bmp"
	PPM  Format = "ppm"
	QOI  Format = "qoi"
)

// JPEGQuality is the quality used for JPEG output
const JPEGQuality = 95

var extensions = map[string]Format{
	".png":  PNG,
	".jpg":  JPEG,
	".jpeg": JPEG,
	".bmp":  BMP,
	".ppm":  PPM,
	".qoi":  QOI,
}

// Extensions returns the supported file extensions in sorted order
func Extensions() []string {
	exts := lo.Keys(extensions)
	sort.Strings(exts)
	return exts
}

// FormatFromPath picks the format from path's extension, case-insensitively
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	format, ok := extensions[ext]
	if !ok {
		return "", errors.Errorf("unsupported image extension %q for %q (supported: %s)",
			ext, path, strings.Join(Extensions(), ", "))
	}
	return format, nil
}

// ToRGBA converts img to a standard image with row 0 at the top
func ToRGBA(img *film.Image) *image.RGBA {
	w, h := img.Width(), img.Height()
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b := img.At(x, h-1-y)
			out.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return out
}

// Encode writes img to w in the given format
func Encode(w io.Writer, img *film.Image, format Format) error {
	rgba := ToRGBA(img)
	var err error
	switch format {
	case PNG:
		err = png.Encode(w, rgba)
	case JPEG:
		err = jpeg.Encode(w, rgba, &jpeg.Options{Quality: JPEGQuality})
	case BMP:
		err = bmp.Encode(w, rgba)
	case PPM:
		err = ppm.Encode(w, rgba)
	case QOI:
		err = qoi.Encode(w, rgba)
	default:
		return errors.Errorf("unsupported image format %q", format)
	}
	return errors.Wrapf(err, "encoding %s", format)
}

// Write encodes img to path, creating parent directories as needed.
// The format comes from the file extension.
func Write(path string, img *film.Image) (err error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "creating directory for %q", path)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %q", path)
	}
	defer func() {
		err = multierr.Combine(err, errors.Wrapf(f.Close(), "closing %q", path))
	}()

	return Encode(f, img, format)
}
