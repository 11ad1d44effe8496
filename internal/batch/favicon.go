package batch

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"

	ico "github.com/sergeymakinen/go-ico"
	"github.com/umami-mobile/umark/internal/logo"
	xdraw "golang.org/x/image/draw"
)

const icoName = "favicon.ico"

// Classic favicon sizes; browsers pick the closest match.
var icoSizes = [...]int{16, 32, 48}

// GenerateICO writes a multi-size favicon.ico. The sub-images are
// downscaled from a 1024px master render instead of being drawn directly,
// since the parametric geometry degenerates below ~20px.
func (w *Writer) GenerateICO() (Written, error) {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return Written{}, fmt.Errorf("create output directory: %w", err)
	}

	master := logo.Build(1024, logo.DefaultOptions())

	var buf bytes.Buffer
	images := make([]image.Image, 0, len(icoSizes))
	for _, size := range icoSizes {
		images = append(images, downscale(master, size))
	}
	if err := ico.EncodeAll(&buf, images); err != nil {
		return Written{}, fmt.Errorf("encode %s: %w", icoName, err)
	}

	destination := filepath.Join(w.Dir, icoName)
	if err := os.WriteFile(destination, buf.Bytes(), 0o644); err != nil {
		return Written{}, fmt.Errorf("write %s: %w", destination, err)
	}

	largest := icoSizes[len(icoSizes)-1]
	w.Logger.Infof("batch", "wrote %s (%d sizes)", destination, len(icoSizes))
	return Written{Path: destination, Width: largest, Height: largest}, nil
}

func downscale(src image.Image, size int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}
