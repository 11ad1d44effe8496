package batch

import (
	"os"
	"path/filepath"
	"testing"

	ico "github.com/sergeymakinen/go-ico"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/umami-mobile/umark/internal/logo"
)

func TestGenerateICO(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)

	out, err := w.GenerateICO()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "favicon.ico"), out.Path)
	assert.Equal(t, 48, out.Width)
	assert.Equal(t, 48, out.Height)

	info, err := os.Stat(out.Path)
	require.NoError(t, err)
	require.Positive(t, info.Size())

	f, err := os.Open(out.Path)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := ico.DecodeConfig(f)
	require.NoError(t, err, "favicon.ico must decode")
	assert.Contains(t, []int{16, 32, 48}, cfg.Width)
}

func TestDownscale(t *testing.T) {
	src := logo.SolidBackground(64, logo.Background)
	dst := downscale(src, 16)
	require.Equal(t, 16, dst.Bounds().Dx())
	require.Equal(t, 16, dst.Bounds().Dy())

	got := dst.NRGBAAt(8, 8)
	assert.InDelta(t, logo.Background.R, got.R, 1)
	assert.InDelta(t, logo.Background.G, got.G, 1)
	assert.InDelta(t, logo.Background.B, got.B, 1)
	assert.Equal(t, uint8(255), got.A)
}
