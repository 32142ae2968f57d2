package charts

import (
	"bytes"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func TestSaveFormatByExtension(t *testing.T) {
	dir := t.TempDir()
	img := drawCaption(blank(64, 32), "x")
	decoders := map[string]func([]byte) (image.Image, error){
		"a.JPG":  func(b []byte) (image.Image, error) { return jpeg.Decode(bytes.NewReader(b)) },
		"a.bmp":  func(b []byte) (image.Image, error) { return bmp.Decode(bytes.NewReader(b)) },
		"a.tiff": func(b []byte) (image.Image, error) { return tiff.Decode(bytes.NewReader(b)) },
	}
	for name, dec := range decoders {
		p := filepath.Join(dir, name)
		require.NoError(t, Save(p, img), name)
		raw, err := os.ReadFile(p)
		require.NoError(t, err)
		got, err := dec(raw)
		require.NoError(t, err, name)
		assert.Equal(t, img.Bounds(), got.Bounds(), name)
	}
}

func TestSaveOverwritesExisting(t *testing.T) {
	p := filepath.Join(t.TempDir(), "o.png")
	require.NoError(t, os.WriteFile(p, bytes.Repeat([]byte("stale"), 10000), 0o644))
	require.NoError(t, Save(p, blank(8, 8)))
	raw, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.False(t, bytes.Contains(raw, []byte("stale")))
}

func TestSaveRejectsUnknownExtension(t *testing.T) {
	p := filepath.Join(t.TempDir(), "o.webp")
	err := Save(p, blank(8, 8))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	_, statErr := os.Stat(p)
	assert.True(t, os.IsNotExist(statErr))
}

func TestDrawCaptionMarksImage(t *testing.T) {
	img := drawCaption(blank(200, 60), "no data")
	plain := blank(200, 60)
	assert.NotEqual(t, plain.Pix, img.Pix)
}
