package storage

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiskUpload(t *testing.T) {
	d := NewDiskStorage(t.TempDir(), "http://localhost:8080/static/")

	url, err := d.Upload(context.Background(), strings.NewReader("brief contents"), "project-brief.pdf", "artwork")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "http://localhost:8080/static/artwork/"), url)
	require.True(t, strings.HasSuffix(url, ".pdf"), url)

	name := filepath.Base(url)
	data, err := os.ReadFile(filepath.Join(d.Dir, "artwork", name))
	require.NoError(t, err)
	require.Equal(t, "brief contents", string(data))
}

func TestDiskUploadNamesNeverCollide(t *testing.T) {
	d := NewDiskStorage(t.TempDir(), "http://cdn.local")

	first, err := d.Upload(context.Background(), strings.NewReader("a"), "same.pdf", "artwork")
	require.NoError(t, err)
	second, err := d.Upload(context.Background(), strings.NewReader("b"), "same.pdf", "artwork")
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}

func TestDiskUploadWritesImageThumbnail(t *testing.T) {
	d := NewDiskStorage(t.TempDir(), "http://cdn.local")

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 600, 400))))

	url, err := d.Upload(context.Background(), &buf, "mockup.png", "artwork")
	require.NoError(t, err)

	name := filepath.Base(url)
	base := strings.TrimSuffix(name, filepath.Ext(name))
	_, err = os.Stat(filepath.Join(d.Dir, "artwork", "thumb", base+".jpg"))
	require.NoError(t, err)
}
