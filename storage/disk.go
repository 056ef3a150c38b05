package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"inkpress/utils"

	"github.com/disintegration/imaging"
)

// DiskStorage writes uploads under Dir and serves them at BaseURL. Stored
// names are "<unix-millis>-<random>.<ext>" so concurrent uploads of files
// with the same name never collide.
type DiskStorage struct {
	Dir     string
	BaseURL string
}

func NewDiskStorage(dir, baseURL string) *DiskStorage {
	return &DiskStorage{Dir: dir, BaseURL: strings.TrimRight(baseURL, "/")}
}

func (d *DiskStorage) Upload(ctx context.Context, r io.Reader, filename, folder string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(utils.SanitizeFilename(filename)))
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), utils.GenerateRandomString(8), ext)

	destDir := filepath.Join(d.Dir, folder)
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	destPath := filepath.Join(destDir, name)
	out, err := os.Create(destPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, r); err != nil {
		os.Remove(destPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	if isImageExt(ext) {
		if err := d.writeThumbnail(destPath, folder, name); err != nil {
			// thumbnail is best effort; the original upload already succeeded
			log.Println("storage: thumbnail error for", name, ":", err)
		}
	}

	return d.BaseURL + "/" + folder + "/" + name, nil
}

func (d *DiskStorage) writeThumbnail(srcPath, folder, name string) error {
	img, err := imaging.Open(srcPath)
	if err != nil {
		return err
	}

	thumbDir := filepath.Join(d.Dir, folder, "thumb")
	if err := os.MkdirAll(thumbDir, 0755); err != nil {
		return err
	}

	thumb := imaging.Resize(img, 300, 0, imaging.Lanczos)
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return imaging.Save(thumb, filepath.Join(thumbDir, base+".jpg"))
}

func isImageExt(ext string) bool {
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tif", ".tiff":
		return true
	default:
		return false
	}
}
