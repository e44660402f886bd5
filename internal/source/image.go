package source

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
}

// ImageSource lists the images of a directory (or a single file) sorted by
// path. Images are never fully decoded; only their headers are read.
type ImageSource struct {
	paths []string
}

func NewImageSource(path string) (*ImageSource, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	var paths []string
	if fi.IsDir() {
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if !entry.IsDir() && imageExts[strings.ToLower(filepath.Ext(entry.Name()))] {
				paths = append(paths, filepath.Join(path, entry.Name()))
			}
		}
		sort.Strings(paths)
	} else {
		paths = []string{path}
	}

	return &ImageSource{paths: paths}, nil
}

func (s *ImageSource) Count() int {
	return len(s.paths)
}

func (s *ImageSource) Name(index int) string {
	if index < 0 || index >= len(s.paths) {
		return ""
	}
	return s.paths[index]
}

// Bounds reads the image header and returns its pixel rectangle.
func (s *ImageSource) Bounds(index int) (image.Rectangle, error) {
	if index < 0 || index >= len(s.paths) {
		return image.Rectangle{}, fmt.Errorf("image index %d out of range [0, %d)", index, len(s.paths))
	}

	f, err := os.Open(s.paths[index])
	if err != nil {
		return image.Rectangle{}, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return image.Rectangle{}, fmt.Errorf("failed to read %s: %w", s.paths[index], err)
	}
	return image.Rect(0, 0, cfg.Width, cfg.Height), nil
}

func (s *ImageSource) Close() error {
	return nil
}
