package icon

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/lumos-dev/icongen/internal/render"
)

// Output describes one file written by GenerateSet.
type Output struct {
	Name string // file name, e.g. "icon-64.png"
	Path string // full path of the written file
	Size int    // square pixel dimension
}

// GenerateSet renders the icon and writes the full set of PNG variants into
// dir, creating the directory if needed:
//
//	icon.png      128×128  master rendition
//	icon-512.png  512×512  large rendition
//	icon-64.png    64×64   Lanczos downscale of the master
//	icon-32.png    32×32   Lanczos downscale of the master
//
// Writes happen in the order above and the first failure aborts the set;
// files already written are left in place.
func GenerateSet(dir string) ([]Output, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	master := Render(Master())
	large := Render(Large())

	variants := []struct {
		name string
		img  image.Image
		size int
	}{
		{"icon.png", master, 128},
		{"icon-512.png", large, 512},
		{"icon-64.png", render.Fit(master, 64), 64},
		{"icon-32.png", render.Fit(master, 32), 32},
	}

	outputs := make([]Output, 0, len(variants))
	for _, v := range variants {
		path := filepath.Join(dir, v.name)
		if err := imaging.Save(v.img, path); err != nil {
			return outputs, fmt.Errorf("failed to write %s: %w", v.name, err)
		}
		outputs = append(outputs, Output{Name: v.name, Path: path, Size: v.size})
	}

	return outputs, nil
}
