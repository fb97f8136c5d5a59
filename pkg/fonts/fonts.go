// Package fonts locates and loads system fonts for raster output.
//
// SVG output names a CSS font stack and lets the viewer resolve it; the PNG
// sink has to rasterise glyphs itself, so it needs a real font file. This
// package searches the system font directories for a usable sans-serif face
// and caches the parsed font.
package fonts

import (
	"os"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"github.com/matzehuels/plotdeck/pkg/errors"
)

// candidates are tried in order. The list covers the common Linux, macOS,
// and Windows sans-serif fonts.
var candidates = []string{
	"DejaVuSans.ttf",
	"LiberationSans-Regular.ttf",
	"Helvetica.ttc",
	"Arial.ttf",
	"FreeSans.ttf",
}

var (
	loadOnce   sync.Once
	loadedFont *truetype.Font
	loadErr    error
)

// Find returns the path of the first available candidate font.
func Find() (string, error) {
	for _, name := range candidates {
		if path, err := findfont.Find(name); err == nil {
			return path, nil
		}
	}
	return "", errors.New(errors.ErrCodeFileNotFound, "no usable sans-serif font found on this system")
}

// load parses the system font once and caches it for all face sizes.
func load() (*truetype.Font, error) {
	loadOnce.Do(func() {
		path, err := Find()
		if err != nil {
			loadErr = err
			return
		}
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = errors.Wrap(errors.ErrCodeInternal, err, "read font %s", path)
			return
		}
		loadedFont, loadErr = truetype.Parse(data)
		if loadErr != nil {
			loadErr = errors.Wrap(errors.ErrCodeInternal, loadErr, "parse font %s", path)
		}
	})
	return loadedFont, loadErr
}

// Face returns a font.Face at the given point size. Faces are cheap to
// create once the font is parsed; callers should still close over one face
// per size rather than calling this per glyph.
func Face(size float64) (font.Face, error) {
	f, err := load()
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{Size: size}), nil
}
