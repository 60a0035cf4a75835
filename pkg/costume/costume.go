// Package costume turns user-supplied raster images into the depth-32
// Forms that legacy Scratch files store, and back. Image decoding is
// delegated to the registered codecs: PNG, JPEG and GIF from the
// standard library plus BMP and TIFF from golang.org/x/image.
package costume

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/squeaklab/sbmedia/pkg/squeak"
)

// Costume is a named image, the unit a sprite's look is stored as.
type Costume struct {
	Name string
	Form *squeak.Form

	// RotationCenter is the point the sprite rotates around, in image
	// coordinates.
	RotationCenterX int
	RotationCenterY int

	logger hclog.Logger
}

// New wraps an already-decoded Form as a costume.
func New(name string, form *squeak.Form) *Costume {
	return &Costume{Name: name, Form: form, logger: hclog.NewNullLogger()}
}

// SetLogger attaches a logger used by the file operations.
func (c *Costume) SetLogger(logger hclog.Logger) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	c.logger = logger
}

// FromFile reads any raster image in a registered format and builds a
// depth-32 costume from it. The costume name is the file's base name
// without extension, matching how the legacy editor imported pictures.
func FromFile(path string) (*Costume, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	img, format, err := image.Decode(in)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	form, err := squeak.FromImage(img)
	if err != nil {
		return nil, err
	}

	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	c := New(name, form)

	// Imported pictures rotate around their middle, as the legacy
	// editor set them up.
	bounds := img.Bounds()
	c.RotationCenterX = bounds.Dx() / 2
	c.RotationCenterY = bounds.Dy() / 2

	c.logger.Debug("imported costume", "path", path, "format", format)
	return c, nil
}

// Size returns the costume's pixel dimensions.
func (c *Costume) Size() (width, height int, err error) {
	width, height, _, err = c.Form.ToArray()
	return width, height, err
}

// SavePNG writes the costume's pixels to a PNG file.
func (c *Costume) SavePNG(path string) error {
	return c.Form.SavePNG(path)
}

// Image decodes the costume into a standard image value.
func (c *Costume) Image() (image.Image, error) {
	width, height, rgba, err := c.Form.ToArray()
	if err != nil {
		return nil, err
	}
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	copy(img.Pix, rgba)
	return img, nil
}

// Thumbnail produces a preview image scaled to fit within maxWidth x
// maxHeight, preserving aspect ratio. Nearest-neighbour sampling keeps
// hard pixel edges, which suits the low-depth art these files hold.
func (c *Costume) Thumbnail(maxWidth, maxHeight uint) (image.Image, error) {
	img, err := c.Image()
	if err != nil {
		return nil, err
	}
	return resize.Thumbnail(maxWidth, maxHeight, img, resize.NearestNeighbor), nil
}

// SaveThumbnailPNG writes a scaled preview of the costume as PNG.
func (c *Costume) SaveThumbnailPNG(path string, maxWidth, maxHeight uint) error {
	thumb, err := c.Thumbnail(maxWidth, maxHeight)
	if err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(out, thumb); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
