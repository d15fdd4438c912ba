package game

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	"github.com/pkg/errors"
)

// captureScreen copies the screen pixels into an RGBA image.
func captureScreen(screen *ebiten.Image) *image.RGBA {
	b := screen.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	screen.ReadPixels(img.Pix)
	return img
}

// saveSnapshotDialog asks for a destination and writes img there as PNG.
// An empty path and nil error mean the user cancelled.
func saveSnapshotDialog(img image.Image) (string, error) {
	filename, err := zenity.SelectFileSave(
		zenity.Title("Save Screenshot"),
		zenity.Filename("particle-field.png"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", errors.Wrap(err, "save dialog")
	}
	if !strings.EqualFold(filepath.Ext(filename), ".png") {
		filename += ".png"
	}
	return filename, writePNG(filename, img)
}

func writePNG(filename string, img image.Image) error {
	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "create screenshot")
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, "encode %s", filename)
	}
	return errors.Wrapf(f.Close(), "close %s", filename)
}
