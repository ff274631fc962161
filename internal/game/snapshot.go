package game

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	"github.com/pkg/errors"

	"github.com/iburimskiy/electric-network/internal/capture"
)

// chooseSnapshotPath asks where to save the next frame. An empty path and a
// nil error mean the dialog was cancelled.
func chooseSnapshotPath() (string, error) {
	filename, err := zenity.SelectFileSave(
		zenity.Title("Save Snapshot"),
		zenity.Filename("hero.png"),
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
		return "", errors.Wrap(err, "snapshot dialog")
	}
	return filename, nil
}

// writeSnapshot copies the presented screen into an RGBA image and saves it.
func writeSnapshot(screen *ebiten.Image, path string) error {
	img := image.NewRGBA(screen.Bounds())
	screen.ReadPixels(img.Pix)
	return capture.WritePNGFile(path, img)
}
