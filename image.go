package iconize

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
)

// Encode writes the rendered icon to a destination of type io.Writer.
// When the writer is a file the encoder is chosen by the file extension
// (png, bmp, jpg); any other writer receives PNG, the icon native format.
func Encode(w io.Writer, img *image.NRGBA) error {
	if f, ok := w.(*os.File); ok {
		ext := filepath.Ext(f.Name())
		switch ext {
		case "", ".png":
			return png.Encode(w, img)
		case ".bmp":
			return bmp.Encode(w, img)
		case ".jpg", ".jpeg":
			return jpeg.Encode(w, img, &jpeg.Options{Quality: 100})
		default:
			return fmt.Errorf("unsupported image format: %s", ext)
		}
	}
	return png.Encode(w, img)
}

// Save encodes the icon into the file at path, creating or overwriting it.
// The destination directory must exist and be writable.
func Save(img *image.NRGBA, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create the destination file: %w", err)
	}
	if err := Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
