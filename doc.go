/*
Package iconize deterministically renders square icon assets, either by
rasterizing a fixed list of vector draw operations (the built-in train
artwork) or by drawing a single Unicode glyph from a font, and encodes the
result as PNG.

The package provides a command line interface, supporting various flags for the different rendering modes.
To check the supported commands type:

	$ iconize --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"log"

		"github.com/esimov/iconize"
	)

	func main() {
		p := &iconize.Processor{
			Size: 128,
			Mode: iconize.VectorShapes,
		}

		img, err := p.Render()
		if err != nil {
			log.Fatalf("error rendering the icon: %v", err)
		}
		if err := iconize.Save(img, "icons/icon128.png"); err != nil {
			log.Fatalf("error saving the icon: %v", err)
		}
	}
*/
package iconize
