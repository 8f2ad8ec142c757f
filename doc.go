/*
Package ico2svg converts Windows icon (.ico) files into SVG documents.

Two conversion modes are supported: the raster mode embeds the selected icon
frame as a base64 encoded PNG image element, while the vector mode writes
every horizontal run of same colored pixels as a one pixel tall rectangle.

The package provides a command line interface with the convert, info and
render subcommands. To check the supported commands type:

	$ ico2svg --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"fmt"
		"github.com/esimov/ico2svg"
	)

	func main() {
		p := &ico2svg.Processor{
			Mode:           ico2svg.Vector,
			AlphaThreshold: ico2svg.DefaultAlphaThreshold,
			Background:     "white",
			Size:           "32",
		}

		if err := ico2svg.Convert("favicon.ico", "favicon.svg", p); err != nil {
			fmt.Printf("Error converting the icon: %s", err.Error())
		}
	}
*/
package ico2svg
