package main

import (
	"fmt"
	"os"

	"github.com/disintegration/imaging"
	"github.com/esimov/ico2svg/render"
	"github.com/esimov/ico2svg/utils"
	"github.com/spf13/cobra"
)

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render <input.svg> <output.png>",
	Short: "Rasterize a vector mode SVG to PNG",
	Long: `Rasterize an SVG produced by "convert --mode vector" into a PNG image,
to check the vectorized result against the source icon.

Embedded images are not drawn, so raster mode documents render empty.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		scale, _ := cmd.Flags().GetFloat64("scale")

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("unable to open the source file: %w", err)
		}
		defer f.Close()

		img, err := render.Rasterize(f, scale)
		if err != nil {
			return err
		}
		if err := imaging.Save(img, args[1]); err != nil {
			return fmt.Errorf("unable to save the rendered image: %w", err)
		}

		fmt.Fprintf(cmd.ErrOrStderr(), "The rendered image has been saved as: %s\n",
			utils.DecorateText(args[1], utils.SuccessMessage))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().Float64("scale", 1, "scale factor applied to the SVG view box")
}
