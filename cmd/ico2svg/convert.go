package main

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/esimov/ico2svg"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <input> <output>",
	Short: "Convert an ICO to SVG",
	Long: `Convert the icon <input> into the SVG document <output>.

<input> can be an .ico file, an http(s) URL, "-" for stdin, or a directory.
When it is a directory every .ico file below it is converted into <output>,
which is created if needed, keeping the relative layout.
<output> can be "-" for stdout when converting a single icon.

The frame is chosen by --size: the exact size if present, else the smallest
larger frame, else the largest frame. Without --size the largest frame is used.`,
	Example: `  ico2svg convert favicon.ico favicon.svg
  ico2svg convert app.ico app_32.svg --size 32
  ico2svg convert app.ico app.svg --mode vector --alpha-threshold 128 --background white
  ico2svg convert ./icons ./svgs --conc 4`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		proc := processorFromConfig()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return proc.Execute(ctx, &ico2svg.Ops{
			Src:      args[0],
			Dst:      args[1],
			PipeName: pipeName,
			Workers:  viper.GetInt("conc"),
		})
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	flags := convertCmd.Flags()
	flags.String("mode", string(ico2svg.Raster), "conversion mode: raster or vector")
	flags.Int("alpha-threshold", ico2svg.DefaultAlphaThreshold, "vector mode: minimum alpha (0-255) to treat a pixel as solid")
	flags.String("background", ico2svg.Transparent, `background color (CSS name or hex) or "transparent"`)
	flags.String("size", "", "desired icon size, e.g. 256 or 256x256 (default largest)")
	flags.String("style", string(ico2svg.StyleRect), "vector mode: rect (one element per run) or path (one element per color)")
	flags.Int("conc", runtime.NumCPU(), "number of icons to convert concurrently when the input is a directory")

	viper.BindPFlags(flags)
}

// processorFromConfig builds the processor from flags, environment and config file.
func processorFromConfig() *ico2svg.Processor {
	return &ico2svg.Processor{
		Mode:           ico2svg.Mode(viper.GetString("mode")),
		Style:          ico2svg.Style(viper.GetString("style")),
		Background:     viper.GetString("background"),
		Size:           viper.GetString("size"),
		AlphaThreshold: viper.GetInt("alpha-threshold"),
	}
}
