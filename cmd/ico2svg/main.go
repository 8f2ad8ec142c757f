package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/esimov/ico2svg/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

const helpBanner = `
┬┌─┐┌─┐  ┌─┐┬  ┬┌─┐
││  │ │──└─┐└┐┌┘│ ┬
┴└─┘└─┘  └─┘ └┘ └─┘

Windows icon to SVG converter.
`

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ico2svg",
	Short: "Convert ICO to SVG (raster embed or naive vector)",
	Long: helpBanner + `
The raster mode embeds the selected icon frame as a base64 encoded PNG.
The vector mode writes one rectangle per horizontal run of same colored
pixels, which is exact but grows quickly on anti-aliased icons.

Calling ico2svg without a subcommand is the same as calling "ico2svg convert".`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/ico2svg.yaml or ./ico2svg.yaml)")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	viper.BindPFlag("no-color", rootCmd.PersistentFlags().Lookup("no-color"))

	AddVersionFlag(rootCmd.PersistentFlags())
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config"))
		}
		viper.AddConfigPath(".")
		viper.SetConfigName("ico2svg")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("ico2svg")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		log.Fatalf(utils.DecorateText("Unable to read the config file: %v", utils.ErrorMessage), err)
	}

	utils.NoColor = viper.GetBool("no-color") || !term.IsTerminal(int(os.Stderr.Fd()))
}

// normalizeArgs prepends the convert subcommand to legacy invocations
// like "ico2svg icon.ico icon.svg --size 32".
func normalizeArgs(args []string) []string {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") && args[0] != pipeName {
		return args
	}
	for _, c := range rootCmd.Commands() {
		if c.Name() == args[0] || c.HasAlias(args[0]) {
			return args
		}
	}
	switch args[0] {
	case "help", "completion":
		return args
	}
	return append([]string{convertCmd.Name()}, args...)
}

func main() {
	log.SetFlags(0)

	rootCmd.SetArgs(normalizeArgs(os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, utils.DecorateText("Error: "+err.Error(), utils.ErrorMessage))
		os.Exit(1)
	}
}
