package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/esimov/ico2svg"
	"github.com/spf13/cobra"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info <input>",
	Short: "List available sizes in an ICO",
	Long: `List the distinct frame sizes stored in the icon <input>, smallest first.

With --size only the frame the convert command would pick for that size is listed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		size, _ := cmd.Flags().GetString("size")

		sizes, err := listSizes(args[0], size)
		if err != nil {
			return err
		}
		return printSizes(cmd.OutOrStdout(), sizes, asJSON)
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().Bool("json", false, "output machine-readable JSON")
	infoCmd.Flags().String("size", "", "show only the frame selected for this size (e.g. 256 or 256x256)")
}

// listSizes returns the icon sizes, narrowed down to the selected frame if size is set.
func listSizes(src, size string) ([]ico2svg.Size, error) {
	dir, err := ico2svg.Catalog(src)
	if err != nil {
		return nil, err
	}
	req, err := ico2svg.ParseSize(size)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return dir.Sizes(), nil
	}
	fd, err := ico2svg.Select(dir.Frames, req)
	if err != nil {
		return nil, err
	}
	return []ico2svg.Size{fd.Size()}, nil
}

func printSizes(w io.Writer, sizes []ico2svg.Size, asJSON bool) error {
	if asJSON {
		if sizes == nil {
			sizes = []ico2svg.Size{}
		}
		return json.NewEncoder(w).Encode(sizes)
	}
	if len(sizes) == 0 {
		_, err := fmt.Fprintln(w, "No sizes found")
		return err
	}
	fmt.Fprintln(w, "Available sizes:")
	for _, s := range sizes {
		fmt.Fprintf(w, " - %s\n", s)
	}
	return nil
}
