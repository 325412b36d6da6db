package main

import (
	"fmt"

	"github.com/gogpu/layout/sceneio"
	"github.com/spf13/cobra"
)

func newSolveCmd(flags *globalFlags) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "solve <scene.yaml>",
		Short: "Run a layout pass and print every node's rectangle",
		Long: `Run a layout pass over the scene and print, for every node in
breadth-first order, its centre, size, rotation in degrees, depth, composed
opacity and visibility.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.solveFile(cmd, args[0])
			if err != nil {
				return err
			}
			results := sceneio.Snapshot(s.Graph)
			switch format {
			case "text":
				return sceneio.WriteText(cmd.OutOrStdout(), results)
			case "yaml":
				return sceneio.WriteYAML(cmd.OutOrStdout(), results)
			default:
				return fmt.Errorf("invalid --format %q: want text or yaml", format)
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text or yaml")
	return cmd
}
