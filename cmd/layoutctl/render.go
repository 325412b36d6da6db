package main

import (
	"fmt"
	"math"

	"github.com/gogpu/layout/wireframe"
	"github.com/spf13/cobra"
)

func newRenderCmd(flags *globalFlags) *cobra.Command {
	var (
		output     string
		stroke     float64
		fill       bool
		showHidden bool
	)
	cmd := &cobra.Command{
		Use:   "render <scene.yaml>",
		Short: "Run a layout pass and draw the rectangles as a PNG wireframe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.solveFile(cmd, args[0])
			if err != nil {
				return err
			}
			size := s.Root.Dimension
			img, err := wireframe.Render(s.Graph, wireframe.Options{
				Width:      int(math.Ceil(size.X)),
				Height:     int(math.Ceil(size.Y)),
				Stroke:     stroke,
				Fill:       fill,
				ShowHidden: showHidden,
			})
			if err != nil {
				return err
			}

			w, closeOutput, err := openOutput(cmd, output)
			if err != nil {
				return fmt.Errorf("render: %w", err)
			}
			if err := wireframe.WritePNG(w, img); err != nil {
				_ = closeOutput()
				return err
			}
			return closeOutput()
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "layout.png", `Output file, or "-" for stdout`)
	cmd.Flags().Float64Var(&stroke, "stroke", 1, "Outline width in pixels")
	cmd.Flags().BoolVar(&fill, "fill", false, "Shade rectangle interiors")
	cmd.Flags().BoolVar(&showHidden, "show-hidden", false, "Also draw nodes hidden by a range window")
	return cmd
}
