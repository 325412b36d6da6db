package main

import (
	"fmt"
	"strconv"

	"github.com/gogpu/layout"
	"github.com/spf13/cobra"
)

func newHitCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "hit <scene.yaml> <x> <y>",
		Short: "Print the topmost visible node at a point",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var p layout.Vec2
			var err error
			if p.X, err = strconv.ParseFloat(args[1], 64); err != nil {
				return fmt.Errorf("invalid x %q: %w", args[1], err)
			}
			if p.Y, err = strconv.ParseFloat(args[2], 64); err != nil {
				return fmt.Errorf("invalid y %q: %w", args[2], err)
			}

			s, err := flags.solveFile(cmd, args[0])
			if err != nil {
				return err
			}
			id, ok := s.Graph.HitTest(p)
			if !ok {
				return fmt.Errorf("no node at (%g, %g)", p.X, p.Y)
			}
			name := s.Graph.Name(id)
			if name == "" {
				name = id.String()
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), name)
			return err
		},
	}
}
