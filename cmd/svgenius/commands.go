package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/HyeRyeongY/svgenius"
)

func (a *app) anchorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "anchors <path>",
		Short: "List the anchor points of path data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := input(cmd, args[0])
			if err != nil {
				return err
			}
			anchors, err := svgenius.Anchors(d)
			if err := a.check("anchors", err); err != nil {
				return err
			}
			for _, p := range anchors {
				fmt.Fprintf(a.out, "%d %g %g\n", p.Index, p.X, p.Y)
			}
			return nil
		},
	}
}

func (a *app) reorderCmd() *cobra.Command {
	var start int
	cmd := &cobra.Command{
		Use:   "reorder <path>",
		Short: "Make another anchor the start point of a path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.transform(cmd, args[0], "reorder", func(d string) (string, error) {
				return a.engine.Reorder(d, start)
			})
		},
	}
	cmd.Flags().IntVar(&start, "start", 0, "index of the new start anchor")
	return cmd
}

func (a *app) normalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <path>",
		Short: "Rewrite every command as an absolute cubic bezier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.transform(cmd, args[0], "normalize", func(d string) (string, error) {
				p, err := svgenius.Parse(d)
				if err != nil {
					return d, err
				}
				return p.ToCubic().Format(a.engine.Options().Precision), nil
			})
		},
	}
}

func (a *app) optimizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "optimize <path>",
		Short: "Remove zero length commands",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.transform(cmd, args[0], "optimize", a.engine.Optimize)
		},
	}
}

func (a *app) transform(cmd *cobra.Command, arg, op string, fn func(string) (string, error)) error {
	d, err := input(cmd, arg)
	if err != nil {
		return err
	}
	out, err := fn(d)
	if err := a.check(op, err); err != nil {
		return err
	}
	fmt.Fprintln(a.out, out)
	return nil
}

func (a *app) equalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "equalize <path>...",
		Short: "Add anchors until all paths have the same anchor count",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.engine.Equalize(args...)
			if err := a.check("equalize", err); err != nil {
				return err
			}
			for _, d := range out {
				fmt.Fprintln(a.out, d)
			}
			return nil
		},
	}
}

func (a *app) bboxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bbox <path>",
		Short: "Print the bounding box, control points included",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := input(cmd, args[0])
			if err != nil {
				return err
			}
			b, err := svgenius.BoundingBox(d)
			if err != nil {
				a.log.Error("bbox", "error", err)
				return err
			}
			fmt.Fprintf(a.out, "%g %g %g %g\n", b.LLx, b.LLy, b.URx, b.URy)
			return nil
		},
	}
}

func (a *app) scaleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scale <path>...",
		Short: "Scale paths into the frame of the largest one",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, vb, err := a.engine.NormalizeScale(args...)
			if err := a.check("scale", err); err != nil {
				return err
			}
			for _, d := range out {
				fmt.Fprintln(a.out, d)
			}
			a.log.Info("viewport", "viewBox", vb.String())
			return nil
		},
	}
}

func (a *app) interpolateCmd() *cobra.Command {
	var t float64
	cmd := &cobra.Command{
		Use:   "interpolate <from> <to>",
		Short: "Blend two aligned paths",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.engine.Interpolate(args[0], args[1], t)
			if err := a.check("interpolate", err); err != nil {
				return err
			}
			fmt.Fprintln(a.out, out)
			return nil
		},
	}
	cmd.Flags().Float64Var(&t, "t", 0.5, "blend position between 0 and 1")
	return cmd
}

func (a *app) morphCmd() *cobra.Command {
	var frames int
	cmd := &cobra.Command{
		Use:   "morph <from> <to>",
		Short: "Prepare two paths for morphing and print evenly spaced frames",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.engine.NewMorph(args[0], args[1])
			if err := a.check("morph", err); err != nil {
				return err
			}
			out, err := m.Frames(cmd.Context(), frames)
			if err := a.check("frames", err); err != nil {
				return err
			}
			for _, d := range out {
				fmt.Fprintln(a.out, d)
			}
			a.log.Info("viewport", "viewBox", m.ViewBox().String())
			return nil
		},
	}
	cmd.Flags().IntVar(&frames, "frames", 10, "number of frames")
	return cmd
}

func (a *app) convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <file.svg>",
		Short: "Convert every shape of an SVG document to path data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				svg *svgenius.Svg
				err error
			)
			if args[0] == "-" {
				svg, err = svgenius.ParseSvgFromReader(cmd.InOrStdin())
			} else {
				var f *os.File
				if f, err = os.Open(args[0]); err != nil {
					return err
				}
				defer f.Close()
				svg, err = svgenius.ParseSvgFromReader(f)
			}
			if err != nil {
				a.log.Error("convert", "error", err)
				return err
			}
			out, err := svg.PathData()
			if err := a.check("convert", err); err != nil {
				return err
			}
			for _, d := range out {
				if d != "" {
					fmt.Fprintln(a.out, d)
				}
			}
			return nil
		},
	}
}

func (a *app) exportCmd() *cobra.Command {
	var (
		eo      svgenius.ExportOptions
		outFile string
	)
	cmd := &cobra.Command{
		Use:   "export <path>",
		Short: "Wrap path data in a standalone SVG document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := input(cmd, args[0])
			if err != nil {
				return err
			}
			doc, err := a.engine.Export(d, svgenius.ViewBox{}, eo)
			if doc == nil {
				a.log.Error("export", "error", err)
				return err
			}
			if err := a.check("export", err); err != nil {
				return err
			}
			if outFile == "" {
				_, err = a.out.Write(append(doc, '\n'))
				return err
			}
			return os.WriteFile(outFile, doc, 0o644)
		},
	}
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "write to file instead of standard output")
	cmd.Flags().StringVar(&eo.ID, "id", "", "id of the path element")
	cmd.Flags().StringVar(&eo.Fill, "fill", "", "fill colour")
	cmd.Flags().StringVar(&eo.Stroke, "stroke", "", "stroke colour")
	cmd.Flags().Float64Var(&eo.StrokeWidth, "stroke-width", 0, "stroke width")
	return cmd
}
