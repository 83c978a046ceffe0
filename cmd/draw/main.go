package main

import (
	"flag"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	charts "github.com/midbel/microcharts"
	"github.com/midbel/microcharts/canvas"
	"github.com/midbel/microcharts/chartfile"
	"github.com/midbel/microcharts/view"
	"golang.org/x/sync/errgroup"
)

type renderer interface {
	charts.Surface
	Render(w io.Writer) error
}

func main() {
	var (
		width  = flag.Float64("width", 0, "chart width")
		height = flag.Float64("height", 0, "chart height")
		format = flag.String("format", "", "comma separated list of output formats (svg, png)")
		frames = flag.Int("frames", -1, "number of frames of the reveal animation")
		result = flag.String("file", "", "output file without extension")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [options] <chart.toml>\n", filepath.Base(os.Args[0]))
		os.Exit(1)
	}
	file, err := chartfile.Load(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "fail to load chart: %s\n", err)
		os.Exit(2)
	}
	if *width > 0 {
		file.Width = *width
	}
	if *height > 0 {
		file.Height = *height
	}
	if *format != "" {
		file.Formats = strings.Split(*format, ",")
	}
	if *frames >= 0 {
		file.Frames = *frames
	}
	if *result != "" {
		file.Output = *result
	}
	if err := render(file); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func render(file *chartfile.File) error {
	bg, err := file.BackgroundColor()
	if err != nil {
		return err
	}
	var grp errgroup.Group
	for _, format := range file.Formats {
		format := strings.ToLower(strings.TrimSpace(format))
		grp.Go(func() error {
			ch, err := file.Chart()
			if err != nil {
				return err
			}
			return renderFrames(file, ch, format, bg)
		})
	}
	return grp.Wait()
}

func renderFrames(file *chartfile.File, ch *charts.BarChart, format string, bg color.NRGBA) error {
	v := view.New()
	v.Background = bg
	v.SetChart(ch)
	defer v.Close()

	if file.Frames == 0 {
		return paint(v, getOutput(file.Output, format, -1), format, file)
	}
	for i, progress := range view.Steps(file.Frames) {
		ch.SetAnimationProgress(progress)
		if err := paint(v, getOutput(file.Output, format, i), format, file); err != nil {
			return err
		}
	}
	return nil
}

func paint(v *view.View, path, format string, file *chartfile.File) error {
	var surface renderer
	switch format {
	case chartfile.FormatSVG:
		s := canvas.NewSVG(file.Width, file.Height)
		s.Title = file.Title
		surface = s
	case chartfile.FormatPNG:
		surface = canvas.NewRaster(int(file.Width), int(file.Height))
	default:
		return fmt.Errorf("%s: unsupported output format", format)
	}
	v.Paint(surface, file.Width, file.Height)

	w, err := os.Create(path)
	if err != nil {
		return err
	}
	defer w.Close()
	if err := surface.Render(w); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return w.Close()
}

func getOutput(base, format string, frame int) string {
	if frame < 0 {
		return fmt.Sprintf("%s.%s", base, format)
	}
	return fmt.Sprintf("%s-%03d.%s", base, frame, format)
}
