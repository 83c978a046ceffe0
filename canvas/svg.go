package canvas

import (
	"bufio"
	"image/color"
	"io"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	charts "github.com/midbel/microcharts"
	"github.com/midbel/svg"
	"golang.org/x/image/font"
)

// SVG is a surface keeping every drawing as an SVG element until it is
// rendered. Fully transparent drawings are dropped. Title, when set, is
// written as the title of the document.
type SVG struct {
	Width  float64
	Height float64
	Title  string

	elements []svg.Element
	faces    *Faces
}

func NewSVG(width, height float64) *SVG {
	return &SVG{
		Width:  width,
		Height: height,
		faces:  defaultFaces,
	}
}

// Clear drops everything drawn so far and paints the whole surface with c.
func (s *SVG) Clear(c color.NRGBA) {
	s.elements = s.elements[:0]
	s.FillRect(charts.NewRect(0, 0, s.Width, s.Height), c)
}

func (s *SVG) FillRect(r charts.Rect, c color.NRGBA) {
	if c.A == 0 {
		return
	}
	var el svg.Rect
	el.Pos = svg.NewPos(r.X, r.Y)
	el.Dim = svg.NewDim(r.W, r.H)
	el.Fill = getFill(c)
	s.elements = append(s.elements, el.AsElement())
}

// FillRoundRect draws the corners of the rectangle as quadratic curves.
func (s *SVG) FillRoundRect(r charts.Rect, radius float64, c color.NRGBA) {
	radius = math.Min(radius, math.Min(r.W, r.H)/2)
	if radius <= 0 {
		s.FillRect(r, c)
		return
	}
	if c.A == 0 {
		return
	}
	var pat svg.Path
	pat.Fill = getFill(c)

	pat.AbsMoveTo(svg.NewPos(r.X+radius, r.Y))
	pat.AbsLineTo(svg.NewPos(r.Right()-radius, r.Y))
	pat.AbsQuadraticCurve(svg.NewPos(r.Right(), r.Y+radius), svg.NewPos(r.Right(), r.Y))
	pat.AbsLineTo(svg.NewPos(r.Right(), r.Bottom()-radius))
	pat.AbsQuadraticCurve(svg.NewPos(r.Right()-radius, r.Bottom()), svg.NewPos(r.Right(), r.Bottom()))
	pat.AbsLineTo(svg.NewPos(r.X+radius, r.Bottom()))
	pat.AbsQuadraticCurve(svg.NewPos(r.X, r.Bottom()-radius), svg.NewPos(r.X, r.Bottom()))
	pat.AbsLineTo(svg.NewPos(r.X, r.Y+radius))
	pat.AbsQuadraticCurve(svg.NewPos(r.X+radius, r.Y), svg.NewPos(r.X, r.Y))
	pat.ClosePath()

	s.elements = append(s.elements, pat.AsElement())
}

// DrawText writes str in a group translated to at. The text itself is
// placed on its baseline, one ascent below the top of its box.
func (s *SVG) DrawText(str string, at charts.Point, ft charts.Font, c color.NRGBA, vertical bool) {
	if str == "" || c.A == 0 {
		return
	}
	var (
		ascent float64
		box    charts.Size
	)
	err := s.faces.With(ft.Size, func(face font.Face) {
		ascent = float64(face.Metrics().Ascent) / 64
		box = measure(face, str)
	})
	if err != nil {
		return
	}
	grp := svg.NewGroup(svg.WithTranslate(at.X, at.Y))
	if vertical {
		grp.Transform.TX += box.Rotate().W
		grp.Transform.RA = 90
	}
	size := ft.Size
	if size <= 0 {
		size = charts.DefaultTextSize
	}
	options := []svg.Option{
		svg.WithFont(svg.NewFont(size)),
		svg.WithPosition(0, ascent),
		svg.WithFill(getFill(c)),
		svg.WithAnchor("start"),
	}
	txt := svg.NewText(str, options...)
	grp.Append(txt.AsElement())
	s.elements = append(s.elements, grp.AsElement())
}

func (s *SVG) MeasureText(str string, ft charts.Font) charts.Size {
	return s.faces.Measure(str, ft)
}

// Len gives the number of elements drawn on the surface.
func (s *SVG) Len() int {
	return len(s.elements)
}

func (s *SVG) Render(w io.Writer) error {
	el := svg.NewSVG(svg.WithDimension(s.Width, s.Height))
	el.Title = s.Title
	for i := range s.elements {
		el.Append(s.elements[i])
	}
	bw := bufio.NewWriter(w)
	el.Render(bw)
	return bw.Flush()
}

func getFill(c color.NRGBA) svg.Fill {
	col := colorful.Color{
		R: float64(c.R) / 0xff,
		G: float64(c.G) / 0xff,
		B: float64(c.B) / 0xff,
	}
	fill := svg.NewFill(col.Hex())
	fill.Opacity = float64(c.A) / 0xff
	return fill
}
