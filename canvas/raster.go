package canvas

import (
	"image"
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"
	charts "github.com/midbel/microcharts"
	"golang.org/x/image/font"
)

// Raster is a surface drawing into an image with anti-aliasing.
type Raster struct {
	ctx   *gg.Context
	faces *Faces
}

func NewRaster(width, height int) *Raster {
	return &Raster{
		ctx:   gg.NewContext(width, height),
		faces: defaultFaces,
	}
}

func (r *Raster) Width() float64 {
	return float64(r.ctx.Width())
}

func (r *Raster) Height() float64 {
	return float64(r.ctx.Height())
}

// Clear paints the whole image with c, transparent pixels included.
func (r *Raster) Clear(c color.NRGBA) {
	r.ctx.SetColor(c)
	r.ctx.Clear()
}

func (r *Raster) FillRect(rect charts.Rect, c color.NRGBA) {
	r.ctx.SetColor(c)
	r.ctx.DrawRectangle(rect.X, rect.Y, rect.W, rect.H)
	r.ctx.Fill()
}

func (r *Raster) FillRoundRect(rect charts.Rect, radius float64, c color.NRGBA) {
	radius = math.Min(radius, math.Min(rect.W, rect.H)/2)
	r.ctx.SetColor(c)
	if radius <= 0 {
		r.ctx.DrawRectangle(rect.X, rect.Y, rect.W, rect.H)
	} else {
		r.ctx.DrawRoundedRectangle(rect.X, rect.Y, rect.W, rect.H, radius)
	}
	r.ctx.Fill()
}

func (r *Raster) DrawText(str string, at charts.Point, ft charts.Font, c color.NRGBA, vertical bool) {
	if str == "" {
		return
	}
	r.faces.With(ft.Size, func(face font.Face) {
		r.ctx.Push()
		defer r.ctx.Pop()

		r.ctx.SetFontFace(face)
		r.ctx.SetColor(c)
		if vertical {
			box := measure(face, str).Rotate()
			r.ctx.Translate(at.X+box.W, at.Y)
			r.ctx.Rotate(gg.Radians(90))
		} else {
			r.ctx.Translate(at.X, at.Y)
		}
		ascent := float64(face.Metrics().Ascent) / 64
		r.ctx.DrawString(str, 0, ascent)
	})
}

func (r *Raster) MeasureText(str string, ft charts.Font) charts.Size {
	return r.faces.Measure(str, ft)
}

func (r *Raster) Image() image.Image {
	return r.ctx.Image()
}

func (r *Raster) Render(w io.Writer) error {
	return r.ctx.EncodePNG(w)
}
