package canvas

import (
	"fmt"
	"sync"

	charts "github.com/midbel/microcharts"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const dpi = 72

var parseRegular = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
})

// Faces caches the font faces used to draw and measure texts. Every family
// is drawn with the Go regular font; only the size of a font is relevant
// to its metrics.
type Faces struct {
	mu    sync.Mutex
	faces map[float64]font.Face
}

func NewFaces() *Faces {
	return &Faces{
		faces: make(map[float64]font.Face),
	}
}

var defaultFaces = NewFaces()

// Face gives the face of the Go regular font at the given size. A face
// should not be used by more than one goroutine at the same time: use With
// when the faces are shared.
func (f *Faces) Face(size float64) (font.Face, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.face(size)
}

// With calls fn with the face at the given size while no other caller can
// use any face of f.
func (f *Faces) With(size float64, fn func(font.Face)) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	face, err := f.face(size)
	if err != nil {
		return err
	}
	fn(face)
	return nil
}

func (f *Faces) face(size float64) (font.Face, error) {
	if size <= 0 {
		size = charts.DefaultTextSize
	}
	if face, ok := f.faces[size]; ok {
		return face, nil
	}
	regular, err := parseRegular()
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(regular, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("font face (size %.1f): %w", size, err)
	}
	f.faces[size] = face
	return face, nil
}

// Measure gives the size of the box of str. The height of the box goes from
// the ascent to the descent of the font, whatever the glyphs of str.
func (f *Faces) Measure(str string, ft charts.Font) charts.Size {
	if str == "" {
		return charts.Size{}
	}
	var size charts.Size
	f.With(ft.Size, func(face font.Face) {
		size = measure(face, str)
	})
	return size
}

func measure(face font.Face, str string) charts.Size {
	var (
		adv     = font.MeasureString(face, str)
		metrics = face.Metrics()
		height  = metrics.Ascent + metrics.Descent
	)
	return charts.NewSize(float64(adv)/64, float64(height)/64)
}
