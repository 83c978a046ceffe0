package charts

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

type Palette []color.NRGBA

// At returns the color of the palette at index i, cycling when i is past
// the last color of the palette.
func (p Palette) At(i int) color.NRGBA {
	if len(p) == 0 {
		return color.NRGBA{A: 0xff}
	}
	return p[i%len(p)]
}

var (
	Category10 Palette
	Tableau10  Palette
)

func init() {
	Category10 = splitColorString("1f77b4ff7f0e2ca02cd627289467bd8c564be377c27f7f7fbcbd2217becf")
	Tableau10 = splitColorString("4e79a7f28e2ce1575976b7b259a14fedc949af7aa1ff9da79c755fbab0ab")
}

func splitColorString(str string) Palette {
	var arr Palette
	for i := 0; i < len(str); i += 6 {
		c, err := ParseColor("#" + str[i:i+6])
		if err != nil {
			panic(err)
		}
		arr = append(arr, c)
	}
	return arr
}

// ParseColor parses colors written as #rgb or #rrggbb. An optional alpha
// component can be given as a trailing pair of hex digits (#rrggbbaa).
func ParseColor(str string) (color.NRGBA, error) {
	var alpha uint8 = 0xff
	if len(str) == 9 {
		_, err := fmt.Sscanf(str[7:], "%02x", &alpha)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%s: invalid alpha component", str)
		}
		str = str[:7]
	}
	c, err := colorful.Hex(str)
	if err != nil {
		return color.NRGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}

// MustParseColor is like ParseColor but panics when str is not a valid color.
func MustParseColor(str string) color.NRGBA {
	c, err := ParseColor(str)
	if err != nil {
		panic(err)
	}
	return c
}
