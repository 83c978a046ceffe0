package chartfile

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	charts "github.com/midbel/microcharts"
)

const (
	DefaultWidth  = 800
	DefaultHeight = 600

	FormatSVG = "svg"
	FormatPNG = "png"
)

type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type Style struct {
	Margin                *float64 `toml:"margin"`
	LabelSize             float64  `toml:"label-size"`
	ValueLabelSize        float64  `toml:"value-label-size"`
	Typeface              string   `toml:"typeface"`
	LabelColor            string   `toml:"label-color"`
	LabelOrientation      string   `toml:"label-orientation"`
	ValueLabelOrientation string   `toml:"value-label-orientation"`
	ValueLabel            string   `toml:"value-label"`
	Min                   float64  `toml:"min"`
	Max                   float64  `toml:"max"`
}

type Bar struct {
	AreaAlpha    *uint8   `toml:"area-alpha"`
	MinHeight    *float64 `toml:"min-height"`
	CornerRadius float64  `toml:"corner-radius"`
	AreaColor    string   `toml:"area-color"`
}

type Entry struct {
	Value           float64 `toml:"value"`
	Label           string  `toml:"label"`
	ValueLabel      *string `toml:"value-label"`
	Color           string  `toml:"color"`
	ValueLabelColor string  `toml:"value-label-color"`
}

// File describes a bar chart and how it should be rendered.
type File struct {
	Title      string   `toml:"title"`
	Width      float64  `toml:"width"`
	Height     float64  `toml:"height"`
	Background string   `toml:"background"`
	Output     string   `toml:"output"`
	Formats    []string `toml:"formats"`
	Frames     int      `toml:"frames"`
	Palette    string   `toml:"palette"`

	Style   Style   `toml:"style"`
	Bar     Bar     `toml:"bar"`
	Entries []Entry `toml:"entries"`
}

// Load reads the TOML file at path. Missing fields get their default
// values.
func Load(path string) (*File, error) {
	var file File
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := file.setDefaults(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &file, nil
}

func Decode(r io.Reader) (*File, error) {
	var file File
	if _, err := toml.NewDecoder(r).Decode(&file); err != nil {
		return nil, err
	}
	if err := file.setDefaults(); err != nil {
		return nil, err
	}
	return &file, nil
}

func (f *File) setDefaults() error {
	if f.Width == 0 {
		f.Width = DefaultWidth
	}
	if f.Height == 0 {
		f.Height = DefaultHeight
	}
	if f.Width < 0 || f.Height < 0 {
		return FieldError{Field: "width/height", Message: "dimension should be positive"}
	}
	if f.Output == "" {
		f.Output = "chart"
	}
	if len(f.Formats) == 0 {
		f.Formats = []string{FormatSVG}
	}
	for i, format := range f.Formats {
		format = strings.ToLower(format)
		if format != FormatSVG && format != FormatPNG {
			return FieldError{Field: "formats", Message: fmt.Sprintf("%s: unsupported format", format)}
		}
		f.Formats[i] = format
	}
	if f.Frames < 0 {
		return FieldError{Field: "frames", Message: "number of frames should be positive"}
	}
	return nil
}

// Chart builds the bar chart described by the file.
func (f *File) Chart() (*charts.BarChart, error) {
	palette, err := getPalette(f.Palette)
	if err != nil {
		return nil, err
	}
	entries := make([]charts.Entry, 0, len(f.Entries))
	for i, e := range f.Entries {
		ent, err := e.entry(i, palette.At(i))
		if err != nil {
			return nil, err
		}
		entries = append(entries, ent)
	}
	style, err := f.Style.style()
	if err != nil {
		return nil, err
	}
	bar, err := f.Bar.style()
	if err != nil {
		return nil, err
	}
	ch := charts.NewBarChart(entries)
	ch.SetStyle(style)
	ch.SetBarStyle(bar)
	return ch, nil
}

func (f *File) BackgroundColor() (color.NRGBA, error) {
	return parseColor("background", f.Background, color.NRGBA{})
}

func (e Entry) entry(i int, def color.NRGBA) (charts.Entry, error) {
	field := fmt.Sprintf("entries[%d]", i)
	ent := charts.NewEntry(e.Value, e.Label, def)
	if e.ValueLabel != nil {
		ent.ValueLabel = *e.ValueLabel
	}
	var err error
	if ent.Color, err = parseColor(field+".color", e.Color, def); err != nil {
		return ent, err
	}
	if ent.ValueLabelColor, err = parseColor(field+".value-label-color", e.ValueLabelColor, ent.Color); err != nil {
		return ent, err
	}
	return ent, nil
}

func (s Style) style() (charts.Style, error) {
	var (
		style = charts.DefaultStyle()
		err   error
	)
	if s.Margin != nil {
		if *s.Margin < 0 {
			return style, FieldError{Field: "style.margin", Message: "margin should be positive"}
		}
		style.Margin = *s.Margin
	}
	if s.LabelSize > 0 {
		style.LabelTextSize = s.LabelSize
	}
	if s.ValueLabelSize > 0 {
		style.ValueLabelTextSize = s.ValueLabelSize
	}
	style.Typeface = s.Typeface
	if style.LabelColor, err = parseColor("style.label-color", s.LabelColor, style.LabelColor); err != nil {
		return style, err
	}
	if style.LabelOrientation, err = parseOrientation("style.label-orientation", s.LabelOrientation); err != nil {
		return style, err
	}
	if style.ValueLabelOrientation, err = parseOrientation("style.value-label-orientation", s.ValueLabelOrientation); err != nil {
		return style, err
	}
	if style.ValueLabelOption, err = parseValueLabel(s.ValueLabel); err != nil {
		return style, err
	}
	style.Range = charts.NewRange(s.Min, s.Max)
	return style, nil
}

func (b Bar) style() (charts.BarStyle, error) {
	var (
		style = charts.DefaultBarStyle()
		err   error
	)
	if b.AreaAlpha != nil {
		style.AreaAlpha = *b.AreaAlpha
	}
	if b.MinHeight != nil {
		if *b.MinHeight < 0 {
			return style, FieldError{Field: "bar.min-height", Message: "height should be positive"}
		}
		style.MinBarHeight = *b.MinHeight
	}
	if b.CornerRadius < 0 {
		return style, FieldError{Field: "bar.corner-radius", Message: "radius should be positive"}
	}
	style.CornerRadius = b.CornerRadius
	if style.AreaColor, err = parseColor("bar.area-color", b.AreaColor, color.NRGBA{}); err != nil {
		return style, err
	}
	return style, nil
}

func getPalette(name string) (charts.Palette, error) {
	switch strings.ToLower(name) {
	case "", "category10":
		return charts.Category10, nil
	case "tableau10":
		return charts.Tableau10, nil
	default:
		return nil, FieldError{Field: "palette", Message: fmt.Sprintf("%s: unknown palette", name)}
	}
}

func parseColor(field, str string, def color.NRGBA) (color.NRGBA, error) {
	if str == "" {
		return def, nil
	}
	c, err := charts.ParseColor(str)
	if err != nil {
		return def, FieldError{Field: field, Message: err.Error()}
	}
	return c, nil
}

func parseOrientation(field, str string) (charts.Orientation, error) {
	switch strings.ToLower(str) {
	case "", "horizontal":
		return charts.Horizontal, nil
	case "vertical":
		return charts.Vertical, nil
	default:
		return charts.Horizontal, FieldError{Field: field, Message: fmt.Sprintf("%s: unknown orientation", str)}
	}
}

func parseValueLabel(str string) (charts.ValueLabelOption, error) {
	switch strings.ToLower(str) {
	case "", "top-of-chart":
		return charts.ValueLabelTopOfChart, nil
	case "none":
		return charts.ValueLabelNone, nil
	case "top-of-element":
		return charts.ValueLabelTopOfElement, nil
	case "over-element":
		return charts.ValueLabelOverElement, nil
	default:
		return charts.ValueLabelNone, FieldError{Field: "style.value-label", Message: fmt.Sprintf("%s: unknown position", str)}
	}
}
