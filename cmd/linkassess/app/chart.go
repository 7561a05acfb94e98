package app

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"github.com/roman-kulish/link-engineering/internal/linkbudget"
	"github.com/roman-kulish/link-engineering/internal/safety"
)

const (
	chartDPI      = 120.0
	chartFontSize = 12.0
	tickMark      = 5

	defaultChartWidth  = 900
	defaultChartHeight = 260

	topBorder    = 20
	leftBorder   = 20
	bottomBorder = 60
	rightBorder  = 20
)

// ExposureChart renders the on-axis power density profile of an antenna
// as a distance-vs-density strip: each column is one range step, its bar
// height and color follow the density on a log scale, with MPE and GP
// limit lines drawn across.
type ExposureChart struct {
	report *safety.Report
	config *ChartConfig

	font     *truetype.Font
	fontFace font.Face
}

// NewExposureChart loads the annotation font from the configured path.
func NewExposureChart(report *safety.Report, config *ChartConfig) (*ExposureChart, error) {
	fontBytes, err := os.ReadFile(config.FontPath)
	if err != nil {
		return nil, fmt.Errorf("reading font file: %w", err)
	}
	parsedFont, err := freetype.ParseFont(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}

	return &ExposureChart{
		report: report,
		config: config,
		font:   parsedFont,
		fontFace: truetype.NewFace(parsedFont, &truetype.Options{
			Size:    chartFontSize,
			DPI:     chartDPI,
			Hinting: font.HintingNone,
		}),
	}, nil
}

func (c *ExposureChart) Close() error {
	if c.fontFace != nil {
		return c.fontFace.Close()
	}
	return nil
}

// densityAt is the OET-65 on-axis density at range r: flat through the
// near field, 1/R through the transition region, 1/R^2 beyond the far
// field onset.
func (c *ExposureChart) densityAt(rangeM float64) float64 {
	r := c.report
	switch {
	case rangeM <= r.NearFieldExtent:
		return r.NearField
	case rangeM < r.FarFieldOnset:
		return linkbudget.TransitionDensity(r.NearField, r.NearFieldExtent, rangeM)
	default:
		return linkbudget.FarFieldDensity(r.EIRP.Watts(), rangeM)
	}
}

// Render draws the profile out to four times the far-field onset.
func (c *ExposureChart) Render() (*image.RGBA, error) {
	width := c.config.Width
	if width == 0 {
		width = defaultChartWidth
	}
	height := c.config.Height
	if height == 0 {
		height = defaultChartHeight
	}

	fullWidth := width + leftBorder + rightBorder
	fullHeight := height + topBorder + bottomBorder
	img := image.NewRGBA(image.Rect(0, 0, fullWidth, fullHeight))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	maxRange := 4 * c.report.FarFieldOnset
	floor := c.densityAt(maxRange)
	mapper := NewDensityMapper(ColorTheme(c.config.Theme), floor, c.report.NearField)

	for x := 0; x < width; x++ {
		rangeM := maxRange * float64(x+1) / float64(width)
		density := c.densityAt(rangeM)
		barHeight := int(mapper.Normalize(density) * float64(height))
		col := mapper.Color(density)
		for y := 0; y < barHeight; y++ {
			img.Set(leftBorder+x, topBorder+height-1-y, col)
		}
	}

	c.drawLimitLine(img, mapper, width, height, c.report.Occupational.PowerDensity, color.RGBA{R: 255, A: 255})
	c.drawLimitLine(img, mapper, width, height, c.report.Population.PowerDensity, color.RGBA{R: 255, G: 165, A: 255})

	if err := c.annotate(img, width, height, maxRange); err != nil {
		return nil, fmt.Errorf("drawing annotations: %w", err)
	}
	return img, nil
}

// drawLimitLine marks one exposure limit, given in mW/cm^2, as a dashed
// horizontal line at its height on the density scale.
func (c *ExposureChart) drawLimitLine(img *image.RGBA, mapper *DensityMapper, width, height int, limitMWCm2 float64, col color.Color) {
	// mW/cm^2 to W/m^2
	y := topBorder + height - 1 - int(mapper.Normalize(limitMWCm2*10)*float64(height))
	if y < topBorder || y >= topBorder+height {
		return
	}
	for x := 0; x < width; x += 8 {
		for dx := 0; dx < 5 && x+dx < width; dx++ {
			img.Set(leftBorder+x+dx, y, col)
		}
	}
}

func (c *ExposureChart) annotate(img *image.RGBA, width, height int, maxRange float64) error {
	ctx := freetype.NewContext()
	ctx.SetDPI(chartDPI)
	ctx.SetFont(c.font)
	ctx.SetFontSize(chartFontSize)
	ctx.SetHinting(font.HintingNone)
	ctx.SetSrc(image.Black)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)

	metrics := c.fontFace.Metrics()
	fontHeight := (metrics.Ascent + metrics.Descent).Round()

	// Distance scale along the bottom.
	const labels = 6
	for i := 0; i <= labels; i++ {
		rangeM := maxRange * float64(i) / labels
		x := leftBorder + int(float64(i)/labels*float64(width))
		if i == labels {
			x = leftBorder + width - 1
		}

		for y := topBorder + height; y < topBorder+height+tickMark; y++ {
			img.Set(x, y, color.Black)
		}

		value, suffix := humanize.ComputeSI(rangeM)
		label := fmt.Sprintf("%.0f %sm", value, suffix)
		lw := font.MeasureString(c.fontFace, label)
		pt := freetype.Pt(x-lw.Round()/2, topBorder+height+tickMark+fontHeight)
		if _, err := ctx.DrawString(label, pt); err != nil {
			return fmt.Errorf("drawing distance label: %w", err)
		}
	}

	// Info line: the system under evaluation and its near/far markers.
	freq, suffix := humanize.ComputeSI(c.report.Params.Frequency.Hertz())
	info := fmt.Sprintf("%s m dish, %.3f %sHz, %s W; near field to %.1f m, far field from %.1f m",
		humanize.Ftoa(c.report.Params.Diameter.Meters()), freq, suffix,
		humanize.Ftoa(c.report.Params.Power.Watts()),
		c.report.NearFieldExtent, c.report.FarFieldOnset)

	textY := img.Bounds().Max.Y - metrics.Descent.Round() - 4
	if _, err := ctx.DrawString(info, freetype.Pt(leftBorder, textY)); err != nil {
		return fmt.Errorf("drawing info text: %w", err)
	}
	return nil
}
