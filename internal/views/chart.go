package views

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"storefront/internal/models"
)

const (
	chartWidth  = 300
	chartHeight = 200

	marginLeft   = 40
	marginRight  = 10
	marginTop    = 10
	marginBottom = 24
	yTickCount   = 4
)

type PlotPoint struct {
	X     float64
	Y     float64
	Month string
	Sales float64
}

type Tick struct {
	Y     float64
	Label string
}

// Plot is a line chart laid out in SVG coordinates.
type Plot struct {
	Width  int
	Height int
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
	Points []PlotPoint
	YTicks []Tick
}

// Path is the value of the polyline "points" attribute.
func (p Plot) Path() string {
	parts := make([]string, len(p.Points))
	for i, pt := range p.Points {
		parts[i] = fmt.Sprintf("%.1f,%.1f", pt.X, pt.Y)
	}
	return strings.Join(parts, " ")
}

// PlotLine lays out series left to right in the given order, month on the
// x axis and sales on the y axis.
func PlotLine(series []models.SalesPoint, width, height int) Plot {
	p := Plot{
		Width:  width,
		Height: height,
		Left:   marginLeft,
		Right:  float64(width - marginRight),
		Top:    marginTop,
		Bottom: float64(height - marginBottom),
	}

	lo, hi := 0.0, 0.0
	for _, s := range series {
		lo = math.Min(lo, s.Sales)
		hi = math.Max(hi, s.Sales)
	}
	hi = niceCeil(hi)
	if hi <= lo {
		hi = lo + 1
	}

	plotW := p.Right - p.Left
	plotH := p.Bottom - p.Top

	for i, s := range series {
		x := p.Left + plotW/2
		if len(series) > 1 {
			x = p.Left + plotW*float64(i)/float64(len(series)-1)
		}
		p.Points = append(p.Points, PlotPoint{
			X:     x,
			Y:     p.Top + plotH*(1-(s.Sales-lo)/(hi-lo)),
			Month: s.Month,
			Sales: s.Sales,
		})
	}

	for i := 0; i <= yTickCount; i++ {
		v := lo + (hi-lo)*float64(i)/yTickCount
		p.YTicks = append(p.YTicks, Tick{
			Y:     p.Bottom - plotH*float64(i)/yTickCount,
			Label: strconv.FormatFloat(v, 'f', -1, 64),
		})
	}

	return p
}

// niceCeil rounds v up to one significant digit: 870 -> 900, 1234 -> 2000.
func niceCeil(v float64) float64 {
	if v <= 0 {
		return 0
	}
	step := math.Pow(10, math.Floor(math.Log10(v)))
	return math.Ceil(v/step) * step
}
