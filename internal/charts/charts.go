// Package charts renders a series as PNG images for the dashboard: a
// price line, a high/low range view and a volume bar chart. Rendered
// images are cached by series ID, so repeated page loads of the same
// series do not re-render.
package charts

import (
	"errors"
	"fmt"

	"github.com/vicanso/go-charts/v2"

	"crypto-volatility-lab/internal/domain"
	"crypto-volatility-lab/internal/observability"
)

// Chart kinds served by the dashboard.
const (
	KindPrice  = "price"
	KindRange  = "range"
	KindVolume = "volume"
)

// ErrEmptySeries is returned when there is nothing to plot.
var ErrEmptySeries = errors.New("empty series")

// ErrUnknownKind is returned for an unrecognized chart kind.
var ErrUnknownKind = errors.New("unknown chart kind")

// Render produces the PNG for one chart kind, consulting the cache first.
func Render(kind string, rec *domain.SeriesRecord) ([]byte, error) {
	if rec == nil || len(rec.Series) == 0 {
		return nil, ErrEmptySeries
	}

	cacheKey := rec.SeriesID + "|" + kind
	if img, ok := cacheGet(cacheKey); ok {
		observability.RecordChartCacheHit()
		return img, nil
	}
	observability.RecordChartCacheMiss()

	var (
		img []byte
		err error
	)
	switch kind {
	case KindPrice:
		img, err = renderPrice(rec.Series)
	case KindRange:
		img, err = renderRange(rec.Series)
	case KindVolume:
		img, err = renderVolume(rec.Series)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if err != nil {
		return nil, err
	}

	observability.RecordChartRendered(kind)
	cacheSet(cacheKey, img)
	return img, nil
}

// renderPrice draws the close price as a single line.
func renderPrice(series domain.Series) ([]byte, error) {
	labels := dateLabels(series)
	prices := series.Prices()
	yMin, yMax := paddedRange(prices, prices)

	painter, err := charts.LineRender([][]float64{prices},
		charts.TitleTextOptionFunc("Price Over Time"),
		charts.XAxisOptionFunc(charts.XAxisOption{Data: labels, BoundaryGap: charts.FalseFlag(), SplitNumber: splitFor(len(labels))}),
		charts.YAxisOptionFunc(charts.YAxisOption{Min: &yMin, Max: &yMax, DivideCount: 5}),
		charts.ThemeOptionFunc(charts.ThemeDark),
	)
	if err != nil {
		return nil, err
	}
	return painter.Bytes()
}

// renderRange draws high, close and low as three lines sharing one axis.
func renderRange(series domain.Series) ([]byte, error) {
	labels := dateLabels(series)

	highs := make([]float64, len(series))
	lows := make([]float64, len(series))
	for i, r := range series {
		highs[i] = r.High
		lows[i] = r.Low
	}
	yMin, yMax := paddedRange(lows, highs)

	painter, err := charts.LineRender([][]float64{highs, series.Prices(), lows},
		charts.TitleTextOptionFunc("High vs Low Range"),
		charts.XAxisOptionFunc(charts.XAxisOption{Data: labels, BoundaryGap: charts.FalseFlag(), SplitNumber: splitFor(len(labels))}),
		charts.YAxisOptionFunc(charts.YAxisOption{Min: &yMin, Max: &yMax, DivideCount: 5}),
		charts.LegendOptionFunc(charts.LegendOption{Data: []string{"High", "Price", "Low"}}),
		charts.ThemeOptionFunc(charts.ThemeDark),
	)
	if err != nil {
		return nil, err
	}
	return painter.Bytes()
}

// renderVolume draws daily volume as bars.
func renderVolume(series domain.Series) ([]byte, error) {
	labels := dateLabels(series)

	volumes := make([]float64, len(series))
	for i, r := range series {
		volumes[i] = r.Volume
	}

	painter, err := charts.BarRender([][]float64{volumes},
		charts.TitleTextOptionFunc("Trading Volume"),
		charts.XAxisOptionFunc(charts.XAxisOption{Data: labels, SplitNumber: splitFor(len(labels))}),
		charts.ThemeOptionFunc(charts.ThemeDark),
	)
	if err != nil {
		return nil, err
	}
	return painter.Bytes()
}

func dateLabels(series domain.Series) []string {
	labels := make([]string, len(series))
	for i, r := range series {
		labels[i] = r.Date.Format("Jan 02")
	}
	return labels
}

// paddedRange computes a y-range padded 5% beyond the observed extremes,
// floored at zero.
func paddedRange(lower, upper []float64) (float64, float64) {
	yMin, yMax := lower[0], upper[0]
	for _, v := range lower {
		if v < yMin {
			yMin = v
		}
	}
	for _, v := range upper {
		if v > yMax {
			yMax = v
		}
	}

	pad := (yMax - yMin) * 0.05
	if pad < yMax*0.002 {
		pad = yMax * 0.002
	}
	yMin -= pad
	if yMin < 0 {
		yMin = 0
	}
	yMax += pad
	return yMin, yMax
}

func splitFor(n int) int {
	if n <= 60 {
		return 6
	}
	return 10
}
