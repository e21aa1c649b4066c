package charts

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/2beens/fitcoach/internal/fitness"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	width    = 640
	height   = 320
	maxTicks = 8
)

var (
	ErrNoData      = errors.New("no data to chart")
	ErrUnknownKind = errors.New("unknown chart kind")
)

type Kind string

const (
	KindSteps    Kind = "steps"
	KindSleep    Kind = "sleep"
	KindCalories Kind = "calories"
)

func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindSteps, KindSleep, KindCalories:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKind, s)
	}
}

type series struct {
	name  string
	color drawing.Color
	value func(r fitness.Record) float64
	line  bool
}

var seriesByKind = map[Kind]series{
	KindSteps: {
		name:  "Steps",
		color: drawing.ColorFromHex("1f77b4"),
		value: func(r fitness.Record) float64 { return float64(r.Steps) },
		line:  true,
	},
	KindSleep: {
		name:  "Sleep (hours)",
		color: drawing.ColorFromHex("2ca02c"),
		value: func(r fitness.Record) float64 { return r.SleepHours },
		line:  true,
	},
	KindCalories: {
		name:  "Calories burned",
		color: drawing.ColorFromHex("ff7f0e"),
		value: func(r fitness.Record) float64 { return float64(r.CaloriesBurned) },
	},
}

// Render writes an SVG chart of the given kind. The x axis follows the order of records.
func Render(w io.Writer, kind Kind, records []fitness.Record) error {
	s, ok := seriesByKind[kind]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	if len(records) == 0 {
		return ErrNoData
	}

	// a line needs two points to span the x range
	if s.line && len(records) > 1 {
		return renderLine(w, s, records)
	}
	return renderBars(w, s, records)
}

func renderLine(w io.Writer, s series, records []fitness.Record) error {
	xValues := make([]float64, len(records))
	yValues := make([]float64, len(records))
	for i, r := range records {
		xValues[i] = float64(i)
		yValues[i] = s.value(r)
	}

	graph := chart.Chart{
		Width:  width,
		Height: height,
		Background: chart.Style{
			Padding: chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: float64(len(records) - 1)},
			Ticks: dateTicks(records),
		},
		YAxis: chart.YAxis{
			Name:  s.name,
			Range: &chart.ContinuousRange{Min: 0, Max: upperBound(yValues)},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    s.name,
				XValues: xValues,
				YValues: yValues,
				Style: chart.Style{
					StrokeColor: s.color,
					StrokeWidth: 2,
					DotColor:    s.color,
					DotWidth:    3,
				},
			},
		},
	}

	if err := graph.Render(chart.SVG, w); err != nil {
		return fmt.Errorf("render %s line chart: %w", s.name, err)
	}
	return nil
}

func renderBars(w io.Writer, s series, records []fitness.Record) error {
	bars := make([]chart.Value, len(records))
	values := make([]float64, len(records))
	for i, r := range records {
		values[i] = s.value(r)
		bars[i] = chart.Value{
			Value: values[i],
			Label: r.DateString(),
			Style: chart.Style{
				FillColor:   s.color,
				StrokeColor: s.color,
			},
		}
	}

	graph := chart.BarChart{
		Width:    width,
		Height:   height,
		BarWidth: barWidth(len(records)),
		Background: chart.Style{
			Padding: chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20},
		},
		YAxis: chart.YAxis{
			Name:  s.name,
			Range: &chart.ContinuousRange{Min: 0, Max: upperBound(values)},
		},
		Bars: bars,
	}

	if err := graph.Render(chart.SVG, w); err != nil {
		return fmt.Errorf("render %s bar chart: %w", s.name, err)
	}
	return nil
}

// dateTicks labels at most maxTicks record positions with their dates.
func dateTicks(records []fitness.Record) []chart.Tick {
	step := int(math.Ceil(float64(len(records)) / maxTicks))
	var ticks []chart.Tick
	for i := 0; i < len(records); i += step {
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: records[i].DateString()})
	}
	return ticks
}

func upperBound(values []float64) float64 {
	maxValue := 0.0
	for _, v := range values {
		maxValue = math.Max(maxValue, v)
	}
	if maxValue == 0 {
		return 1
	}
	return maxValue * 1.1
}

func barWidth(n int) int {
	w := (width - 100) / n / 2
	if w > 60 {
		return 60
	}
	if w < 4 {
		return 4
	}
	return w
}
