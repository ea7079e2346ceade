// Package chart renders the daily average mood series as a PNG line
// chart, delegating the drawing to go-chart.
package chart

import (
	"fmt"
	"io"
	"time"

	"moodlog/insight"
	"moodlog/models"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var lineColor = drawing.ColorFromHex("0d6efd")

// Render writes the trend chart for the given series. The series must be
// non-empty; callers map "no data" to NotFound before getting here.
func Render(w io.Writer, series []insight.DailyAverage, days int) error {
	xs := make([]time.Time, 0, len(series))
	ys := make([]float64, 0, len(series))
	for _, point := range series {
		t, err := time.Parse("2006-01-02", point.Date)
		if err != nil {
			return err
		}
		xs = append(xs, t)
		ys = append(ys, point.MoodScore)
	}

	ticks := make([]gochart.Tick, 0, len(models.MoodLabels)+2)
	ticks = append(ticks, gochart.Tick{Value: 0, Label: ""})
	for _, score := range []int{1, 3, 5, 7, 9} {
		ticks = append(ticks, gochart.Tick{Value: float64(score), Label: models.MoodLabels[score]})
	}
	ticks = append(ticks, gochart.Tick{Value: 10, Label: ""})

	graph := gochart.Chart{
		Title:  fmt.Sprintf("Your Daily Average Mood (Last %d Days)", days),
		Width:  900,
		Height: 450,
		XAxis: gochart.XAxis{
			ValueFormatter: gochart.TimeDateValueFormatter,
		},
		YAxis: gochart.YAxis{
			Range: &gochart.ContinuousRange{Min: 0, Max: 10},
			Ticks: ticks,
		},
		Series: []gochart.Series{
			gochart.TimeSeries{
				Style: gochart.Style{
					StrokeColor: lineColor,
					StrokeWidth: 2,
					DotColor:    lineColor,
					DotWidth:    4,
				},
				XValues: xs,
				YValues: ys,
			},
		},
	}

	// a single data point has no x-extent; widen the axis by a day each
	// side so go-chart has a drawable range
	if len(xs) == 1 {
		graph.XAxis.Range = &gochart.ContinuousRange{
			Min: float64(xs[0].AddDate(0, 0, -1).UnixNano()),
			Max: float64(xs[0].AddDate(0, 0, 1).UnixNano()),
		}
	}

	return graph.Render(gochart.PNG, w)
}
