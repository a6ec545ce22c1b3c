package chart

import (
	"io"
	"time"

	"github.com/pkg/errors"
	gochart "github.com/wcharczuk/go-chart/v2"
	"max.ks1230/currconv/internal/entity/conversion"
)

const (
	padRatio = 0.1
	flatPad  = 0.1
	flatSpan = time.Minute
)

var ErrNotEnoughPoints = errors.New("need at least two points to draw a chart")

type Point struct {
	At   time.Time
	Rate float64
}

// Series is the rate line of the conversion history, in insertion order.
type Series struct {
	points []Point
}

func NewSeries() *Series {
	return &Series{}
}

// Add appends a point stamped with a record timestamp.
func (s *Series) Add(ts string, rate float64) error {
	at, err := time.ParseInLocation(conversion.TimestampLayout, ts, time.Local)
	if err != nil {
		return errors.Wrap(err, "parse point time")
	}
	s.points = append(s.points, Point{At: at, Rate: rate})
	return nil
}

func (s *Series) Clear() {
	s.points = nil
}

func (s *Series) Len() int {
	return len(s.points)
}

// Bounds are the axis ranges that fit a series.
type Bounds struct {
	From, To time.Time
	Min, Max float64
}

// Bounds spans the first to the last point on X, widened by a minute each way
// when they share a timestamp. Y is padded by a tenth of its spread, or by a
// fixed 0.1 when the line is flat. ok is false for an empty series.
func (s *Series) Bounds() (b Bounds, ok bool) {
	if len(s.points) == 0 {
		return Bounds{}, false
	}

	lo, hi := s.points[0].Rate, s.points[0].Rate
	for _, p := range s.points[1:] {
		if p.Rate < lo {
			lo = p.Rate
		}
		if p.Rate > hi {
			hi = p.Rate
		}
	}

	pad := flatPad
	if hi != lo {
		pad = (hi - lo) * padRatio
	}
	from, to := s.points[0].At, s.points[len(s.points)-1].At
	if !to.After(from) {
		from, to = from.Add(-flatSpan), to.Add(flatSpan)
	}
	return Bounds{
		From: from,
		To:   to,
		Min:  lo - pad,
		Max:  hi + pad,
	}, true
}

// RenderPNG draws the series as a time line.
func (s *Series) RenderPNG(w io.Writer, title string) error {
	if len(s.points) < 2 {
		return ErrNotEnoughPoints
	}
	bounds, _ := s.Bounds()

	xs := make([]time.Time, 0, len(s.points))
	ys := make([]float64, 0, len(s.points))
	for _, p := range s.points {
		xs = append(xs, p.At)
		ys = append(ys, p.Rate)
	}

	graph := gochart.Chart{
		Title: title,
		XAxis: gochart.XAxis{
			Range: &gochart.ContinuousRange{
				Min: float64(bounds.From.UnixNano()),
				Max: float64(bounds.To.UnixNano()),
			},
			ValueFormatter: gochart.TimeValueFormatterWithFormat("02/01 15:04"),
		},
		YAxis: gochart.YAxis{
			Range: &gochart.ContinuousRange{Min: bounds.Min, Max: bounds.Max},
			ValueFormatter: func(v interface{}) string {
				return gochart.FloatValueFormatterWithFormat(v, "%.4f")
			},
		},
		Series: []gochart.Series{
			gochart.TimeSeries{
				XValues: xs,
				YValues: ys,
			},
		},
	}

	return errors.Wrap(graph.Render(gochart.PNG, w), "render chart")
}
