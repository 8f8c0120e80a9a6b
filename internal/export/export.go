// Package export renders price and rank history as CSV files and PNG charts.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"slices"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"

	domain "github.com/donaldgifford/competitive-price-monitor/pkg/types"
)

// ErrNoPaths is returned when neither a CSV nor a PNG destination is given.
var ErrNoPaths = errors.New("at least one of --csv or --png must be provided")

// ErrTooFewPoints is returned when a chart is requested for fewer than two points.
var ErrTooFewPoints = errors.New("at least two history points are required to draw a chart")

var csvHeader = []string{"recorded_at", "asin", "value", "currency", "value_type", "seller_sku", "data_source"}

// Options selects export destinations. MaxPoints of zero exports every point.
type Options struct {
	CSVPath   string
	PNGPath   string
	MaxPoints int
}

// Export writes history to the destinations in opts, oldest point first.
func Export(opts Options, title string, points []domain.Snapshot) error {
	if opts.CSVPath == "" && opts.PNGPath == "" {
		return ErrNoPaths
	}

	points = Downsample(Chronological(points), opts.MaxPoints)

	if opts.CSVPath != "" {
		if err := writeFile(opts.CSVPath, func(w io.Writer) error {
			return WriteCSV(w, points)
		}); err != nil {
			return fmt.Errorf("writing csv: %w", err)
		}
	}

	if opts.PNGPath != "" {
		if err := writeFile(opts.PNGPath, func(w io.Writer) error {
			return WritePNG(w, title, points)
		}); err != nil {
			return fmt.Errorf("writing png: %w", err)
		}
	}

	return nil
}

// Chronological returns a copy of points sorted oldest first.
func Chronological(points []domain.Snapshot) []domain.Snapshot {
	out := slices.Clone(points)
	slices.SortStableFunc(out, func(a, b domain.Snapshot) int {
		return a.RecordedAt.Compare(b.RecordedAt)
	})
	return out
}

// Downsample picks max evenly spaced points, always keeping the first and last.
func Downsample(points []domain.Snapshot, max int) []domain.Snapshot {
	if max <= 0 || len(points) <= max {
		return points
	}
	if max == 1 {
		return points[len(points)-1:]
	}

	result := make([]domain.Snapshot, 0, max)
	step := float64(len(points)-1) / float64(max-1)
	for i := range max {
		idx := min(int(math.Round(step*float64(i))), len(points)-1)
		result = append(result, points[idx])
	}
	return result
}

// WriteCSV writes one row per point with a header row.
func WriteCSV(w io.Writer, points []domain.Snapshot) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return err
	}
	for i := range points {
		p := &points[i]
		record := []string{
			p.RecordedAt.UTC().Format(time.RFC3339),
			p.ASIN,
			p.Value.String(),
			p.Currency,
			p.ValueType,
			p.SellerSKU,
			p.DataSource,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// WritePNG renders points as a time series line chart.
func WritePNG(w io.Writer, title string, points []domain.Snapshot) error {
	if len(points) < 2 {
		return ErrTooFewPoints
	}

	x := make([]time.Time, len(points))
	y := make([]float64, len(points))
	for i := range points {
		x[i] = points[i].RecordedAt
		y[i] = points[i].Value.InexactFloat64()
	}

	yName, format := "Price", "%.2f"
	if points[0].IsRank() {
		yName, format = "Sales rank", "%.0f"
	}

	graph := chart.Chart{
		Title:  title,
		Width:  1280,
		Height: 720,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatter,
		},
		YAxis: chart.YAxis{
			Name: yName,
			ValueFormatter: func(v interface{}) string {
				return chart.FloatValueFormatterWithFormat(v, format)
			},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    yName,
				XValues: x,
				YValues: y,
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	return graph.Render(chart.PNG, w)
}

func writeFile(path string, fn func(io.Writer) error) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(file); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
