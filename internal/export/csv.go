package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"
)

// CSVGenerator генератор CSV выгрузки
type CSVGenerator struct {
	BaseGenerator
}

// NewCSVGenerator создаёт новый генератор
func NewCSVGenerator() *CSVGenerator {
	return &CSVGenerator{}
}

func (g *CSVGenerator) Format() Format {
	return FormatCSV
}

func (g *CSVGenerator) ContentType() string {
	return "text/csv"
}

// csvWriter обёртка для отслеживания ошибок
type csvWriter struct {
	w   *csv.Writer
	err error
}

func (cw *csvWriter) Write(record []string) {
	if cw.err != nil {
		return
	}
	cw.err = cw.w.Write(record)
}

func (cw *csvWriter) Flush() {
	if cw.err != nil {
		return
	}
	cw.w.Flush()
	cw.err = cw.w.Error()
}

func (cw *csvWriter) Error() error {
	return cw.err
}

// Generate генерирует CSV выгрузку
func (g *CSVGenerator) Generate(ctx context.Context, data *RouteData) ([]byte, error) {
	var buf bytes.Buffer
	cw := &csvWriter{w: csv.NewWriter(&buf)}

	cw.Write([]string{"# " + g.Title(data)})
	cw.Write([]string{"From", data.From})
	cw.Write([]string{"To", data.To})
	if len(data.Avoid) > 0 {
		cw.Write([]string{"Avoid", strings.Join(data.Avoid, ", ")})
	}
	cw.Write([]string{"Generated", g.FormatTimestamp(data.GeneratedAt)})
	cw.Write([]string{""})

	route := data.Route

	cw.Write([]string{"Summary"})
	cw.Write([]string{"Distance (m)", fmt.Sprintf("%d", route.Summary.Distance)})
	cw.Write([]string{"Duration (min)", fmt.Sprintf("%d", route.Summary.Duration)})
	cw.Write([]string{"Ascent (m)", fmt.Sprintf("%d", route.Summary.Ascent)})
	cw.Write([]string{"Descent (m)", fmt.Sprintf("%d", route.Summary.Descent)})
	cw.Write([]string{"Steps", fmt.Sprintf("%d", route.Summary.StepCount)})
	cw.Write([]string{""})

	cw.Write([]string{"Steps"})
	cw.Write([]string{"#", "Name", "Kind", "Category", "Distance (m)", "Elevation Delta (m)", "Duration (min)", "From", "To"})
	for i, step := range route.Steps {
		cw.Write([]string{
			fmt.Sprintf("%d", i+1),
			g.StepLabel(&step),
			string(step.Kind),
			g.StepCategory(&step),
			g.FormatFloat(step.Distance, 1),
			g.FormatFloat(step.ElevationDelta, 1),
			g.FormatFloat(step.Duration, 1),
			step.Source,
			step.Target,
		})
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, fmt.Errorf("csv write error: %w", err)
	}

	return buf.Bytes(), nil
}
