package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ThomasMeMan2/skinavigator/internal/routing"
	"github.com/ThomasMeMan2/skinavigator/pkg/apperror"
	"github.com/ThomasMeMan2/skinavigator/pkg/config"
	"github.com/ThomasMeMan2/skinavigator/pkg/domain"
)

func sampleRouteData() *RouteData {
	return &RouteData{
		Resort: "la-plagne",
		From:   "n1",
		To:     "n3",
		Avoid:  []string{"black"},
		Route: &routing.Route{
			Path: []string{"n1", "n2", "n3"},
			Steps: []routing.Step{
				{
					EdgeID:         "l1",
					Name:           "Express",
					Kind:           domain.KindLift,
					LiftType:       domain.LiftGondola,
					Distance:       1000,
					ElevationDelta: 500,
					Duration:       8.0,
					Source:         "n1",
					Target:         "n2",
				},
				{
					EdgeID:         "s1",
					Kind:           domain.KindSlope,
					Difficulty:     domain.DifficultyBlue,
					Distance:       1250,
					ElevationDelta: -400,
					Duration:       5.0,
					Source:         "n2",
					Target:         "n3",
				},
			},
			Summary: routing.Summary{
				Distance:  2250,
				Duration:  13,
				Ascent:    500,
				Descent:   400,
				StepCount: 2,
			},
			Profile: []routing.ProfilePoint{
				{Distance: 0, Elevation: 1000, Node: true},
				{Distance: 1000, Elevation: 1500, Node: true},
				{Distance: 2250, Elevation: 1100, Node: true},
			},
		},
		Company:     "Ski Navigator",
		GeneratedAt: time.Date(2026, 2, 14, 9, 30, 0, 0, time.UTC),
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{"json", FormatJSON, false},
		{"", FormatJSON, false},
		{"csv", FormatCSV, false},
		{"xlsx", FormatXLSX, false},
		{"excel", FormatXLSX, false},
		{"PDF", FormatPDF, false},
		{"docx", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			format, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Equal(t, apperror.CodeUnsupportedFormat, apperror.Code(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, format)
		})
	}
}

func TestNew_Dispatch(t *testing.T) {
	cfg := &config.ExportConfig{CompanyName: "Ski Navigator"}

	for _, format := range []Format{FormatJSON, FormatCSV, FormatXLSX, FormatPDF} {
		g, err := New(format, cfg)
		require.NoError(t, err)
		assert.Equal(t, format, g.Format())
		assert.NotEmpty(t, g.ContentType())
	}

	_, err := New("docx", cfg)
	assert.Equal(t, apperror.CodeUnsupportedFormat, apperror.Code(err))
}

func TestJSONGenerator(t *testing.T) {
	out, err := NewJSONGenerator().Generate(context.Background(), sampleRouteData())
	require.NoError(t, err)

	var doc struct {
		Resort string         `json:"resort"`
		From   string         `json:"from"`
		To     string         `json:"to"`
		Avoid  []string       `json:"avoid"`
		Route  *routing.Route `json:"route"`
	}
	require.NoError(t, json.Unmarshal(out, &doc))

	assert.Equal(t, "la-plagne", doc.Resort)
	assert.Equal(t, "n1", doc.From)
	assert.Equal(t, []string{"black"}, doc.Avoid)
	require.NotNil(t, doc.Route)
	assert.Equal(t, 13, doc.Route.Summary.Duration)
	assert.Len(t, doc.Route.Steps, 2)
}

func TestCSVGenerator(t *testing.T) {
	out, err := NewCSVGenerator().Generate(context.Background(), sampleRouteData())
	require.NoError(t, err)

	r := csv.NewReader(bytes.NewReader(out))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	require.NoError(t, err)

	assert.Equal(t, []string{"# Ski Route: la-plagne"}, records[0])

	// Последние две строки таблицы шагов
	last := records[len(records)-1]
	assert.Equal(t, "2", last[0])
	assert.Equal(t, "Unnamed", last[1])
	assert.Equal(t, "slope", last[2])
	assert.Equal(t, "blue", last[3])

	prev := records[len(records)-2]
	assert.Equal(t, "Express", prev[1])
	assert.Equal(t, "lift", prev[2])
	assert.Equal(t, "gondola", prev[3])
}

func TestExcelGenerator(t *testing.T) {
	out, err := NewExcelGenerator().Generate(context.Background(), sampleRouteData())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "Route")
	assert.Contains(t, sheets, "Profile")
	assert.NotContains(t, sheets, "Sheet1")

	title, err := f.GetCellValue("Route", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Ski Route: la-plagne", title)

	elevation, err := f.GetCellValue("Profile", "B2")
	require.NoError(t, err)
	assert.Equal(t, "1000", elevation)
}

func TestPDFGenerator(t *testing.T) {
	g := NewPDFGenerator(&config.ExportConfig{
		CompanyName: "Ski Navigator",
		PDF:         config.PDFConfig{MarginTop: 15, MarginLeft: 15, MarginRight: 15},
	})

	out, err := g.Generate(context.Background(), sampleRouteData())
	require.NoError(t, err)

	require.NotEmpty(t, out)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}
