package export

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ExcelGenerator генератор XLSX выгрузки
type ExcelGenerator struct {
	BaseGenerator
}

// NewExcelGenerator создаёт новый генератор
func NewExcelGenerator() *ExcelGenerator {
	return &ExcelGenerator{}
}

func (g *ExcelGenerator) Format() Format {
	return FormatXLSX
}

func (g *ExcelGenerator) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func cellAddr(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

// Generate генерирует XLSX выгрузку
func (g *ExcelGenerator) Generate(ctx context.Context, data *RouteData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	g.writeRouteSheet(f, data)
	g.writeProfileSheet(f, data)

	// Удаляем дефолтный лист
	f.DeleteSheet("Sheet1")

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("xlsx write error: %w", err)
	}

	return buf.Bytes(), nil
}

func (g *ExcelGenerator) writeRouteSheet(f *excelize.File, data *RouteData) {
	sheetName := "Route"
	f.NewSheet(sheetName)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})

	row := 1

	f.SetCellValue(sheetName, cellAddr("A", row), g.Title(data))
	f.MergeCell(sheetName, cellAddr("A", row), cellAddr("D", row))
	row += 2

	f.SetCellValue(sheetName, cellAddr("A", row), "From")
	f.SetCellValue(sheetName, cellAddr("B", row), data.From)
	row++
	f.SetCellValue(sheetName, cellAddr("A", row), "To")
	f.SetCellValue(sheetName, cellAddr("B", row), data.To)
	row++
	if len(data.Avoid) > 0 {
		f.SetCellValue(sheetName, cellAddr("A", row), "Avoid")
		f.SetCellValue(sheetName, cellAddr("B", row), strings.Join(data.Avoid, ", "))
		row++
	}
	row++

	route := data.Route

	f.SetCellValue(sheetName, cellAddr("A", row), "Summary")
	f.SetCellStyle(sheetName, cellAddr("A", row), cellAddr("B", row), headerStyle)
	row++

	summary := []struct {
		label string
		value int
	}{
		{"Distance (m)", route.Summary.Distance},
		{"Duration (min)", route.Summary.Duration},
		{"Ascent (m)", route.Summary.Ascent},
		{"Descent (m)", route.Summary.Descent},
		{"Steps", route.Summary.StepCount},
	}
	for _, item := range summary {
		f.SetCellValue(sheetName, cellAddr("A", row), item.label)
		f.SetCellValue(sheetName, cellAddr("B", row), item.value)
		row++
	}
	row++

	f.SetCellValue(sheetName, cellAddr("A", row), "Steps")
	f.SetCellStyle(sheetName, cellAddr("A", row), cellAddr("I", row), headerStyle)
	row++

	headers := []string{"#", "Name", "Kind", "Category", "Distance (m)", "Elevation Delta (m)", "Duration (min)", "From", "To"}
	for i, h := range headers {
		f.SetCellValue(sheetName, cellAddr(string(rune('A'+i)), row), h)
	}
	f.SetCellStyle(sheetName, cellAddr("A", row), cellAddr("I", row), headerStyle)
	row++

	for i, step := range route.Steps {
		f.SetCellValue(sheetName, cellAddr("A", row), i+1)
		f.SetCellValue(sheetName, cellAddr("B", row), g.StepLabel(&step))
		f.SetCellValue(sheetName, cellAddr("C", row), string(step.Kind))
		f.SetCellValue(sheetName, cellAddr("D", row), g.StepCategory(&step))
		f.SetCellValue(sheetName, cellAddr("E", row), step.Distance)
		f.SetCellValue(sheetName, cellAddr("F", row), step.ElevationDelta)
		f.SetCellValue(sheetName, cellAddr("G", row), step.Duration)
		f.SetCellValue(sheetName, cellAddr("H", row), step.Source)
		f.SetCellValue(sheetName, cellAddr("I", row), step.Target)
		row++
	}

	f.SetColWidth(sheetName, "B", "B", 24)
	f.SetColWidth(sheetName, "E", "G", 16)
}

func (g *ExcelGenerator) writeProfileSheet(f *excelize.File, data *RouteData) {
	if len(data.Route.Profile) == 0 {
		return
	}

	sheetName := "Profile"
	f.NewSheet(sheetName)

	headers := []string{"Distance (m)", "Elevation (m)", "Node", "Kind", "Difficulty"}
	for i, h := range headers {
		f.SetCellValue(sheetName, cellAddr(string(rune('A'+i)), 1), h)
	}

	row := 2
	for _, point := range data.Route.Profile {
		f.SetCellValue(sheetName, cellAddr("A", row), point.Distance)
		f.SetCellValue(sheetName, cellAddr("B", row), point.Elevation)
		f.SetCellValue(sheetName, cellAddr("C", row), point.Node)
		f.SetCellValue(sheetName, cellAddr("D", row), string(point.Kind))
		f.SetCellValue(sheetName, cellAddr("E", row), string(point.Difficulty))
		row++
	}
}
