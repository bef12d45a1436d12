package export

import (
	"context"
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	marotocfg "github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/ThomasMeMan2/skinavigator/internal/routing"
	"github.com/ThomasMeMan2/skinavigator/pkg/config"
	"github.com/ThomasMeMan2/skinavigator/pkg/domain"
)

// PDFGenerator генератор PDF выгрузки
type PDFGenerator struct {
	BaseGenerator
	cfg *config.ExportConfig
}

// NewPDFGenerator создаёт новый генератор
func NewPDFGenerator(cfg *config.ExportConfig) *PDFGenerator {
	return &PDFGenerator{cfg: cfg}
}

func (g *PDFGenerator) Format() Format {
	return FormatPDF
}

func (g *PDFGenerator) ContentType() string {
	return "application/pdf"
}

// Стили
var (
	// Цвета
	primaryColor   = &props.Color{Red: 41, Green: 128, Blue: 185}  // #2980b9
	headerBgColor  = &props.Color{Red: 44, Green: 62, Blue: 80}    // #2c3e50
	greenColor     = &props.Color{Red: 39, Green: 174, Blue: 96}   // #27ae60
	blueColor      = &props.Color{Red: 41, Green: 128, Blue: 185}  // #2980b9
	redColor       = &props.Color{Red: 231, Green: 76, Blue: 60}   // #e74c3c
	blackColor     = &props.Color{Red: 0, Green: 0, Blue: 0}       // #000000
	lightGrayColor = &props.Color{Red: 236, Green: 240, Blue: 241} // #ecf0f1
	darkGrayColor  = &props.Color{Red: 127, Green: 140, Blue: 141} // #7f8c8d

	titleStyle = props.Text{
		Size:  22,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: headerBgColor,
	}

	h2Style = props.Text{
		Size:  16,
		Style: fontstyle.Bold,
		Color: headerBgColor,
		Top:   5,
	}

	normalStyle = props.Text{
		Size: 10,
	}

	boldStyle = props.Text{
		Size:  10,
		Style: fontstyle.Bold,
	}

	smallStyle = props.Text{
		Size:  8,
		Color: darkGrayColor,
	}

	metricValueStyle = props.Text{
		Size:  20,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: primaryColor,
	}

	metricLabelStyle = props.Text{
		Size:  9,
		Align: align.Center,
		Color: darkGrayColor,
	}

	tableHeaderStyle = &props.Cell{
		BackgroundColor: primaryColor,
	}

	tableHeaderTextStyle = props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
		Align: align.Center,
	}

	tableCellStyle = &props.Cell{
		BorderType:  border.Bottom,
		BorderColor: lightGrayColor,
	}

	tableCellTextStyle = props.Text{
		Size:  9,
		Align: align.Center,
	}
)

// Generate генерирует PDF выгрузку
func (g *PDFGenerator) Generate(ctx context.Context, data *RouteData) ([]byte, error) {
	builder := marotocfg.NewBuilder().
		WithPageNumber().
		WithLeftMargin(g.margin(g.pdfCfg().MarginLeft)).
		WithTopMargin(g.margin(g.pdfCfg().MarginTop)).
		WithRightMargin(g.margin(g.pdfCfg().MarginRight))

	m := maroto.New(builder.Build())

	g.addHeader(m, data)
	g.addSummary(m, data.Route)
	g.addSteps(m, data.Route)
	g.addFooter(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

func (g *PDFGenerator) pdfCfg() config.PDFConfig {
	if g.cfg == nil {
		return config.PDFConfig{}
	}
	return g.cfg.PDF
}

func (g *PDFGenerator) margin(v float64) float64 {
	if v <= 0 {
		return 15
	}
	return v
}

func (g *PDFGenerator) addHeader(m core.Maroto, data *RouteData) {
	m.AddRow(15,
		text.NewCol(12, g.Title(data), titleStyle),
	)

	m.AddRow(5,
		line.NewCol(12),
	)

	m.AddRow(6,
		text.NewCol(6, fmt.Sprintf("From %s to %s", data.From, data.To), smallStyle),
		text.NewCol(6, fmt.Sprintf("Generated: %s", g.FormatTimestamp(data.GeneratedAt)),
			props.Text{Size: 8, Color: darkGrayColor, Align: align.Right}),
	)

	if len(data.Avoid) > 0 {
		m.AddRow(5,
			text.NewCol(12, "Avoiding: "+strings.Join(data.Avoid, ", "), smallStyle),
		)
	}

	m.AddRow(8) // Отступ
}

type metricCard struct {
	Label string
	Value string
}

func (g *PDFGenerator) addSummary(m core.Maroto, route *routing.Route) {
	g.addSection(m, "Summary")

	cards := []metricCard{
		{Label: "Duration (min)", Value: fmt.Sprintf("%d", route.Summary.Duration)},
		{Label: "Distance (m)", Value: fmt.Sprintf("%d", route.Summary.Distance)},
		{Label: "Ascent (m)", Value: fmt.Sprintf("%d", route.Summary.Ascent)},
		{Label: "Descent (m)", Value: fmt.Sprintf("%d", route.Summary.Descent)},
	}

	colSize := 12 / len(cards)
	var cols []core.Col
	for _, card := range cards {
		cols = append(cols,
			col.New(colSize).Add(
				text.New(card.Value, metricValueStyle),
				text.New(card.Label, metricLabelStyle),
			),
		)
	}

	m.AddRow(20, cols...)
}

func (g *PDFGenerator) addSteps(m core.Maroto, route *routing.Route) {
	g.addSection(m, "Steps")

	m.AddRow(8,
		text.NewCol(1, "#", tableHeaderTextStyle).WithStyle(tableHeaderStyle),
		text.NewCol(4, "Name", tableHeaderTextStyle).WithStyle(tableHeaderStyle),
		text.NewCol(2, "Category", tableHeaderTextStyle).WithStyle(tableHeaderStyle),
		text.NewCol(2, "Distance (m)", tableHeaderTextStyle).WithStyle(tableHeaderStyle),
		text.NewCol(1, "Elev (m)", tableHeaderTextStyle).WithStyle(tableHeaderStyle),
		text.NewCol(2, "Duration (min)", tableHeaderTextStyle).WithStyle(tableHeaderStyle),
	)

	for i, step := range route.Steps {
		categoryStyle := tableCellTextStyle
		if step.Kind == domain.KindSlope {
			switch step.Difficulty {
			case domain.DifficultyGreen:
				categoryStyle.Color = greenColor
			case domain.DifficultyBlue:
				categoryStyle.Color = blueColor
			case domain.DifficultyRed:
				categoryStyle.Color = redColor
			case domain.DifficultyBlack:
				categoryStyle.Color = blackColor
			}
		}

		m.AddRow(6,
			text.NewCol(1, fmt.Sprintf("%d", i+1), tableCellTextStyle).WithStyle(tableCellStyle),
			text.NewCol(4, g.StepLabel(&step), tableCellTextStyle).WithStyle(tableCellStyle),
			text.NewCol(2, g.StepCategory(&step), categoryStyle).WithStyle(tableCellStyle),
			text.NewCol(2, g.FormatFloat(step.Distance, 1), tableCellTextStyle).WithStyle(tableCellStyle),
			text.NewCol(1, g.FormatFloat(step.ElevationDelta, 0), tableCellTextStyle).WithStyle(tableCellStyle),
			text.NewCol(2, g.FormatFloat(step.Duration, 1), tableCellTextStyle).WithStyle(tableCellStyle),
		)
	}
}

func (g *PDFGenerator) addSection(m core.Maroto, title string) {
	m.AddRow(10,
		text.NewCol(12, title, h2Style),
	)
	m.AddRow(2,
		line.NewCol(12, props.Line{Color: primaryColor}),
	)
	m.AddRow(5)
}

func (g *PDFGenerator) addFooter(m core.Maroto, data *RouteData) {
	m.AddRow(10)
	m.AddRow(5,
		line.NewCol(12),
	)
	m.AddRow(6,
		text.NewCol(12, g.Company(data), smallStyle),
	)
}
