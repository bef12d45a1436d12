package export

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ThomasMeMan2/skinavigator/internal/routing"
	"github.com/ThomasMeMan2/skinavigator/pkg/apperror"
	"github.com/ThomasMeMan2/skinavigator/pkg/config"
	"github.com/ThomasMeMan2/skinavigator/pkg/domain"
)

// Format формат выгрузки маршрута
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

// RouteData данные для выгрузки маршрута
type RouteData struct {
	Resort      string
	From        string
	To          string
	Avoid       []string
	Route       *routing.Route
	Company     string
	GeneratedAt time.Time
}

// Generator интерфейс генератора выгрузки
type Generator interface {
	Generate(ctx context.Context, data *RouteData) ([]byte, error)
	Format() Format
	ContentType() string
}

// ParseFormat разбирает формат из строки запроса
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatJSON, "":
		return FormatJSON, nil
	case FormatCSV:
		return FormatCSV, nil
	case FormatXLSX, "excel":
		return FormatXLSX, nil
	case FormatPDF:
		return FormatPDF, nil
	default:
		return "", apperror.NewWithField(apperror.CodeUnsupportedFormat, "unsupported export format: "+s, "format")
	}
}

// New создаёт генератор по формату
func New(format Format, cfg *config.ExportConfig) (Generator, error) {
	switch format {
	case FormatJSON:
		return NewJSONGenerator(), nil
	case FormatCSV:
		return NewCSVGenerator(), nil
	case FormatXLSX:
		return NewExcelGenerator(), nil
	case FormatPDF:
		return NewPDFGenerator(cfg), nil
	default:
		return nil, apperror.NewWithField(apperror.CodeUnsupportedFormat, "unsupported export format: "+string(format), "format")
	}
}

// BaseGenerator базовые утилиты для генераторов
type BaseGenerator struct{}

// Title возвращает заголовок выгрузки
func (b *BaseGenerator) Title(data *RouteData) string {
	if data.Resort != "" {
		return fmt.Sprintf("Ski Route: %s", data.Resort)
	}
	return "Ski Route"
}

// Company возвращает подпись компании
func (b *BaseGenerator) Company(data *RouteData) string {
	if data.Company != "" {
		return data.Company
	}
	return "Ski Navigator"
}

// StepLabel возвращает читаемое имя участка
func (b *BaseGenerator) StepLabel(step *routing.Step) string {
	if step.Name != "" {
		return step.Name
	}
	return "Unnamed"
}

// StepCategory возвращает сложность спуска или тип подъёмника
func (b *BaseGenerator) StepCategory(step *routing.Step) string {
	switch step.Kind {
	case domain.KindSlope:
		return string(step.Difficulty)
	case domain.KindLift:
		return string(step.LiftType)
	default:
		return ""
	}
}

// FormatFloat форматирует число с заданной точностью
func (b *BaseGenerator) FormatFloat(v float64, precision int) string {
	return fmt.Sprintf("%.*f", precision, v)
}

// FormatTimestamp форматирует время
func (b *BaseGenerator) FormatTimestamp(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}
