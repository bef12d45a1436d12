package export

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ThomasMeMan2/skinavigator/internal/routing"
)

// JSONGenerator генератор JSON выгрузки
type JSONGenerator struct {
	BaseGenerator
}

// NewJSONGenerator создаёт новый генератор
func NewJSONGenerator() *JSONGenerator {
	return &JSONGenerator{}
}

func (g *JSONGenerator) Format() Format {
	return FormatJSON
}

func (g *JSONGenerator) ContentType() string {
	return "application/json"
}

// jsonExport структура JSON выгрузки
type jsonExport struct {
	Resort      string         `json:"resort,omitempty"`
	From        string         `json:"from"`
	To          string         `json:"to"`
	Avoid       []string       `json:"avoid,omitempty"`
	GeneratedAt time.Time      `json:"generatedAt"`
	Route       *routing.Route `json:"route"`
}

// Generate генерирует JSON выгрузку
func (g *JSONGenerator) Generate(ctx context.Context, data *RouteData) ([]byte, error) {
	doc := jsonExport{
		Resort:      data.Resort,
		From:        data.From,
		To:          data.To,
		Avoid:       data.Avoid,
		GeneratedAt: data.GeneratedAt,
		Route:       data.Route,
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json export error: %w", err)
	}

	return out, nil
}
