package domain

import (
	"encoding/json"

	"github.com/ThomasMeMan2/skinavigator/pkg/apperror"
)

// NodeData узел в JSON-документе графа
type NodeData struct {
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Ele     float64 `json:"ele"`
	Station string  `json:"station,omitempty"`
}

// EdgeData ребро в JSON-документе графа
type EdgeData struct {
	ID             string       `json:"id"`
	Source         string       `json:"source"`
	Target         string       `json:"target"`
	Name           string       `json:"name,omitempty"`
	Type           string       `json:"type"`
	Difficulty     string       `json:"difficulty,omitempty"`
	LiftType       string       `json:"liftType,omitempty"`
	Distance       float64      `json:"distance"`
	ElevationDelta float64      `json:"elevationDelta"`
	Geometry       [][2]float64 `json:"geometry,omitempty"`
}

// BoundingBox географические границы курорта
type BoundingBox struct {
	MinLat float64 `json:"minLat"`
	MinLon float64 `json:"minLon"`
	MaxLat float64 `json:"maxLat"`
	MaxLon float64 `json:"maxLon"`
}

// Metadata сводные данные пайплайна подготовки графа
type Metadata struct {
	Generated   string       `json:"generated,omitempty"`
	SlopeCount  int          `json:"slopeCount"`
	LiftCount   int          `json:"liftCount"`
	NodeCount   int          `json:"nodeCount"`
	EdgeCount   int          `json:"edgeCount"`
	BoundingBox *BoundingBox `json:"boundingBox,omitempty"`
}

// Document JSON-документ графа курорта, как его выгружает OSM-пайплайн
type Document struct {
	Nodes    map[string]NodeData `json:"nodes"`
	Edges    []EdgeData          `json:"edges"`
	Metadata Metadata            `json:"metadata"`
}

// DecodeDocument разбирает JSON-документ графа
func DecodeDocument(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, apperror.Wrap(err, apperror.CodeMalformedData, "failed to decode graph document")
	}
	return &doc, nil
}

// ToGraph строит граф из документа. Сырые OSM-теги сложности и типа
// подъёмника нормализуются до канонических категорий.
func (d *Document) ToGraph() (*Graph, error) {
	nodes := make([]*Node, 0, len(d.Nodes))
	for id, nd := range d.Nodes {
		nodes = append(nodes, &Node{
			ID:        id,
			Elevation: nd.Ele,
			Station:   nd.Station,
		})
	}

	edges := make([]*Edge, 0, len(d.Edges))
	for _, ed := range d.Edges {
		edge := &Edge{
			ID:             ed.ID,
			Source:         ed.Source,
			Target:         ed.Target,
			Kind:           EdgeKind(ed.Type),
			Distance:       ed.Distance,
			ElevationDelta: ed.ElevationDelta,
			Name:           ed.Name,
			Geometry:       ed.Geometry,
		}
		switch edge.Kind {
		case KindSlope:
			edge.Difficulty = NormalizeDifficulty(ed.Difficulty)
		case KindLift:
			edge.LiftType = NormalizeLiftType(ed.LiftType)
		}
		edges = append(edges, edge)
	}

	return Build(nodes, edges)
}
