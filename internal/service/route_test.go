package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThomasMeMan2/skinavigator/internal/repository"
	"github.com/ThomasMeMan2/skinavigator/pkg/apperror"
	"github.com/ThomasMeMan2/skinavigator/pkg/logger"
)

const testGraphJSON = `{
	"nodes": {
		"n1": {"lat": 45.50, "lon": 6.66, "ele": 1000.0, "station": "Base"},
		"n2": {"lat": 45.51, "lon": 6.67, "ele": 1500.0, "station": "Summit"}
	},
	"edges": [
		{"id": "l1", "source": "n1", "target": "n2", "name": "Express", "type": "lift",
		 "liftType": "gondola", "distance": 1000.0, "elevationDelta": 500.0},
		{"id": "s1", "source": "n2", "target": "n1", "name": "Mira", "type": "slope",
		 "difficulty": "blue", "distance": 1250.0, "elevationDelta": -500.0}
	],
	"metadata": {"slopeCount": 1, "liftCount": 1, "nodeCount": 2, "edgeCount": 2}
}`

type stubRepo struct {
	document  []byte
	loadCalls int
}

func (r *stubRepo) Load(ctx context.Context, slug string) (*repository.ResortGraph, error) {
	r.loadCalls++
	if slug != "la-plagne" {
		return nil, repository.ErrResortNotFound
	}
	return &repository.ResortGraph{
		Slug:      "la-plagne",
		Name:      "La Plagne",
		Document:  r.document,
		NodeCount: 2,
		EdgeCount: 2,
		UpdatedAt: time.Now(),
	}, nil
}

func (r *stubRepo) Save(ctx context.Context, graph *repository.ResortGraph) error {
	return nil
}

func (r *stubRepo) List(ctx context.Context) ([]*repository.ResortSummary, error) {
	return []*repository.ResortSummary{{Slug: "la-plagne", Name: "La Plagne"}}, nil
}

func newTestService(t *testing.T) (*RouteService, *stubRepo) {
	t.Helper()
	logger.Init("error")

	repo := &stubRepo{document: []byte(testGraphJSON)}
	return NewRouteService(repo), repo
}

func TestRouteService_FindRoute(t *testing.T) {
	svc, _ := newTestService(t)

	route, err := svc.FindRoute(context.Background(), "la-plagne", &RouteRequest{
		From: "n1",
		To:   "n2",
	})
	require.NoError(t, err)

	// Гондола: 1000/200 + 3 минуты очереди
	assert.Equal(t, []string{"n1", "n2"}, route.Path)
	assert.Equal(t, 8, route.Summary.Duration)
	assert.Equal(t, 1000, route.Summary.Distance)
	assert.Equal(t, 500, route.Summary.Ascent)
	assert.Equal(t, 0, route.Summary.Descent)
}

func TestRouteService_FindRoute_Avoid(t *testing.T) {
	svc, _ := newTestService(t)

	// Исключение blue делает обратный спуск недостижимым
	_, err := svc.FindRoute(context.Background(), "la-plagne", &RouteRequest{
		From:  "n2",
		To:    "n1",
		Avoid: []string{"blue"},
	})
	assert.Equal(t, apperror.CodeNoRoute, apperror.Code(err))
}

func TestRouteService_FindRoute_Validation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  *RouteRequest
	}{
		{"missing from", &RouteRequest{To: "n2"}},
		{"missing to", &RouteRequest{From: "n1"}},
		{"unknown difficulty", &RouteRequest{From: "n1", To: "n2", Avoid: []string{"purple"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.FindRoute(ctx, "la-plagne", tt.req)
			assert.Equal(t, apperror.CodeInvalidArgument, apperror.Code(err))
		})
	}
}

func TestRouteService_FindRoute_SameLocation(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.FindRoute(context.Background(), "la-plagne", &RouteRequest{
		From: "n1",
		To:   "n1",
	})
	assert.Equal(t, apperror.CodeSameLocation, apperror.Code(err))
}

func TestRouteService_FindRoute_UnknownResort(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.FindRoute(context.Background(), "narnia", &RouteRequest{
		From: "n1",
		To:   "n2",
	})
	assert.Equal(t, apperror.CodeNotFound, apperror.Code(err))
}

func TestRouteService_Locations(t *testing.T) {
	svc, _ := newTestService(t)

	index, err := svc.Locations(context.Background(), "la-plagne")
	require.NoError(t, err)

	require.Len(t, index.Stations, 2)
	assert.Equal(t, "Base (1000m)", index.Stations[0].Label)
	assert.Equal(t, "Summit (1500m)", index.Stations[1].Label)
}

func TestRouteService_Stats(t *testing.T) {
	svc, _ := newTestService(t)

	stats, err := svc.Stats(context.Background(), "la-plagne")
	require.NoError(t, err)

	assert.Equal(t, "la-plagne", stats.Resort)
	assert.Equal(t, 2, stats.Nodes)
	assert.Equal(t, 2, stats.Edges)
	assert.Equal(t, 1, stats.Slopes)
	assert.Equal(t, 1, stats.Lifts)
	assert.Equal(t, 2, stats.Stations)
	assert.Equal(t, []int{2}, stats.Components)
	require.NotNil(t, stats.Metadata)
	assert.Equal(t, 1, stats.Metadata.SlopeCount)
}

func TestRouteService_GraphReuse(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	_, err := svc.FindRoute(ctx, "la-plagne", &RouteRequest{From: "n1", To: "n2"})
	require.NoError(t, err)
	first := svc.loadedAt

	_, err = svc.FindRoute(ctx, "la-plagne", &RouteRequest{From: "n2", To: "n1"})
	require.NoError(t, err)

	// Документ не менялся: репозиторий опрошен дважды, граф разобран один раз
	assert.Equal(t, 2, repo.loadCalls)
	assert.Equal(t, first, svc.loadedAt)
}

func TestRouteService_Resorts(t *testing.T) {
	svc, _ := newTestService(t)

	resorts, err := svc.Resorts(context.Background())
	require.NoError(t, err)
	require.Len(t, resorts, 1)
	assert.Equal(t, "la-plagne", resorts[0].Slug)
}
