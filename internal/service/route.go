package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/ThomasMeMan2/skinavigator/internal/repository"
	"github.com/ThomasMeMan2/skinavigator/internal/routing"
	"github.com/ThomasMeMan2/skinavigator/pkg/apperror"
	"github.com/ThomasMeMan2/skinavigator/pkg/cache"
	"github.com/ThomasMeMan2/skinavigator/pkg/domain"
	"github.com/ThomasMeMan2/skinavigator/pkg/logger"
	"github.com/ThomasMeMan2/skinavigator/pkg/metrics"
	"github.com/ThomasMeMan2/skinavigator/pkg/telemetry"
)

// RouteRequest параметры поиска маршрута
type RouteRequest struct {
	From  string   `json:"from"`
	To    string   `json:"to"`
	Avoid []string `json:"avoid,omitempty"`
}

// GraphStats сводная статистика по графу курорта
type GraphStats struct {
	Resort     string           `json:"resort"`
	Nodes      int              `json:"nodes"`
	Edges      int              `json:"edges"`
	Slopes     int              `json:"slopes"`
	Lifts      int              `json:"lifts"`
	Stations   int              `json:"stations"`
	Components []int            `json:"components"`
	Metadata   *domain.Metadata `json:"metadata,omitempty"`
	UpdatedAt  time.Time        `json:"updatedAt"`
}

// RouteService отвечает за загрузку графа и поиск маршрутов.
// Разобранный граф кэшируется по хэшу документа: решённые маршруты
// не кэшируются никогда, каждый запрос считается заново.
type RouteService struct {
	repo    repository.GraphRepository
	metrics *metrics.Metrics

	mu         sync.Mutex
	cachedSlug string
	cachedHash string
	graph      *domain.Graph
	document   *domain.Document
	loadedAt   time.Time
}

// NewRouteService создаёт сервис маршрутов
func NewRouteService(repo repository.GraphRepository) *RouteService {
	return &RouteService{
		repo:    repo,
		metrics: metrics.Get(),
	}
}

// FindRoute ищет быстрейший маршрут между двумя узлами
func (s *RouteService) FindRoute(ctx context.Context, slug string, req *RouteRequest) (*routing.Route, error) {
	ctx, span := telemetry.StartSpan(ctx, "RouteService.FindRoute",
		trace.WithAttributes(
			attribute.String("resort", slug),
			attribute.String("from", req.From),
			attribute.String("to", req.To),
		),
	)
	defer span.End()

	if err := s.validateRequest(req); err != nil {
		telemetry.SetError(ctx, err)
		return nil, err
	}

	exclusions, err := parseAvoid(req.Avoid)
	if err != nil {
		telemetry.SetError(ctx, err)
		return nil, err
	}

	g, _, err := s.loadGraph(ctx, slug)
	if err != nil {
		telemetry.SetError(ctx, err)
		return nil, err
	}

	start := time.Now()
	route, err := routing.FindRoute(g, req.From, req.To, exclusions)
	elapsed := time.Since(start)

	if s.metrics != nil {
		s.metrics.RecordRouteRequest(routeOutcome(err), elapsed)
	}

	if err != nil {
		telemetry.SetError(ctx, err)
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("steps", route.Summary.StepCount),
		attribute.Int("duration_min", route.Summary.Duration),
	)

	if s.metrics != nil {
		s.metrics.RecordRoute(route.Summary.StepCount, route.Summary.Duration)
	}

	return route, nil
}

// Locations возвращает индекс именованных точек курорта
func (s *RouteService) Locations(ctx context.Context, slug string) (*routing.LocationIndex, error) {
	ctx, span := telemetry.StartSpan(ctx, "RouteService.Locations",
		trace.WithAttributes(attribute.String("resort", slug)),
	)
	defer span.End()

	g, _, err := s.loadGraph(ctx, slug)
	if err != nil {
		telemetry.SetError(ctx, err)
		return nil, err
	}

	return routing.BuildLocationIndex(g), nil
}

// Stats возвращает статистику по графу курорта
func (s *RouteService) Stats(ctx context.Context, slug string) (*GraphStats, error) {
	ctx, span := telemetry.StartSpan(ctx, "RouteService.Stats",
		trace.WithAttributes(attribute.String("resort", slug)),
	)
	defer span.End()

	g, resort, err := s.loadGraph(ctx, slug)
	if err != nil {
		telemetry.SetError(ctx, err)
		return nil, err
	}

	stats := &GraphStats{
		Resort:     resort.Slug,
		Nodes:      g.NodeCount(),
		Edges:      g.EdgeCount(),
		UpdatedAt:  resort.UpdatedAt,
		Components: []int{},
	}

	for _, edge := range g.Edges() {
		switch edge.Kind {
		case domain.KindSlope:
			stats.Slopes++
		case domain.KindLift:
			stats.Lifts++
		}
	}

	for _, node := range g.Nodes() {
		if node.IsStation() {
			stats.Stations++
		}
	}

	for _, component := range g.Components() {
		stats.Components = append(stats.Components, len(component))
	}

	s.mu.Lock()
	if s.document != nil && s.cachedSlug == resort.Slug {
		meta := s.document.Metadata
		stats.Metadata = &meta
	}
	s.mu.Unlock()

	return stats, nil
}

// Resorts возвращает список доступных курортов
func (s *RouteService) Resorts(ctx context.Context) ([]*repository.ResortSummary, error) {
	ctx, span := telemetry.StartSpan(ctx, "RouteService.Resorts")
	defer span.End()

	resorts, err := s.repo.List(ctx)
	if err != nil {
		telemetry.SetError(ctx, err)
		return nil, err
	}

	return resorts, nil
}

// loadGraph загружает документ графа и переиспользует разобранный граф,
// пока хэш документа не изменился
func (s *RouteService) loadGraph(ctx context.Context, slug string) (*domain.Graph, *repository.ResortGraph, error) {
	resort, err := s.repo.Load(ctx, slug)
	if err != nil {
		if err == repository.ErrResortNotFound {
			return nil, nil, apperror.NewWithField(apperror.CodeNotFound, "resort not found", "resort")
		}
		return nil, nil, apperror.Wrap(err, apperror.CodeInternal, "failed to load resort graph")
	}

	hash := cache.QuickHash(resort.Document)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.graph != nil && s.cachedSlug == resort.Slug && s.cachedHash == hash {
		return s.graph, resort, nil
	}

	doc, err := domain.DecodeDocument(resort.Document)
	if err != nil {
		return nil, nil, err
	}

	g, err := doc.ToGraph()
	if err != nil {
		return nil, nil, err
	}

	s.cachedSlug = resort.Slug
	s.cachedHash = hash
	s.graph = g
	s.document = doc
	s.loadedAt = time.Now()

	if s.metrics != nil {
		s.metrics.SetGraphSize(g.NodeCount(), g.EdgeCount())
	}

	logger.Info("Resort graph loaded",
		"resort", resort.Slug,
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"hash", cache.ShortHash(resort.Document),
	)

	if components := g.Components(); len(components) > 1 {
		logger.Warn("Resort graph is not fully connected",
			"resort", resort.Slug,
			"components", len(components),
		)
	}

	return g, resort, nil
}

func (s *RouteService) validateRequest(req *RouteRequest) error {
	if req == nil || req.From == "" {
		return apperror.NewWithField(apperror.CodeInvalidArgument, "from is required", "from")
	}
	if req.To == "" {
		return apperror.NewWithField(apperror.CodeInvalidArgument, "to is required", "to")
	}
	return nil
}

// parseAvoid преобразует список исключаемых сложностей
func parseAvoid(avoid []string) (domain.Exclusions, error) {
	exclusions := domain.NewExclusions()
	for _, raw := range avoid {
		d := domain.Difficulty(strings.ToLower(strings.TrimSpace(raw)))
		switch d {
		case domain.DifficultyGreen, domain.DifficultyBlue, domain.DifficultyRed, domain.DifficultyBlack:
			exclusions[d] = true
		default:
			return nil, apperror.NewWithField(apperror.CodeInvalidArgument, "unknown difficulty: "+raw, "avoid")
		}
	}
	return exclusions, nil
}

func routeOutcome(err error) string {
	if err == nil {
		return "ok"
	}
	switch apperror.Code(err) {
	case apperror.CodeSameLocation:
		return "same_location"
	case apperror.CodeNoRoute:
		return "no_route"
	default:
		return "error"
	}
}
