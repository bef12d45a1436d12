package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ThomasMeMan2/skinavigator/pkg/cache"
	"github.com/ThomasMeMan2/skinavigator/pkg/database"
	"github.com/ThomasMeMan2/skinavigator/pkg/telemetry"
)

// PostgresGraphRepository PostgreSQL реализация
type PostgresGraphRepository struct {
	db    database.DB
	cache *cache.GraphCache // nil, если кэширование выключено
}

// NewPostgresGraphRepository создаёт новый репозиторий
func NewPostgresGraphRepository(db database.DB, graphCache *cache.GraphCache) *PostgresGraphRepository {
	return &PostgresGraphRepository{db: db, cache: graphCache}
}

func (r *PostgresGraphRepository) Load(ctx context.Context, slug string) (*ResortGraph, error) {
	ctx, span := telemetry.StartSpan(ctx, "PostgresGraphRepository.Load")
	defer span.End()

	if r.cache != nil {
		if doc := r.cache.Get(ctx, slug); doc != nil {
			return r.loadMeta(ctx, slug, doc)
		}
	}

	query := `
		SELECT slug, name, document, node_count, edge_count, updated_at
		FROM resort_graphs
		WHERE slug = $1
	`

	graph := &ResortGraph{}
	err := r.db.QueryRow(ctx, query, slug).Scan(
		&graph.Slug,
		&graph.Name,
		&graph.Document,
		&graph.NodeCount,
		&graph.EdgeCount,
		&graph.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrResortNotFound
		}
		return nil, fmt.Errorf("failed to load resort graph: %w", err)
	}

	if r.cache != nil {
		r.cache.Set(ctx, slug, graph.Document)
	}

	return graph, nil
}

// loadMeta дочитывает метаданные при попадании документа в кэш
func (r *PostgresGraphRepository) loadMeta(ctx context.Context, slug string, doc []byte) (*ResortGraph, error) {
	query := `
		SELECT name, node_count, edge_count, updated_at
		FROM resort_graphs
		WHERE slug = $1
	`

	graph := &ResortGraph{Slug: slug, Document: doc}
	err := r.db.QueryRow(ctx, query, slug).Scan(
		&graph.Name,
		&graph.NodeCount,
		&graph.EdgeCount,
		&graph.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrResortNotFound
		}
		return nil, fmt.Errorf("failed to load resort metadata: %w", err)
	}

	return graph, nil
}

func (r *PostgresGraphRepository) Save(ctx context.Context, graph *ResortGraph) error {
	ctx, span := telemetry.StartSpan(ctx, "PostgresGraphRepository.Save")
	defer span.End()

	err := database.WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO resort_graphs (slug, name, document, node_count, edge_count)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (slug) DO UPDATE SET
				name = EXCLUDED.name,
				document = EXCLUDED.document,
				node_count = EXCLUDED.node_count,
				edge_count = EXCLUDED.edge_count,
				updated_at = NOW()
		`

		_, err := tx.Exec(ctx, query,
			graph.Slug,
			graph.Name,
			graph.Document,
			graph.NodeCount,
			graph.EdgeCount,
		)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to save resort graph: %w", err)
	}

	if r.cache != nil {
		r.cache.Invalidate(ctx, graph.Slug)
	}

	return nil
}

func (r *PostgresGraphRepository) List(ctx context.Context) ([]*ResortSummary, error) {
	ctx, span := telemetry.StartSpan(ctx, "PostgresGraphRepository.List")
	defer span.End()

	query := `
		SELECT slug, name, node_count, edge_count, updated_at
		FROM resort_graphs
		ORDER BY slug
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list resorts: %w", err)
	}
	defer rows.Close()

	var results []*ResortSummary
	for rows.Next() {
		summary := &ResortSummary{}
		if err := rows.Scan(
			&summary.Slug,
			&summary.Name,
			&summary.NodeCount,
			&summary.EdgeCount,
			&summary.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan resort: %w", err)
		}
		results = append(results, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return results, nil
}
