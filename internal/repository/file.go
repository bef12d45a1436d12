package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ThomasMeMan2/skinavigator/pkg/domain"
)

// FileRepository читает граф курорта из JSON-файла на диске.
// Используется в development-режиме и при -ingest.
type FileRepository struct {
	path string
	slug string
}

// NewFileRepository создаёт файловый репозиторий
func NewFileRepository(path, slug string) *FileRepository {
	return &FileRepository{path: path, slug: slug}
}

func (r *FileRepository) Load(ctx context.Context, slug string) (*ResortGraph, error) {
	if slug != "" && slug != r.slug {
		return nil, ErrResortNotFound
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrResortNotFound
		}
		return nil, fmt.Errorf("failed to read graph file: %w", err)
	}

	info, err := os.Stat(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat graph file: %w", err)
	}

	doc, err := domain.DecodeDocument(data)
	if err != nil {
		return nil, err
	}

	return &ResortGraph{
		Slug:      r.slug,
		Name:      r.slug,
		Document:  data,
		NodeCount: len(doc.Nodes),
		EdgeCount: len(doc.Edges),
		UpdatedAt: info.ModTime(),
	}, nil
}

func (r *FileRepository) Save(ctx context.Context, graph *ResortGraph) error {
	if graph.Slug != r.slug {
		return fmt.Errorf("file repository holds %q, cannot save %q", r.slug, graph.Slug)
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("failed to create graph directory: %w", err)
	}

	// Пишем во временный файл, затем переименовываем
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, graph.Document, 0o644); err != nil {
		return fmt.Errorf("failed to write graph file: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("failed to replace graph file: %w", err)
	}

	return nil
}

func (r *FileRepository) List(ctx context.Context) ([]*ResortSummary, error) {
	graph, err := r.Load(ctx, r.slug)
	if err != nil {
		return nil, err
	}

	return []*ResortSummary{{
		Slug:      graph.Slug,
		Name:      graph.Name,
		NodeCount: graph.NodeCount,
		EdgeCount: graph.EdgeCount,
		UpdatedAt: graph.UpdatedAt,
	}}, nil
}
