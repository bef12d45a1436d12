package repository

import (
	"context"
	"errors"
	"time"
)

// Стандартные ошибки
var (
	ErrResortNotFound = errors.New("resort not found")
	ErrReadOnly       = errors.New("repository is read-only")
)

// ResortGraph модель графа курорта: сырой JSON-документ плюс метаданные
type ResortGraph struct {
	Slug      string
	Name      string
	Document  []byte // JSON
	NodeCount int
	EdgeCount int
	UpdatedAt time.Time
}

// ResortSummary краткая информация о курорте
type ResortSummary struct {
	Slug      string
	Name      string
	NodeCount int
	EdgeCount int
	UpdatedAt time.Time
}

// GraphRepository интерфейс хранилища графов курортов
type GraphRepository interface {
	// Load возвращает документ графа по slug курорта
	Load(ctx context.Context, slug string) (*ResortGraph, error)

	// Save сохраняет или обновляет документ графа
	Save(ctx context.Context, graph *ResortGraph) error

	// List возвращает список доступных курортов
	List(ctx context.Context) ([]*ResortSummary, error)
}
