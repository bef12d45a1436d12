package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryLimiter in-memory реализация с окном sliding window
type MemoryLimiter struct {
	mu      sync.RWMutex
	buckets map[string]*bucket
	config  *Config
	stopCh  chan struct{}
	closed  bool
}

type bucket struct {
	requests []time.Time
}

// NewMemoryLimiter создаёт in-memory rate limiter
func NewMemoryLimiter(cfg *Config) *MemoryLimiter {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	l := &MemoryLimiter{
		buckets: make(map[string]*bucket),
		config:  cfg,
		stopCh:  make(chan struct{}),
	}

	go l.cleanup()

	return l
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return false, ErrLimiterClosed
	}

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{requests: make([]time.Time, 0)}
		l.buckets[key] = b
	}

	now := time.Now()
	windowStart := now.Add(-l.config.Window)

	// Удаляем устаревшие запросы
	validRequests := make([]time.Time, 0, len(b.requests))
	for _, t := range b.requests {
		if t.After(windowStart) {
			validRequests = append(validRequests, t)
		}
	}
	b.requests = validRequests

	if len(b.requests) < l.config.Requests {
		b.requests = append(b.requests, now)
		return true, nil
	}

	return false, nil
}

func (l *MemoryLimiter) Reset(_ context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.buckets, key)
	return nil
}

func (l *MemoryLimiter) GetInfo(_ context.Context, key string) (*LimitInfo, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	info := &LimitInfo{
		Limit:     l.config.Requests,
		Remaining: l.config.Requests,
		ResetAt:   time.Now().Add(l.config.Window),
	}

	b, ok := l.buckets[key]
	if !ok {
		return info, nil
	}

	windowStart := time.Now().Add(-l.config.Window)
	count := 0
	for _, t := range b.requests {
		if t.After(windowStart) {
			count++
		}
	}

	info.Remaining = l.config.Requests - count
	if info.Remaining < 0 {
		info.Remaining = 0
	}

	return info, nil
}

func (l *MemoryLimiter) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}

	l.closed = true
	close(l.stopCh)
	l.buckets = nil

	return nil
}

func (l *MemoryLimiter) cleanup() {
	ticker := time.NewTicker(l.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stopCh:
			return
		case <-ticker.C:
			l.doCleanup()
		}
	}
}

func (l *MemoryLimiter) doCleanup() {
	l.mu.Lock()
	defer l.mu.Unlock()

	windowStart := time.Now().Add(-l.config.Window * 2) // Храним 2x window

	for key, b := range l.buckets {
		validRequests := make([]time.Time, 0, len(b.requests))
		for _, t := range b.requests {
			if t.After(windowStart) {
				validRequests = append(validRequests, t)
			}
		}

		if len(validRequests) == 0 {
			delete(l.buckets, key)
			continue
		}
		b.requests = validRequests
	}
}
