package store

import (
	"context"
	"sync"
	"time"

	"wildcam/models"
)

// MemoryLedger 内存账本，进程退出即丢失
type MemoryLedger struct {
	mu   sync.RWMutex
	rows []models.TagRow
}

func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{}
}

func (l *MemoryLedger) Append(ctx context.Context, row *models.TagRow) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	row.ID = uint64(len(l.rows)) + 1
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now()
	}
	l.rows = append(l.rows, *row)
	return nil
}

func (l *MemoryLedger) All(ctx context.Context) ([]models.TagRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	rows := make([]models.TagRow, len(l.rows))
	copy(rows, l.rows)
	return rows, nil
}

func (l *MemoryLedger) Count(ctx context.Context) (int64, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return int64(len(l.rows)), nil
}

func (l *MemoryLedger) Close() error { return nil }
