// Package store 用户标签账本。只提供追加和全量读取，读取按插入顺序返回。
package store

import (
	"context"
	"fmt"

	"wildcam/config"
	"wildcam/models"
)

// Ledger 只追加的标签账本
type Ledger interface {
	// Append 追加一行，成功后回填 ID 和 CreatedAt
	Append(ctx context.Context, row *models.TagRow) error
	// All 按插入顺序返回全部行；空账本返回空切片
	All(ctx context.Context) ([]models.TagRow, error)
	Count(ctx context.Context) (int64, error)
	Close() error
}

// Open 根据配置打开账本
func Open(cfg config.LedgerConfig) (Ledger, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		db, err := config.InitDatabase(cfg.DBPath)
		if err != nil {
			return nil, err
		}
		return NewSQLiteLedger(db), nil
	case config.DriverBadger:
		return OpenBadgerLedger(cfg.BadgerDir)
	case config.DriverMemory:
		return NewMemoryLedger(), nil
	default:
		return nil, fmt.Errorf("未知的账本驱动: %q", cfg.Driver)
	}
}
