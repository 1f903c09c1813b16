package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"wildcam/models"
)

// SQLiteLedger 基于 gorm + SQLite 的账本（表 user_tags）
type SQLiteLedger struct {
	db *gorm.DB
}

func NewSQLiteLedger(db *gorm.DB) *SQLiteLedger {
	return &SQLiteLedger{db: db}
}

// Append 单行 INSERT，要么整行提交要么不写入
func (l *SQLiteLedger) Append(ctx context.Context, row *models.TagRow) error {
	row.ID = 0
	if err := l.db.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("写入标签失败: %w", err)
	}
	return nil
}

func (l *SQLiteLedger) All(ctx context.Context) ([]models.TagRow, error) {
	rows := make([]models.TagRow, 0)
	if err := l.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("读取标签失败: %w", err)
	}
	return rows, nil
}

func (l *SQLiteLedger) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := l.db.WithContext(ctx).Model(&models.TagRow{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("统计标签失败: %w", err)
	}
	return n, nil
}

func (l *SQLiteLedger) Close() error {
	sqlDB, err := l.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
