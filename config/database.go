package config

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"wildcam/logging"
	"wildcam/models"
)

// gormWriter 把 gorm 日志转到 zerolog
type gormWriter struct {
	l zerolog.Logger
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	w.l.Debug().Msgf(format, args...)
}

// InitDatabase 打开 SQLite 并迁移账本表
func InitDatabase(path string) (*gorm.DB, error) {
	level := logger.Warn
	if zerolog.GlobalLevel() <= zerolog.DebugLevel {
		level = logger.Info
	}

	newLogger := logger.New(
		gormWriter{l: logging.WithComponent("gorm")},
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	// 并发写入在 busy_timeout 内排队等锁
	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=5000&_txlock=immediate", path)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	if err := db.AutoMigrate(&models.TagRow{}); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	logging.Info().Str("path", path).Msg("数据库初始化成功")
	return db, nil
}
