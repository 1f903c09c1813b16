package store

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"wildcam/logging"
	"wildcam/models"
)

var tagPrefix = []byte("tag/")

// BadgerLedger 基于 badger 的账本
// key = "tag/" + 大端序号，前缀遍历即插入顺序
type BadgerLedger struct {
	db  *badger.DB
	seq *badger.Sequence
}

func OpenBadgerLedger(dir string) (*BadgerLedger, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	opts.SyncWrites = true

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("打开 badger 失败: %w", err)
	}

	seq, err := db.GetSequence([]byte("seq/tag"), 100)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("获取序列失败: %w", err)
	}

	logging.Info().Str("dir", dir).Msg("badger 账本已打开")
	return &BadgerLedger{db: db, seq: seq}, nil
}

func tagKey(id uint64) []byte {
	key := make([]byte, len(tagPrefix)+8)
	copy(key, tagPrefix)
	binary.BigEndian.PutUint64(key[len(tagPrefix):], id)
	return key
}

func (l *BadgerLedger) Append(ctx context.Context, row *models.TagRow) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// 序列从 0 开始，+1 与 SQLite 自增 ID 保持一致
	n, err := l.seq.Next()
	if err != nil {
		return fmt.Errorf("分配序号失败: %w", err)
	}
	row.ID = n + 1
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now()
	}

	data, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("编码标签失败: %w", err)
	}

	err = l.db.Update(func(txn *badger.Txn) error {
		return txn.Set(tagKey(row.ID), data)
	})
	if err != nil {
		return fmt.Errorf("写入标签失败: %w", err)
	}
	return nil
}

func (l *BadgerLedger) All(ctx context.Context) ([]models.TagRow, error) {
	rows := make([]models.TagRow, 0)

	err := l.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = tagPrefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			var row models.TagRow
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &row)
			})
			if err != nil {
				return fmt.Errorf("解码标签失败: %w", err)
			}
			rows = append(rows, row)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("读取标签失败: %w", err)
	}
	return rows, nil
}

func (l *BadgerLedger) Count(ctx context.Context) (int64, error) {
	var n int64
	err := l.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = tagPrefix
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			n++
		}
		return ctx.Err()
	})
	if err != nil {
		return 0, fmt.Errorf("统计标签失败: %w", err)
	}
	return n, nil
}

func (l *BadgerLedger) Close() error {
	if err := l.seq.Release(); err != nil {
		logging.Warn().Err(err).Msg("释放序列失败")
	}
	return l.db.Close()
}
