package store

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wildcam/config"
	"wildcam/models"
)

func strPtr(s string) *string { return &s }

// ledgerFactories 每个驱动一个构造函数，测试结束自动关闭
func ledgerFactories() map[string]func(t *testing.T) Ledger {
	return map[string]func(t *testing.T) Ledger{
		"sqlite": func(t *testing.T) Ledger {
			t.Helper()
			l, err := Open(config.LedgerConfig{
				Driver: config.DriverSQLite,
				DBPath: filepath.Join(t.TempDir(), "test.db"),
			})
			require.NoError(t, err)
			t.Cleanup(func() { _ = l.Close() })
			return l
		},
		"badger": func(t *testing.T) Ledger {
			t.Helper()
			l, err := Open(config.LedgerConfig{
				Driver:    config.DriverBadger,
				BadgerDir: t.TempDir(),
			})
			require.NoError(t, err)
			t.Cleanup(func() { _ = l.Close() })
			return l
		},
		"memory": func(t *testing.T) Ledger {
			t.Helper()
			l, err := Open(config.LedgerConfig{Driver: config.DriverMemory})
			require.NoError(t, err)
			return l
		},
	}
}

func TestLedger_EmptyIsNotAnError(t *testing.T) {
	for name, newLedger := range ledgerFactories() {
		t.Run(name, func(t *testing.T) {
			l := newLedger(t)
			ctx := context.Background()

			rows, err := l.All(ctx)
			require.NoError(t, err)
			assert.Empty(t, rows)

			n, err := l.Count(ctx)
			require.NoError(t, err)
			assert.Equal(t, int64(0), n)
		})
	}
}

func TestLedger_AppendPreservesInsertionOrder(t *testing.T) {
	for name, newLedger := range ledgerFactories() {
		t.Run(name, func(t *testing.T) {
			l := newLedger(t)
			ctx := context.Background()

			input := []models.TagRow{
				{VideoIndex: 1, Name: "Deer", Timestamp: 42},
				{VideoIndex: 0, Name: "Fox", Timestamp: 10, ContributedBy: strPtr("ana")},
				{VideoIndex: 1, Name: "Bear", Timestamp: 0},
			}
			for i := range input {
				row := input[i]
				require.NoError(t, l.Append(ctx, &row))
				assert.NotZero(t, row.ID)
				assert.False(t, row.CreatedAt.IsZero())
			}

			rows, err := l.All(ctx)
			require.NoError(t, err)
			require.Len(t, rows, 3)

			for i, row := range rows {
				assert.Equal(t, input[i].Name, row.Name)
				assert.Equal(t, input[i].VideoIndex, row.VideoIndex)
				assert.Equal(t, input[i].Timestamp, row.Timestamp)
			}
			require.NotNil(t, rows[1].ContributedBy)
			assert.Equal(t, "ana", *rows[1].ContributedBy)
			assert.Nil(t, rows[0].ContributedBy)

			assert.Less(t, rows[0].ID, rows[1].ID)
			assert.Less(t, rows[1].ID, rows[2].ID)

			n, err := l.Count(ctx)
			require.NoError(t, err)
			assert.Equal(t, int64(3), n)
		})
	}
}

func TestLedger_ConcurrentAppends(t *testing.T) {
	for name, newLedger := range ledgerFactories() {
		t.Run(name, func(t *testing.T) {
			l := newLedger(t)
			ctx := context.Background()

			const writers = 20
			var wg sync.WaitGroup
			errs := make(chan error, writers)
			for i := 0; i < writers; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					row := models.TagRow{VideoIndex: 0, Name: fmt.Sprintf("Bird %d", i), Timestamp: i}
					errs <- l.Append(ctx, &row)
				}(i)
			}
			wg.Wait()
			close(errs)
			for err := range errs {
				require.NoError(t, err)
			}

			rows, err := l.All(ctx)
			require.NoError(t, err)
			assert.Len(t, rows, writers, "no submission is lost")
		})
	}
}

func TestBadgerLedger_ReopenKeepsOrder(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	l, err := OpenBadgerLedger(dir)
	require.NoError(t, err)
	first := models.TagRow{Name: "Owl", Timestamp: 5}
	require.NoError(t, l.Append(ctx, &first))
	require.NoError(t, l.Close())

	l, err = OpenBadgerLedger(dir)
	require.NoError(t, err)
	defer l.Close()
	second := models.TagRow{Name: "Heron", Timestamp: 6}
	require.NoError(t, l.Append(ctx, &second))

	rows, err := l.All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Owl", rows[0].Name)
	assert.Equal(t, "Heron", rows[1].Name)
	assert.Greater(t, rows[1].ID, rows[0].ID)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(config.LedgerConfig{Driver: "csv"})
	assert.Error(t, err)
}
