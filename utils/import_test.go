package utils

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wildcam/models"
	"wildcam/store"
)

const legacyFile = `{
  "videos": [
    {
      "url": "https://youtu.be/aaaaaaaaaaa",
      "title": "Meadow",
      "description": "Meadow cam",
      "animalTags": [
        {"name": "Deer", "timestamp": 12},
        {"name": "Fox", "timestamp": 40, "userSuggested": true, "contributedBy": "jo"},
        {"name": "  ", "timestamp": 41, "userSuggested": true}
      ]
    },
    {
      "url": "https://youtu.be/bbbbbbbbbbb",
      "title": "Creek",
      "description": "Creek cam",
      "animalTags": [
        {"name": "Mink", "timestamp": 7, "userSuggested": true}
      ]
    }
  ]
}`

func TestImportLegacyTags(t *testing.T) {
	ledger := store.NewMemoryLedger()
	ctx := context.Background()

	result, err := ImportLegacyTags(ctx, []byte(legacyFile), ledger)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Videos)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 1, result.Skipped)

	rows, err := ledger.All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 0, rows[0].VideoIndex)
	assert.Equal(t, "Fox", rows[0].Name)
	require.NotNil(t, rows[0].ContributedBy)
	assert.Equal(t, "jo", *rows[0].ContributedBy)
	assert.Equal(t, 1, rows[1].VideoIndex)
	assert.Equal(t, "Mink", rows[1].Name)

	require.Len(t, result.Catalog, 2)
	assert.Equal(t, []models.Tag{{Name: "Deer", Timestamp: 12}}, result.Catalog[0].CuratedTags)
	assert.Empty(t, result.Catalog[1].CuratedTags)
}

func TestImportLegacyTags_Malformed(t *testing.T) {
	ledger := store.NewMemoryLedger()

	_, err := ImportLegacyTags(context.Background(), []byte(`{"videos":`), ledger)
	assert.Error(t, err)

	_, err = ImportLegacyTags(context.Background(), []byte(`{}`), ledger)
	assert.Error(t, err)

	n, err := ledger.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestWriteCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "videos.json")
	videos := []models.Video{{URL: "u", Title: "t", Description: "d", CuratedTags: []models.Tag{{Name: "Elk", Timestamp: 2}}}}

	require.NoError(t, WriteCatalog(path, videos))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc models.CatalogDocument
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, videos, doc.Videos)
}
