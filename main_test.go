package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		writeCatalogPath = ""
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func setupCLIEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)

	catalog := `{"videos":[{"url":"https://youtu.be/aaaaaaaaaaa","title":"Marsh","description":"d","animalTags":[{"name":"Heron","timestamp":1}]}]}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "videos.json"), []byte(catalog), 0o644))

	t.Setenv("DB_PATH", filepath.Join(dir, "cli.db"))
	t.Setenv("LOG_LEVEL", "error")
	return dir
}

func TestCatalogCheck(t *testing.T) {
	setupCLIEnv(t)

	out, err := runCLI(t, "catalog", "check")
	require.NoError(t, err)
	assert.Contains(t, out, "Marsh")
	assert.Contains(t, out, "aaaaaaaaaaa")
	assert.Contains(t, out, "1 videos in videos.json")
}

func TestCatalogCheck_MissingCatalog(t *testing.T) {
	setupCLIEnv(t)
	t.Setenv("CATALOG_PATH", "nope.json")

	_, err := runCLI(t, "catalog", "check")
	assert.Error(t, err)
}

func TestImportLegacyThenList(t *testing.T) {
	dir := setupCLIEnv(t)

	legacy := `{"videos":[{"url":"u","title":"Marsh","description":"d","animalTags":[
		{"name":"Heron","timestamp":1},
		{"name":"Otter","timestamp":33,"userSuggested":true,"contributedBy":"lee"}]}]}`
	legacyPath := filepath.Join(dir, "legacy.json")
	require.NoError(t, os.WriteFile(legacyPath, []byte(legacy), 0o644))
	cleaned := filepath.Join(dir, "clean.json")

	out, err := runCLI(t, "import-legacy", legacyPath, "--write-catalog", cleaned)
	require.NoError(t, err)
	assert.Contains(t, out, "imported 1 tags from 1 videos (0 skipped)")

	data, err := os.ReadFile(cleaned)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "Otter")

	out, err = runCLI(t, "tags", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Otter")
	assert.Contains(t, out, "lee")
}
