package migration

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/energyservice/backend/migrations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"add tariff index", "add_tariff_index"},
		{"Add-Tariff-Index", "add_tariff_index"},
		{"ADD_TARIFF_INDEX", "add_tariff_index"},
		{"add__tariff__index", "add_tariff_index"},
		{"Seed 2026 Tariffs", "seed_2026_tariffs"},
		{"   spaces   ", "spaces"},
		{"special!@#$chars", "specialchars"},
		{"trailing_", "trailing"},
		{"_leading", "leading"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeName(tt.input))
		})
	}
}

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("-- test"), 0o644))
	}
}

func TestCreateMigration_FirstVersion(t *testing.T) {
	dir := t.TempDir()

	mf, err := CreateMigration(dir, "init schema", "Customers and tariffs")
	require.NoError(t, err)

	assert.Equal(t, "000001", mf.Version)
	assert.Equal(t, filepath.Join(dir, "000001_init_schema.up.sql"), mf.UpPath)
	assert.Equal(t, filepath.Join(dir, "000001_init_schema.down.sql"), mf.DownPath)

	up, err := os.ReadFile(mf.UpPath)
	require.NoError(t, err)
	assert.Contains(t, string(up), "-- Migration: init schema")
	assert.Contains(t, string(up), "-- Description: Customers and tariffs")

	down, err := os.ReadFile(mf.DownPath)
	require.NoError(t, err)
	assert.Contains(t, string(down), "(Rollback)")
}

func TestCreateMigration_NextVersion(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir,
		"000001_init_schema.up.sql", "000001_init_schema.down.sql",
		"000002_seed_reference_data.up.sql", "000002_seed_reference_data.down.sql",
	)

	mf, err := CreateMigration(dir, "seed 2026 tariffs", "")
	require.NoError(t, err)
	assert.Equal(t, "000003", mf.Version)
	assert.Equal(t, "000003_seed_2026_tariffs.up.sql", filepath.Base(mf.UpPath))
}

func TestCreateMigration_CreatesDirectory(t *testing.T) {
	nested := filepath.Join(t.TempDir(), "nested", "migrations")

	_, err := CreateMigration(nested, "test", "test migration")
	require.NoError(t, err)

	info, err := os.Stat(nested)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestCreateMigration_InvalidName(t *testing.T) {
	_, err := CreateMigration(t.TempDir(), "!!!", "")
	assert.Error(t, err)
}

func TestListMigrations(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir,
		"000002_seed_reference_data.up.sql", "000002_seed_reference_data.down.sql",
		"000001_init_schema.up.sql", "000001_init_schema.down.sql",
		"README.md", ".gitkeep",
	)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir.up.sql"), 0o755))

	list, err := ListMigrations(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"000001_init_schema", "000002_seed_reference_data"}, list)
}

func TestListMigrations_NonexistentDirectory(t *testing.T) {
	list, err := ListMigrations("/nonexistent/path/to/migrations")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	ups, err := fs.Glob(migrations.FS, "*.up.sql")
	require.NoError(t, err)
	require.NotEmpty(t, ups)

	for _, up := range ups {
		down := up[:len(up)-len(".up.sql")] + ".down.sql"
		_, err := fs.Stat(migrations.FS, down)
		assert.NoError(t, err, "missing %s", down)
	}
	assert.Contains(t, ups, "000001_init_schema.up.sql")
	assert.Contains(t, ups, "000002_seed_reference_data.up.sql")
}

func TestListMigrationsFS_Embedded(t *testing.T) {
	list, err := ListMigrationsFS(migrations.FS)
	require.NoError(t, err)
	assert.Equal(t, []string{"000001_init_schema", "000002_seed_reference_data"}, list)
}
