package migration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"create bronze schema", "create_bronze_schema"},
		{"Create-Bronze-Schema", "create_bronze_schema"},
		{"CREATE_BRONZE_SCHEMA", "create_bronze_schema"},
		{"create__bronze__schema", "create_bronze_schema"},
		{"add envi tables 2024", "add_envi_tables_2024"},
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

func TestCreateMigration(t *testing.T) {
	tmpDir := t.TempDir()

	mf, err := CreateMigration(tmpDir, "create bronze schema", "Bronze tables for raw environment uploads")
	require.NoError(t, err)
	require.NotNil(t, mf)

	// Version is a YYYYMMDDHHMMSS timestamp.
	assert.Len(t, mf.Version, 14)

	assert.True(t, strings.HasSuffix(mf.UpPath, ".up.sql"))
	assert.True(t, strings.HasSuffix(mf.DownPath, ".down.sql"))

	upBase := strings.TrimSuffix(filepath.Base(mf.UpPath), ".up.sql")
	downBase := strings.TrimSuffix(filepath.Base(mf.DownPath), ".down.sql")
	assert.Equal(t, upBase, downBase)

	upContent, err := os.ReadFile(mf.UpPath)
	require.NoError(t, err)
	assert.Contains(t, string(upContent), "create bronze schema")
	assert.Contains(t, string(upContent), "Bronze tables for raw environment uploads")
	assert.Contains(t, string(upContent), "Write your UP migration SQL here")

	downContent, err := os.ReadFile(mf.DownPath)
	require.NoError(t, err)
	assert.Contains(t, string(downContent), "Rollback")
	assert.Contains(t, string(downContent), "Write your DOWN migration SQL here")
}

func TestListMigrations(t *testing.T) {
	tmpDir := t.TempDir()

	// Missing directory lists as empty.
	missing, err := ListMigrations(filepath.Join(tmpDir, "nope"))
	require.NoError(t, err)
	assert.Empty(t, missing)

	for _, name := range []string{
		"20250101000000_init.up.sql",
		"20250101000000_init.down.sql",
		"20250102000000_seed_reference.up.sql",
		"20250102000000_seed_reference.down.sql",
		"README.md",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, name), []byte("-- sql"), 0644))
	}

	migrations, err := ListMigrations(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"20250101000000_init",
		"20250102000000_seed_reference",
	}, migrations)
}
