package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bizbooks.yaml")

	cfg := Default("Sharma Hardware", "2023 - 2024")
	cfg.Business.GSTIN = "27AAPFU0939F1ZV"
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Sharma Hardware", loaded.Business.Name)
	assert.Equal(t, "2023 - 2024", loaded.Fiscal.Year)
	assert.Equal(t, "27AAPFU0939F1ZV", loaded.Business.GSTIN)
	assert.Equal(t, "Local", loaded.GST.DefaultJurisdiction)
	assert.True(t, loaded.Git.AutoSnapshot)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_RejectsMissingBusinessName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bizbooks.yaml")
	cfg := Default("", "2023 - 2024")
	require.NoError(t, Save(path, cfg))

	_, err := Load(path)
	assert.ErrorContains(t, err, "invalid config")
}

func TestLoad_RejectsBadJurisdiction(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bizbooks.yaml")
	cfg := Default("Sharma Hardware", "2023 - 2024")
	cfg.GST.DefaultJurisdiction = "Interstate"
	require.NoError(t, Save(path, cfg))

	_, err := Load(path)
	assert.ErrorContains(t, err, "invalid config")
}
