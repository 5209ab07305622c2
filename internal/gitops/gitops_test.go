package gitops

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
}

func TestInitAndSnapshot(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()

	require.NoError(t, InitRepo(dir))
	require.NoError(t, InitRepo(dir), "idempotent on existing repo")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "vouchers.json"), []byte("[]"), 0o644))
	hash, err := Snapshot(dir, "post SL/23-24/00001", "bizbooks", "books@localhost")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
}

func TestSnapshot_NothingToCommit(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()

	require.NoError(t, InitRepo(dir))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vouchers.json"), []byte("[]"), 0o644))
	_, err := Snapshot(dir, "first", "bizbooks", "books@localhost")
	require.NoError(t, err)

	hash, err := Snapshot(dir, "second", "bizbooks", "books@localhost")
	require.NoError(t, err)
	assert.Empty(t, hash, "clean tree yields no commit")
}
