package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOutputPath(t *testing.T) {
	got := defaultOutputPath("output", filepath.Join("data", "google-pay-statement.pdf"))
	assert.Equal(t, filepath.Join("output", "google-pay-statement.json"), got)
}

func TestRunExtract_MissingFile(t *testing.T) {
	err := runExtract("no-such-file.pdf", "", "", true)
	assert.ErrorContains(t, err, "file not found")
}

func TestRunExtract_WrongExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statement.txt")
	require.NoError(t, os.WriteFile(path, []byte("text"), 0o644))

	err := runExtract(path, "", "", true)
	assert.ErrorContains(t, err, "expected a .pdf file")
}
