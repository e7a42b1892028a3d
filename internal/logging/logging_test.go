package logging

import (
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "hygrometer.log")

	c, err := Setup(Options{Path: path, MaxSizeMB: 1, MaxBackups: 1})
	require.NoError(t, err)

	log.Printf("search page %d loaded", 2)
	require.NoError(t, c.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "search page 2 loaded")
}

func TestSetupRejectsEmptyPath(t *testing.T) {
	_, err := Setup(Options{})
	assert.Error(t, err)
}
