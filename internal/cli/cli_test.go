package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hygrometer/internal/config"
	"hygrometer/internal/domain"
	"hygrometer/internal/eventbus"
)

// run executes the command tree against a config file in dir
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.APIKeyEnv, "")

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", filepath.Join(dir, "config.toml"), "--offline"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func lines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func TestSearchPrint(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name  string
		args  []string
		lines int
		first string
	}{
		{"first page", []string{"search", "--print", "Seoul"}, 10, "Seoul\tSeoul\t37.5665, 126.9780"},
		{"second page", []string{"search", "--print", "--page", "2", "Seoul"}, 2, "Eunpyeong-gu\tSeoul Eunpyeong-gu\t37.6027, 126.9291"},
		{"past the end", []string{"search", "--print", "--page", "3", "Seoul"}, 1, "No search results."},
		{"multi word keyword", []string{"search", "--print", "Seoul", "Mapo"}, 1, "Mapo-gu\tSeoul Mapo-gu\t37.5663, 126.9019"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, dir, tt.args...)
			require.NoError(t, err)
			got := lines(out)
			require.Len(t, got, tt.lines)
			assert.Equal(t, tt.first, got[0])
		})
	}
}

func TestSearchPrintValidation(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "search", "--print")
	assert.ErrorContains(t, err, "keyword is required")

	_, err = run(t, dir, "search", "--print", "--page", "0", "Seoul")
	assert.ErrorContains(t, err, "page must be at least 1")
}

func TestBookmarkLifecycle(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "bookmark", "list")
	require.NoError(t, err)
	assert.Equal(t, "No bookmarked regions.\n", out)

	out, err = run(t, dir, "bookmark", "add", "Seoul")
	require.NoError(t, err)
	assert.Equal(t, "Bookmarked Seoul (Seoul)\n", out)

	out, err = run(t, dir, "bookmark", "add", "--result", "1", "Busan")
	require.NoError(t, err)
	assert.Equal(t, "Bookmarked Haeundae-gu (Busan Haeundae-gu)\n", out)

	// adding again keeps a single entry
	_, err = run(t, dir, "bookmark", "add", "Seoul")
	require.NoError(t, err)

	out, err = run(t, dir, "bookmark", "ls")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Seoul\tSeoul\t37.5665, 126.9780",
		"Haeundae-gu\tBusan Haeundae-gu\t35.1631, 129.1636",
	}, lines(out))

	out, err = run(t, dir, "bookmark", "rm", "hnd")
	require.NoError(t, err)
	assert.Equal(t, "Removed Haeundae-gu (Busan Haeundae-gu)\n", out)

	out, err = run(t, dir, "bookmark", "remove", "static-seoul")
	require.NoError(t, err)
	assert.Equal(t, "Removed Seoul (Seoul)\n", out)

	out, err = run(t, dir, "bookmark", "list")
	require.NoError(t, err)
	assert.Equal(t, "No bookmarked regions.\n", out)
}

func TestBookmarkErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "bookmark", "remove", "nowhere")
	assert.ErrorContains(t, err, `no bookmark matches "nowhere"`)

	_, err = run(t, dir, "bookmark", "add", "--result", "5", "Busan")
	assert.ErrorContains(t, err, `no result 5 for "Busan"`)

	_, err = run(t, dir, "bookmark", "add", "--result", "-1", "Busan")
	assert.ErrorContains(t, err, "must not be negative")

	_, err = run(t, dir, "bookmark", "add")
	assert.Error(t, err)
}

func TestBadConfigFails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("version = [oops"), 0644))

	_, err := run(t, dir, "bookmark", "list")
	assert.ErrorContains(t, err, "load config")
}

func TestRememberSelectionSavesLastRegion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	bus := eventbus.New()
	defer bus.Close()

	svc := config.NewConfigServiceWithBus(bus, path)
	a := &app{bus: bus, configSvc: svc, cfg: config.DefaultConfig()}
	unsubscribe := a.rememberSelection()
	defer unsubscribe()

	region := domain.Region{ID: "static-jeju", Name: "Jeju", Address: "Jeju-do Jeju-si",
		Coordinate: domain.Coordinate{Latitude: 33.4996, Longitude: 126.5312}}
	bus.Publish(eventbus.RegionSelectedEvent{Region: region})

	assert.Eventually(t, func() bool {
		cfg, err := config.NewConfigServiceAt(path).Load()
		return err == nil && cfg.LastRegion.Region() == region
	}, 2*time.Second, 20*time.Millisecond)
}

func TestVersionFlag(t *testing.T) {
	SetVersion("1.2.3")
	defer SetVersion("dev")

	out, err := run(t, t.TempDir(), "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "1.2.3")
}
