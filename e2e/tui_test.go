//go:build e2e && unix

package main

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHomeScreenWithoutRegion(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp(), "Failed to start app")
	require.True(t, tf.Ready(), "Should render the home screen")
	require.True(t, tf.SeePlain("No region selected"), "Should prompt for a region")

	require.NoError(t, tf.Quit())
	require.NoError(t, tf.Wait(2*time.Second), "q should exit the app")
}

func TestSearchAndSelectRegion(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready())

	require.NoError(t, tf.OpenSearch())
	require.True(t, tf.SeePlain("Region search"), "Should open the search sheet")
	require.True(t, tf.SeePlain("No search results."), "Empty sheet shows the placeholder")

	require.NoError(t, tf.Search("Seoul"))
	// the whole first page fits, so the second page is fetched right away
	if err := tf.WaitForE(func(s string) bool {
		return strings.Contains(ansiRe.ReplaceAllString(s, ""), `12 results for "Seoul"`)
	}, 3*time.Second, "Should load both pages of results"); err != nil {
		t.Fatal(err)
	}
	require.True(t, tf.SeePlain("Gangseo-gu"), "Should list the second page")

	// the input is blurred after submitting, enter picks the first row
	require.NoError(t, tf.SendEnter())
	require.True(t, tf.SeePlain("Selected Seoul"), "Home should show the selection")

	require.Eventually(t, func() bool {
		data, err := os.ReadFile(tf.ConfigPath())
		return err == nil && strings.Contains(string(data), "static-seoul")
	}, 3*time.Second, 50*time.Millisecond, "Selection should be saved as last_region")

	require.NoError(t, tf.Quit())
	require.NoError(t, tf.Wait(2*time.Second))
}

func TestSearchCommandOpensSheet(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp("search", "Busan"))
	require.True(t, tf.SeePlain(`2 results for "Busan"`), "Should search on startup")

	require.NoError(t, tf.Down())
	require.NoError(t, tf.SendEnter())
	require.True(t, tf.SeePlain("Selected Haeundae-gu"))

	require.NoError(t, tf.SendKeys(KeyToggle))
	require.True(t, tf.SeePlain("Bookmarked Haeundae-gu"))

	require.NoError(t, tf.OpenBookmarks())
	require.True(t, tf.SeePlain("1 bookmarked"), "Bookmark sheet should list the new bookmark")

	require.NoError(t, tf.SendCtrlC())
	require.NoError(t, tf.Wait(2*time.Second))
}

func TestBookmarkSheetEmpty(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp("bookmarks"))
	require.True(t, tf.SeePlain("No bookmarked regions."), "Empty bookmark sheet shows the placeholder")
	require.True(t, tf.SeePlain("0 bookmarked"))

	// esc closes the sheet, then q quits from home
	require.NoError(t, tf.SendKeys(KeyEsc))
	time.Sleep(200 * time.Millisecond)
	require.NoError(t, tf.Quit())
	if err := tf.Wait(2 * time.Second); err != nil {
		tf.DumpTailOnFail(t, "bookmark-sheet-exit", 4096)
		t.Fatal(err)
	}
}

func TestHelpPager(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready())

	require.NoError(t, tf.SendKeys(KeyHelp))
	require.True(t, tf.SeePlain("Hygrometer Help"), "Should open help in the pager")
	require.True(t, tf.SeePlain("Region sheet"))

	// q leaves the pager first, then the app
	require.NoError(t, tf.Quit())
	time.Sleep(300 * time.Millisecond)
	require.NoError(t, tf.Quit())
	require.NoError(t, tf.Wait(2*time.Second))
}
