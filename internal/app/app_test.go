package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/kyaoi/swipeview/internal/arbiter"
	"github.com/kyaoi/swipeview/internal/config"
	"github.com/kyaoi/swipeview/internal/deck"
	"github.com/kyaoi/swipeview/internal/log"
)

func testConfig() config.Config {
	return config.Config{
		Swipe: config.SwipeConfig{
			Offset:              100,
			ValidationThreshold: 50,
			DeadZone:            0.5,
		},
		UI: config.UIConfig{
			Arbitration:   "delegate",
			PullToRefresh: true,
			RowHeight:     4,
		},
	}
}

func writeDeck(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"inbox.md":  "---\ntitle: Inbox\nleft: Archive\nright: Delete\norder: 1\n---\nthree unread\n",
		"drafts.md": "---\ntitle: Drafts\nright: Discard\norder: 2\n---\none draft\n",
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func TestLoadInitialState(t *testing.T) {
	dir := writeDeck(t)

	state, err := LoadInitialState(dir, testConfig())
	if err != nil {
		t.Fatalf("LoadInitialState: %v", err)
	}
	if len(state.Rows) != 2 || state.Rows[0].Title != "Inbox" {
		t.Fatalf("rows = %+v, want Inbox first", state.Rows)
	}
	if state.Loader == nil || !filepath.IsAbs(state.DeckDir) {
		t.Fatalf("state has no loader or an unresolved deck dir %q", state.DeckDir)
	}
	if state.Mode != arbiter.ModeDelegate {
		t.Fatalf("mode = %v, want delegate", state.Mode)
	}
	if state.RowHeight != 4 || state.Swipe.SwipeOffset != 100 {
		t.Fatalf("config not carried into state: %+v", state)
	}
	if !strings.HasSuffix(state.HeaderPath, "/") {
		t.Fatalf("header = %q, want a trailing slash", state.HeaderPath)
	}
}

func TestLoadInitialStateRejectsFile(t *testing.T) {
	dir := writeDeck(t)

	_, err := LoadInitialState(filepath.Join(dir, "inbox.md"), testConfig())
	if errors.Cause(err) != deck.ErrNotDir {
		t.Fatalf("err = %v, want %v", err, deck.ErrNotDir)
	}
}

func TestLoadInitialStateRejectsBadConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Swipe.Offset = 0

	if _, err := LoadInitialState(writeDeck(t), cfg); err == nil {
		t.Fatalf("expected an error for a zero offset")
	}
}

func TestLoadFilteredState(t *testing.T) {
	dir := writeDeck(t)

	state, err := LoadFilteredState(dir, testConfig(), " draft ")
	if err != nil {
		t.Fatalf("LoadFilteredState: %v", err)
	}
	if state.Filter != "draft" {
		t.Fatalf("filter = %q, want draft", state.Filter)
	}
	if !strings.Contains(state.HeaderPath, "filter: draft") {
		t.Fatalf("header = %q", state.HeaderPath)
	}

	if _, err := LoadFilteredState(dir, testConfig(), "zzzzzz"); err == nil {
		t.Fatalf("expected an error when nothing matches")
	}
}

func TestSetupLoggingWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swipeview.log")
	closeLog, err := setupLogging(config.LogConfig{File: path, Debug: true})
	if err != nil {
		t.Fatalf("setupLogging: %v", err)
	}
	t.Cleanup(func() {
		log.EnableDebug = false
		log.SetOutput(os.Stderr)
	})

	log.Infoln("hello from the test")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "hello from the test") {
		t.Fatalf("log file does not contain the message: %q", data)
	}
}
