package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kyaoi/swipeview/internal/arbiter"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SWIPEVIEW_CONFIG", "")

	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Swipe.Offset != 100 || c.Swipe.ValidationThreshold != 50 {
		t.Errorf("offset/threshold = %v/%v, want 100/50", c.Swipe.Offset, c.Swipe.ValidationThreshold)
	}
	if c.Swipe.OpenOnTap || c.Swipe.CloseOnTap {
		t.Error("tap shortcuts should default to off")
	}
	if c.Swipe.SettleDuration != 180*time.Millisecond {
		t.Errorf("settle_duration = %v, want 180ms", c.Swipe.SettleDuration)
	}
	if !c.UI.PullToRefresh || c.UI.RowHeight != 3 {
		t.Errorf("ui = %+v", c.UI)
	}
	if c.Mode() != arbiter.ModeIntercept {
		t.Errorf("mode = %v, want intercept", c.Mode())
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	data := []byte(`
[swipe]
offset = 24
validation_threshold = 10
open_on_tap = true

[ui]
arbitration = "delegate"
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("SWIPEVIEW_CONFIG", path)
	t.Setenv("SWIPEVIEW_SWIPE_CLOSE_ON_TAP", "true")

	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	sc, err := c.Control()
	if err != nil {
		t.Fatalf("Control: %v", err)
	}
	if sc.SwipeOffset != 24 || sc.ValidationThreshold != 10 || !sc.OpenOnTap || !sc.CloseOnTap {
		t.Errorf("control config = %+v", sc)
	}
	if c.Mode() != arbiter.ModeDelegate {
		t.Errorf("mode = %v, want delegate", c.Mode())
	}
}

func TestLoadRejectsBadOffset(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[swipe]\noffset = 0\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("SWIPEVIEW_CONFIG", path)
	if _, err := Load(); err == nil {
		t.Fatalf("Load accepted a zero offset")
	}
}
