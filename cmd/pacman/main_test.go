package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
)

func TestWarnSkipped(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	g := pacman.New()
	cfg := config.DefaultPacmanConfig()
	cfg.Map = []string{"|P?.|", "|..#|"}
	if err := g.ResetWith(cfg); err != nil {
		t.Fatalf("ResetWith() failed: %v", err)
	}

	if n := warnSkipped(logger, g); n != 2 {
		t.Errorf("warnSkipped() = %d, expected 2", n)
	}
	out := buf.String()
	if c := strings.Count(out, "unknown map token skipped"); c != 2 {
		t.Errorf("logged %d warnings, expected 2:\n%s", c, out)
	}
	if !strings.Contains(out, "token=?") || !strings.Contains(out, "token=#") {
		t.Errorf("warnings should name the tokens:\n%s", out)
	}
}

func TestWarnSkippedCleanMap(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	g := pacman.New()
	if err := g.ResetWith(config.DefaultPacmanConfig()); err != nil {
		t.Fatalf("ResetWith() failed: %v", err)
	}

	if n := warnSkipped(logger, g); n != 0 || buf.Len() != 0 {
		t.Errorf("warnSkipped() = %d with output %q, expected nothing", n, buf.String())
	}
	if n := warnSkipped(logger, nil); n != 0 {
		t.Errorf("warnSkipped(nil) = %d, expected 0", n)
	}
}
