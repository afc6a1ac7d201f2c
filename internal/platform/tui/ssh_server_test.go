package tui

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-endgame/internal/config"
	"github.com/vovakirdan/tui-endgame/internal/games/endgame"
	"github.com/vovakirdan/tui-endgame/internal/words"
)

func testSSHConfig(t *testing.T, cat config.EndgameConfig) SSHServerConfig {
	t.Helper()
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")
	cfg.Catalog = cat
	return cfg
}

func TestNewSSHServerInstallsCatalog(t *testing.T) {
	t.Cleanup(func() {
		if err := endgame.SetConfig(config.Default()); err != nil {
			t.Fatalf("restoring default catalog: %v", err)
		}
	})

	cat := config.Default()
	cat.Words = []string{"gopher"}

	if _, err := NewSSHServer(testSSHConfig(t, cat)); err != nil {
		t.Fatalf("NewSSHServer failed: %v", err)
	}

	g := endgame.New(config.DifficultyNormal)
	g.Reset(testConfig)
	if got := g.Engine().TargetWord(); got != "GOPHER" {
		t.Errorf("Games should draw from the server catalog, got %q", got)
	}
}

func TestNewSSHServerRejectsInvalidCatalog(t *testing.T) {
	cat := config.Default()
	cat.Labels = nil

	_, err := NewSSHServer(testSSHConfig(t, cat))
	if !errors.Is(err, words.ErrNoLabels) {
		t.Errorf("Expected ErrNoLabels, got %v", err)
	}
}
