package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-endgame/internal/config"
	"github.com/vovakirdan/tui-endgame/internal/words"
)

func TestLabelTable(t *testing.T) {
	tbl, err := labelTable(config.Default())
	require.NoError(t, err)

	out := tbl.String()
	assert.Contains(t, out, "Farewell, HTML")
	assert.Contains(t, out, "Assembly")
	assert.Contains(t, out, "Language")
}

func TestPresetTable(t *testing.T) {
	tbl, err := presetTable(config.Default())
	require.NoError(t, err)

	out := tbl.String()
	for _, p := range config.Presets {
		assert.Contains(t, out, string(p))
	}
	assert.Contains(t, out, "Wrong guesses")
}

func TestCatalogTablesRejectInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Labels = nil

	_, err := labelTable(cfg)
	assert.ErrorIs(t, err, words.ErrNoLabels)

	_, err = presetTable(cfg)
	assert.ErrorIs(t, err, words.ErrNoLabels)
}
