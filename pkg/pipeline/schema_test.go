package pipeline

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sreekona1935/medical-insurance-costs/pkg/data"
)

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := ParseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, ',', cfg.LoadOptions().Delimiter)
}

func TestParseConfig_PartialColumns(t *testing.T) {
	cfg, err := ParseConfig([]byte("columns:\n  region: area\ndelimiter: \"\\t\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "area", cfg.Columns.Region)
	assert.Equal(t, "age", cfg.Columns.Age)
	assert.Equal(t, '\t', cfg.LoadOptions().Delimiter)
	assert.False(t, cfg.IncludeInteraction)
}

func TestParseConfig_Rejects(t *testing.T) {
	tests := map[string]string{
		"unknown key":      "colums:\n  age: a\n",
		"long delimiter":   "delimiter: \"||\"\n",
		"duplicate column": "columns:\n  age: x\n  bmi: x\n",
		"derived column":   "columns:\n  charges: log_charges\n",
		"bad yaml":         "columns: [\n",
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseConfig([]byte(in))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, "prep.yaml", "include_interaction: true\n")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.True(t, cfg.IncludeInteraction)
	assert.Equal(t, data.DefaultColumns(), cfg.Columns)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "none.yaml"))
	assert.Error(t, err)
}
