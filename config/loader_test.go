package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAppConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir()) // no config.yml anywhere

	require.NoError(t, LoadAppConfig(""))
	assert.Equal(t, 0, Config.Converter.MinSatellites)
	assert.Equal(t, "_GEMS", Config.Converter.OutputSuffix)
	assert.Equal(t, "GPSSats", Config.Converter.Columns.Satellites)
	assert.Equal(t, "Latitude", Config.Converter.Columns.Latitude)
	assert.Equal(t, "Longitude", Config.Converter.Columns.Longitude)
}

func TestLoadAppConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := "converter:\n" +
		"  minSatellites: 6\n" +
		"  outputSuffix: _dlog99\n" +
		"  columns:\n" +
		"    satellites: SatCount\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	require.NoError(t, LoadAppConfig(path))
	assert.Equal(t, 6, Config.Converter.MinSatellites)
	assert.Equal(t, "_dlog99", Config.Converter.OutputSuffix)
	assert.Equal(t, "SatCount", Config.Converter.Columns.Satellites)
	// Unset names still default.
	assert.Equal(t, "Latitude", Config.Converter.Columns.Latitude)
	assert.Equal(t, "Longitude", Config.Converter.Columns.Longitude)
}

func TestLoadAppConfigExplicitPathMissing(t *testing.T) {
	err := LoadAppConfig(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestLoadAppConfigRejectsNegativeMinSatellites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("converter:\n  minSatellites: -1\n"), 0o644))

	assert.Error(t, LoadAppConfig(path))
}

func TestLoadAppConfigEnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("RCPGEMS_CONVERTER_MINSATELLITES", "9")

	require.NoError(t, LoadAppConfig(""))
	assert.Equal(t, 9, Config.Converter.MinSatellites)
}

func TestColumnNames(t *testing.T) {
	cfg := ConverterConfig{Columns: ColumnsConfig{
		Satellites: "GPSSats",
		Latitude:   "Latitude",
		Longitude:  "Longitude",
	}}
	names := cfg.ColumnNames()
	assert.Equal(t, "GPSSats", names.Satellites)
	assert.Equal(t, "Latitude", names.Latitude)
	assert.Equal(t, "Longitude", names.Longitude)
}
