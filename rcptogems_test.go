package rcptogems_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lib "github.com/theoremus-urban-solutions/rcp-to-gems"
)

func TestConvertWithDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir) // no config.yml, defaults apply

	input := filepath.Join(dir, "session.log")
	content := "Interval|ms,Utc|ms,GPSSats,Latitude|deg,Longitude|deg\n" +
		"1000,5000,6,10.0,20.0\n" +
		"1500,5500,6,10.1,20.1\n"
	require.NoError(t, os.WriteFile(input, []byte(content), 0o644))

	lib.InitLogging()
	require.NoError(t, lib.LoadAppConfig(""))
	assert.Equal(t, 0, lib.DefaultMinSatellites())

	out, err := lib.Convert(lib.Options{
		InputPath:  input,
		OutputPath: filepath.Join(dir, "session_GEMS.csv"),
	})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Interval,Utc,GPSSats,Latitude,Longitude\n")
}
