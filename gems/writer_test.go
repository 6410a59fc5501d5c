package gems

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/rcp-to-gems/rcp"
)

func TestDefaultOutputPath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		suffix   string
		expected string
	}{
		{
			name:     "log extension",
			input:    "session.log",
			suffix:   "",
			expected: "session_GEMS.csv",
		},
		{
			name:     "truncates at first dot",
			input:    "race.day.log",
			suffix:   "",
			expected: "race_GEMS.csv",
		},
		{
			name:     "no extension",
			input:    "session",
			suffix:   "",
			expected: "session_GEMS.csv",
		},
		{
			name:     "custom suffix",
			input:    "session.log",
			suffix:   "_dlog99",
			expected: "session_dlog99.csv",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DefaultOutputPath(tt.input, tt.suffix))
		})
	}
}

func TestWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	w, err := Create(path)
	require.NoError(t, err)

	require.NoError(t, w.WriteHeader([]string{"Interval", "Utc", "Battery"}))
	require.NoError(t, w.WriteRow(rcp.Row{rcp.Number(0), rcp.Number(0), rcp.Number(12.1)}))
	require.NoError(t, w.WriteRow(rcp.Row{rcp.Number(1.5), rcp.Number(1.6), rcp.Number(11.9)}))
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Interval,Utc,Battery\n0,0,12.1\n1.5,1.6,11.9\n", string(data))
}

func TestWriterHeaderFlushedImmediately(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	w, err := Create(path)
	require.NoError(t, err)
	require.NoError(t, w.WriteHeader([]string{"Interval", "Utc"}))

	// Header must be on disk before Close, so an aborted run still leaves a
	// readable header-only file.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Interval,Utc\n", string(data))
	require.NoError(t, w.Close())
}
