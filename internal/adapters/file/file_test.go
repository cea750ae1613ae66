package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSave(t *testing.T) {
	tests := []struct {
		name      string
		content   []byte
		extension string
		wantSize  int64
	}{
		{
			name:      "success",
			content:   []byte("test\n"),
			extension: ".png",
			wantSize:  5,
		},
		{
			name:      "empty file",
			content:   []byte(""),
			extension: ".dat",
			wantSize:  0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path, err := Save(tc.content, "", tc.extension)
			require.NoError(t, err)
			defer Remove(path)

			assert.Equal(t, tc.extension, filepath.Ext(path))

			stat, err := os.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, tc.wantSize, stat.Size())
		})
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "processed")

	path, err := Save([]byte("test\n"), dir, ".png")
	require.NoError(t, err)

	assert.Equal(t, dir, filepath.Dir(path))

	stat, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(5), stat.Size())
}

func TestRead(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		ext     string
		want    []byte
	}{
		{
			name:    "success",
			content: []byte("test\n"),
			ext:     ".png",
			want:    []byte("test\n"),
		},
		{
			name:    "empty data",
			content: []byte(""),
			ext:     ".dat",
			want:    []byte{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path, err := Save(tc.content, "", tc.ext)
			require.NoError(t, err)
			defer Remove(path)

			file, err := Read(path)
			require.NoError(t, err)
			assert.Equal(t, tc.want, file)
		})
	}
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.png"))
	require.Error(t, err)
}
