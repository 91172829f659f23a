package storage

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"plain", "photo.jpg", "photo.jpg", false},
		{"path stripped", "../../etc/passwd", "passwd", false},
		{"windows path stripped", `C:\Users\run\photo.jpg`, "photo.jpg", false},
		{"spaces replaced", "my run photo.jpg", "my_run_photo.jpg", false},
		{"control chars dropped", "pho\x00to\n.jpg", "photo.jpg", false},
		{"unicode letters kept", "забег.jpg", "забег.jpg", false},
		{"empty", "", "", true},
		{"only separators", "///", "", true},
		{"only dots", "..", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sanitizeFilename(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFilename)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMeasureStream(t *testing.T) {
	r := strings.NewReader("hello world")

	size, err := measureStream(r)
	require.NoError(t, err)
	assert.Equal(t, int64(11), size)

	// Position must be restored for the subsequent write.
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(data))
}

func TestMeasureStreamMidPosition(t *testing.T) {
	r := strings.NewReader("hello world")
	_, err := r.Seek(6, io.SeekStart)
	require.NoError(t, err)

	size, err := measureStream(r)
	require.NoError(t, err)
	assert.Equal(t, int64(5), size)

	data, _ := io.ReadAll(r)
	assert.Equal(t, "world", string(data))
}

func TestNextStampMonotonic(t *testing.T) {
	m := &Manager{}

	prev := m.nextStamp()
	for i := 0; i < 1000; i++ {
		next := m.nextStamp()
		assert.True(t, next.After(prev), "stamps must be strictly increasing")
		prev = next
	}
}
