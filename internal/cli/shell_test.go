package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeVolumeWindows(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"c", "C:/", false},
		{"C", "C:/", false},
		{"d:", "D:/", false},
		{"e:/", "E:/", false},
		{`f:\`, "F:/", false},
		{" c ", "C:/", false},
		{"", "", true},
		{"1", "", true},
		{"cd", "", true},
		{"c:/data", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := normalizeVolume("windows", tc.in)
			if tc.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizeVolumePosix(t *testing.T) {
	got, err := normalizeVolume("linux", "/home")
	require.NoError(t, err)
	assert.Equal(t, "/home", got)

	got, err = normalizeVolume("linux", "/")
	require.NoError(t, err)
	assert.Equal(t, "/", got)

	_, err = normalizeVolume("linux", "home")
	assert.Error(t, err)

	_, err = normalizeVolume("linux", "")
	assert.Error(t, err)
}
