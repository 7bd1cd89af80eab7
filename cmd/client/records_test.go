package client

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/sorriso_backend/pkg/diary"
)

func TestParseTooth(t *testing.T) {
	tests := []struct {
		value    string
		want    diary.ToothRecord
		wantErr bool
	}{
		{value: "3", want: diary.ToothRecord{ToothNumber: 3, HasTooth: true, Sensitivity: diary.SensitivityNone}},
		{value: "14:ausente", want: diary.ToothRecord{ToothNumber: 14, Sensitivity: diary.SensitivityNone}},
		{value: "8:carie, dor,sens=leve", want: diary.ToothRecord{
			ToothNumber: 8, HasTooth: true, HasCaries: true, HasPain: true, Sensitivity: diary.SensitivityMild,
		}},
		{value: "0", wantErr: true},
		{value: "33", wantErr: true},
		{value: "x", wantErr: true},
		{value: "5:quebrado", wantErr: true},
		{value: "5:sens=muita", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := parseTooth(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPhotoDataURL(t *testing.T) {
	dir := t.TempDir()
	png := filepath.Join(dir, "sorriso.png")
	require.NoError(t, os.WriteFile(png, []byte("ABC"), 0o600))

	got, err := photoDataURL(png)
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,QUJD", got)

	raw := filepath.Join(dir, "foto")
	require.NoError(t, os.WriteFile(raw, []byte("ABC"), 0o600))
	got, err = photoDataURL(raw)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "data:image/jpeg;base64,"))

	_, err = photoDataURL(filepath.Join(dir, "missing.jpg"))
	assert.Error(t, err)
}

func TestJoinInts(t *testing.T) {
	in := []int{12, 3, 7}
	assert.Equal(t, "3, 7, 12", joinInts(in))
	assert.Equal(t, []int{12, 3, 7}, in)
	assert.Equal(t, "", joinInts(nil))
}
