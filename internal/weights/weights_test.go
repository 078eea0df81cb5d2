package weights

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yunxing/dropblox/internal/domain"
)

func TestRead(t *testing.T) {
	input := "HOLES -2\n\n  LANDING_HEIGHT\t0.5\nHOLES -3\n"

	got, err := Read(strings.NewReader(input))
	require.NoError(t, err)

	want := domain.Weights{domain.Holes: -3, domain.LandingHeight: 0.5}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("weights mismatch (-want +got):\n%s", diff)
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing value", "HOLES\n"},
		{"extra field", "HOLES 1 2\n"},
		{"not a number", "HOLES abc\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestWriteSortsNames(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, domain.Weights{domain.Holes: -2, domain.Bumpiness: 1.5})
	require.NoError(t, err)

	assert.Equal(t, "BUMPINESS 1.5\nHOLES -2\n", buf.String())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weights.txt")
	require.NoError(t, Save(path, Defaults()))

	if diff := cmp.Diff(Defaults(), Load(path)); diff != "" {
		t.Errorf("weights mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.txt")
	assert.Equal(t, Defaults(), Load(missing))

	broken := filepath.Join(t.TempDir(), "broken.txt")
	require.NoError(t, os.WriteFile(broken, []byte("HOLES nope\n"), 0o644))
	assert.Equal(t, Defaults(), Load(broken))
}

func TestDefaultsAreKnownFeatures(t *testing.T) {
	assert.Empty(t, Defaults().Unknown())
	assert.Len(t, Defaults(), 7)
}
