package compliance

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogue(t *testing.T) {
	cat := DefaultCatalogue()

	assert.Equal(t, 1, cat.Version)
	require.Len(t, cat.Pillars, PillarCount)
	assert.Equal(t, "transparency", cat.Pillars[0].Key)
	assert.Equal(t, "Transparency", cat.Pillars[0].Label)
	assert.Equal(t, "UNESCO Art. 21 · OECD 1.2", cat.Pillars[0].Reference)
	assert.Equal(t, "inclusivity", cat.Pillars[7].Key)
	for _, p := range cat.Pillars {
		assert.NotEmpty(t, p.Question, p.Key)
	}
}

func TestLoadCatalogueFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pillars.yaml")
	content := strings.Replace(string(defaultCatalogue), "version: 1", "version: 2", 1)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cat, err := LoadCatalogue(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cat.Version)
	assert.Len(t, cat.Pillars, PillarCount)
}

func TestLoadCatalogueErrors(t *testing.T) {
	_, err := LoadCatalogue(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "short.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 1\npillars:\n  - key: a\n    label: A\n"), 0o600))
	_, err = LoadCatalogue(path)
	assert.ErrorIs(t, err, ErrInvalidCatalogue)
}

func TestCatalogueValidate(t *testing.T) {
	cat := DefaultCatalogue()

	dup := Catalogue{Version: 1, Pillars: append(cat.Pillars[:7:7], cat.Pillars[0])}
	assert.ErrorIs(t, dup.Validate(), ErrInvalidCatalogue)

	noVersion := Catalogue{Pillars: cat.Pillars}
	assert.ErrorIs(t, noVersion.Validate(), ErrInvalidCatalogue)

	empty := Catalogue{Version: 1, Pillars: append(cat.Pillars[:7:7], cat.Pillars[7])}
	empty.Pillars[7].Key = ""
	assert.ErrorIs(t, empty.Validate(), ErrInvalidCatalogue)

	assert.NoError(t, cat.Validate())
}
