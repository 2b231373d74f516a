package urlcomplete

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	require.Equal(t, 21, DefaultCatalog.Len())
	require.Equal(t, DefaultTLDs(), DefaultCatalog.Suffixes())

	// callers cannot mutate the catalog through returned slices
	tlds := DefaultTLDs()
	tlds[0] = ".mutated"
	suffixes := DefaultCatalog.Suffixes()
	suffixes[1] = ".mutated"
	require.Equal(t, ".com", DefaultCatalog.Suffixes()[0])
	require.Equal(t, ".net", DefaultCatalog.Suffixes()[1])

	for _, v := range DefaultCatalog.Suffixes() {
		require.Truef(t, isPublicSuffix(v), "%v should be a public suffix", v)
	}
}

func TestCatalogWithPrefix(t *testing.T) {
	testcases := []struct {
		prefix   string
		expected []string
	}{
		{prefix: ".c", expected: []string{".com", ".co", ".cc", ".cloud"}},
		{prefix: ".co", expected: []string{".com", ".co"}},
		{prefix: ".i", expected: []string{".int", ".io", ".info"}},
		{prefix: ".x", expected: nil},
	}
	for _, v := range testcases {
		require.Equalf(t, v.expected, DefaultCatalog.WithPrefix(v.prefix), "unexpected suffixes for %q", v.prefix)
	}
}

func TestNewCatalog(t *testing.T) {
	c, err := NewCatalog([]string{" com", ".io", "com", "", ".", "Dev"})
	require.Nil(t, err)
	require.Equal(t, []string{".com", ".io", ".Dev"}, c.Suffixes())

	_, err = NewCatalog(nil)
	require.NotNil(t, err)

	require.False(t, isPublicSuffix(".notatld"))
}

func TestConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.Nil(t, GenerateSample(path))

	cfg, err := NewConfig(path)
	require.Nil(t, err)
	require.Equal(t, DefaultConfig, *cfg)

	_, err = NewConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NotNil(t, err)
}
