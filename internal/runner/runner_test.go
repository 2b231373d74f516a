package runner

import (
	"testing"

	"github.com/projectdiscovery/urlcomplete"
	"github.com/stretchr/testify/require"
)

func TestSuggesterOptions(t *testing.T) {
	opts := &Options{Inputs: []string{"exam"}, Mode: "finalize", Limit: 3, TLDs: []string{".dev"}}
	got, err := opts.SuggesterOptions()
	require.Nil(t, err)
	require.Equal(t, urlcomplete.ModeFinalize, got.Mode)
	require.Equal(t, []string{"exam"}, got.Inputs)
	require.Equal(t, []string{".dev"}, got.TLDs)
	require.Equal(t, 3, got.Limit)

	opts.Mode = "unknown"
	_, err = opts.SuggesterOptions()
	require.NotNil(t, err)
}

func TestApplyConfig(t *testing.T) {
	defaults := urlcomplete.DefaultConfig
	defer func() { urlcomplete.DefaultConfig = defaults }()

	applyConfig(&urlcomplete.Config{TLDs: []string{".dev", ".io"}, MaxSuggestions: 4})
	require.Equal(t, []string{".dev", ".io"}, urlcomplete.DefaultConfig.TLDs)
	require.Equal(t, 4, urlcomplete.DefaultConfig.MaxSuggestions)
	require.Equal(t, urlcomplete.DefaultMinInputLength, urlcomplete.DefaultConfig.MinInputLength)

	s, err := urlcomplete.New(&urlcomplete.Options{})
	require.Nil(t, err)
	require.Equal(t, []string{"https://exam", "http://exam", "exam.dev", "exam.io"}, s.Generate("exam"))
}
