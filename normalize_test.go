package urlcomplete

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeString(t *testing.T) {
	testcases := []struct {
		value    string
		expected string
	}{
		{value: "https://www.example.com:443", expected: "https://example.com"},
		{value: "www.example.com", expected: "example.com"},
		{value: "http://example.com:80/path", expected: "http://example.com/path"},
		{value: "example.com:80#top", expected: "example.com#top"},
		{value: "example.com:443?q=1", expected: "example.com?q=1"},
		{value: "example.com:8080", expected: "example.com:8080"},
		{value: "example.com:4430/", expected: "example.com:4430/"},
		{value: "Example.COM", expected: "Example.COM"},
		{value: "WWW.example.com", expected: "WWW.example.com"},
		{value: "ftp://www.example.com:80", expected: "ftp://www.example.com"},
		{value: "", expected: ""},
	}
	for _, v := range testcases {
		require.Equalf(t, v.expected, NormalizeString(v.value), "unexpected normalized value for %q", v.value)
	}
}

func TestNormalizeStringIdempotent(t *testing.T) {
	values := []string{
		"a:80:80", "x:80:443", "www.www.example.com", "https://www.www.x:443:80/",
		"http://www.example.com:80", "example.com", "", "www.", ":80", ":443:443#",
	}
	for _, v := range values {
		once := NormalizeString(v)
		require.Equalf(t, once, NormalizeString(once), "normalize is not stable for %q", v)
	}
}

func TestFinalize(t *testing.T) {
	testcases := []struct {
		value    string
		expected string
		changed  bool
	}{
		{value: "example.com", expected: "https://example.com", changed: true},
		{value: "http://example.com:80/", expected: "http://example.com/", changed: true},
		{value: "example.com:443?q=1", expected: "https://example.com?q=1", changed: true},
		{value: "https://www.example.com", expected: "https://www.example.com", changed: false},
		{value: " https://example.com ", expected: "https://example.com", changed: false},
		{value: "", expected: "", changed: false},
		{value: "   ", expected: "   ", changed: false},
	}
	for _, v := range testcases {
		got, changed := Finalize(v.value)
		require.Equalf(t, v.expected, got, "unexpected finalized value for %q", v.value)
		require.Equalf(t, v.changed, changed, "unexpected changed flag for %q", v.value)
	}
}
