package endpoint

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var createAccount = Descriptor{
	Method:      "POST",
	Path:        "/api/v1/accounts",
	Description: "Create an account",
	Request: &Body{
		Type:    "application/json",
		Schema:  map[string]any{"url": "string", "platform": "string"},
		Example: map[string]any{"platform": "GitHub"},
	},
	StatusCodes: []StatusCode{{Code: 201, Description: "Created"}, {Code: 409, Description: "Conflict"}},
	Auth:        true,
}

func TestMethodColor(t *testing.T) {
	require.Equal(t, "#61affe", MethodColor("GET"))
	require.Equal(t, "#f93e3e", MethodColor("DELETE"))
	require.Equal(t, "#999", MethodColor("OPTIONS"))
}

func TestBadges(t *testing.T) {
	require.Equal(t, []Badge{{Text: "Auth Required", Color: "#e74c3c"}}, createAccount.RequirementBadges())
	require.Equal(t, []Badge{{Text: "Req: application/json", Color: "#3498db"}}, createAccount.ContentTypeBadges())

	d := Descriptor{Init: true, Response: &Body{Type: "text/plain"}}
	require.Equal(t, []Badge{{Text: "Init Required", Color: "#e67e22"}, {Text: "Public", Color: "#27ae60"}}, d.RequirementBadges())
	require.Equal(t, []Badge{{Text: "Res: text/plain", Color: "#9b59b6"}}, d.ContentTypeBadges())
}

func TestFormatSchema(t *testing.T) {
	testcases := []struct {
		schema   any
		expected string
	}{
		{schema: "string", expected: "string"},
		{schema: []any{}, expected: "array"},
		{schema: []any{"a"}, expected: "array of strings"},
		{schema: []any{map[string]any{"id": "string"}}, expected: "array of objects"},
		{schema: []any{1}, expected: "array"},
		{schema: map[string]any{}, expected: "object"},
		{schema: map[string]any{"b": "int", "a": "string"}, expected: "{ a: string, b: int }"},
		{schema: 42, expected: "object"},
	}
	for _, v := range testcases {
		require.Equalf(t, v.expected, FormatSchema(v.schema), "unexpected summary of %v", v.schema)
	}
}

func TestFormatExample(t *testing.T) {
	require.Equal(t, "plain", FormatExample("plain"))
	require.Equal(t, "[\n  \"a\",\n  \"b\"\n]", FormatExample([]any{"a", "b"}))
	require.Equal(t, "{\n  \"id\": 1\n}", FormatExample(map[string]any{"id": 1}))
	require.Equal(t, "true", FormatExample(true))
	require.Equal(t, "", FormatExample(nil))
}

func TestStatusClass(t *testing.T) {
	require.Equal(t, "success", StatusClass(204))
	require.Equal(t, "warning", StatusClass(412))
	require.Equal(t, "error", StatusClass(422))
	require.Equal(t, "error", StatusClass(500))
}

func TestBlock(t *testing.T) {
	b := NewBlock(createAccount)
	require.True(t, b.Collapsed())
	require.Equal(t, "▼", b.ToggleIcon())
	require.Equal(t, "POST /api/v1/accounts [Auth Required] [Req: application/json] ▼\n", b.Render())

	require.False(t, b.Toggle())
	require.Equal(t, "▲", b.ToggleIcon())
	expected := `POST /api/v1/accounts [Auth Required] [Req: application/json] ▲
  Create an account
  Request:
    schema: { platform: string, url: string }
    example:
      {
        "platform": "GitHub"
      }
  Status Codes:
    201 Created (success)
    409 Conflict (warning)
`
	require.Equal(t, expected, b.Render())
	require.True(t, b.Toggle())
}

func TestRenderWithoutStatusCodes(t *testing.T) {
	got := Render(Descriptor{Method: "GET", Path: "/health", Description: "Liveness"}, false)
	require.Equal(t, "GET /health [Public] ▲\n  Liveness\n  Status Codes:\n    none\n", got)
}

func TestLoadDescriptors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "endpoints.yaml")
	data := `- method: get
  path: /api/v1/accounts
  description: List accounts
  auth: true
  response:
    type: application/json
    schema: [{id: string}]
  statusCodes:
    - code: 200
      description: OK
`
	require.Nil(t, os.WriteFile(path, []byte(data), 0600))

	got, err := LoadDescriptors(path)
	require.Nil(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "GET", got[0].Method)
	require.True(t, got[0].Auth)
	require.Equal(t, "array of objects", FormatSchema(got[0].Response.Schema))
	require.Equal(t, []StatusCode{{Code: 200, Description: "OK"}}, got[0].StatusCodes)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.Nil(t, os.WriteFile(invalid, []byte("- description: no method\n"), 0600))
	_, err = LoadDescriptors(invalid)
	require.NotNil(t, err)

	_, err = LoadDescriptors(filepath.Join(dir, "missing.yaml"))
	require.NotNil(t, err)
}
