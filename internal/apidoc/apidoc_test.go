package apidoc

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	doc, err := Load()
	require.NoError(t, err)
	require.NotNil(t, doc)

	assert.Equal(t, "Status API", doc.Title())
}

func TestDocumentJSON(t *testing.T) {
	doc, err := Load()
	require.NoError(t, err)

	raw := doc.JSON()
	require.NotEmpty(t, raw)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(raw, &parsed))
	assert.Contains(t, parsed, "openapi")
	assert.Contains(t, parsed, "paths")
}

func TestDocumentRoutes(t *testing.T) {
	doc, err := Load()
	require.NoError(t, err)

	routes := doc.Routes()
	require.NotEmpty(t, routes)

	seen := make(map[string]bool, len(routes))
	for _, route := range routes {
		seen[route.Method+" "+route.Path] = true
	}

	for _, want := range []string{
		"GET /",
		"GET /health",
		"GET /ready",
		"GET /openapi.json",
	} {
		assert.True(t, seen[want], "missing route %s", want)
	}
}
