// Package apidoc holds the service's own OpenAPI description. The document
// is embedded in the binary, validated at startup, and served verbatim on
// /openapi.json.
package apidoc

import (
	"fmt"
	"sort"

	_ "embed"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var docData []byte

// Route is one operation declared by the API description
type Route struct {
	Method  string `json:"method"`
	Path    string `json:"path"`
	Summary string `json:"summary,omitempty"`
}

// Document is the loaded and validated API description
type Document struct {
	doc    *openapi3.T
	json   []byte
	routes []Route
}

// Load parses and validates the embedded OpenAPI document
func Load() (*Document, error) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(docData)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded OpenAPI document: %w", err)
	}

	if err := doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("embedded OpenAPI document validation failed: %w", err)
	}

	raw, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize OpenAPI document: %w", err)
	}

	return &Document{
		doc:    doc,
		json:   raw,
		routes: extractRoutes(doc),
	}, nil
}

// JSON returns the document serialized as JSON
func (d *Document) JSON() []byte {
	return d.json
}

// Routes returns the operations declared by the document, sorted by path
// then method for stable output.
func (d *Document) Routes() []Route {
	return d.routes
}

// Title returns the document's declared title
func (d *Document) Title() string {
	if d.doc.Info == nil {
		return ""
	}
	return d.doc.Info.Title
}

func extractRoutes(doc *openapi3.T) []Route {
	paths := doc.Paths.Map()
	routes := make([]Route, 0, len(paths))

	for path, pathItem := range paths {
		for method, operation := range pathItem.Operations() {
			routes = append(routes, Route{
				Method:  method,
				Path:    path,
				Summary: operation.Summary,
			})
		}
	}

	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path != routes[j].Path {
			return routes[i].Path < routes[j].Path
		}
		return routes[i].Method < routes[j].Method
	})

	return routes
}
