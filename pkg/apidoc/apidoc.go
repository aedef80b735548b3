// Package apidoc builds a Swagger 2.0 description of a service from its route contracts and
// serves it together with an interactive Swagger UI page.
package apidoc

import (
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"regexp"
	"sort"
	"strings"

	"github.com/abgdnv/coffeeshop/pkg/schema"
	"github.com/abgdnv/coffeeshop/pkg/web"
	"github.com/go-chi/chi/v5"
	"github.com/go-openapi/spec"
)

const (
	SpecPath = "/apispec_1.json"
	UIPath   = "/apidocs/"
)

// Info is the document's info block.
type Info struct {
	Title       string
	Description string
	Version     string
}

// Route is the contract of one endpoint as it appears in the document.
type Route struct {
	Method      string
	Path        string
	Summary     string
	OperationID string
	Tag         string
	// PathParams lists integer path parameters by name, in path order.
	PathParams []string
	// Authenticated routes document the x-api-key header.
	Authenticated bool
	// Body, when set, documents a JSON body validated against this contract.
	Body      schema.Contract
	Responses map[int]*spec.Response
}

// Reply is shorthand for a response with an optional body schema.
func Reply(description string, body *spec.Schema) *spec.Response {
	resp := spec.NewResponse().WithDescription(description)
	if body != nil {
		resp.WithSchema(body)
	}
	return resp
}

// New builds a Swagger 2.0 document from routes.
func New(info Info, routes []Route) *spec.Swagger {
	doc := &spec.Swagger{SwaggerProps: spec.SwaggerProps{
		Swagger: "2.0",
		Info: &spec.Info{InfoProps: spec.InfoProps{
			Title:       info.Title,
			Description: info.Description,
			Version:     info.Version,
		}},
		Consumes: []string{"application/json"},
		Produces: []string{"application/json"},
		Paths:    &spec.Paths{Paths: make(map[string]spec.PathItem)},
	}}
	for _, rt := range routes {
		op := spec.NewOperation(rt.OperationID).WithSummary(rt.Summary)
		if rt.Tag != "" {
			op.WithTags(rt.Tag)
		}
		for _, p := range rt.PathParams {
			op.AddParam(spec.PathParam(p).Typed("integer", "int64").AsRequired().WithDescription("The " + p))
		}
		if rt.Authenticated {
			op.AddParam(spec.HeaderParam("x-api-key").Typed("string", "").AsRequired().
				WithDescription("API key for authentication"))
		}
		if rt.Body != nil {
			op.AddParam(spec.BodyParam("body", ContractSchema(rt.Body)).AsRequired())
		}
		for code, resp := range rt.Responses {
			op.RespondsWith(code, resp)
		}
		item := doc.Paths.Paths[rt.Path]
		switch rt.Method {
		case http.MethodGet:
			item.Get = op
		case http.MethodPost:
			item.Post = op
		case http.MethodPut:
			item.Put = op
		case http.MethodDelete:
			item.Delete = op
		case http.MethodPatch:
			item.Patch = op
		}
		doc.Paths.Paths[rt.Path] = item
	}
	return doc
}

// ContractSchema renders a validation contract as an object schema. Output-only fields
// are marked readOnly and never listed as required.
func ContractSchema(c schema.Contract) *spec.Schema {
	s := new(spec.Schema).Typed("object", "")
	var required []string
	for _, f := range c {
		prop := propertySchema(f.Type)
		prop.ReadOnly = f.OutputOnly
		s.SetProperty(f.Name, *prop)
		if f.Required && !f.OutputOnly {
			required = append(required, f.Name)
		}
	}
	sort.Strings(required)
	return s.WithRequired(required...)
}

// Object builds an object schema from its properties.
func Object(props map[string]*spec.Schema) *spec.Schema {
	s := new(spec.Schema).Typed("object", "")
	for name, prop := range props {
		s.SetProperty(name, *prop)
	}
	return s
}

func propertySchema(t schema.Type) *spec.Schema {
	switch t {
	case schema.Integer:
		return spec.Int64Property()
	case schema.Number:
		return spec.Float64Property()
	default:
		return spec.StringProperty()
	}
}

var pathParam = regexp.MustCompile(`\{[^}]*\}`)

// routeKey reduces a route to "METHOD path" with parameter names and patterns blanked and
// the trailing slash dropped, so that "/products/{product_id}" and "/products/{id:[0-9]+}/"
// compare equal.
func routeKey(method, path string) string {
	path = pathParam.ReplaceAllString(path, "{}")
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	return method + " " + path
}

// Unserved returns the documented routes that r has no handler for, as "METHOD path".
func Unserved(r chi.Routes, routes []Route) ([]string, error) {
	served := make(map[string]struct{})
	err := chi.Walk(r, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		served[routeKey(method, route)] = struct{}{}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk routes: %w", err)
	}
	var missing []string
	for _, rt := range routes {
		if _, ok := served[routeKey(rt.Method, rt.Path)]; !ok {
			missing = append(missing, rt.Method+" "+rt.Path)
		}
	}
	return missing, nil
}

var uiTemplate = template.Must(template.New("ui").Parse(`<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>{{.Title}}</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '{{.SpecURL}}',
        dom_id: '#swagger-ui'
      });
    </script>
  </body>
</html>`))

// Register mounts the document and the UI page on r. Both are public.
func Register(r chi.Router, doc *spec.Swagger, logger *slog.Logger) {
	r.Get(SpecPath, func(w http.ResponseWriter, _ *http.Request) {
		web.RespondJSON(w, logger, http.StatusOK, doc)
	})
	r.Get(UIPath, func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err := uiTemplate.Execute(w, struct {
			Title   string
			SpecURL string
		}{Title: doc.Info.Title, SpecURL: SpecPath})
		if err != nil {
			logger.ErrorContext(req.Context(), "Error rendering API docs page", "error", err)
		}
	})
	r.Get("/apidocs", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, UIPath, http.StatusMovedPermanently)
	})
}
