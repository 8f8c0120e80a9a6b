// Package openapi mounts a Swagger UI page over the OpenAPI document huma
// publishes for the registered operations.
package openapi

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/labstack/echo/v4"
)

// DefaultSpecPath is huma's default document path.
const DefaultSpecPath = "/openapi.json"

const uiPath = "/swagger/index.html"

var page = template.Must(template.New("swagger").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui" data-spec="{{.SpecPath}}"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    const root = document.getElementById("swagger-ui");
    SwaggerUIBundle({
      url: root.dataset.spec,
      domNode: root,
      presets: [SwaggerUIBundle.presets.apis, SwaggerUIBundle.SwaggerUIStandalonePreset],
      layout: "BaseLayout",
    });
  </script>
</body>
</html>`))

// UI describes the rendered page.
type UI struct {
	Title    string
	SpecPath string
}

// RegisterRoutes serves the page at /swagger/index.html and redirects the
// bare /swagger paths to it. An empty SpecPath uses DefaultSpecPath.
func RegisterRoutes(e *echo.Echo, ui UI) error {
	if ui.SpecPath == "" {
		ui.SpecPath = DefaultSpecPath
	}
	if ui.Title == "" {
		ui.Title = "API Reference"
	}

	var buf bytes.Buffer
	if err := page.Execute(&buf, ui); err != nil {
		return err
	}
	html := buf.String()

	e.GET(uiPath, func(c echo.Context) error {
		return c.HTML(http.StatusOK, html)
	})
	redirect := func(c echo.Context) error {
		return c.Redirect(http.StatusMovedPermanently, uiPath)
	}
	e.GET("/swagger", redirect)
	e.GET("/swagger/", redirect)
	return nil
}
