package openapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(e *echo.Echo, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, http.NoBody))
	return rec
}

func TestRegisterRoutes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		ui        UI
		wantSpec  string
		wantTitle string
	}{
		{name: "defaults", wantSpec: `data-spec="/openapi.json"`, wantTitle: "<title>API Reference</title>"},
		{
			name:      "custom",
			ui:        UI{Title: "Competitive Price Monitor API", SpecPath: "/openapi.yaml"},
			wantSpec:  `data-spec="/openapi.yaml"`,
			wantTitle: "<title>Competitive Price Monitor API</title>",
		},
		{
			name:      "title is escaped",
			ui:        UI{Title: "<b>Prices</b>"},
			wantSpec:  `data-spec="/openapi.json"`,
			wantTitle: "<title>&lt;b&gt;Prices&lt;/b&gt;</title>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := echo.New()
			require.NoError(t, RegisterRoutes(e, tt.ui))

			rec := get(e, "/swagger/index.html")
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantSpec)
			assert.Contains(t, rec.Body.String(), tt.wantTitle)
		})
	}
}

func TestRegisterRoutes_Redirects(t *testing.T) {
	t.Parallel()

	e := echo.New()
	require.NoError(t, RegisterRoutes(e, UI{}))

	for _, path := range []string{"/swagger", "/swagger/"} {
		rec := get(e, path)
		assert.Equal(t, http.StatusMovedPermanently, rec.Code, path)
		assert.Equal(t, "/swagger/index.html", rec.Header().Get("Location"), path)
	}
}
