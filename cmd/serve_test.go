package cmd

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/EO-DataHub/eodhp-user-listing/api/services"
	"github.com/EO-DataHub/eodhp-user-listing/internal/appconfig"
	"github.com/EO-DataHub/eodhp-user-listing/internal/records"
	"github.com/EO-DataHub/eodhp-user-listing/internal/views"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouterConfig(t *testing.T) (*appconfig.Config, *services.Service) {
	t.Helper()
	dir := t.TempDir()

	dataPath := filepath.Join(dir, "data.json")
	require.NoError(t, os.WriteFile(dataPath, []byte(`{"users":[{"name":"Ann"}]}`), 0o600))

	staticDir := filepath.Join(dir, "public")
	require.NoError(t, os.MkdirAll(filepath.Join(staticDir, "css"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "css", "style.css"), []byte("body {}"), 0o600))

	cfg := appconfig.DefaultConfig()
	cfg.Data.Path = dataPath
	cfg.Static.Dir = staticDir

	renderer, err := views.New("")
	require.NoError(t, err)

	return cfg, &services.Service{
		Config:  cfg,
		Records: records.NewAccessor(records.FileSource{Path: dataPath}),
		Views:   renderer,
	}
}

func TestNewRouter_Routes(t *testing.T) {
	cfg, svc := testRouterConfig(t)
	r := newRouter(cfg, svc)

	cases := []struct {
		path     string
		contains string
	}{
		{"/", "Ann"},
		{"/api/users", `"name":"Ann"`},
		{"/static/css/style.css", "body {}"},
		{cfg.DocsPath + "/doc.json", `"/users"`},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))

		assert.Equal(t, http.StatusOK, w.Code, tc.path)
		assert.Contains(t, w.Body.String(), tc.contains, tc.path)
	}
}

func TestNewRouter_UnknownStaticFile(t *testing.T) {
	cfg, svc := testRouterConfig(t)

	w := httptest.NewRecorder()
	newRouter(cfg, svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/static/missing.css", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLogReadiness_ShownAtDefaultLevel(t *testing.T) {
	var buf bytes.Buffer
	previous := log.Logger
	previousLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = previous
		zerolog.SetGlobalLevel(previousLevel)
	})
	log.Logger = zerolog.New(&buf)

	setLogging("warn")
	logReadiness(3000)

	assert.Contains(t, buf.String(), "App listening on port 3000!")
}
