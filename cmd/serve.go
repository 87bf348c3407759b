package cmd

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"path"

	"github.com/EO-DataHub/eodhp-user-listing/api/handlers"
	"github.com/EO-DataHub/eodhp-user-listing/api/middleware"
	"github.com/EO-DataHub/eodhp-user-listing/api/services"
	docs "github.com/EO-DataHub/eodhp-user-listing/docs"
	"github.com/EO-DataHub/eodhp-user-listing/internal/appconfig"
	"github.com/EO-DataHub/eodhp-user-listing/internal/views"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	httpSwagger "github.com/swaggo/http-swagger"
)

// @title EODHP User Listing API
// @version v1
// @description This is the API for the EODHP User Listing.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server for the users page and API",
	Run: func(cmd *cobra.Command, args []string) {

		// Load the config and set up logging
		commonSetUp()

		accessor, err := initializeAccessor(context.Background(), appCfg.Data)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize data accessor")
		}

		renderer, err := views.New(appCfg.Views.Dir)
		if err != nil {
			log.Fatal().Err(err).Str("dir", appCfg.Views.Dir).Msg("Failed to load views")
		}

		service := &services.Service{
			Config:  appCfg,
			Records: accessor,
			Views:   renderer,
		}

		r := newRouter(appCfg, service)

		ln, err := net.Listen("tcp", fmt.Sprintf("%s:%d", host, port))
		if err != nil {
			log.Fatal().Err(err).Msg("could not start server")
		}

		logReadiness(ln.Addr().(*net.TCPAddr).Port)

		if err := http.Serve(ln, r); err != nil {
			log.Fatal().Err(err).Msg("server stopped")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&host, "host", "0.0.0.0", "host to run the server on")
	serveCmd.Flags().IntVar(&port, "port", 3000, "port to run the server on")
}

// newRouter registers the page, API, static and docs routes.
func newRouter(cfg *appconfig.Config, service *services.Service) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.WithLogger)

	handlers.RegisterRoutes(r, service)

	// Static assets
	r.PathPrefix(cfg.Static.Prefix).Handler(
		http.StripPrefix(cfg.Static.Prefix, http.FileServer(http.Dir(cfg.Static.Dir)))).
		Methods(http.MethodGet)

	// Docs
	docs.SwaggerInfo.Host = cfg.Host
	docs.SwaggerInfo.BasePath = cfg.BasePath
	r.PathPrefix(cfg.DocsPath).Handler(httpSwagger.Handler(
		httpSwagger.URL(path.Join(cfg.DocsPath, "/doc.json")),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("none"),
		httpSwagger.DomID("swagger-ui"),
	)).Methods(http.MethodGet)

	return r
}

// logReadiness is written whatever the configured log level, once the port is bound.
func logReadiness(port int) {
	log.WithLevel(zerolog.NoLevel).Msgf("App listening on port %d!", port)
}
