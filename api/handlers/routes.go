package handlers

import (
	"net/http"

	"github.com/EO-DataHub/eodhp-user-listing/api/services"
	"github.com/gorilla/mux"
)

// RegisterRoutes adds the page and API routes to r.
func RegisterRoutes(r *mux.Router, svc *services.Service) {
	r.HandleFunc("/", AsyncHandler(RenderErrorPage(svc.Views), UsersPage(svc))).Methods(http.MethodGet)

	api := r.PathPrefix(svc.Config.BasePath).Subrouter()
	api.HandleFunc("/users", AsyncHandler(WriteErrorResponse, GetUsers(svc))).Methods(http.MethodGet)
}
