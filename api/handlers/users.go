package handlers

import (
	"net/http"

	"github.com/EO-DataHub/eodhp-user-listing/api/services"
	"github.com/EO-DataHub/eodhp-user-listing/internal/views"
	"github.com/EO-DataHub/eodhp-user-listing/models"
	"github.com/rs/zerolog"
)

// UsersPage renders the index page with the users read from the resource.
func UsersPage(svc *services.Service) HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		collection, err := svc.Records.Load(r.Context())
		if err != nil {
			return err
		}

		zerolog.Ctx(r.Context()).Debug().Int("users", len(collection.Users)).Msg("rendering users page")

		return svc.Views.HTML(w, http.StatusOK, views.PageIndex, views.IndexData{
			Title: svc.Config.Title,
			Users: collection.Users,
		})
	}
}

// @Summary List users
// @Description Returns the users held in the configured data resource.
// @Tags users
// @Produce json
// @Success 200 {object} models.Response{data=models.RecordCollection}
// @Failure 500 {object} models.Response
// @Router /users [get]
func GetUsers(svc *services.Service) HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		collection, err := svc.Records.Load(r.Context())
		if err != nil {
			return err
		}

		services.WriteResponse(w, http.StatusOK, models.Response{
			Success: 1,
			Data:    collection,
		})
		return nil
	}
}
