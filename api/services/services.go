package services

import (
	"context"

	"github.com/EO-DataHub/eodhp-user-listing/internal/appconfig"
	"github.com/EO-DataHub/eodhp-user-listing/internal/views"
	"github.com/EO-DataHub/eodhp-user-listing/models"
)

// RecordLoader loads the users resource. records.Accessor implements it.
type RecordLoader interface {
	Load(ctx context.Context) (*models.RecordCollection, error)
}

// Service contains all shared dependencies for handlers.
type Service struct {
	Config  *appconfig.Config
	Records RecordLoader
	Views   *views.Renderer
}
