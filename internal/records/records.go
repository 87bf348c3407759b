// Package records reads the users resource and parses it into a
// models.RecordCollection. Nothing is cached: every Load goes back to the
// underlying Source.
package records

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/EO-DataHub/eodhp-user-listing/models"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

var (
	errNotUTF8   = errors.New("content is not valid UTF-8 text")
	errNotObject = errors.New("content is not a JSON object")
)

// Source is durable storage holding the raw bytes of the resource.
type Source interface {
	Name() string
	ReadAll(ctx context.Context) ([]byte, error)
}

// Accessor loads the record collection from a fixed Source.
type Accessor struct {
	Source Source
}

func NewAccessor(src Source) *Accessor {
	return &Accessor{Source: src}
}

// Load reads and parses the resource. Read failures are returned as
// *ResourceReadError and malformed content as *ParseError. There is no retry.
func (a *Accessor) Load(ctx context.Context) (*models.RecordCollection, error) {
	logger := zerolog.Ctx(ctx).With().Str("resource", a.Source.Name()).Logger()

	raw, err := a.Source.ReadAll(ctx)
	if err != nil {
		logger.Debug().Err(err).Msg("failed to read resource")
		return nil, &ResourceReadError{Resource: a.Source.Name(), Err: err}
	}

	if !utf8.Valid(raw) {
		return nil, &ParseError{Resource: a.Source.Name(), Err: errNotUTF8}
	}

	var collection *models.RecordCollection
	if err := json.Unmarshal(raw, &collection); err != nil {
		logger.Debug().Err(err).Msg("failed to parse resource")
		return nil, &ParseError{Resource: a.Source.Name(), Err: err}
	}

	// a bare null decodes without error but carries no users object
	if collection == nil {
		return nil, &ParseError{Resource: a.Source.Name(), Err: errNotObject}
	}

	logger.Debug().Int("users", len(collection.Users)).Msg("resource loaded")
	return collection, nil
}
