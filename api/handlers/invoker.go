package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/EO-DataHub/eodhp-user-listing/api/services"
	"github.com/EO-DataHub/eodhp-user-listing/internal/records"
	"github.com/EO-DataHub/eodhp-user-listing/internal/views"
	"github.com/EO-DataHub/eodhp-user-listing/models"
	"github.com/rs/zerolog"
)

// HandlerFunc handles a request and writes its own success response. A
// returned error means nothing has been written yet.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// FailureFunc writes the response for a failed request.
type FailureFunc func(w http.ResponseWriter, r *http.Request, err error)

// PanicError carries a recovered panic value that was not an error.
type PanicError struct {
	Value interface{}
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// AsyncHandler runs h and hands any returned error, or recovered panic, to
// onFailure exactly once. When h succeeds onFailure is not called. If h had
// already started the response the failure is only logged, since a second
// status line cannot be sent.
func AsyncHandler(onFailure FailureFunc, h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tw := &trackingWriter{ResponseWriter: w}
		err := invoke(h, tw, r)
		if err == nil {
			return
		}

		logger := zerolog.Ctx(r.Context())
		if tw.written {
			logger.Error().Err(err).Msg("request failed after the response was started")
			return
		}

		logger.Error().Err(err).Msg("request failed")
		onFailure(w, r, err)
	}
}

// trackingWriter records whether the response has been started.
type trackingWriter struct {
	http.ResponseWriter
	written bool
}

func (t *trackingWriter) WriteHeader(status int) {
	t.written = true
	t.ResponseWriter.WriteHeader(status)
}

func (t *trackingWriter) Write(b []byte) (int, error) {
	t.written = true
	return t.ResponseWriter.Write(b)
}

func (t *trackingWriter) Unwrap() http.ResponseWriter {
	return t.ResponseWriter
}

func invoke(h HandlerFunc, w http.ResponseWriter, r *http.Request) (err error) {
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		// net/http relies on this panic to abort the connection
		if p == http.ErrAbortHandler {
			panic(p)
		}
		if perr, ok := p.(error); ok {
			err = perr
			return
		}
		err = &PanicError{Value: p}
	}()

	return h(w, r)
}

// RenderErrorPage is the failure path for HTML pages. It renders the error
// page with the failure value and falls back to plain text if that page
// cannot be rendered.
func RenderErrorPage(v *views.Renderer) FailureFunc {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		data := views.ErrorData{Title: "Error", Error: err}
		if renderErr := v.HTML(w, http.StatusInternalServerError, views.PageError, data); renderErr != nil {
			zerolog.Ctx(r.Context()).Error().Err(renderErr).Msg("failed to render error page")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

// WriteErrorResponse is the failure path for the JSON API.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	services.WriteResponse(w, http.StatusInternalServerError, models.Response{
		Success:      0,
		ErrorCode:    errorCode(err),
		ErrorDetails: err.Error(),
	})
}

func errorCode(err error) string {
	var readErr *records.ResourceReadError
	var parseErr *records.ParseError
	switch {
	case errors.As(err, &readErr):
		return "resource_read_error"
	case errors.As(err, &parseErr):
		return "parse_error"
	default:
		return "internal_error"
	}
}
