package records

import (
	"context"

	"github.com/EO-DataHub/eodhp-user-listing/models"
)

// Result is the outcome of one asynchronous Load.
type Result struct {
	Collection *models.RecordCollection
	Err        error
}

// LoadAsync starts a Load on its own goroutine. The returned channel yields
// exactly one Result and is then closed.
func (a *Accessor) LoadAsync(ctx context.Context) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		defer close(ch)
		collection, err := a.Load(ctx)
		ch <- Result{Collection: collection, Err: err}
	}()
	return ch
}

// LoadWithCallback runs Load on its own goroutine and hands the outcome to cb
// exactly once. cb runs on that goroutine and nothing recovers it, so a panic
// in cb terminates the process.
func (a *Accessor) LoadWithCallback(ctx context.Context, cb func(*models.RecordCollection, error)) {
	go func() {
		cb(a.Load(ctx))
	}()
}
