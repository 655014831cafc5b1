// Package resource implements the list/create/delete pattern every page
// repeats. A controller owns one in-memory collection, replaces it wholesale
// on refresh, and funnels every mutation through the API client.
package resource

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"sync"

	"github.com/khetconnect/admin-panel/internal/forms"
)

// ErrInFlight rejects a second mutation while one is pending, so a
// double-submitted form cannot fire two creates.
var ErrInFlight = errors.New("request already in flight")

// ValidationError carries per-field messages for a rejected form.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

type Controller[R any] struct {
	name   string
	schema forms.Schema
	list   func(ctx context.Context) ([]R, error)
	create func(ctx context.Context, form url.Values) error
	remove func(ctx context.Context, token, id string) error
	log    *slog.Logger

	mu      sync.Mutex
	records []R
	busy    bool
}

// Refresh replaces the collection with exactly what the server returned. On
// error the previous collection stays intact and the page keeps rendering
// stale but consistent data.
func (c *Controller[R]) Refresh(ctx context.Context) error {
	fresh, err := c.list(ctx)
	if err != nil {
		c.log.Error("list failed", "resource", c.name, "err", err)
		return err
	}

	c.mu.Lock()
	c.records = fresh
	c.mu.Unlock()
	return nil
}

// Create validates the form against the declared schema, and only on success
// issues the API call. A successful create triggers a wholesale refresh; the
// caller keeps the submitted values around so a failed form can be retried.
func (c *Controller[R]) Create(ctx context.Context, values url.Values) error {
	if problems := c.schema.Validate(values); len(problems) > 0 {
		return &ValidationError{Fields: problems}
	}

	if err := c.begin(); err != nil {
		return err
	}
	defer c.end()

	if err := c.create(ctx, c.schema.WireValues(values)); err != nil {
		return err
	}
	return c.Refresh(ctx)
}

// Delete sends the id and refreshes on confirmation. The record is never
// removed optimistically; a rejected delete leaves the collection untouched.
func (c *Controller[R]) Delete(ctx context.Context, token, id string) error {
	if err := c.begin(); err != nil {
		return err
	}
	defer c.end()

	if err := c.remove(ctx, token, id); err != nil {
		return err
	}
	return c.Refresh(ctx)
}

// Records returns a snapshot copy in server order.
func (c *Controller[R]) Records() []R {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]R, len(c.records))
	copy(out, c.records)
	return out
}

func (c *Controller[R]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.records)
}

func (c *Controller[R]) begin() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.busy {
		return ErrInFlight
	}
	c.busy = true
	return nil
}

func (c *Controller[R]) end() {
	c.mu.Lock()
	c.busy = false
	c.mu.Unlock()
}
