package view

import (
	"context"
	"sort"
	"sync"
	"time"

	"home-inventory/internal/client"
	"home-inventory/internal/models"
)

// BatchAPI is the slice of the requirements client the autosaver needs.
type BatchAPI interface {
	AddBatch(ctx context.Context, sess *client.Session, params []client.RequirementParams) ([]models.InventoryRequirement, error)
}

// Autosaver batches requirement selections made on the quick-select grid.
// Every toggle or quantity change resets a single save timer; when the
// timer fires the pending set is written in one batch call. Selections
// are kept on failure so the next change retries them.
type Autosaver struct {
	api   BatchAPI
	sess  *client.Session
	delay time.Duration

	// OnSaved and OnError surface save outcomes to the caller. Both may
	// be nil and are invoked off the caller's goroutine.
	OnSaved func(saved []models.InventoryRequirement)
	OnError func(err error)

	mu      sync.Mutex
	pending map[int64]client.RequirementParams
	timer   *time.Timer
}

func NewAutosaver(api BatchAPI, sess *client.Session, delay time.Duration) *Autosaver {
	if delay <= 0 {
		delay = 2 * time.Second
	}
	return &Autosaver{
		api:     api,
		sess:    sess,
		delay:   delay,
		pending: map[int64]client.RequirementParams{},
	}
}

// Toggle adds the product to the pending set with a minimum of one, or
// removes it if already selected.
func (a *Autosaver) Toggle(product models.Product) {
	a.mu.Lock()
	if _, ok := a.pending[product.ID]; ok {
		delete(a.pending, product.ID)
	} else {
		a.pending[product.ID] = client.RequirementParams{
			ProductID:       product.ID,
			ProductName:     product.Name,
			MinimumQuantity: 1,
		}
	}
	a.schedule()
	a.mu.Unlock()
}

// Adjust changes a selected product's minimum by delta, never below one.
// Adjusting an unselected product is a no-op.
func (a *Autosaver) Adjust(productID int64, delta int) {
	a.mu.Lock()
	p, ok := a.pending[productID]
	if !ok {
		a.mu.Unlock()
		return
	}
	p.MinimumQuantity += delta
	if p.MinimumQuantity < 1 {
		p.MinimumQuantity = 1
	}
	a.pending[productID] = p
	a.schedule()
	a.mu.Unlock()
}

// Selected reports whether the product is in the pending set and with what
// minimum.
func (a *Autosaver) Selected(productID int64) (int, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	p, ok := a.pending[productID]
	return p.MinimumQuantity, ok
}

// Pending returns the queued selections ordered by product id.
func (a *Autosaver) Pending() []client.RequirementParams {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.snapshotLocked()
}

// Flush saves the pending set immediately, cancelling the timer. It is a
// no-op when nothing is queued.
func (a *Autosaver) Flush(ctx context.Context) error {
	a.mu.Lock()
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	batch := a.snapshotLocked()
	a.mu.Unlock()

	if len(batch) == 0 {
		return nil
	}
	return a.save(ctx, batch)
}

// Stop cancels any scheduled save without writing. Queued selections stay
// pending.
func (a *Autosaver) Stop() {
	a.mu.Lock()
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.mu.Unlock()
}

// schedule arms the save timer, replacing any earlier deadline. Callers
// hold a.mu.
func (a *Autosaver) schedule() {
	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = time.AfterFunc(a.delay, func() {
		a.mu.Lock()
		a.timer = nil
		batch := a.snapshotLocked()
		a.mu.Unlock()

		if len(batch) == 0 {
			return
		}
		if err := a.save(context.Background(), batch); err != nil && a.OnError != nil {
			a.OnError(err)
		}
	})
}

func (a *Autosaver) snapshotLocked() []client.RequirementParams {
	batch := make([]client.RequirementParams, 0, len(a.pending))
	for _, p := range a.pending {
		batch = append(batch, p)
	}
	sort.Slice(batch, func(i, j int) bool { return batch[i].ProductID < batch[j].ProductID })
	return batch
}

// save writes the batch and clears only the entries that were part of it,
// so selections made during the call are not lost.
func (a *Autosaver) save(ctx context.Context, batch []client.RequirementParams) error {
	saved, err := a.api.AddBatch(ctx, a.sess, batch)
	if err != nil {
		return err
	}

	a.mu.Lock()
	for _, p := range batch {
		if cur, ok := a.pending[p.ProductID]; ok && cur == p {
			delete(a.pending, p.ProductID)
		}
	}
	a.mu.Unlock()

	if a.OnSaved != nil {
		a.OnSaved(saved)
	}
	return nil
}
