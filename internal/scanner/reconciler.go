package scanner

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log"
	"sort"
	"sync"
	"time"

	"home-inventory/internal/models"
)

// Model runs one forward inference pass over a frame. Implementations own
// preprocessing (resize/normalize to the model's fixed input resolution)
// and return the raw output rows consumed by Decode.
type Model interface {
	Execute(ctx context.Context, frame image.Image) ([][]float32, error)
}

// FrameSource yields camera frames. An error from Open (camera permission,
// missing hardware) prevents the loop from ever starting.
type FrameSource interface {
	Open(ctx context.Context) error
	NextFrame(ctx context.Context) (image.Image, error)
	Close() error
}

// InventorySink receives confirmed counts, one call per matched product.
type InventorySink interface {
	AddItem(ctx context.Context, productID int64, productName string, quantity int) error
}

// Observer is notified after every processed frame with the surviving
// detections and their labels, the overlay-drawing analog.
type Observer func(detections []Detection, labels []string)

// State is the reconciler's lifecycle phase.
type State int

const (
	StateIdle State = iota
	StateScanning
	StateReviewing
	StateSyncing
)

// MatchedItem pairs a catalog product with its aggregated detection count
// for the current cycle.
type MatchedItem struct {
	Product models.Product
	Count   int
}

// SyncResult is the per-product outcome of one confirmed sync.
type SyncResult struct {
	Product models.Product
	Count   int
	Err     error
}

// ErrSyncInProgress is returned when Sync is called while a previous sync
// has not settled yet.
var ErrSyncInProgress = errors.New("sync already in progress")

// Config controls the detection loop.
type Config struct {
	ScoreThreshold float32
	IOUThreshold   float32
	MaxDetections  int
	FrameInterval  time.Duration
	Labels         []string
}

// Reconciler converts a live frame stream into confirmed inventory
// increments. The match aggregate is fully recomputed from the latest
// frame each cycle; only the session history accumulates across confirmed
// syncs.
type Reconciler struct {
	model    Model
	source   FrameSource
	matcher  Matcher
	sink     InventorySink
	observer Observer
	cfg      Config

	products []models.Product

	mu      sync.Mutex
	state   State
	matches map[int64]MatchedItem
	history map[string]int
	frozen  bool // aggregate preserved after a failed sync until retried or discarded
}

// New creates a reconciler over an already-loaded product catalog. A nil
// matcher falls back to SubstringMatcher; observer may be nil.
func New(model Model, source FrameSource, sink InventorySink, products []models.Product, cfg Config, matcher Matcher, observer Observer) *Reconciler {
	if matcher == nil {
		matcher = SubstringMatcher{}
	}
	if cfg.FrameInterval <= 0 {
		cfg.FrameInterval = 66 * time.Millisecond
	}
	return &Reconciler{
		model:    model,
		source:   source,
		matcher:  matcher,
		sink:     sink,
		observer: observer,
		cfg:      cfg,
		products: products,
		state:    StateIdle,
		matches:  map[int64]MatchedItem{},
		history:  map[string]int{},
	}
}

// Run opens the frame source and drives the detection loop until ctx is
// cancelled. The loop owns its lifetime: cancelling ctx synchronously stops
// scheduling and releases the source, so no cycle outlives its session.
func (r *Reconciler) Run(ctx context.Context) error {
	if err := r.source.Open(ctx); err != nil {
		return fmt.Errorf("open frame source: %w", err)
	}
	defer r.source.Close()

	r.setState(StateScanning)
	defer r.setState(StateIdle)

	ticker := time.NewTicker(r.cfg.FrameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := r.processFrame(ctx); err != nil {
				// Per-frame failures never stop the loop.
				log.Printf("detection cycle failed: %v", err)
			}
		}
	}
}

// ProcessFrame runs one capture/inference/match cycle. Exposed for callers
// driving the loop themselves (and for tests).
func (r *Reconciler) ProcessFrame(ctx context.Context) error {
	return r.processFrame(ctx)
}

func (r *Reconciler) processFrame(ctx context.Context) error {
	frame, err := r.source.NextFrame(ctx)
	if err != nil {
		return fmt.Errorf("capture frame: %w", err)
	}

	raw, err := r.model.Execute(ctx, frame)
	if err != nil {
		return fmt.Errorf("inference: %w", err)
	}

	detections := Decode(raw, DecodeOptions{
		ScoreThreshold: r.cfg.ScoreThreshold,
		IOUThreshold:   r.cfg.IOUThreshold,
		MaxDetections:  r.cfg.MaxDetections,
	})

	labels := make([]string, len(detections))
	for i, d := range detections {
		labels[i] = d.Label(r.cfg.Labels)
	}

	r.aggregate(labels)

	if r.observer != nil {
		r.observer(detections, labels)
	}
	return nil
}

// aggregate recomputes the match aggregate from this frame's detections.
// It represents what the camera currently sees, not a running count. The
// recompute is skipped while a sync is in flight or a failed sync's
// aggregate is being held for retry.
func (r *Reconciler) aggregate(labels []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state == StateSyncing || r.frozen {
		return
	}

	matches := map[int64]MatchedItem{}
	for _, label := range labels {
		product, ok := r.matcher.Match(label, r.products)
		if !ok {
			continue
		}
		m := matches[product.ID]
		m.Product = product
		m.Count++
		matches[product.ID] = m
	}

	r.matches = matches
	if len(matches) > 0 {
		r.state = StateReviewing
	} else {
		r.state = StateScanning
	}
}

// Matches returns the current aggregate, ordered by product id.
func (r *Reconciler) Matches() []MatchedItem {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := make([]MatchedItem, 0, len(r.matches))
	for _, m := range r.matches {
		items = append(items, m)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Product.ID < items[j].Product.ID
	})
	return items
}

// Sync submits one inventory-add call per matched product with its
// aggregated count and reports a per-item outcome list. Successes enter
// the session history and leave the aggregate; failures stay in the
// aggregate, which is held unchanged for retry. New confirmations are
// rejected until every call has settled.
func (r *Reconciler) Sync(ctx context.Context) ([]SyncResult, error) {
	r.mu.Lock()
	if r.state == StateSyncing {
		r.mu.Unlock()
		return nil, ErrSyncInProgress
	}
	if len(r.matches) == 0 {
		r.mu.Unlock()
		return nil, nil
	}
	r.state = StateSyncing
	items := make([]MatchedItem, 0, len(r.matches))
	for _, m := range r.matches {
		items = append(items, m)
	}
	r.mu.Unlock()

	sort.Slice(items, func(i, j int) bool {
		return items[i].Product.ID < items[j].Product.ID
	})

	results := make([]SyncResult, 0, len(items))
	anyFailed := false
	for _, m := range items {
		err := r.sink.AddItem(ctx, m.Product.ID, m.Product.Name, m.Count)
		results = append(results, SyncResult{Product: m.Product, Count: m.Count, Err: err})
		if err != nil {
			anyFailed = true
		}
	}

	r.mu.Lock()
	for _, res := range results {
		if res.Err == nil {
			r.history[res.Product.Name] += res.Count
			delete(r.matches, res.Product.ID)
		}
	}
	r.frozen = anyFailed
	if anyFailed {
		r.state = StateReviewing
	} else {
		r.state = StateScanning
	}
	r.mu.Unlock()

	return results, nil
}

// Discard drops the current aggregate, releasing a hold left by a failed
// sync and returning to plain scanning.
func (r *Reconciler) Discard() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.matches = map[int64]MatchedItem{}
	r.frozen = false
	if r.state != StateIdle && r.state != StateSyncing {
		r.state = StateScanning
	}
}

// History returns a copy of the session tally of confirmed counts by
// product name. It resets only when the reconciler is discarded.
func (r *Reconciler) History() map[string]int {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[string]int, len(r.history))
	for k, v := range r.history {
		out[k] = v
	}
	return out
}

// State returns the current lifecycle phase.
func (r *Reconciler) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

func (r *Reconciler) setState(s State) {
	r.mu.Lock()
	r.state = s
	r.mu.Unlock()
}
