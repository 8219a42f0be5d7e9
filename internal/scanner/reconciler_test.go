package scanner

import (
	"context"
	"errors"
	"image"
	"sync"
	"testing"
	"time"

	"home-inventory/internal/models"
)

type fakeModel struct {
	frames [][][]float32
	calls  int
}

func (m *fakeModel) Execute(ctx context.Context, frame image.Image) ([][]float32, error) {
	if len(m.frames) == 0 {
		return nil, nil
	}
	out := m.frames[m.calls%len(m.frames)]
	m.calls++
	return out, nil
}

type fakeSource struct {
	openErr error
	opened  bool
	closed  bool
}

func (s *fakeSource) Open(ctx context.Context) error {
	if s.openErr != nil {
		return s.openErr
	}
	s.opened = true
	return nil
}

func (s *fakeSource) NextFrame(ctx context.Context) (image.Image, error) {
	return image.NewRGBA(image.Rect(0, 0, 1, 1)), nil
}

func (s *fakeSource) Close() error {
	s.closed = true
	return nil
}

type sinkCall struct {
	ProductID int64
	Name      string
	Quantity  int
}

type fakeSink struct {
	mu    sync.Mutex
	calls []sinkCall
	fail  map[int64]error
}

func (s *fakeSink) AddItem(ctx context.Context, productID int64, productName string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err, ok := s.fail[productID]; ok {
		return err
	}
	s.calls = append(s.calls, sinkCall{ProductID: productID, Name: productName, Quantity: quantity})
	return nil
}

var milkCatalog = []models.Product{
	{ID: 7, Name: "Milk 3% Tnuva"},
	{ID: 12, Name: "Eggs L"},
}

func testConfig() Config {
	return Config{
		ScoreThreshold: 0.35,
		IOUThreshold:   0.45,
		MaxDetections:  15,
		FrameInterval:  time.Millisecond,
		Labels:         []string{"Milk", "Eggs"},
	}
}

// milkFrame is one confident milk detection.
var milkFrame = [][]float32{
	{0, 0, 100, 100, 0.9, 0.1},
}

func TestProcessFrame_AggregatesMatches(t *testing.T) {
	model := &fakeModel{frames: [][][]float32{milkFrame}}
	rec := New(model, &fakeSource{}, &fakeSink{}, milkCatalog, testConfig(), nil, nil)

	if err := rec.ProcessFrame(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	matches := rec.Matches()
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].Product.ID != 7 || matches[0].Count != 1 {
		t.Errorf("expected milk count 1, got %+v", matches[0])
	}
	if rec.State() != StateReviewing {
		t.Errorf("expected reviewing state, got %v", rec.State())
	}
}

func TestProcessFrame_AggregateIsSnapshotNotRunningCount(t *testing.T) {
	empty := [][]float32{}
	model := &fakeModel{frames: [][][]float32{milkFrame, empty}}
	rec := New(model, &fakeSource{}, &fakeSink{}, milkCatalog, testConfig(), nil, nil)

	ctx := context.Background()
	if err := rec.ProcessFrame(ctx); err != nil {
		t.Fatal(err)
	}
	if err := rec.ProcessFrame(ctx); err != nil {
		t.Fatal(err)
	}

	if got := rec.Matches(); len(got) != 0 {
		t.Errorf("expected empty aggregate after empty frame, got %+v", got)
	}
	if rec.State() != StateScanning {
		t.Errorf("expected scanning state, got %v", rec.State())
	}
}

func TestProcessFrame_CountsDuplicateDetections(t *testing.T) {
	// Two disjoint milk boxes in one frame aggregate to a count of two.
	twoMilk := [][]float32{
		{0, 0, 100, 100, 0.9, 0.1},
		{300, 300, 400, 400, 0.8, 0.1},
	}
	model := &fakeModel{frames: [][][]float32{twoMilk}}
	rec := New(model, &fakeSource{}, &fakeSink{}, milkCatalog, testConfig(), nil, nil)

	if err := rec.ProcessFrame(context.Background()); err != nil {
		t.Fatal(err)
	}

	matches := rec.Matches()
	if len(matches) != 1 || matches[0].Count != 2 {
		t.Errorf("expected milk count 2, got %+v", matches)
	}
}

func TestSync_SubmitsAndRecordsHistory(t *testing.T) {
	model := &fakeModel{frames: [][][]float32{milkFrame}}
	sink := &fakeSink{}
	rec := New(model, &fakeSource{}, sink, milkCatalog, testConfig(), nil, nil)

	ctx := context.Background()
	if err := rec.ProcessFrame(ctx); err != nil {
		t.Fatal(err)
	}

	results, err := rec.Sync(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || results[0].Err != nil {
		t.Fatalf("expected 1 successful result, got %+v", results)
	}

	if len(sink.calls) != 1 {
		t.Fatalf("expected 1 sink call, got %d", len(sink.calls))
	}
	call := sink.calls[0]
	if call.ProductID != 7 || call.Name != "Milk 3% Tnuva" || call.Quantity != 1 {
		t.Errorf("unexpected sink call %+v", call)
	}

	if got := rec.History()["Milk 3% Tnuva"]; got != 1 {
		t.Errorf("expected history count 1, got %d", got)
	}
	if got := rec.Matches(); len(got) != 0 {
		t.Errorf("expected aggregate cleared after sync, got %+v", got)
	}
}

func TestSync_ReturnsToScanningOnSuccess(t *testing.T) {
	model := &fakeModel{frames: [][][]float32{milkFrame}}
	rec := New(model, &fakeSource{}, &fakeSink{}, milkCatalog, testConfig(), nil, nil)

	ctx := context.Background()
	if err := rec.ProcessFrame(ctx); err != nil {
		t.Fatal(err)
	}
	if rec.State() != StateReviewing {
		t.Fatalf("expected reviewing state before sync, got %v", rec.State())
	}

	if _, err := rec.Sync(ctx); err != nil {
		t.Fatal(err)
	}

	// The aggregate is empty after a full success, so reviewing would be a
	// lie; scanning resumes immediately, not on the next frame.
	if rec.State() != StateScanning {
		t.Errorf("expected scanning state after successful sync, got %v", rec.State())
	}
	if got := rec.Matches(); len(got) != 0 {
		t.Errorf("expected empty aggregate, got %+v", got)
	}
}

func TestSync_FailureKeepsAggregateForRetry(t *testing.T) {
	model := &fakeModel{frames: [][][]float32{milkFrame}}
	sink := &fakeSink{fail: map[int64]error{7: errors.New("boom")}}
	rec := New(model, &fakeSource{}, sink, milkCatalog, testConfig(), nil, nil)

	ctx := context.Background()
	if err := rec.ProcessFrame(ctx); err != nil {
		t.Fatal(err)
	}

	results, err := rec.Sync(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || results[0].Err == nil {
		t.Fatalf("expected 1 failed result, got %+v", results)
	}

	if got := rec.Matches(); len(got) != 1 {
		t.Fatalf("expected aggregate preserved after failed sync, got %+v", got)
	}
	if got := rec.History(); len(got) != 0 {
		t.Errorf("expected empty history after failed sync, got %+v", got)
	}
	if rec.State() != StateReviewing {
		t.Errorf("expected reviewing state while holding failed aggregate, got %v", rec.State())
	}

	// Further frames must not overwrite the held aggregate.
	if err := rec.ProcessFrame(ctx); err != nil {
		t.Fatal(err)
	}
	if got := rec.Matches(); len(got) != 1 || got[0].Count != 1 {
		t.Errorf("expected held aggregate, got %+v", got)
	}

	// Retry succeeds once the sink recovers.
	sink.fail = nil
	results, err = rec.Sync(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0].Err != nil {
		t.Fatalf("expected retry to succeed, got %+v", results)
	}
	if got := rec.History()["Milk 3% Tnuva"]; got != 1 {
		t.Errorf("expected history count 1 after retry, got %d", got)
	}
}

func TestSync_PartialFailure(t *testing.T) {
	// Milk and eggs both detected; eggs fails, milk lands.
	frame := [][]float32{
		{0, 0, 100, 100, 0.9, 0.1},
		{300, 300, 400, 400, 0.1, 0.9},
	}
	model := &fakeModel{frames: [][][]float32{frame}}
	sink := &fakeSink{fail: map[int64]error{12: errors.New("boom")}}
	rec := New(model, &fakeSource{}, sink, milkCatalog, testConfig(), nil, nil)

	ctx := context.Background()
	if err := rec.ProcessFrame(ctx); err != nil {
		t.Fatal(err)
	}

	results, err := rec.Sync(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	if got := rec.History()["Milk 3% Tnuva"]; got != 1 {
		t.Errorf("expected milk in history, got %+v", rec.History())
	}
	matches := rec.Matches()
	if len(matches) != 1 || matches[0].Product.ID != 12 {
		t.Errorf("expected only eggs left in aggregate, got %+v", matches)
	}
}

func TestSync_NothingMatchedIsNoop(t *testing.T) {
	rec := New(&fakeModel{}, &fakeSource{}, &fakeSink{}, milkCatalog, testConfig(), nil, nil)

	results, err := rec.Sync(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results != nil {
		t.Errorf("expected no results, got %+v", results)
	}
}

func TestDiscard_ClearsHeldAggregate(t *testing.T) {
	model := &fakeModel{frames: [][][]float32{milkFrame}}
	sink := &fakeSink{fail: map[int64]error{7: errors.New("boom")}}
	rec := New(model, &fakeSource{}, sink, milkCatalog, testConfig(), nil, nil)

	ctx := context.Background()
	if err := rec.ProcessFrame(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := rec.Sync(ctx); err != nil {
		t.Fatal(err)
	}

	rec.Discard()
	if got := rec.Matches(); len(got) != 0 {
		t.Errorf("expected empty aggregate after discard, got %+v", got)
	}

	// Scanning resumes normally after the discard.
	if err := rec.ProcessFrame(ctx); err != nil {
		t.Fatal(err)
	}
	if got := rec.Matches(); len(got) != 1 {
		t.Errorf("expected fresh aggregate after discard, got %+v", got)
	}
}

func TestRun_OpenFailurePreventsLoop(t *testing.T) {
	source := &fakeSource{openErr: errors.New("camera permission denied")}
	rec := New(&fakeModel{}, source, &fakeSink{}, milkCatalog, testConfig(), nil, nil)

	err := rec.Run(context.Background())
	if err == nil {
		t.Fatal("expected error from failed open")
	}
	if rec.State() != StateIdle {
		t.Errorf("expected idle state, got %v", rec.State())
	}
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	model := &fakeModel{frames: [][][]float32{milkFrame}}
	source := &fakeSource{}
	rec := New(model, source, &fakeSink{}, milkCatalog, testConfig(), nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- rec.Run(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("run did not stop after cancel")
	}

	if !source.closed {
		t.Error("expected frame source to be closed")
	}
}

func TestObserver_SeesDetectionsAndLabels(t *testing.T) {
	model := &fakeModel{frames: [][][]float32{milkFrame}}

	var gotLabels []string
	observer := func(detections []Detection, labels []string) {
		gotLabels = labels
	}
	rec := New(model, &fakeSource{}, &fakeSink{}, milkCatalog, testConfig(), nil, observer)

	if err := rec.ProcessFrame(context.Background()); err != nil {
		t.Fatal(err)
	}
	if len(gotLabels) != 1 || gotLabels[0] != "Milk" {
		t.Errorf("expected observer to see [Milk], got %v", gotLabels)
	}
}
