package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"campus-courier-service/internal/domain"
)

// fakeRepo is an in-memory OrderRepository for registry tests.
type fakeRepo struct {
	saved   map[string]domain.Order
	failing bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{saved: make(map[string]domain.Order)}
}

func (f *fakeRepo) SaveOrder(ctx context.Context, order domain.Order) error {
	if f.failing {
		return errors.New("storage down")
	}
	f.saved[order.OrderID] = order
	return nil
}

func (f *fakeRepo) ListOrders(ctx context.Context) ([]domain.Order, error) {
	out := make([]domain.Order, 0, len(f.saved))
	for _, order := range f.saved {
		out = append(out, order)
	}
	return out, nil
}

func testRegistry(t *testing.T) *OrderRegistry {
	t.Helper()

	g := domain.NewLocationGraph()
	for _, name := range []string{"A", "B", "C"} {
		if err := g.AddLocation(name, name, domain.Coordinates{}, "", true); err != nil {
			t.Fatalf("add location: %v", err)
		}
	}
	return NewOrderRegistry(g, nil)
}

func TestCreateOrderAssignsSequentialIDs(t *testing.T) {
	r := testRegistry(t)
	ctx := context.Background()

	first, err := r.CreateOrder(ctx, "Alice", "A", "B", []string{"coffee"}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := r.CreateOrder(ctx, "Bob", "B", "C", []string{"tea"}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first != "ORD-0001" || second != "ORD-0002" {
		t.Fatalf("ids = %q, %q, want ORD-0001, ORD-0002", first, second)
	}

	order, ok := r.Order(first)
	if !ok {
		t.Fatalf("order %s not found after create", first)
	}
	if order.Status != domain.StatusPending {
		t.Fatalf("status = %q, want pending", order.Status)
	}
}

func TestCreateOrderValidation(t *testing.T) {
	r := testRegistry(t)
	ctx := context.Background()

	if _, err := r.CreateOrder(ctx, "Alice", "Nowhere", "B", []string{"x"}, 0); !errors.Is(err, ErrInvalidLocation) {
		t.Fatalf("bad pickup: expected ErrInvalidLocation, got %v", err)
	}
	if _, err := r.CreateOrder(ctx, "Alice", "A", "Nowhere", []string{"x"}, 0); !errors.Is(err, ErrInvalidLocation) {
		t.Fatalf("bad delivery: expected ErrInvalidLocation, got %v", err)
	}
	if _, err := r.CreateOrder(ctx, "Alice", "A", "B", nil, 0); err == nil {
		t.Fatal("empty items accepted, want error")
	}
}

func TestPendingOrdersSortedByPriorityThenRecency(t *testing.T) {
	r := testRegistry(t)
	ctx := context.Background()

	// Control the clock so recency is unambiguous.
	tick := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	r.now = func() time.Time {
		tick = tick.Add(time.Minute)
		return tick
	}

	lowOld, _ := r.CreateOrder(ctx, "a", "A", "B", []string{"x"}, 0)
	lowNew, _ := r.CreateOrder(ctx, "b", "A", "B", []string{"x"}, 0)
	high, _ := r.CreateOrder(ctx, "c", "A", "B", []string{"x"}, 5)

	got := r.PendingOrders()
	want := []string{high, lowNew, lowOld}
	for i, id := range want {
		if got[i].OrderID != id {
			t.Fatalf("pending[%d] = %s, want %s (full order %v)", i, got[i].OrderID, id, got)
		}
	}
}

func TestCompleteAndCancelLifecycle(t *testing.T) {
	r := testRegistry(t)
	ctx := context.Background()

	id, _ := r.CreateOrder(ctx, "Alice", "A", "B", []string{"x"}, 0)

	if err := r.CompleteOrder(ctx, id); err != nil {
		t.Fatalf("complete: %v", err)
	}
	order, _ := r.Order(id)
	if order.Status != domain.StatusCompleted {
		t.Fatalf("status = %q, want completed", order.Status)
	}
	if order.CompletedAt == nil {
		t.Fatal("CompletedAt not stamped")
	}

	// Terminal orders stay terminal.
	if err := r.CancelOrder(ctx, id); err != nil {
		t.Fatalf("cancel after complete: %v", err)
	}
	order, _ = r.Order(id)
	if order.Status != domain.StatusCompleted {
		t.Fatalf("terminal status changed to %q", order.Status)
	}

	// Unknown ids are no-ops, not errors.
	if err := r.CompleteOrder(ctx, "ORD-9999"); err != nil {
		t.Fatalf("complete unknown id: %v", err)
	}
	if err := r.CancelOrder(ctx, "ORD-9999"); err != nil {
		t.Fatalf("cancel unknown id: %v", err)
	}
}

func TestStartOrdersOnlyMovesPending(t *testing.T) {
	r := testRegistry(t)
	ctx := context.Background()

	pending, _ := r.CreateOrder(ctx, "Alice", "A", "B", []string{"x"}, 0)
	cancelled, _ := r.CreateOrder(ctx, "Bob", "A", "B", []string{"x"}, 0)
	if err := r.CancelOrder(ctx, cancelled); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	if err := r.StartOrders(ctx, []string{pending, cancelled, "ORD-9999"}); err != nil {
		t.Fatalf("start orders: %v", err)
	}

	got, _ := r.Order(pending)
	if got.Status != domain.StatusInProgress {
		t.Fatalf("pending order status = %q, want in_progress", got.Status)
	}
	got, _ = r.Order(cancelled)
	if got.Status != domain.StatusCancelled {
		t.Fatalf("cancelled order status = %q, want cancelled", got.Status)
	}
}

func TestStatistics(t *testing.T) {
	r := testRegistry(t)
	ctx := context.Background()

	if stats := r.Statistics(); stats.CompletionRate != 0 {
		t.Fatalf("empty registry completion rate = %v, want 0", stats.CompletionRate)
	}

	a, _ := r.CreateOrder(ctx, "a", "A", "B", []string{"x"}, 0)
	b, _ := r.CreateOrder(ctx, "b", "A", "B", []string{"x"}, 0)
	if _, err := r.CreateOrder(ctx, "c", "A", "B", []string{"x"}, 0); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := r.CompleteOrder(ctx, a); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if err := r.CancelOrder(ctx, b); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	stats := r.Statistics()
	if stats.TotalOrders != 3 || stats.Completed != 1 || stats.Cancelled != 1 || stats.Pending != 1 {
		t.Fatalf("stats = %+v", stats)
	}
	if want := 1.0 / 3.0; stats.CompletionRate != want {
		t.Fatalf("completion rate = %v, want %v", stats.CompletionRate, want)
	}
}

func TestRegistryWritesThroughAndReloads(t *testing.T) {
	g := domain.NewLocationGraph()
	for _, name := range []string{"A", "B"} {
		if err := g.AddLocation(name, name, domain.Coordinates{}, "", true); err != nil {
			t.Fatalf("add location: %v", err)
		}
	}

	repo := newFakeRepo()
	ctx := context.Background()

	first := NewOrderRegistry(g, repo)
	id, err := first.CreateOrder(ctx, "Alice", "A", "B", []string{"x"}, 2)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := first.CompleteOrder(ctx, id); err != nil {
		t.Fatalf("complete: %v", err)
	}

	// A fresh registry over the same repo sees the order and continues
	// the id sequence instead of reusing ORD-0001.
	second := NewOrderRegistry(g, repo)
	if err := second.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}

	reloaded, ok := second.Order(id)
	if !ok {
		t.Fatalf("order %s missing after reload", id)
	}
	if reloaded.Status != domain.StatusCompleted {
		t.Fatalf("reloaded status = %q, want completed", reloaded.Status)
	}

	next, err := second.CreateOrder(ctx, "Bob", "A", "B", []string{"y"}, 0)
	if err != nil {
		t.Fatalf("create after reload: %v", err)
	}
	if next != "ORD-0002" {
		t.Fatalf("next id = %q, want ORD-0002", next)
	}
}

func TestCreateOrderRollsBackOnStorageFailure(t *testing.T) {
	g := domain.NewLocationGraph()
	if err := g.AddLocation("A", "A", domain.Coordinates{}, "", true); err != nil {
		t.Fatalf("add location: %v", err)
	}

	repo := newFakeRepo()
	repo.failing = true
	r := NewOrderRegistry(g, repo)

	if _, err := r.CreateOrder(context.Background(), "Alice", "A", "A", []string{"x"}, 0); err == nil {
		t.Fatal("expected error from failing repository")
	}

	// The failed order must not linger in memory or burn an id.
	repo.failing = false
	id, err := r.CreateOrder(context.Background(), "Alice", "A", "A", []string{"x"}, 0)
	if err != nil {
		t.Fatalf("create after recovery: %v", err)
	}
	if id != "ORD-0001" {
		t.Fatalf("id = %q, want ORD-0001 (counter rolled back)", id)
	}
}
