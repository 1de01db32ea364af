package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"

	"github.com/latticekit/lattice/pkg/adapters/redis"
	"github.com/latticekit/lattice/pkg/domain"
	"github.com/latticekit/lattice/pkg/ports/tests"
)

func newTestStore(t *testing.T, opts ...redis.Option) *redis.Store {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	return redis.NewFromClient(client, opts...)
}

func TestRedisStore_Contract(t *testing.T) {
	store := newTestStore(t)
	tests.RunSnapshotStoreContract(t, store)
}

func TestRedisStore_Prefix(t *testing.T) {
	store := newTestStore(t, redis.WithPrefix("custom:"))
	ctx := context.Background()

	if err := store.Save(ctx, "a", domain.Snapshot{"count": 1}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	snap, err := store.Load(ctx, "a")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if snap["count"] != float64(1) {
		t.Errorf("expected count 1 after JSON round trip, got %v", snap["count"])
	}
}

func TestRedisStore_TTL(t *testing.T) {
	store := newTestStore(t, redis.WithTTL(time.Minute))
	ctx := context.Background()

	if err := store.Save(ctx, "a", domain.Snapshot{"count": 1}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	ids, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(ids) != 1 || ids[0] != "a" {
		t.Errorf("expected [a], got %v", ids)
	}
}
