package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func newTestStore(t *testing.T) *RedisStore {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisStore(client, time.Hour)
}

func TestRedisStore_GetMissingCartReturnsEmpty(t *testing.T) {
	store := newTestStore(t)
	cartID := uuid.New()

	cart, err := store.Get(context.Background(), cartID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cart.ID != cartID {
		t.Fatalf("expected cart id %s, got %s", cartID, cart.ID)
	}
	if cart.ItemCount() != 0 {
		t.Fatalf("expected empty cart, got %d items", cart.ItemCount())
	}
}

func TestRedisStore_SaveThenGetRoundTrip(t *testing.T) {
	store := newTestStore(t)
	cartID := uuid.New()

	cart, err := store.Get(context.Background(), cartID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cart.AddLine("variant-1", 1)
	cart.AddLine("variant-2", 2)
	cart.AddLine("variant-1", 1)

	if err := store.Save(context.Background(), cart); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := store.Get(context.Background(), cartID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if len(loaded.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(loaded.Lines))
	}
	if loaded.ItemCount() != 4 {
		t.Fatalf("expected item count 4, got %d", loaded.ItemCount())
	}
	if loaded.Lines[0].VariantID != "variant-1" || loaded.Lines[0].Quantity != 2 {
		t.Fatalf("expected first line variant-1 x2, got %s x%d", loaded.Lines[0].VariantID, loaded.Lines[0].Quantity)
	}
}

func TestRedisStore_DeleteRemovesCart(t *testing.T) {
	store := newTestStore(t)
	cartID := uuid.New()

	cart, _ := store.Get(context.Background(), cartID)
	cart.AddLine("variant-1", 1)
	if err := store.Save(context.Background(), cart); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if err := store.Delete(context.Background(), cartID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	loaded, err := store.Get(context.Background(), cartID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if loaded.ItemCount() != 0 {
		t.Fatalf("expected empty cart after delete, got %d items", loaded.ItemCount())
	}
}
