package services

import (
	"context"
	"testing"

	"github.com/MayankMaurya27/Ecommerce/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestCartService(t *testing.T) *CartService {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewCartService(rdb)
}

func TestCartGetEmptyWhenUnset(t *testing.T) {
	s := newTestCartService(t)

	items, err := s.Get(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("items = %v, want empty cart", items)
	}
}

func TestCartSaveAndGetRoundTrip(t *testing.T) {
	s := newTestCartService(t)
	ctx := context.Background()

	saved := []models.CartItem{
		{Title: "Sneakers", Price: "2499", Category: "fashion"},
		{Title: "Socks", Price: "199", Category: "fashion"},
	}
	if err := s.Save(ctx, "user-1", saved); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(got) != 2 || got[0].Title != "Sneakers" || got[1].Price != "199" {
		t.Errorf("got = %+v, want saved items back", got)
	}
}

func TestCartSaveOverwritesWholeArray(t *testing.T) {
	s := newTestCartService(t)
	ctx := context.Background()

	s.Save(ctx, "user-1", []models.CartItem{{Title: "A", Price: "1", Category: "c"}})
	s.Save(ctx, "user-1", []models.CartItem{{Title: "B", Price: "2", Category: "c"}})

	got, err := s.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(got) != 1 || got[0].Title != "B" {
		t.Errorf("got = %+v, want only the last save", got)
	}
}

func TestCartClear(t *testing.T) {
	s := newTestCartService(t)
	ctx := context.Background()

	s.Save(ctx, "user-1", []models.CartItem{{Title: "A", Price: "1", Category: "c"}})
	if err := s.Clear(ctx, "user-1"); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	got, _ := s.Get(ctx, "user-1")
	if len(got) != 0 {
		t.Errorf("got = %+v, want empty after clear", got)
	}
}

func TestCartsAreIsolatedPerUser(t *testing.T) {
	s := newTestCartService(t)
	ctx := context.Background()

	s.Save(ctx, "user-1", []models.CartItem{{Title: "A", Price: "1", Category: "c"}})

	got, err := s.Get(ctx, "user-2")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("user-2 cart = %+v, want empty", got)
	}
}
