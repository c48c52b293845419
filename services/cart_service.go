package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MayankMaurya27/Ecommerce/models"
	"github.com/redis/go-redis/v9"
)

// cartTTL bounds how long an abandoned cart survives.
const cartTTL = 30 * 24 * time.Hour

// CartService mirrors each user's cart into Redis as a JSON-serialized array,
// replacing the browser-local storage the old frontend used. The whole array
// is rewritten on every save; there is no per-item patching.
type CartService struct {
	rdb *redis.Client
}

func NewCartService(rdb *redis.Client) *CartService {
	return &CartService{rdb: rdb}
}

func cartKey(userID string) string {
	return "cart:" + userID
}

// Get returns the saved cart, or an empty cart when none exists.
func (s *CartService) Get(ctx context.Context, userID string) ([]models.CartItem, error) {
	raw, err := s.rdb.Get(ctx, cartKey(userID)).Result()
	if err == redis.Nil {
		return []models.CartItem{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	var items []models.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}
	return items, nil
}

// Save overwrites the user's cart with the given items.
func (s *CartService) Save(ctx context.Context, userID string, items []models.CartItem) error {
	if items == nil {
		items = []models.CartItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := s.rdb.Set(ctx, cartKey(userID), raw, cartTTL).Err(); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

// Clear removes the cart entirely (after checkout).
func (s *CartService) Clear(ctx context.Context, userID string) error {
	if err := s.rdb.Del(ctx, cartKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
